package compress

import (
	"fmt"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
)

// Codec compresses and restores column payloads.
//
// Implementations never modify src and are safe for concurrent use.
type Codec interface {
	// Type returns the compression identifier stored in column headers.
	Type() format.CompressionType

	// AppendCompressed appends the compressed form of src to dst.
	AppendCompressed(dst, src []byte) ([]byte, error)

	// AppendDecompressed appends the restored form of src to dst. Input that
	// restores to more than maxSize bytes fails with errs.ErrPayloadTooLarge
	// before the restored buffer is allocated, where the format allows it.
	AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error)
}

// MaxRestoredSize bounds the restored payload of Decompress.
const MaxRestoredSize = 128 << 20

var codecs = [...]Codec{
	format.CompressionNone: NoneCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionS2:   S2Codec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// Lookup returns the codec registered for ct.
func Lookup(ct format.CompressionType) (Codec, error) {
	if int(ct) < len(codecs) && codecs[ct] != nil {
		return codecs[ct], nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, ct, uint8(ct))
}

// Compress returns src compressed with ct in a new slice.
func Compress(ct format.CompressionType, src []byte) ([]byte, error) {
	codec, err := Lookup(ct)
	if err != nil {
		return nil, err
	}

	return codec.AppendCompressed(nil, src)
}

// Decompress returns src restored with ct in a new slice. The restored payload
// may not exceed MaxRestoredSize.
func Decompress(ct format.CompressionType, src []byte) ([]byte, error) {
	codec, err := Lookup(ct)
	if err != nil {
		return nil, err
	}

	return codec.AppendDecompressed(nil, src, MaxRestoredSize)
}

// NoneCodec copies payloads unchanged.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

func (NoneCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (NoneCodec) AppendCompressed(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

func (NoneCodec) AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error) {
	if len(src) > maxSize {
		return nil, tooLarge(len(src), maxSize)
	}

	return append(dst, src...), nil
}

func tooLarge(n, maxSize int) error {
	return fmt.Errorf("%w: %d bytes, limit %d", errs.ErrPayloadTooLarge, n, maxSize)
}
