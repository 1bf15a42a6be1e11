//go:build !gozstd

package compress

import (
	"fmt"
	"slices"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdEncoders = sync.Pool{
		New: func() any {
			// column frames carry their own CRC32
			enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderCRC(false))
			if err != nil {
				panic(fmt.Sprintf("zstd: new encoder: %v", err))
			}

			return enc
		},
	}

	zstdDecoders = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(1<<30))
			if err != nil {
				panic(fmt.Sprintf("zstd: new decoder: %v", err))
			}

			return dec
		},
	}
)

// AppendCompressed encodes src as a single zstd frame.
func (ZstdCodec) AppendCompressed(dst, src []byte) ([]byte, error) {
	enc, _ := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(enc)

	return enc.EncodeAll(src, dst), nil
}

// AppendDecompressed decodes a zstd frame. A content size recorded in the
// frame header is checked against maxSize before decoding and pre-sizes dst.
func (ZstdCodec) AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	var fh zstd.Header
	if err := fh.Decode(src); err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if fh.HasFCS {
		if fh.FrameContentSize > uint64(maxSize) { //nolint:gosec
			return nil, tooLarge(int(min(fh.FrameContentSize, 1<<62)), maxSize) //nolint:gosec
		}
		dst = slices.Grow(dst, int(fh.FrameContentSize)) //nolint:gosec
	}

	dec, _ := zstdDecoders.Get().(*zstd.Decoder)
	defer zstdDecoders.Put(dec)

	start := len(dst)
	out, err := dec.DecodeAll(src, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if n := len(out) - start; n > maxSize {
		return nil, tooLarge(n, maxSize)
	}

	return out, nil
}
