package column

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/eeagrid/compress"
	"github.com/arloliu/eeagrid/endian"
	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/arloliu/eeagrid/internal/options"
)

// Encode encodes values into a single column frame.
//
// Parameters:
//   - values: grid numbers (or any int64 column) to encode
//   - opts: WithEncoding, WithCompression, WithBigEndian, WithLittleEndian
//
// Returns:
//   - []byte: the frame, owned by the caller
//   - error: invalid options or a compression failure
func Encode(values []int64, opts ...Option) ([]byte, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return AppendFrame(nil, values, cfg)
}

// AppendFrame appends the column frame of values encoded with cfg to dst.
func AppendFrame(dst []byte, values []int64, cfg Config) ([]byte, error) {
	if uint64(len(values)) > MaxValues {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(values))
	}

	h := Header{
		Encoding:    cfg.Encoding,
		Compression: cfg.Compression,
		Count:       uint32(len(values)), //nolint:gosec
	}
	if cfg.BigEndian {
		h.Flags |= FlagBigEndian
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	enc, err := newEncoder(h.Encoding, h.Engine())
	if err != nil {
		return nil, err
	}
	defer enc.Finish()

	enc.WriteSlice(values)

	codec, err := compress.Lookup(h.Compression)
	if err != nil {
		return nil, err
	}

	start := len(dst)
	dst = append(dst, make([]byte, HeaderSize)...)
	dst, err = codec.AppendCompressed(dst, enc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s column payload: %w", h.Compression, err)
	}

	h.Checksum = crc32.ChecksumIEEE(dst[start+HeaderSize:])
	h.AppendTo(dst[start:start]) // fills the reserved header bytes in place

	return dst, nil
}

// Decode decodes a single column frame. Trailing bytes after the frame are an error.
func Decode(data []byte) ([]int64, error) {
	values, n, err := DecodeFrame(data, -1)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrTruncatedPayload, len(data)-n)
	}

	return values, nil
}

// DecodeFrame decodes the frame at the start of data whose stored payload is
// payloadLen bytes long; payloadLen < 0 means the payload extends to the end
// of data. It returns the values and the number of bytes consumed.
//
// A compressed payload may restore to at most the size its value count can
// occupy; larger payloads fail with errs.ErrPayloadTooLarge.
func DecodeFrame(data []byte, payloadLen int) ([]int64, int, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	rest := data[HeaderSize:]
	if payloadLen >= 0 {
		if payloadLen > len(rest) {
			return nil, 0, fmt.Errorf("%w: need %d payload bytes, have %d", errs.ErrTruncatedPayload, payloadLen, len(rest))
		}
		rest = rest[:payloadLen]
	}

	if sum := crc32.ChecksumIEEE(rest); sum != h.Checksum {
		return nil, 0, fmt.Errorf("%w: header 0x%08x, payload 0x%08x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	payload := rest
	if h.Compression != format.CompressionNone {
		codec, err := compress.Lookup(h.Compression)
		if err != nil {
			return nil, 0, err
		}

		payload, err = codec.AppendDecompressed(nil, rest, maxPayloadSize(h))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decompress %s column payload: %w", h.Compression, err)
		}
	}

	dec, err := newDecoder(h.Encoding, h.Engine())
	if err != nil {
		return nil, 0, err
	}

	count := int(h.Count)
	if h.Encoding == format.TypeRaw && len(payload) != count*8 {
		return nil, 0, fmt.Errorf("%w: %d values need %d bytes, have %d", errs.ErrTruncatedPayload, count, count*8, len(payload))
	}

	// each value takes at least one byte, so the payload bounds the allocation
	values := make([]int64, 0, min(count, len(payload)))
	for v := range dec.All(payload, count) {
		values = append(values, v)
	}

	if len(values) != count {
		return nil, 0, fmt.Errorf("%w: header declares %d values, decoded %d", errs.ErrTruncatedPayload, count, len(values))
	}

	return values, HeaderSize + len(rest), nil
}

// EncodeColumns encodes several columns into one buffer. Each frame is
// preceded by its total length as a little-endian uint32.
func EncodeColumns(columns [][]int64, opts ...Option) ([]byte, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	var out []byte
	for i, col := range columns {
		start := len(out)
		out = append(out, 0, 0, 0, 0)

		var err error
		out, err = AppendFrame(out, col, cfg)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}

		binary.LittleEndian.PutUint32(out[start:], uint32(len(out)-start-4)) //nolint:gosec
	}

	return out, nil
}

// DecodeColumns decodes a buffer produced by EncodeColumns.
func DecodeColumns(data []byte) ([][]int64, error) {
	var columns [][]int64

	for offset := 0; offset < len(data); {
		if len(data)-offset < 4 {
			return nil, fmt.Errorf("%w: dangling length prefix at offset %d", errs.ErrTruncatedPayload, offset)
		}

		frameLen := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4
		if frameLen < HeaderSize || frameLen > len(data)-offset {
			return nil, fmt.Errorf("%w: frame of %d bytes at offset %d", errs.ErrTruncatedPayload, frameLen, offset)
		}

		values, _, err := DecodeFrame(data[offset:offset+frameLen], frameLen-HeaderSize)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", len(columns), err)
		}

		columns = append(columns, values)
		offset += frameLen
	}

	return columns, nil
}

// maxPayloadSize returns the largest encoded payload a frame declaring
// h.Count values can hold, capped at compress.MaxRestoredSize.
func maxPayloadSize(h Header) int {
	perValue := binary.MaxVarintLen64
	if h.Encoding == format.TypeRaw {
		perValue = 8
	}

	return int(min(uint64(h.Count)*uint64(perValue), compress.MaxRestoredSize)) //nolint:gosec
}

func newEncoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarEncoder, error) {
	switch enc {
	case format.TypeRaw:
		return NewRawEncoder(engine), nil
	case format.TypeDelta:
		return NewDeltaEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, enc)
	}
}

func newDecoder(enc format.EncodingType, engine endian.EndianEngine) (ColumnarDecoder, error) {
	switch enc {
	case format.TypeRaw:
		return NewRawDecoder(engine), nil
	case format.TypeDelta:
		return NewDeltaDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, enc)
	}
}
