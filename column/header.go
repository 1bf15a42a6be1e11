package column

import (
	"fmt"

	"github.com/arloliu/eeagrid/endian"
	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
)

const (
	HeaderSize  = 16     // fixed frame header size in bytes
	MagicColumn = 0xEE61 // magic number of a grid-number column frame, v1

	FlagBigEndian = 0x01 // header flag: integers are big-endian
	flagReserved  = 0xFE // header flag bits that must be zero

	// MaxValues is the largest count a single frame can declare.
	MaxValues = 1<<32 - 1
)

// Header is the fixed-size prefix of a column frame.
type Header struct {
	Flags       uint8
	Encoding    format.EncodingType
	Compression format.CompressionType
	// Count is the number of values in the frame.
	Count uint32
	// Checksum is the CRC32 (IEEE) of the stored payload bytes.
	Checksum uint32
}

// Engine returns the byte order selected by the header flags.
func (h Header) Engine() endian.EndianEngine {
	if h.Flags&FlagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks that the header describes a frame this package can decode.
func (h Header) Validate() error {
	if h.Flags&flagReserved != 0 {
		return fmt.Errorf("%w: reserved flag bits 0x%02x set", errs.ErrInvalidHeaderFlags, h.Flags&flagReserved)
	}

	switch h.Encoding {
	case format.TypeRaw, format.TypeDelta:
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, uint8(h.Encoding))
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	return nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b.
func (h Header) AppendTo(b []byte) []byte {
	b = append(b, byte(MagicColumn&0xff), byte(MagicColumn>>8))
	b = append(b, h.Flags, byte(h.Encoding), byte(h.Compression), 0, 0, 0)

	engine := h.Engine()
	b = engine.AppendUint32(b, h.Count)
	b = engine.AppendUint32(b, h.Checksum)

	return b
}

// ParseHeader parses the header at the start of data.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is shorter than HeaderSize
//   - errs.ErrInvalidMagicNumber if the magic number does not match
//   - encoding or compression errors from Validate
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != MagicColumn {
		return Header{}, fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	h := Header{
		Flags:       data[2],
		Encoding:    format.EncodingType(data[3]),
		Compression: format.CompressionType(data[4]),
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint32(data[12:16])

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
