package compress

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/eeagrid/format"
	"github.com/klauspost/compress/s2"
)

// S2Codec stores payloads as S2 blocks.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// AppendCompressed encodes src as one S2 block directly into dst's spare capacity.
func (S2Codec) AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return nil, errors.New("s2: payload too large")
	}

	start := len(dst)
	dst = slices.Grow(dst, bound)
	block := s2.Encode(dst[start:start+bound], src)

	return dst[:start+len(block)], nil
}

// AppendDecompressed decodes an S2 block. The length recorded in the block is
// checked against maxSize before dst grows.
func (S2Codec) AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}
	if n > maxSize {
		return nil, tooLarge(n, maxSize)
	}

	start := len(dst)
	dst = slices.Grow(dst, n)
	out, err := s2.Decode(dst[start:start+n], src)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}

	return dst[:start+len(out)], nil
}
