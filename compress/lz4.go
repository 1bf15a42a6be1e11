package compress

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/pierrec/lz4/v4"
)

var lz4Compressors = sync.Pool{
	New: func() any { return new(lz4.Compressor) },
}

// lz4MaxRatio bounds the restored size of an LZ4 block relative to its
// compressed size: each length extension byte adds at most 255 bytes.
const lz4MaxRatio = 255

// LZ4Codec stores payloads as LZ4 blocks.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// AppendCompressed encodes src as one LZ4 block.
func (LZ4Codec) AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := lz4.CompressBlockBound(len(src))
	start := len(dst)
	dst = slices.Grow(dst, bound)

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	n, err := lc.CompressBlock(src, dst[start:start+bound])
	lz4Compressors.Put(lc)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}

	return dst[:start+n], nil
}

// AppendDecompressed decodes an LZ4 block. LZ4 blocks do not record their
// restored length: the buffer starts at 4x the block and doubles while too
// short, up to maxSize or the largest size the block can encode.
func (LZ4Codec) AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	limit := max(min(maxSize, lz4MaxRatio*len(src)+64), 0)
	size := min(4*len(src), limit)

	start := len(dst)
	for {
		dst = slices.Grow(dst[:start], size)
		n, err := lz4.UncompressBlock(src, dst[start:start+size])
		if err == nil {
			return dst[:start+n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if size >= limit {
			return nil, fmt.Errorf("lz4: %w: more than %d bytes", errs.ErrPayloadTooLarge, size)
		}

		size = min(max(2*size, 64), limit)
	}
}
