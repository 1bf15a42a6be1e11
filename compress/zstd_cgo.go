//go:build gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// AppendCompressed encodes src as a single zstd frame.
func (ZstdCodec) AppendCompressed(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, gozstdLevel), nil
}

// AppendDecompressed decodes a zstd frame and rejects output longer than maxSize.
func (ZstdCodec) AppendDecompressed(dst, src []byte, maxSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if n := len(out) - start; n > maxSize {
		return nil, tooLarge(n, maxSize)
	}

	return out, nil
}
