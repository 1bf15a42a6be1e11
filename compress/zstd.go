package compress

import "github.com/arloliu/eeagrid/format"

// ZstdCodec stores payloads as zstd frames.
//
// The backend is chosen at build time: klauspost/compress/zstd by default,
// valyala/gozstd with the gozstd build tag (requires cgo).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
