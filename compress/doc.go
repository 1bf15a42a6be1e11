// Package compress provides the block codecs applied to encoded grid-number
// column payloads.
//
// Every codec appends its output to a caller-supplied buffer, so a column
// frame can be assembled in one allocation:
//
//	codec, err := compress.Lookup(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	frame, err = codec.AppendCompressed(frame, payload)
//
// Supported algorithms:
//   - None: payload copied unchanged
//   - Zstd: pure Go (klauspost/compress) by default, cgo (valyala/gozstd)
//     when built with the gozstd tag; the two read each other's frames
//   - S2: Snappy-compatible blocks (klauspost/compress/s2)
//   - LZ4: LZ4 blocks (pierrec/lz4)
//
// Delta-encoded columns of nearby cells are already small; compression pays off
// for raw encoding and for large batches of scattered grid numbers.
package compress
