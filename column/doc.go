// Package column implements the binary column format used to ship vectors of
// grid numbers between a host engine and the codec.
//
// A column frame is a fixed 16-byte header followed by the encoded, optionally
// compressed payload:
//
//	offset  size  field
//	0       2     magic 0xEE61, always little-endian
//	2       1     flags (bit 0: payload and header integers are big-endian)
//	3       1     encoding (format.TypeRaw, format.TypeDelta)
//	4       1     compression (format.CompressionNone, Zstd, S2, LZ4)
//	5       3     reserved, zero
//	8       4     value count
//	12      4     CRC32 (IEEE) of the stored payload
//	16      ...   payload
//
// Raw encoding stores 8 bytes per value. Delta encoding stores the first value
// and then the difference to the previous value, both zigzag varint encoded.
// Sorted or spatially clustered grid numbers delta-encode to 1-4 bytes each.
//
// Basic usage:
//
//	data, err := column.Encode(gridNums, column.WithCompression(format.CompressionZstd))
//	...
//	gridNums, err = column.Decode(data)
//
// Frames are an in-memory wire format; nothing here persists data.
package column
