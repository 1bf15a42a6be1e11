package column

import "iter"

// ColumnarEncoder accumulates int64 values into an encoded payload.
type ColumnarEncoder interface {
	// Write encodes a single value.
	Write(v int64)

	// WriteSlice encodes values in order. It is faster than repeated Write calls.
	WriteSlice(values []int64)

	// Bytes returns the encoded payload. The slice is valid until the next
	// Write, WriteSlice or Finish call and must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Finish returns the internal buffer to the pool and resets the encoder.
	// Bytes must be consumed before calling Finish.
	Finish()
}

// ColumnarDecoder reads values back from a payload produced by the matching encoder.
type ColumnarDecoder interface {
	// All yields up to count decoded values. It stops early on malformed data.
	All(data []byte, count int) iter.Seq[int64]

	// At returns the value at index, or false if index is out of range or the
	// payload is malformed.
	At(data []byte, index int, count int) (int64, bool)
}
