package column

import (
	"iter"

	"github.com/arloliu/eeagrid/endian"
	"github.com/arloliu/eeagrid/internal/pool"
)

// RawEncoder stores each value as a fixed 8-byte integer in the engine's byte order.
type RawEncoder struct {
	buf    *pool.Buffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder = (*RawEncoder)(nil)

// NewRawEncoder creates a raw encoder writing in engine's byte order.
func NewRawEncoder(engine endian.EndianEngine) *RawEncoder {
	return &RawEncoder{
		engine: engine,
		buf:    pool.Get(),
	}
}

// Write encodes a single value.
func (e *RawEncoder) Write(v int64) {
	e.count++
	e.engine.PutUint64(e.buf.Extend(8), uint64(v)) //nolint:gosec
}

// WriteSlice encodes values with a single buffer extension.
func (e *RawEncoder) WriteSlice(values []int64) {
	n := len(values)
	if n == 0 {
		return
	}
	e.count += n

	window := e.buf.Extend(n * 8)
	for i, v := range values {
		e.engine.PutUint64(window[i*8:], uint64(v)) //nolint:gosec
	}
}

func (e *RawEncoder) Bytes() []byte { return e.buf.Bytes() }

func (e *RawEncoder) Len() int { return e.count }

func (e *RawEncoder) Size() int { return e.buf.Len() }

// Finish returns the buffer to the pool and resets the encoder.
func (e *RawEncoder) Finish() {
	pool.Put(e.buf)
	e.buf = pool.Get()
	e.count = 0
}

// RawDecoder decodes payloads written by RawEncoder. It supports random access.
type RawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder = RawDecoder{}

// NewRawDecoder creates a raw decoder reading in engine's byte order.
func NewRawDecoder(engine endian.EndianEngine) RawDecoder {
	return RawDecoder{engine: engine}
}

// All yields up to count values; a short payload ends the sequence early.
func (d RawDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		n := min(count, len(data)/8)
		for i := range n {
			if !yield(int64(d.engine.Uint64(data[i*8:]))) { //nolint:gosec
				return
			}
		}
	}
}

// At returns the value at index in O(1).
func (d RawDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	offset := index * 8
	if offset+8 > len(data) {
		return 0, false
	}

	return int64(d.engine.Uint64(data[offset:])), true //nolint:gosec
}
