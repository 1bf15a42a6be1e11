package column

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/eeagrid/internal/pool"
)

// DeltaEncoder stores the first value and then the difference to the previous
// value, each zigzag and varint encoded.
//
// Grid numbers of neighbouring cells differ only in their low nibbles, so a
// column sorted by grid number typically costs 1-4 bytes per value instead of 8.
type DeltaEncoder struct {
	prev  int64
	buf   *pool.Buffer
	count int
}

var _ ColumnarEncoder = (*DeltaEncoder)(nil)

// NewDeltaEncoder creates a delta encoder.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{
		buf: pool.Get(),
	}
}

// Write encodes a single value.
func (e *DeltaEncoder) Write(v int64) {
	e.buf.Reserve(binary.MaxVarintLen64)
	e.writeDelta(v - e.prev)
	e.prev = v
	e.count++
}

// WriteSlice encodes values in order.
func (e *DeltaEncoder) WriteSlice(values []int64) {
	if len(values) == 0 {
		return
	}

	// optimistic: 3 bytes per value
	e.buf.Reserve(len(values) * 3)

	prev := e.prev
	for _, v := range values {
		e.writeDelta(v - prev)
		prev = v
	}

	e.prev = prev
	e.count += len(values)
}

func (e *DeltaEncoder) writeDelta(delta int64) {
	zigzag := (delta << 1) ^ (delta >> 63)
	e.buf.AppendUvarint(uint64(zigzag)) //nolint:gosec
}

func (e *DeltaEncoder) Bytes() []byte { return e.buf.Bytes() }

func (e *DeltaEncoder) Len() int { return e.count }

func (e *DeltaEncoder) Size() int { return e.buf.Len() }

// Finish returns the buffer to the pool and resets the encoder.
func (e *DeltaEncoder) Finish() {
	pool.Put(e.buf)
	e.buf = pool.Get()
	e.prev = 0
	e.count = 0
}

// DeltaDecoder decodes payloads written by DeltaEncoder. It is stateless.
type DeltaDecoder struct{}

var _ ColumnarDecoder = DeltaDecoder{}

// NewDeltaDecoder creates a delta decoder.
func NewDeltaDecoder() DeltaDecoder {
	return DeltaDecoder{}
}

// All yields up to count values. An invalid varint ends the sequence early.
func (d DeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		var cur int64
		offset := 0

		for range count {
			u, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n

			delta := int64(u>>1) ^ -int64(u&1) //nolint:gosec
			cur += delta

			if !yield(cur) {
				return
			}
		}
	}
}

// At decodes sequentially up to index; delta payloads have no random access.
func (d DeltaDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, index+1) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}
