// Package pool recycles the scratch buffers that column encoders fill with
// encoded grid numbers.
package pool

import (
	"encoding/binary"
	"sync"
)

const (
	// DefaultSize fits about a thousand raw grid numbers.
	DefaultSize = 8 << 10
	// MaxRetained is the largest buffer capacity returned to the pool; larger
	// buffers from exceptional batches are left to the GC.
	MaxRetained = 512 << 10
)

// Buffer is an append-only byte slice.
type Buffer struct {
	B []byte
}

// NewBuffer creates an empty buffer with capacity size.
func NewBuffer(size int) *Buffer {
	return &Buffer{B: make([]byte, 0, size)}
}

func (b *Buffer) Bytes() []byte { return b.B }

func (b *Buffer) Len() int { return len(b.B) }

func (b *Buffer) Cap() int { return cap(b.B) }

// Reset empties the buffer and keeps its memory.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Write appends p. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// AppendUvarint appends u in unsigned varint form.
func (b *Buffer) AppendUvarint(u uint64) {
	b.B = binary.AppendUvarint(b.B, u)
}

// Extend lengthens the buffer by n bytes and returns the new, uninitialized
// window for the caller to fill.
func (b *Buffer) Extend(n int) []byte {
	b.Reserve(n)

	start := len(b.B)
	b.B = b.B[:start+n]

	return b.B[start:]
}

// Reserve makes room for n more bytes. Capacity grows by at least DefaultSize,
// or by a quarter once the buffer exceeds 4 * DefaultSize.
func (b *Buffer) Reserve(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	step := DefaultSize
	if cap(b.B) > 4*DefaultSize {
		step = cap(b.B) / 4
	}

	grown := make([]byte, len(b.B), len(b.B)+max(step, n))
	copy(grown, b.B)
	b.B = grown
}

// Pool hands out Buffers of a default capacity.
type Pool struct {
	p           sync.Pool
	maxRetained int
}

// New creates a pool of buffers with capacity size. Buffers that grew past
// maxRetained are dropped on Put; maxRetained <= 0 retains everything.
func New(size, maxRetained int) *Pool {
	return &Pool{
		p: sync.Pool{
			New: func() any { return NewBuffer(size) },
		},
		maxRetained: maxRetained,
	}
}

// Get returns an empty buffer.
func (p *Pool) Get() *Buffer {
	b, _ := p.p.Get().(*Buffer)
	return b
}

// Put recycles b. b must not be used afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil || (p.maxRetained > 0 && cap(b.B) > p.maxRetained) {
		return
	}

	b.Reset()
	p.p.Put(b)
}

var columns = New(DefaultSize, MaxRetained)

// Get returns an empty buffer from the shared column pool.
func Get() *Buffer {
	return columns.Get()
}

// Put returns b to the shared column pool.
func Put(b *Buffer) {
	columns.Put(b)
}
