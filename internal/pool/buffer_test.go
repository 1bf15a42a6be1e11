package pool

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_Reserve(t *testing.T) {
	b := NewBuffer(4)
	_, _ = b.Write([]byte{1, 2, 3})

	b.Reserve(1)
	require.Equal(t, 4, b.Cap())

	b.Reserve(10)
	require.Equal(t, 3+DefaultSize, b.Cap())
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())

	b.Reserve(2 * DefaultSize)
	require.GreaterOrEqual(t, b.Cap()-b.Len(), 2*DefaultSize)
}

func TestBuffer_ReserveLarge(t *testing.T) {
	b := NewBuffer(8 * DefaultSize)
	b.Extend(8 * DefaultSize)

	b.Reserve(1)
	require.Equal(t, 10*DefaultSize, b.Cap())
}

func TestBuffer_Extend(t *testing.T) {
	b := NewBuffer(2)
	_, _ = b.Write([]byte{9})

	window := b.Extend(16)
	require.Len(t, window, 16)
	require.Equal(t, 17, b.Len())
	require.Equal(t, byte(9), b.Bytes()[0])

	window[0] = 7
	require.Equal(t, byte(7), b.Bytes()[1])
}

func TestBuffer_AppendUvarint(t *testing.T) {
	b := NewBuffer(0)
	b.AppendUvarint(1)
	b.AppendUvarint(300)

	require.Equal(t, []byte{0x01, 0xac, 0x02}, b.Bytes())

	v, n := binary.Uvarint(b.Bytes()[1:])
	require.Equal(t, uint64(300), v)
	require.Equal(t, 2, n)

	b.Reset()
	require.Zero(t, b.Len())
	require.GreaterOrEqual(t, b.Cap(), 3)
}

func TestPool(t *testing.T) {
	p := New(16, 64)

	b := p.Get()
	require.NotNil(t, b)
	require.Zero(t, b.Len())
	require.Equal(t, 16, b.Cap())

	_, _ = b.Write([]byte{1, 2, 3})
	p.Put(b)
	p.Put(nil)
	p.Put(NewBuffer(128))

	again := p.Get()
	require.Zero(t, again.Len())
	require.LessOrEqual(t, again.Cap(), 64)
}

func TestColumnPool(t *testing.T) {
	b := Get()
	require.Zero(t, b.Len())
	require.GreaterOrEqual(t, b.Cap(), DefaultSize)
	Put(b)
}
