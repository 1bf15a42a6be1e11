package column

import (
	"slices"
	"testing"

	"github.com/arloliu/eeagrid/endian"
	"github.com/stretchr/testify/require"
)

func TestRawEncoder(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewRawEncoder(engine)
	defer enc.Finish()

	enc.Write(23090257455218688)
	enc.WriteSlice([]int64{-1, 0, 10})
	require.Equal(t, 4, enc.Len())
	require.Equal(t, 32, enc.Size())

	data := slices.Clone(enc.Bytes())
	dec := NewRawDecoder(engine)
	require.Equal(t, []int64{23090257455218688, -1, 0, 10}, slices.Collect(dec.All(data, 4)))
	require.Equal(t, []int64{23090257455218688, -1}, slices.Collect(dec.All(data, 2)))
	require.Len(t, slices.Collect(dec.All(data[:20], 4)), 2)

	v, ok := dec.At(data, 1, 4)
	require.True(t, ok)
	require.Equal(t, int64(-1), v)

	_, ok = dec.At(data, 4, 4)
	require.False(t, ok)
	_, ok = dec.At(data[:8], 2, 4)
	require.False(t, ok)

	enc.Finish()
	require.Zero(t, enc.Len())
	require.Zero(t, enc.Size())
}

func TestDeltaEncoder(t *testing.T) {
	enc := NewDeltaEncoder()
	defer enc.Finish()

	values := []int64{23090257448665088, 23090257448665089, 23090257448665104, 23090257448665088}
	enc.Write(values[0])
	enc.WriteSlice(values[1:])
	require.Equal(t, 4, enc.Len())

	// first value costs a full varint, the neighbours one byte each
	require.Equal(t, 8+1+1+1, enc.Size())

	data := slices.Clone(enc.Bytes())
	dec := NewDeltaDecoder()
	require.Equal(t, values, slices.Collect(dec.All(data, 4)))

	v, ok := dec.At(data, 2, 4)
	require.True(t, ok)
	require.Equal(t, values[2], v)

	_, ok = dec.At(data, -1, 4)
	require.False(t, ok)

	require.Equal(t, values[:1], slices.Collect(dec.All(data[:8], 4)))
}

func TestDeltaEncoder_WriteMatchesWriteSlice(t *testing.T) {
	values := clusteredGridNums()

	one := NewDeltaEncoder()
	defer one.Finish()
	for _, v := range values {
		one.Write(v)
	}

	bulk := NewDeltaEncoder()
	defer bulk.Finish()
	bulk.WriteSlice(values[:10])
	bulk.WriteSlice(values[10:])

	require.Equal(t, one.Bytes(), bulk.Bytes())
}
