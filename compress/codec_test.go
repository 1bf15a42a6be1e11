package compress

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/stretchr/testify/require"
)

// rawGridColumn returns n little-endian grid numbers of neighbouring 1 km cells.
func rawGridColumn(n int) []byte {
	buf := make([]byte, 0, n*8)
	base := uint64(23090257448665088)
	for i := range n {
		buf = binary.LittleEndian.AppendUint64(buf, base+uint64(i%10)<<28)
	}

	return buf
}

var allTypes = []format.CompressionType{
	format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
}

func TestLookup(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := Lookup(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}

	for _, ct := range []format.CompressionType{0, 0x5, 0xff} {
		_, err := Lookup(ct)
		require.ErrorIs(t, err, errs.ErrInvalidCompression, "type 0x%02x", uint8(ct))
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single": rawGridColumn(1),
		"small":  rawGridColumn(16),
		"large":  rawGridColumn(20000),
	}

	for _, ct := range allTypes {
		codec, err := Lookup(ct)
		require.NoError(t, err)

		for name, data := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.AppendCompressed(nil, data)
				require.NoError(t, err)

				restored, err := codec.AppendDecompressed(nil, compressed, MaxRestoredSize)
				require.NoError(t, err)
				require.Equal(t, data, restored)

				restored, err = codec.AppendDecompressed(nil, compressed, len(data))
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecs_AppendKeepsPrefix(t *testing.T) {
	data := rawGridColumn(64)
	prefix := []byte("frame header....")

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := Lookup(ct)
			require.NoError(t, err)

			out, err := codec.AppendCompressed(append([]byte(nil), prefix...), data)
			require.NoError(t, err)
			require.Equal(t, prefix, out[:len(prefix)])

			restored, err := codec.AppendDecompressed(append([]byte(nil), prefix...), out[len(prefix):], len(data))
			require.NoError(t, err)
			require.Equal(t, prefix, restored[:len(prefix)])
			require.Equal(t, data, restored[len(prefix):])
		})
	}
}

func TestCodecs_CompressRepetitiveColumn(t *testing.T) {
	data := rawGridColumn(20000)

	for _, ct := range allTypes[1:] {
		compressed, err := Compress(ct, data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/4, ct.String())

		restored, err := Decompress(ct, compressed)
		require.NoError(t, err)
		require.Equal(t, data, restored)
	}
}

func TestLZ4_GrowsFromBlockSize(t *testing.T) {
	// highly repetitive input restores to far more than 4x the block size
	data := make([]byte, 1<<16)

	compressed, err := LZ4Codec{}.AppendCompressed(nil, data)
	require.NoError(t, err)
	require.Less(t, 4*len(compressed), len(data))

	restored, err := LZ4Codec{}.AppendDecompressed(nil, compressed, MaxRestoredSize)
	require.NoError(t, err)
	require.Equal(t, data, restored)
}

func TestCodecs_RejectRestoredAboveLimit(t *testing.T) {
	data := make([]byte, 1<<16)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := Lookup(ct)
			require.NoError(t, err)

			compressed, err := codec.AppendCompressed(nil, data)
			require.NoError(t, err)

			_, err = codec.AppendDecompressed(nil, compressed, len(data)-1)
			require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

			restored, err := codec.AppendDecompressed(nil, compressed, len(data))
			require.NoError(t, err)
			require.Len(t, restored, len(data))
		})
	}
}

func TestS2_DeclaredLengthCheckedFirst(t *testing.T) {
	// declares 1 GiB restored, followed by two junk bytes
	block := append(binary.AppendUvarint(nil, 1<<30), 0, 0)

	_, err := S2Codec{}.AppendDecompressed(nil, block, 1<<20)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)

	_, err = Decompress(format.CompressionS2, block)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := Lookup(ct)
		require.NoError(t, err)

		restored, err := codec.AppendDecompressed(nil, nil, 0)
		require.NoError(t, err)
		require.Empty(t, restored)
	}

	out, err := LZ4Codec{}.AppendCompressed(nil, nil)
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = S2Codec{}.AppendCompressed(nil, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	_, err := Decompress(format.CompressionZstd, garbage)
	require.Error(t, err)

	// declares 16 restored bytes, then an incomplete copy tag
	_, err = Decompress(format.CompressionS2, []byte{0x10, 0xff, 0xee, 0xdd})
	require.Error(t, err)
}

func BenchmarkZstd_Compress(b *testing.B) {
	data := rawGridColumn(4096)
	dst := make([]byte, 0, len(data))
	for b.Loop() {
		_, _ = ZstdCodec{}.AppendCompressed(dst[:0], data)
	}
}
