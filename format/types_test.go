package format

import (
	"testing"

	"github.com/arloliu/eeagrid/errs"
	"github.com/stretchr/testify/require"
)

func TestResolution_IsValid(t *testing.T) {
	for _, res := range Resolutions {
		require.True(t, res.IsValid(), "resolution %d", res)
		require.NoError(t, res.Validate())
	}

	for _, v := range []int64{0, 1, 7, 50, 999, 1001, 10000000, -10, 1<<32 + 10} {
		res := Resolution(v)
		require.False(t, res.IsValid(), "resolution %d", v)
		require.ErrorIs(t, res.Validate(), errs.ErrInvalidResolution)
	}
}

func TestResolution_Exponent(t *testing.T) {
	require.Equal(t, 1, Res10.Exponent())
	require.Equal(t, 3, Res1000.Exponent())
	require.Equal(t, 6, Res1000000.Exponent())
	require.Equal(t, -1, Resolution(7).Exponent())
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in   string
		want Resolution
	}{
		{"10", Res10},
		{"100m", Res100},
		{"1km", Res1000},
		{" 1KM ", Res1000},
		{"10000", Res10000},
		{"100km", Res100000},
		{"1000000", Res1000000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "7", "5km", "abc", "1e3"} {
		_, err := ParseResolution(in)
		require.ErrorIs(t, err, errs.ErrInvalidResolution, "input %q", in)
	}
}

func TestParseEncodingAndCompression(t *testing.T) {
	enc, err := ParseEncodingType("Delta")
	require.NoError(t, err)
	require.Equal(t, TypeDelta, enc)
	require.Equal(t, "Delta", enc.String())

	_, err = ParseEncodingType("gorilla")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	comp, err := ParseCompressionType("lz4")
	require.NoError(t, err)
	require.Equal(t, CompressionLZ4, comp)
	require.Equal(t, "LZ4", comp.String())

	comp, err = ParseCompressionType("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, comp)

	_, err = ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Equal(t, "Unknown", CompressionType(0).String())
}
