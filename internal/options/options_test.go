package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type columnSettings struct {
	encoding    string
	compression string
	bigEndian   bool
}

var errUnsupported = errors.New("unsupported compression")

func withCompression(name string) Option[*columnSettings] {
	return New(func(s *columnSettings) error {
		if name == "gzip" {
			return errUnsupported
		}
		s.compression = name

		return nil
	})
}

func withBigEndian() Option[*columnSettings] {
	return NoError(func(s *columnSettings) {
		s.bigEndian = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		s := &columnSettings{encoding: "delta"}
		err := Apply(s, withCompression("zstd"), withBigEndian(), withCompression("s2"))
		require.NoError(t, err)
		require.Equal(t, "s2", s.compression)
		require.True(t, s.bigEndian)
		require.Equal(t, "delta", s.encoding)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := &columnSettings{}
		err := Apply(s, withCompression("gzip"), withBigEndian())
		require.ErrorIs(t, err, errUnsupported)
		require.False(t, s.bigEndian)
	})

	t.Run("skips nil options", func(t *testing.T) {
		s := &columnSettings{}
		require.NoError(t, Apply(s, nil, withBigEndian()))
		require.True(t, s.bigEndian)
	})

	t.Run("no options", func(t *testing.T) {
		s := &columnSettings{encoding: "raw"}
		require.NoError(t, Apply(s))
		require.Equal(t, "raw", s.encoding)
	})
}
