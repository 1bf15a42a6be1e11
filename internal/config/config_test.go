package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/eeagrid/column"
	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(mapLookup(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, format.TypeDelta, cfg.ColumnEncoding)
	require.Equal(t, format.CompressionNone, cfg.ColumnCompression)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(mapLookup(map[string]string{
		EnvHTTPAddr:          ":9090",
		EnvGinMode:           "Debug",
		EnvColumnEncoding:    "raw",
		EnvColumnCompression: " zstd ",
	}))
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, format.TypeRaw, cfg.ColumnEncoding)
	require.Equal(t, format.CompressionZstd, cfg.ColumnCompression)
}

func TestParse_EmptyKeepsDefault(t *testing.T) {
	cfg, err := Parse(mapLookup(map[string]string{EnvHTTPAddr: "  ", EnvColumnEncoding: ""}))
	require.NoError(t, err)
	require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	require.Equal(t, format.TypeDelta, cfg.ColumnEncoding)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(mapLookup(map[string]string{EnvGinMode: "verbose"}))
	require.ErrorContains(t, err, EnvGinMode)

	_, err = Parse(mapLookup(map[string]string{EnvColumnEncoding: "gorilla"}))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = Parse(mapLookup(map[string]string{EnvColumnCompression: "gzip"}))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestParse_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EEAGRID_HTTP_ADDR=:7070\nEEAGRID_COLUMN_COMPRESSION=s2\n"), 0o600))

	env, err := godotenv.Read(path)
	require.NoError(t, err)

	cfg, err := Parse(mapLookup(env))
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTPAddr)
	require.Equal(t, format.CompressionS2, cfg.ColumnCompression)
}

func TestLoad(t *testing.T) {
	for _, key := range []string{EnvHTTPAddr, EnvGinMode, EnvColumnEncoding, EnvColumnCompression} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EEAGRID_GIN_MODE=test\nEEAGRID_COLUMN_ENCODING=raw\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "test", cfg.GinMode)
	require.Equal(t, format.TypeRaw, cfg.ColumnEncoding)
	require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
}

func TestColumnOptions(t *testing.T) {
	cfg := Default()
	cfg.ColumnEncoding = format.TypeRaw
	cfg.ColumnCompression = format.CompressionLZ4

	data, err := column.Encode([]int64{1, 2, 3}, cfg.ColumnOptions()...)
	require.NoError(t, err)

	h, err := column.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.TypeRaw, h.Encoding)
	require.Equal(t, format.CompressionLZ4, h.Compression)
}
