// Package config loads runtime settings of the eeagrid binaries from the
// environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/arloliu/eeagrid/column"
	"github.com/arloliu/eeagrid/format"
	"github.com/joho/godotenv"
)

// Environment variables read by Parse.
const (
	EnvHTTPAddr          = "EEAGRID_HTTP_ADDR"
	EnvGinMode           = "EEAGRID_GIN_MODE"
	EnvColumnEncoding    = "EEAGRID_COLUMN_ENCODING"
	EnvColumnCompression = "EEAGRID_COLUMN_COMPRESSION"
)

const (
	DefaultHTTPAddr = "127.0.0.1:8080"
	DefaultGinMode  = "release"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	HTTPAddr          string
	GinMode           string
	ColumnEncoding    format.EncodingType
	ColumnCompression format.CompressionType
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		HTTPAddr:          DefaultHTTPAddr,
		GinMode:           DefaultGinMode,
		ColumnEncoding:    format.TypeDelta,
		ColumnCompression: format.CompressionNone,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then parses the environment. Missing files are
// ignored; variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return Parse(os.LookupEnv)
}

// Parse builds a Config from lookup. Unset or empty variables keep their
// default value.
func Parse(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if v, ok := get(lookup, EnvHTTPAddr); ok {
		cfg.HTTPAddr = v
	}

	if v, ok := get(lookup, EnvGinMode); ok {
		switch mode := strings.ToLower(v); mode {
		case "debug", "release", "test":
			cfg.GinMode = mode
		default:
			return Config{}, fmt.Errorf("%s: unsupported gin mode %q", EnvGinMode, v)
		}
	}

	if v, ok := get(lookup, EnvColumnEncoding); ok {
		enc, err := format.ParseEncodingType(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColumnEncoding, err)
		}
		cfg.ColumnEncoding = enc
	}

	if v, ok := get(lookup, EnvColumnCompression); ok {
		comp, err := format.ParseCompressionType(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColumnCompression, err)
		}
		cfg.ColumnCompression = comp
	}

	return cfg, nil
}

// ColumnOptions returns the column encoder options described by c.
func (c Config) ColumnOptions() []column.Option {
	return []column.Option{
		column.WithEncoding(c.ColumnEncoding),
		column.WithCompression(c.ColumnCompression),
	}
}

func get(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}
