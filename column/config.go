package column

import (
	"fmt"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
	"github.com/arloliu/eeagrid/internal/options"
)

// Config holds the encoding settings of a column frame.
type Config struct {
	Encoding    format.EncodingType
	Compression format.CompressionType
	BigEndian   bool
}

// Option configures column encoding.
type Option = options.Option[*Config]

// DefaultConfig returns delta encoding, no compression, little-endian.
func DefaultConfig() Config {
	return Config{
		Encoding:    format.TypeDelta,
		Compression: format.CompressionNone,
	}
}

// WithEncoding selects the payload encoding.
func WithEncoding(enc format.EncodingType) Option {
	return options.New(func(c *Config) error {
		switch enc {
		case format.TypeRaw, format.TypeDelta:
			c.Encoding = enc
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidEncoding, enc)
		}
	})
}

// WithCompression selects the payload compression.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.Compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
		}
	})
}

// WithLittleEndian writes header integers and raw values little-endian (default).
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.BigEndian = false
	})
}

// WithBigEndian writes header integers and raw values big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.BigEndian = true
	})
}

// WithConfig copies every setting from cfg.
func WithConfig(cfg Config) Option {
	return options.New(func(c *Config) error {
		if err := options.Apply(c, WithEncoding(cfg.Encoding), WithCompression(cfg.Compression)); err != nil {
			return err
		}
		c.BigEndian = cfg.BigEndian

		return nil
	})
}
