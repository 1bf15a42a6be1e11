package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/eeagrid/errs"
)

type (
	// Resolution is the smallest decimal place, in coordinate units (metres in
	// EPSG:3035), that is still significant in a grid cell.
	Resolution int64

	EncodingType    uint8
	CompressionType uint8
)

const (
	Res10      Resolution = 10      // Res10 keeps every digit down to the tens place.
	Res100     Resolution = 100     // Res100 is the 100 m grid.
	Res1000    Resolution = 1000    // Res1000 is the 1 km grid.
	Res10000   Resolution = 10000   // Res10000 is the 10 km grid.
	Res100000  Resolution = 100000  // Res100000 is the 100 km grid.
	Res1000000 Resolution = 1000000 // Res1000000 keeps only the millions digit.
)

const (
	TypeRaw   EncodingType = 0x1 // TypeRaw stores each grid number as a fixed 8-byte integer.
	TypeDelta EncodingType = 0x2 // TypeDelta stores zigzag varint deltas between consecutive values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Resolutions lists the canonical resolutions from finest to coarsest.
var Resolutions = [...]Resolution{Res10, Res100, Res1000, Res10000, Res100000, Res1000000}

// IsValid reports whether r is one of the canonical resolutions.
func (r Resolution) IsValid() bool {
	switch r {
	case Res10, Res100, Res1000, Res10000, Res100000, Res1000000:
		return true
	default:
		return false
	}
}

// Validate returns errs.ErrInvalidResolution when r is not canonical.
func (r Resolution) Validate() error {
	if !r.IsValid() {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidResolution, int64(r))
	}

	return nil
}

// Exponent returns the power of ten of r, e.g. 3 for Res1000.
// It returns -1 for non-canonical resolutions.
func (r Resolution) Exponent() int {
	for i, res := range Resolutions {
		if res == r {
			return i + 1
		}
	}

	return -1
}

func (r Resolution) String() string {
	switch r {
	case Res10:
		return "10m"
	case Res100:
		return "100m"
	case Res1000:
		return "1km"
	case Res10000:
		return "10km"
	case Res100000:
		return "100km"
	case Res1000000:
		return "1000km"
	default:
		return "Unknown"
	}
}

// ParseResolution parses either the numeric form ("1000") or the label form
// ("1km") of a canonical resolution.
func ParseResolution(s string) (Resolution, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, res := range Resolutions {
		if s == res.String() {
			return res, nil
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidResolution, s)
	}

	res := Resolution(n)
	if err := res.Validate(); err != nil {
		return 0, err
	}

	return res, nil
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// ParseEncodingType parses a case-insensitive encoding name.
func ParseEncodingType(s string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return TypeRaw, nil
	case "delta":
		return TypeDelta, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidEncoding, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, s)
	}
}
