// Package errs defines the sentinel errors returned by eeagrid packages.
//
// Callers compare against these values with errors.Is; packages wrap them
// with additional context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec errors.
var (
	// ErrInvalidResolution is returned when a resolution is not one of
	// 10, 100, 1000, 10000, 100000 or 1000000.
	ErrInvalidResolution = errors.New("invalid resolution: must be a power of ten up to 1,000,000")

	// ErrInvalidCoordinate is returned when a coordinate falls outside the
	// extent the codec can represent.
	ErrInvalidCoordinate = errors.New("coordinate outside the grid extent")
)

// Function catalog errors.
var (
	ErrUnknownFunction        = errors.New("unknown function")
	ErrNoMatchingSignature    = errors.New("no matching function signature")
	ErrDuplicateFunction      = errors.New("function already registered")
	ErrDuplicateSignature     = errors.New("function signature already registered")
	ErrInvalidFunctionName    = errors.New("invalid function name")
	ErrHashCollision          = errors.New("function ID hash collision")
	ErrArgumentLengthMismatch = errors.New("argument columns have different lengths")
)

// Column format errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid column header size")
	ErrInvalidMagicNumber = errors.New("invalid column magic number")
	ErrInvalidHeaderFlags = errors.New("invalid column header flags")
	ErrInvalidEncoding    = errors.New("invalid column encoding")
	ErrInvalidCompression = errors.New("invalid column compression")
	ErrChecksumMismatch   = errors.New("column checksum mismatch")
	ErrTruncatedPayload   = errors.New("column payload truncated")
	ErrTooManyValues      = errors.New("column value count exceeds limit")
	ErrPayloadTooLarge    = errors.New("restored column payload exceeds limit")
)
