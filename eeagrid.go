// Package eeagrid encodes EEA Reference Grid coordinates into compact 64-bit
// grid numbers and back.
//
// A grid number interleaves the decimal digits of an (x, y) coordinate pair in
// the ETRS89-LAEA projection (EPSG:3035) into fourteen 4-bit slots, most
// significant digit first, X before Y. Because the layout is positional, a
// grid number can be coarsened to a larger cell with a single bit mask, and
// sorting grid numbers groups neighbouring cells together.
//
// # Core Features
//
//   - Encode XY coordinates to a grid number and decode either axis back
//   - Decode at a bounded resolution (10 m up to 1000 km)
//   - Truncate grid numbers to 100 m, 1 km or 10 km cells (and every other
//     power of ten) without decoding
//   - Cell geometry and GeoJSON output via paulmach/orb
//   - A catalog of named EEA_* scalar functions with batch evaluation
//   - Compact binary columns of grid numbers (Raw or Delta, optional
//     Zstd, S2 or LZ4 compression, CRC32 checksums)
//
// # Basic Usage
//
//	g := eeagrid.Encode(5078600, 2871400) // 23090257455218688
//	x := eeagrid.DecodeX(g)               // 5078600
//	y, _ := eeagrid.DecodeYAt(g, 1000)    // 2871000
//	km := eeagrid.At1km(g)                // 23090257448665088
//
// Calling functions by name:
//
//	v, err := eeagrid.Functions().Call("EEA_GridNum2CoordX", g, 10000)
//
// Shipping a column of grid numbers:
//
//	data, _ := eeagrid.EncodeColumn(gridNums)
//	back, _ := eeagrid.DecodeColumn(data)
//
// # Package Structure
//
// This package provides top-level wrappers around the grid, function and
// column packages for the most common use cases. Use those packages directly
// for fine-grained control.
package eeagrid

import (
	"github.com/arloliu/eeagrid/column"
	"github.com/arloliu/eeagrid/format"
	"github.com/arloliu/eeagrid/function"
	"github.com/arloliu/eeagrid/grid"
)

var defaultColumnOptions = []column.Option{
	column.WithLittleEndian(),
	column.WithEncoding(format.TypeDelta),
	column.WithCompression(format.CompressionNone),
}

// Encode returns the grid number of the coordinate (x, y).
//
// Coordinates are expected in 0..9,999,999. Negative inputs are accepted but
// do not round trip.
func Encode(x, y int64) int64 {
	return grid.Encode(x, y)
}

// DecodeX returns the X coordinate stored in grid number g.
func DecodeX(g int64) int64 {
	return grid.DecodeX(g)
}

// DecodeY returns the Y coordinate stored in grid number g.
func DecodeY(g int64) int64 {
	return grid.DecodeY(g)
}

// DecodeXAt returns the X coordinate of g keeping only digits whose place
// value is at least res.
//
// Returns errs.ErrInvalidResolution unless res is 10, 100, 1000, 10000,
// 100000 or 1000000.
func DecodeXAt(g, res int64) (int64, error) {
	return grid.DecodeXAt(g, res)
}

// DecodeYAt is the Y axis counterpart of DecodeXAt.
func DecodeYAt(g, res int64) (int64, error) {
	return grid.DecodeYAt(g, res)
}

// At100m returns g truncated to its 100 m cell.
func At100m(g int64) int64 {
	return grid.At100m(g)
}

// At1km returns g truncated to its 1 km cell.
func At1km(g int64) int64 {
	return grid.At1km(g)
}

// At10km returns g truncated to its 10 km cell.
func At10km(g int64) int64 {
	return grid.At10km(g)
}

// CellOf returns the cell of resolution res containing the coordinate (x, y).
func CellOf(x, y int64, res format.Resolution) (grid.Cell, error) {
	return grid.NewCell(x, y, res)
}

// Functions returns the shared catalog of EEA_* scalar functions.
func Functions() *function.Catalog {
	return function.Default()
}

// EncodeColumn encodes grid numbers as a column frame.
//
// Defaults are little-endian, Delta encoding and no compression; opts are
// applied on top of them.
//
// Example:
//
//	data, err := eeagrid.EncodeColumn(gridNums,
//	    column.WithCompression(format.CompressionZstd),
//	)
func EncodeColumn(values []int64, opts ...column.Option) ([]byte, error) {
	allOpts := append(append([]column.Option{}, defaultColumnOptions...), opts...)
	return column.Encode(values, allOpts...)
}

// DecodeColumn decodes a column frame produced by EncodeColumn. The encoding,
// compression and byte order are read from the frame header.
func DecodeColumn(data []byte) ([]int64, error) {
	return column.Decode(data)
}
