// Package grid implements the EEA Reference Grid codec: a reversible mapping
// between planar EPSG:3035 XY coordinates and a packed 64-bit grid number.
//
// A grid number holds 14 decimal digits in 14 four-bit nibble slots. Slots
// alternate between the X and Y axis, from the millions digit at bits 52-55
// (X) and 48-51 (Y) down to the ones digit at bits 4-7 (X) and 0-3 (Y):
//
//	bit:   55..52 51..48 47..44 43..40  ...  7..4  3..0
//	digit: X 1e6  Y 1e6  X 1e5  Y 1e5   ...  X 1   Y 1
//
// For 5078600, 2871400 this gives 0x52087781640000 (23090257455218688).
//
// Because every decimal place occupies a whole byte (an X nibble and a Y
// nibble), coarsening a grid number to a resolution is a single bitwise AND,
// and numerically close grid numbers are spatially close cells.
//
// # Operations
//
//   - Encode: coordinates to grid number
//   - DecodeX, DecodeY: grid number to coordinates at full resolution
//   - DecodeXAt, DecodeYAt: grid number to coordinates at a resolution
//   - At100m, At1km, At10km, Truncate: grid number to a coarser grid number
//
// All functions are pure and safe for concurrent use.
//
// # Domain
//
// The codec round-trips exactly for 0 <= X, Y <= 9,999,999, which covers the
// whole extent of the reference grid. Negative coordinates are encoded with a
// signed millions digit and sign-multiplied lower digits, so their lower
// digits borrow across slot boundaries and do not decode back to the input.
// That behavior is kept as-is; callers must not rely on it.
//
// Decoding never fails on malformed input: nibbles holding 10-15 decode as 9.
package grid
