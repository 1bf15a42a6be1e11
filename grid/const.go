package grid

import "github.com/arloliu/eeagrid/format"

// Slot weights, 16^slot. Slot 13 is the X millions digit, slot 0 the Y ones digit.
const (
	p13 int64 = 1 << 52
	p12 int64 = 1 << 48
	p11 int64 = 1 << 44
	p10 int64 = 1 << 40
	p9  int64 = 1 << 36
	p8  int64 = 1 << 32
	p7  int64 = 1 << 28
	p6  int64 = 1 << 24
	p5  int64 = 1 << 20
	p4  int64 = 1 << 16
	p3  int64 = 1 << 12
	p2  int64 = 1 << 8
	p1  int64 = 1 << 4
	p0  int64 = 1
)

const (
	digitMask = 0x0f
	maxDigit  = 9
)

// Truncation masks. Each keeps the slots whose place value is at or above the
// named resolution. Bits 60-63 are always cleared.
const (
	Mask10m    int64 = 0x0FFFFFFFFFFFFF00
	Mask100m   int64 = 0x0FFFFFFFFFFF0000 // 1152921504606781440
	Mask1km    int64 = 0x0FFFFFFFFF000000 // 1152921504590069760
	Mask10km   int64 = 0x0FFFFFFF00000000 // 1152921500311879680
	Mask100km  int64 = 0x0FFFFF0000000000
	Mask1000km int64 = 0x0FFF000000000000
)

// MaxCoordinate is the largest per-axis value that round-trips through the codec.
const MaxCoordinate int64 = 9_999_999

// slot pairs a nibble divisor with the decimal place value it carries.
type slot struct {
	divisor int64
	place   int64
}

// Slots ordered by decreasing significance.
var (
	slotsX = [7]slot{
		{p13, 1_000_000},
		{p11, 100_000},
		{p9, 10_000},
		{p7, 1_000},
		{p5, 100},
		{p3, 10},
		{p1, 1},
	}

	slotsY = [7]slot{
		{p12, 1_000_000},
		{p10, 100_000},
		{p8, 10_000},
		{p6, 1_000},
		{p4, 100},
		{p2, 10},
		{p0, 1},
	}
)

var truncationMasks = map[format.Resolution]int64{
	format.Res10:      Mask10m,
	format.Res100:     Mask100m,
	format.Res1000:    Mask1km,
	format.Res10000:   Mask10km,
	format.Res100000:  Mask100km,
	format.Res1000000: Mask1000km,
}
