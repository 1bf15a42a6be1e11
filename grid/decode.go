package grid

import "github.com/arloliu/eeagrid/format"

// DecodeX returns the X coordinate (EPSG:3035) of the lower-left corner of the
// cell identified by grid number g.
//
// Example:
//
//	grid.DecodeX(23090257455218688) // 5078600
func DecodeX(g int64) int64 {
	return decodeAxis(g, &slotsX, 1)
}

// DecodeY returns the Y coordinate (EPSG:3035) of the lower-left corner of the
// cell identified by grid number g.
//
// Example:
//
//	grid.DecodeY(23090257455218688) // 2871400
func DecodeY(g int64) int64 {
	return decodeAxis(g, &slotsY, 1)
}

// DecodeXAt returns the X coordinate of g truncated to resolution res.
//
// Only digits whose place value is at or above res contribute, so
// DecodeXAt(g, res) == DecodeX(g) / res * res for canonical grid numbers.
//
// Returns errs.ErrInvalidResolution when res is not a canonical resolution.
func DecodeXAt(g, res int64) (int64, error) {
	if err := format.Resolution(res).Validate(); err != nil {
		return 0, err
	}

	return decodeAxis(g, &slotsX, res), nil
}

// DecodeYAt returns the Y coordinate of g truncated to resolution res.
//
// Returns errs.ErrInvalidResolution when res is not a canonical resolution.
func DecodeYAt(g, res int64) (int64, error) {
	if err := format.Resolution(res).Validate(); err != nil {
		return 0, err
	}

	return decodeAxis(g, &slotsY, res), nil
}

// Decode returns both coordinates of g at full resolution.
func Decode(g int64) (x, y int64) {
	return DecodeX(g), DecodeY(g)
}

func decodeAxis(g int64, slots *[7]slot, res int64) int64 {
	var v int64
	for _, s := range slots {
		if res > s.place {
			break
		}
		v += extractClampedDigit(g, s.divisor) * s.place
	}

	return v
}

// extractClampedDigit returns the nibble of g selected by divisor, clamped to 0-9.
//
// The nibble is isolated with signed truncating division, not a shift; the two
// differ for negative g.
func extractClampedDigit(g, divisor int64) int64 {
	d := (g / divisor) & digitMask
	if d > maxDigit {
		return maxDigit
	}

	return d
}
