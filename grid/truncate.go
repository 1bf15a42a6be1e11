package grid

import (
	"fmt"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
)

// At100m returns g coarsened to the 100 m grid.
//
// Example:
//
//	grid.At100m(23090257455218688) // 23090257455218688
func At100m(g int64) int64 {
	return g & Mask100m
}

// At1km returns g coarsened to the 1 km grid.
//
// Example:
//
//	grid.At1km(23090257455218688) // 23090257448665088
func At1km(g int64) int64 {
	return g & Mask1km
}

// At10km returns g coarsened to the 10 km grid.
//
// Example:
//
//	grid.At10km(23090257455218688) // 23090255284404224
func At10km(g int64) int64 {
	return g & Mask10km
}

// Truncate returns g with every slot finer than res cleared. The result is
// still a grid number and decodes to the lower-left corner of the coarser cell.
//
// Returns errs.ErrInvalidResolution when res is not a canonical resolution.
func Truncate(g int64, res format.Resolution) (int64, error) {
	mask, ok := truncationMasks[res]
	if !ok {
		return 0, res.Validate()
	}

	return g & mask, nil
}

// Parent returns the grid number of the cell one decimal level coarser than
// res that contains g, together with that coarser resolution.
//
// Returns errs.ErrInvalidResolution when res is not canonical or is already
// the coarsest resolution.
func Parent(g int64, res format.Resolution) (int64, format.Resolution, error) {
	if err := res.Validate(); err != nil {
		return 0, 0, err
	}

	if res == format.Res1000000 {
		return 0, 0, fmt.Errorf("%w: %s has no parent", errs.ErrInvalidResolution, res)
	}

	parent := res * 10
	pg, err := Truncate(g, parent)

	return pg, parent, err
}
