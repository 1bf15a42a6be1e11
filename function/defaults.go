package function

import (
	"sync"

	"github.com/arloliu/eeagrid/grid"
)

// Names of the default grid functions.
const (
	CoordXY2GridNum = "EEA_CoordXY2GridNum"
	GridNum2CoordX  = "EEA_GridNum2CoordX"
	GridNum2CoordY  = "EEA_GridNum2CoordY"
	GridNumAt100m   = "EEA_GridNumAt100m"
	GridNumAt1km    = "EEA_GridNumAt1km"
	GridNumAt10km   = "EEA_GridNumAt10km"
)

// Tags attached to every default function.
var defaultTags = []Tag{
	{Key: "ext", Value: "eeagrid"},
	{Key: "category", Value: "scalar"},
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c := NewCatalog()
	RegisterDefaults(c)

	return c
})

// Default returns the shared catalog holding the EEA_* grid functions.
func Default() *Catalog {
	return defaultCatalog()
}

// RegisterDefaults registers the EEA_* grid functions into c.
// It panics if any of them is already registered.
func RegisterDefaults(c *Catalog) {
	c.MustRegister(Scalar{
		Name:        CoordXY2GridNum,
		Description: "Returns the EEA Reference Grid code to a given XY coordinate (EPSG:3035).",
		Example:     "SELECT EEA_CoordXY2GridNum(5078600, 2871400); -> 23090257455218688",
		Signatures: []Signature{
			bigint(func(a []int64) (int64, error) { return grid.Encode(a[0], a[1]), nil }, "x", "y"),
		},
		Tags: defaultTags,
	})

	c.MustRegister(Scalar{
		Name: GridNum2CoordX,
		Description: "Returns the X-coordinate (EPSG:3035) of the grid cell corresponding to a given EEA Reference " +
			"Grid code, optionally truncating the value to a specified resolution.",
		Example: "SELECT EEA_GridNum2CoordX(23090257455218688); -> 5078600",
		Signatures: []Signature{
			bigint(func(a []int64) (int64, error) { return grid.DecodeX(a[0]), nil }, "grid_num"),
			bigint(func(a []int64) (int64, error) { return grid.DecodeXAt(a[0], a[1]) }, "grid_num", "resolution"),
		},
		Tags: defaultTags,
	})

	c.MustRegister(Scalar{
		Name: GridNum2CoordY,
		Description: "Returns the Y-coordinate (EPSG:3035) of the grid cell corresponding to a given EEA Reference " +
			"Grid code, optionally truncating the value to a specified resolution.",
		Example: "SELECT EEA_GridNum2CoordY(23090257455218688); -> 2871400",
		Signatures: []Signature{
			bigint(func(a []int64) (int64, error) { return grid.DecodeY(a[0]), nil }, "grid_num"),
			bigint(func(a []int64) (int64, error) { return grid.DecodeYAt(a[0], a[1]) }, "grid_num", "resolution"),
		},
		Tags: defaultTags,
	})

	c.MustRegister(Scalar{
		Name:        GridNumAt100m,
		Description: "Returns the Grid code at 100 m resolution given an EEA reference Grid code.",
		Example:     "SELECT EEA_GridNumAt100m(23090257455218688); -> 23090257455218688",
		Signatures:  []Signature{unary(grid.At100m)},
		Tags:        defaultTags,
	})

	c.MustRegister(Scalar{
		Name:        GridNumAt1km,
		Description: "Returns the Grid code at 1 km resolution given an EEA reference Grid code.",
		Example:     "SELECT EEA_GridNumAt1km(23090257455218688); -> 23090257448665088",
		Signatures:  []Signature{unary(grid.At1km)},
		Tags:        defaultTags,
	})

	c.MustRegister(Scalar{
		Name:        GridNumAt10km,
		Description: "Returns the Grid code at 10 km resolution given an EEA reference Grid code.",
		Example:     "SELECT EEA_GridNumAt10km(23090257455218688); -> 23090255284404224",
		Signatures:  []Signature{unary(grid.At10km)},
		Tags:        defaultTags,
	})
}

// bigint builds a signature whose parameters and result are all BIGINT.
func bigint(impl Impl, names ...string) Signature {
	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Param{Name: name, Type: TypeBigInt}
	}

	return Signature{Params: params, Return: TypeBigInt, Impl: impl}
}

func unary(f func(int64) int64) Signature {
	return bigint(func(a []int64) (int64, error) { return f(a[0]), nil }, "grid_num")
}
