package grid

import (
	"github.com/arloliu/eeagrid/format"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Cell is a square grid cell of a given resolution, addressed by its grid number.
//
// Coordinates are planar EPSG:3035 metres; no reprojection is performed.
// A Cell whose Resolution is not canonical, including the zero value, is
// treated as a full-resolution 10 m cell.
type Cell struct {
	GridNum    int64
	Resolution format.Resolution
}

func (c Cell) resolution() format.Resolution {
	if !c.Resolution.IsValid() {
		return format.Res10
	}

	return c.Resolution
}

// NewCell returns the cell of resolution res that contains x, y.
func NewCell(x, y int64, res format.Resolution) (Cell, error) {
	return FromGridNumber(Encode(x, y), res)
}

// FromGridNumber returns the cell of resolution res that contains grid number g.
// The stored grid number is truncated to res.
//
// Returns errs.ErrInvalidResolution when res is not canonical.
func FromGridNumber(g int64, res format.Resolution) (Cell, error) {
	tg, err := Truncate(g, res)
	if err != nil {
		return Cell{}, err
	}

	return Cell{GridNum: tg, Resolution: res}, nil
}

// X returns the X coordinate of the cell's lower-left corner.
func (c Cell) X() int64 {
	return decodeAxis(c.GridNum, &slotsX, int64(c.resolution()))
}

// Y returns the Y coordinate of the cell's lower-left corner.
func (c Cell) Y() int64 {
	return decodeAxis(c.GridNum, &slotsY, int64(c.resolution()))
}

// Origin returns the lower-left corner of the cell.
func (c Cell) Origin() orb.Point {
	return orb.Point{float64(c.X()), float64(c.Y())}
}

// Bound returns the cell's extent. Its side length equals the resolution.
func (c Cell) Bound() orb.Bound {
	origin := c.Origin()
	size := float64(c.resolution())

	return orb.Bound{
		Min: origin,
		Max: orb.Point{origin.X() + size, origin.Y() + size},
	}
}

// Center returns the center point of the cell.
func (c Cell) Center() orb.Point {
	return c.Bound().Center()
}

// Polygon returns the closed counter-clockwise ring of the cell's extent.
func (c Cell) Polygon() orb.Polygon {
	return c.Bound().ToPolygon()
}

// Contains reports whether the point x, y lies inside the cell or on its boundary.
func (c Cell) Contains(x, y int64) bool {
	return c.Bound().Contains(orb.Point{float64(x), float64(y)})
}

// Code returns the textual code of the cell as used by the EEA reference
// grid, e.g. "1kmE5078N2871".
func (c Cell) Code() string {
	return cellCode(c)
}

// Feature returns the cell as a GeoJSON polygon feature carrying the grid
// number, resolution and lower-left corner as properties.
func (c Cell) Feature() *geojson.Feature {
	f := geojson.NewFeature(c.Polygon())
	f.ID = c.GridNum
	f.Properties["grid_num"] = c.GridNum
	f.Properties["resolution"] = int64(c.resolution())
	f.Properties["code"] = c.Code()
	f.Properties["x"] = c.X()
	f.Properties["y"] = c.Y()

	return f
}

// Children returns the hundred cells one decimal level finer than c, ordered by
// grid number. It returns nil for the finest resolution.
func (c Cell) Children() []Cell {
	res := c.resolution()
	if res == format.Res10 {
		return nil
	}

	child := res / 10
	xo, yo := c.X(), c.Y()
	step := int64(child)

	cells := make([]Cell, 0, 100)
	for dx := int64(0); dx < 10; dx++ {
		for dy := int64(0); dy < 10; dy++ {
			cells = append(cells, Cell{
				GridNum:    Encode(xo+dx*step, yo+dy*step),
				Resolution: child,
			})
		}
	}

	return cells
}
