package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/eeagrid/errs"
	"github.com/arloliu/eeagrid/format"
)

func cellCode(c Cell) string {
	res := int64(c.resolution())
	return c.resolution().String() + "E" + strconv.FormatInt(c.X()/res, 10) + "N" + strconv.FormatInt(c.Y()/res, 10)
}

// ParseCode parses an EEA reference grid cell code such as "1kmE5078N2871"
// or "100mE50786N28714".
func ParseCode(code string) (Cell, error) {
	ei := strings.IndexByte(code, 'E')
	ni := strings.IndexByte(code, 'N')
	if ei <= 0 || ni <= ei+1 || ni == len(code)-1 {
		return Cell{}, fmt.Errorf("grid: malformed cell code %q", code)
	}

	res, err := format.ParseResolution(code[:ei])
	if err != nil {
		return Cell{}, err
	}

	east, err := strconv.ParseInt(code[ei+1:ni], 10, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("grid: malformed easting in %q: %w", code, err)
	}

	north, err := strconv.ParseInt(code[ni+1:], 10, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("grid: malformed northing in %q: %w", code, err)
	}

	limit := MaxCoordinate / int64(res)
	if east < 0 || north < 0 || east > limit || north > limit {
		return Cell{}, fmt.Errorf("%w: cell %q lies outside the grid", errs.ErrInvalidCoordinate, code)
	}

	return NewCell(east*int64(res), north*int64(res), res)
}
