package function

import (
	"fmt"

	"github.com/arloliu/eeagrid/errs"
)

// Result holds the output of a batch evaluation. Values and Errors have one
// entry per input row; Values[i] is zero when Errors[i] is non-nil.
type Result struct {
	Values []int64
	Errors []error
}

// Len returns the number of rows.
func (r Result) Len() int {
	return len(r.Values)
}

// Failed returns the indexes of the rows that failed.
func (r Result) Failed() []int {
	var failed []int
	for i, err := range r.Errors {
		if err != nil {
			failed = append(failed, i)
		}
	}

	return failed
}

// OK reports whether every row succeeded.
func (r Result) OK() bool {
	for _, err := range r.Errors {
		if err != nil {
			return false
		}
	}

	return true
}

// Evaluate applies the named function row by row over columns, one column per
// argument. A row whose evaluation fails records its error in Result.Errors and
// does not stop the batch.
//
// Returns an error only for batch-level problems: unknown function, no overload
// with len(columns) arguments, or columns of different lengths.
func (c *Catalog) Evaluate(name string, columns ...[]int64) (Result, error) {
	fn, sig, err := c.Resolve(name, len(columns))
	if err != nil {
		return Result{}, err
	}

	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	for i, col := range columns {
		if len(col) != rows {
			return Result{}, fmt.Errorf("%w: column 0 has %d rows, column %d has %d",
				errs.ErrArgumentLengthMismatch, rows, i, len(col))
		}
	}

	res := Result{
		Values: make([]int64, rows),
		Errors: make([]error, rows),
	}

	args := make([]int64, len(columns))
	for row := range rows {
		for i, col := range columns {
			args[i] = col[row]
		}

		v, err := sig.Impl(args)
		if err != nil {
			res.Errors[row] = fmt.Errorf("%s: row %d: %w", fn.Name, row, err)
			continue
		}
		res.Values[row] = v
	}

	return res, nil
}
