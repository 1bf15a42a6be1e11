// Package function exposes the grid codec as a catalog of named scalar
// functions, the way a host query engine sees them.
//
// Each function has one or more signatures (overloads distinguished by arity),
// a description, an example and tags. All arguments and results are BIGINT
// (int64). The default catalog registers the EEA_* functions:
//
//	EEA_CoordXY2GridNum(x, y)
//	EEA_GridNum2CoordX(grid_num [, resolution])
//	EEA_GridNum2CoordY(grid_num [, resolution])
//	EEA_GridNumAt100m(grid_num)
//	EEA_GridNumAt1km(grid_num)
//	EEA_GridNumAt10km(grid_num)
//
// Function names are case-insensitive.
//
// Batch evaluation applies a function row by row over argument columns. A row
// that fails records its error without affecting other rows:
//
//	res, err := function.Default().Evaluate("EEA_GridNum2CoordX", gridNums, resolutions)
//	for i := range res.Values {
//	    if res.Errors[i] != nil { ... }
//	}
package function
