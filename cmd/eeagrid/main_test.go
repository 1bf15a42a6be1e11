package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/eeagrid/errs"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(context.Background(), args, &out)

	return out.String(), err
}

func TestRun_Call(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"call", "EEA_CoordXY2GridNum", "5078600", "2871400"}, "23090257455218688\n"},
		{[]string{"call", "EEA_GridNum2CoordX", "23090257455218688"}, "5078600\n"},
		{[]string{"call", "eea_gridnum2coordy", "23090257455218688", "10000"}, "2870000\n"},
		{[]string{"call", "EEA_GridNumAt1km", "23090257455218688"}, "23090257448665088\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRun_CallErrors(t *testing.T) {
	_, err := runArgs(t, "call", "EEA_GridNum2CoordX", "1", "3")
	require.ErrorIs(t, err, errs.ErrInvalidResolution)

	_, err = runArgs(t, "call", "EEA_Nope")
	require.ErrorIs(t, err, errs.ErrUnknownFunction)

	_, err = runArgs(t, "call", "EEA_GridNumAt1km", "x")
	require.ErrorContains(t, err, "not a BIGINT")
}

func TestRun_Cell(t *testing.T) {
	out, err := runArgs(t, "cell", "23090257455218688", "10km")
	require.NoError(t, err)
	require.Contains(t, out, `"type": "Feature"`)
	require.Contains(t, out, `"code": "10kmE507N287"`)

	out, err = runArgs(t, "cell", "23090257455218688")
	require.NoError(t, err)
	require.Contains(t, out, `"code": "1kmE5078N2871"`)

	_, err = runArgs(t, "cell", "23090257455218688", "3")
	require.ErrorIs(t, err, errs.ErrInvalidResolution)
}

func TestRun_Reference(t *testing.T) {
	out, err := runArgs(t, "reference")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# DuckDB EEA Reference Grid Function Reference"))

	path := filepath.Join(t.TempDir(), "functions.md")
	out, err = runArgs(t, "reference", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "### EEA_GridNumAt10km")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"bogus"}, {"call"}, {"cell"}, {"reference", "-x"}} {
		_, err := runArgs(t, args...)
		require.ErrorIs(t, err, errUsage, "args %v", args)
	}
}
