package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestFunctionID_CaseInsensitive(t *testing.T) {
	want := ID("eea_coordxy2gridnum")
	require.Equal(t, want, FunctionID("EEA_CoordXY2GridNum"))
	require.Equal(t, want, FunctionID("eea_coordxy2gridnum"))
	require.NotEqual(t, FunctionID("EEA_GridNumAt1km"), FunctionID("EEA_GridNumAt10km"))
}
