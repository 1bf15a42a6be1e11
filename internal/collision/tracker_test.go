package collision

import (
	"testing"

	"github.com/arloliu/eeagrid/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()
	require.Zero(t, tracker.Count())
	require.Empty(t, tracker.Names())

	require.NoError(t, tracker.Track("eea_gridnumat1km", 0x1))
	require.NoError(t, tracker.Track("eea_gridnumat10km", 0x2))
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"eea_gridnumat1km", "eea_gridnumat10km"}, tracker.Names())

	name, ok := tracker.Name(0x2)
	require.True(t, ok)
	require.Equal(t, "eea_gridnumat10km", name)

	_, ok = tracker.Name(0x3)
	require.False(t, ok)
}

func TestTracker_Rejections(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("eea_gridnum2coordx", 0xabc))

	err := tracker.Track("", 0x1)
	require.ErrorIs(t, err, errs.ErrInvalidFunctionName)

	err = tracker.Track("eea_gridnum2coordx", 0xabc)
	require.ErrorIs(t, err, errs.ErrDuplicateFunction)

	err = tracker.Track("eea_gridnum2coordy", 0xabc)
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.Contains(t, err.Error(), "0x0000000000000abc")

	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1))
	require.NoError(t, tracker.Track("b", 2))

	tracker.Reset()
	require.Zero(t, tracker.Count())
	require.NoError(t, tracker.Track("a", 1))
}
