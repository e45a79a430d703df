package raster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/hydrograph/raster"
)

func TestDecodeD8LinearChain(t *testing.T) {
	// 1x3 row: cell0 -> east -> cell1 -> east -> cell2 (sink).
	data := []byte{6, 6, 5}
	up, down, mask, err := raster.DecodeD8(data, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1}, up)
	require.Equal(t, []int32{1, 2}, down)
	require.Equal(t, []bool{true, true, true}, mask)
}

func TestDecodeD8MissingTargetPromotedToSink(t *testing.T) {
	// cell0 drains east into a missing cell: cell0 must not appear upstream.
	data := []byte{6, 255, 5}
	up, down, mask, err := raster.DecodeD8(data, 1, 3)
	require.NoError(t, err)
	require.Empty(t, up)
	require.Empty(t, down)
	require.Equal(t, []bool{true, false, true}, mask)
}

func TestDecodeD8RejectsBadCode(t *testing.T) {
	data := []byte{0, 5, 5}
	_, _, _, err := raster.DecodeD8(data, 1, 3)
	require.ErrorIs(t, err, raster.ErrBadEncoding)
}

func TestDecodeD8RejectsShapeMismatch(t *testing.T) {
	_, _, _, err := raster.DecodeD8([]byte{5, 5}, 2, 2)
	require.ErrorIs(t, err, raster.ErrShapeMismatch)
}

// TestDecodeD8ScenarioA is the spec's worked example (4 rows x 5 cols):
//
//	2 2 2 1 1
//	2 2 2 1 1
//	3 2 1 4 4
//	6 5 4 4 4
//
// It exercises vertical drainage (codes 1/2/3 move a row south, 7/8/9 a row
// north) that the purely-horizontal fixtures above never touch.
func TestDecodeD8ScenarioA(t *testing.T) {
	data := []byte{
		2, 2, 2, 1, 1,
		2, 2, 2, 1, 1,
		3, 2, 1, 4, 4,
		6, 5, 4, 4, 4,
	}
	const height, width = 4, 5
	const n = height * width

	up, down, mask, err := raster.DecodeD8(data, height, width)
	require.NoError(t, err)
	for _, v := range mask {
		require.True(t, v) // no missing cells in this fixture
	}

	downstream := make([]int32, n)
	for i := range downstream {
		downstream[i] = n // sink sentinel
	}
	for p := range up {
		downstream[up[p]] = down[p]
	}

	expected := []int32{5, 6, 7, 7, 8, 10, 11, 12, 12, 13, 16, 16, 16, 12, 13, 16, 20, 16, 17, 18}
	require.Equal(t, expected, downstream)
}

// TestDecodeD8ClampsOutOfRangeRow exercises the clamp-to-sink policy: a
// northward drain off the top row has nowhere valid to go.
func TestDecodeD8ClampsOutOfRangeRow(t *testing.T) {
	data := []byte{8, 5} // cell0 code 8 (0,+1 numpad) drains north off row 0
	up, down, _, err := raster.DecodeD8(data, 1, 2)
	require.NoError(t, err)
	require.Empty(t, up)
	require.Empty(t, down)
}
