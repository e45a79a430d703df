package raster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/hydrograph/raster"
)

func TestDecodeCaMaDownXYLinearChain(t *testing.T) {
	// 1x3 row: cell0 -> +1 col -> cell1 -> +1 col -> cell2 (sink).
	dx := []int32{1, 1, -999}
	dy := []int32{0, 0, 0}
	up, down, mask, err := raster.DecodeCaMaDownXY(dx, dy, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1}, up)
	require.Equal(t, []int32{1, 2}, down)
	require.Equal(t, []bool{true, true, true}, mask)
}

func TestDecodeCaMaDownXYClampsOutOfRangeRow(t *testing.T) {
	dx := []int32{0, -999}
	dy := []int32{-5, 0}
	up, down, _, err := raster.DecodeCaMaDownXY(dx, dy, 1, 2)
	require.NoError(t, err)
	require.Empty(t, up)
	require.Empty(t, down)
}

func TestDecodeCaMaDownXYMissing(t *testing.T) {
	dx := []int32{-9999, 0}
	dy := []int32{0, 0}
	_, _, mask, err := raster.DecodeCaMaDownXY(dx, dy, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, mask)
}

func TestDecodeCaMaDownXYRejectsShapeMismatch(t *testing.T) {
	_, _, _, err := raster.DecodeCaMaDownXY([]int32{0}, []int32{0, 0}, 1, 2)
	require.ErrorIs(t, err, raster.ErrShapeMismatch)
}

func TestDecodeCaMaNextXYLinearChain(t *testing.T) {
	// 1-based absolute coordinates: cell0(col1,row1) -> cell1(col2,row1) -> cell2(col3,row1), sink.
	nextX := []int32{2, 3, -9}
	nextY := []int32{1, 1, -9}
	up, down, mask, err := raster.DecodeCaMaNextXY(nextX, nextY, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1}, up)
	require.Equal(t, []int32{1, 2}, down)
	require.Equal(t, []bool{true, true, true}, mask)
}

func TestDecodeCaMaNextXYRejectsOutOfRangeTarget(t *testing.T) {
	nextX := []int32{99}
	nextY := []int32{1}
	_, _, _, err := raster.DecodeCaMaNextXY(nextX, nextY, 1, 1)
	require.ErrorIs(t, err, raster.ErrBadEncoding)
}
