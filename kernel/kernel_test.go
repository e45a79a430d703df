package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/hydrograph/field"
	"github.com/hydrograph/hydrograph/kernel"
	"github.com/hydrograph/hydrograph/network"
)

// buildYShaped matches the fixture used throughout the other package test
// suites: headwaters 0,1,2 feed 3/4, joined at outlet 5 (a sink).
func buildYShaped(t *testing.T) *network.Network {
	t.Helper()
	downstream := []int32{3, 3, 4, 5, 5, 6}
	mask := make([]bool, len(downstream))
	for i := range mask {
		mask[i] = true
	}
	n := int32(len(downstream))
	var upstream, pairs []int32
	for i := int32(0); i < n; i++ {
		if downstream[i] != n {
			upstream = append(upstream, i)
			pairs = append(pairs, downstream[i])
		}
	}
	net, err := network.Build(upstream, pairs, mask, [2]int{1, int(n)})
	require.NoError(t, err)
	return net
}

func TestAccumulateSum(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{1, 1, 1, 1, 1, 1})

	out, err := kernel.Accumulate(net, in, kernel.OpSum, math.NaN(), false)
	require.NoError(t, err)
	// node 3 receives from 0,1 plus its own unit: 1+1+1=3
	require.Equal(t, 3.0, out.Data[3])
	// node 4 receives from 2 plus its own unit: 1+1=2
	require.Equal(t, 2.0, out.Data[4])
	// node 5 (sink) receives from 3 and 4 plus its own unit: 3+2+1=6
	require.Equal(t, 6.0, out.Data[5])
}

func TestAccumulatePropagatesMissing(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{1, math.NaN(), 1, 1, 1, 1})

	out, err := kernel.Accumulate(net, in, kernel.OpSum, math.NaN(), true)
	require.NoError(t, err)
	require.True(t, math.IsNaN(out.Data[3]), "node 3 mixes a missing upstream source")
}

func TestAccumulateRejectsUnexpectedMissing(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{1, math.NaN(), 1, 1, 1, 1})

	_, err := kernel.Accumulate(net, in, kernel.OpSum, math.NaN(), false)
	require.ErrorIs(t, err, field.ErrUnexpectedMissing)
}

func TestAccumulateRejectsUnknownOp(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{1, 1, 1, 1, 1, 1})
	_, err := kernel.Accumulate(net, in, kernel.OpMean, math.NaN(), false)
	require.ErrorIs(t, err, kernel.ErrUnknownOp)
}

func TestMoveDownstreamSumsSharedTargets(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{10, 20, 30, 40, 50, 60})

	out := kernel.MoveDownstream(net, in, kernel.OpSum)
	require.Equal(t, 30.0, out.Data[3]) // 10 + 20
	require.Equal(t, 30.0, out.Data[4]) // 30
	require.Equal(t, 90.0, out.Data[5]) // 40 + 50
}

func TestMoveUpstream(t *testing.T) {
	net := buildYShaped(t)
	in := field.NewArray1D([]float64{10, 20, 30, 40, 50, 60})

	out := kernel.MoveUpstream(net, in)
	require.Equal(t, 40.0, out.Data[0]) // reads node 3
	require.Equal(t, 50.0, out.Data[2]) // reads node 4
	require.Equal(t, 0.0, out.Data[5])  // sink has no downstream to read
}

func TestCatchmentFillOverwrite(t *testing.T) {
	net := buildYShaped(t)
	const mv int64 = -1
	labels := field.NewArray1D([]int64{mv, mv, mv, mv, mv, 99})

	out := kernel.CatchmentFill(net, labels, mv, true)
	for i := 0; i < net.N; i++ {
		require.Equal(t, int64(99), out.Data[i])
	}
}

func TestCatchmentFillPreservesExistingLabels(t *testing.T) {
	net := buildYShaped(t)
	const mv int64 = -1
	// node 3 pre-labelled; find_subcatchments must not overwrite it even
	// though node 5's label would otherwise reach it.
	labels := field.NewArray1D([]int64{mv, mv, mv, 7, mv, 99})

	out := kernel.CatchmentFill(net, labels, mv, false)
	require.Equal(t, int64(7), out.Data[3])
	require.Equal(t, int64(7), out.Data[0]) // upstream of 3, inherits 3's label
	require.Equal(t, int64(99), out.Data[4])
}

func TestLengthShortestPath(t *testing.T) {
	net := buildYShaped(t)
	out, err := kernel.Length(net, []int32{0, 1, 2}, kernel.LengthConfig{Op: kernel.OpMin}, math.NaN())
	require.NoError(t, err)
	require.Equal(t, 1.0, out.Data[0])
	require.Equal(t, 2.0, out.Data[3]) // node 0's weight(1) + edge to 3(1)
	require.Equal(t, 3.0, out.Data[5])
}

func TestLengthRejectsReversePhaseWithMax(t *testing.T) {
	net := buildYShaped(t)
	_, err := kernel.Length(net, []int32{0}, kernel.LengthConfig{Op: kernel.OpMax, ReversePhase: true}, math.NaN())
	require.ErrorIs(t, err, kernel.ErrUnknownOp)
}

func TestStreamorder(t *testing.T) {
	net := buildYShaped(t)
	order := kernel.Streamorder(net)
	require.Equal(t, int32(1), order[0])
	require.Equal(t, int32(1), order[1])
	require.Equal(t, int32(1), order[2])
	require.Equal(t, int32(2), order[3]) // confluence of two order-1 tributaries
	require.Equal(t, int32(1), order[4]) // single predecessor, no bump
	require.Equal(t, int32(2), order[5]) // max(2,1), no tie, stays 2
}

func TestZonalReduceMean(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	labels := []int64{1, 1, 2, 2}

	out, err := kernel.ZonalReduce(values, labels, nil, kernel.OpMean, math.NaN())
	require.NoError(t, err)
	require.Equal(t, 15.0, out[1])
	require.Equal(t, 35.0, out[2])
}

func TestZonalReduceWeightedMean(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	labels := []int64{1, 1, 2, 2}
	weights := []float64{1, 3, 1, 1}

	out, err := kernel.ZonalReduce(values, labels, weights, kernel.OpMean, math.NaN())
	require.NoError(t, err)
	require.InDelta(t, 17.5, out[1], 1e-9)
	require.Equal(t, 35.0, out[2])
}

func TestZonalReduceRejectsNonNaNMissing(t *testing.T) {
	_, err := kernel.ZonalReduce([]float64{1, -9999}, []int64{1, 1}, nil, kernel.OpSum, -9999)
	require.ErrorIs(t, err, field.ErrUnsupportedMissingValue)
}
