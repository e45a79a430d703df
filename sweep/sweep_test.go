package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/sweep"
)

type flatField struct {
	data []float64
}

func (f flatField) N() int         { return len(f.data) }
func (f flatField) BatchSize() int { return 1 }
func (f flatField) Row(int) []float64 { return f.data }

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

func TestRunForwardVisitsEveryGroupExceptSink(t *testing.T) {
	net := buildYShaped(t)
	data := make([]float64, net.N)
	for i := range data {
		data[i] = 1
	}

	var visited []int32
	sweep.Run[float64](net, flatField{data}, sweep.Forward, func(_ *network.Network, _ sweep.Field[float64], groupNodes []int32) {
		visited = append(visited, groupNodes...)
	})

	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4}, visited)
}

func TestRunReverseVisitsEveryGroupExceptSink(t *testing.T) {
	net := buildYShaped(t)
	data := make([]float64, net.N)

	var visited []int32
	sweep.Run[float64](net, flatField{data}, sweep.Reverse, func(_ *network.Network, _ sweep.Field[float64], groupNodes []int32) {
		visited = append(visited, groupNodes...)
	})

	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4}, visited)
}

func TestRunParallelReduceMatchesSequentialSum(t *testing.T) {
	net := buildYShaped(t)
	data := make([]float64, net.N)
	for i := range data {
		data[i] = 1
	}

	var seq []float64
	seq = append(seq, data...)
	sweep.Run[float64](net, flatField{seq}, sweep.Forward, func(_ *network.Network, _ sweep.Field[float64], groupNodes []int32) {
		for _, i := range groupNodes {
			d := net.Downstream[i]
			if int(d) == net.N {
				continue
			}
			seq[d] += seq[i]
		}
	})

	par := append([]float64(nil), data...)
	err := sweep.RunParallelReduce[float64](context.Background(), net, par, sweep.Forward, 0,
		func(dst, src float64) float64 { return dst + src },
		func(_ *network.Network, scratch []float64, chunk []int32) {
			for _, i := range chunk {
				d := net.Downstream[i]
				if int(d) == net.N {
					continue
				}
				scratch[d] += par[i]
			}
		}, 4)
	require.NoError(t, err)
	require.Equal(t, seq, par)
}
