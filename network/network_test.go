package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrograph/hydrograph/network"
)

// buildYShaped constructs the 6-node Y-shaped fixture used across the test
// suite: headwaters 0,1,2 feed 3/4, which join at the outlet 5 (a sink).
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

func TestBuildBasicInvariants(t *testing.T) {
	net := buildYShaped(t)
	require.Equal(t, 6, net.N)
	for i, d := range net.Downstream {
		require.NotEqual(t, int32(i), d, "no self-loop")
		require.LessOrEqual(t, d, int32(net.N))
	}
	require.ElementsMatch(t, []int32{0, 1, 2}, net.Sources)
	require.ElementsMatch(t, []int32{5}, net.Sinks)
	require.True(t, net.IsSink(5))
	require.False(t, net.IsSink(0))
}

func TestBuildRejectsSelfLoop(t *testing.T) {
	mask := []bool{true, true}
	_, err := network.Build([]int32{0}, []int32{0}, mask, [2]int{1, 2})
	require.Error(t, err)
}

func TestGroupsCoverEveryNodeExactlyOnce(t *testing.T) {
	net := buildYShaped(t)
	seen := make([]bool, net.N)
	for l := 0; l < net.NumGroups(); l++ {
		for _, i := range net.Group(l) {
			require.False(t, seen[i], "node %d visited twice", i)
			seen[i] = true
		}
	}
	for i, ok := range seen {
		require.True(t, ok, "node %d never grouped", i)
	}
}

func TestSinkGroupIsLast(t *testing.T) {
	net := buildYShaped(t)
	sinkGroup := net.Group(net.SinkGroupIndex())
	require.ElementsMatch(t, []int32{5}, sinkGroup)
}

func TestPredecessors(t *testing.T) {
	net := buildYShaped(t)
	backing, offsets := net.Predecessors()
	preds3 := backing[offsets[3]:offsets[4]]
	require.ElementsMatch(t, []int32{0, 1}, preds3)
	preds5 := backing[offsets[5]:offsets[6]]
	require.ElementsMatch(t, []int32{3, 4}, preds5)
}

func TestSubnetworkRecompute(t *testing.T) {
	net := buildYShaped(t)
	keep := make([]bool, net.N)
	keep[0] = true
	keep[3] = true
	keep[5] = true

	sub, err := net.Subnetwork(keep, true)
	require.NoError(t, err)
	require.Equal(t, 3, sub.N)
	require.Len(t, sub.Sinks, 1)
}
