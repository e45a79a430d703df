package kernel

import "github.com/hydrograph/hydrograph/network"

// Streamorder computes the Strahler stream order of every node (spec.md
// §4.6): a source (no predecessors) is order 1; any other node's order is
// the maximum order among its immediate predecessors, plus one if at least
// two predecessors tie at that maximum.
//
// Unlike the accumulate, move-downstream, catchment and length kernels in
// this package, Streamorder does not route
// through sweep.Run: it writes to the *current* node from its predecessors
// (already finalized, strictly lower level), not to a successor, so the
// sink group -- which sweep.Run always excludes, since forward kernels
// otherwise have nothing downstream to write into -- still needs its own
// order computed here too. The spec.md §9 design note describes this as
// running "on a reverse-flow auxiliary network so that predecessors-of-i
// become successors... and thus slot into the standard forward grouping";
// the outcome is equivalent without constructing a second Network, since
// Network.Predecessors already gives full fan-in and the levels guarantee
// every predecessor of i lies in a strictly earlier group than i.
func Streamorder(net *network.Network) []int32 {
	predBacking, predOffsets := net.Predecessors()
	order := make([]int32, net.N)

	numGroups := net.NumGroups()
	for l := 0; l < numGroups; l++ {
		for _, i := range net.Group(l) {
			preds := predBacking[predOffsets[i]:predOffsets[i+1]]
			if len(preds) == 0 {
				order[i] = 1
				continue
			}
			var maxOrder int32
			var tiesAtMax int
			for _, p := range preds {
				switch {
				case order[p] > maxOrder:
					maxOrder = order[p]
					tiesAtMax = 1
				case order[p] == maxOrder:
					tiesAtMax++
				}
			}
			if tiesAtMax >= 2 {
				order[i] = maxOrder + 1
			} else {
				order[i] = maxOrder
			}
		}
	}
	return order
}
