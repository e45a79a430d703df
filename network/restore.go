package network

import "github.com/hydrograph/hydrograph/group"

// Restore reassembles a Network from its already-labelled parts -- the
// fields package netio persists to a blob -- skipping both the scatter pass
// in Build and the topological labelling in toposort.Label entirely. Only
// the group index is recomputed, since group.Index is a single O(N)
// counting sort and not worth the serialization cost of GroupBacking/
// GroupOffsets themselves.
//
// Callers are trusted to pass back exactly what a prior Build/buildFromDownstream
// produced; Restore does not re-validate downstream/level invariants the way
// Build does, since that validation already happened once when the blob was
// first constructed.
func Restore(n int, downstream, sinks, sources, level []int32, sinkLevel int32, maskShape [2]int, mask []bool) *Network {
	backing, offsets := group.Index(level, sinkLevel)
	return &Network{
		N:            n,
		Downstream:   downstream,
		Sinks:        sinks,
		Sources:      sources,
		Level:        level,
		SinkLevel:    sinkLevel,
		GroupBacking: backing,
		GroupOffsets: offsets,
		Mask:         mask,
		MaskShape:    maskShape,
	}
}
