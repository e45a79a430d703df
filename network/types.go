package network

// Network is the immutable, frozen result of building a river network from a
// decoded raster drainage encoding (see package raster) or a precomputed
// blob (see package netio). All exported fields are read-only by convention;
// nothing in this package mutates a Network after Build returns it.
//
// Field semantics (spec invariants):
//   - Downstream[i] is in [0, N) or equals N (meaning sink); never i.
//   - Level[i] is the longest-path distance from any source to i, except
//     sinks, which share the single terminal level SinkLevel.
//   - GroupBacking/GroupOffsets partition [0, N) by Level: the contiguous
//     slice GroupBacking[GroupOffsets[l]:GroupOffsets[l+1]] holds, in
//     ascending node-id order, every node at level l.
type Network struct {
	N int

	Downstream []int32
	Sinks      []int32
	Sources    []int32

	Level     []int32
	SinkLevel int32

	GroupBacking []int32
	GroupOffsets []int32

	// Mask is the 2-D domain shape with exactly N true entries in row-major
	// order matching node numbering. Nil for networks built without a 2-D
	// domain (e.g. a hand-built test fixture or a recomputed subnetwork that
	// dropped shape tracking).
	Mask      []bool
	MaskShape [2]int
}

// NumGroups reports the number of distinct levels, including the sinks'
// terminal level.
func (n *Network) NumGroups() int {
	if len(n.GroupOffsets) == 0 {
		return 0
	}
	return len(n.GroupOffsets) - 1
}

// Group returns the ascending-id slice of nodes at level l. Panics if l is
// out of range, matching Go slice-indexing conventions rather than returning
// an error for a programmer mistake.
func (n *Network) Group(l int) []int32 {
	return n.GroupBacking[n.GroupOffsets[l]:n.GroupOffsets[l+1]]
}

// SinkGroupIndex returns the index into Groups/GroupOffsets holding the sink
// level -- always the last group, by construction (§4.4 invariant).
func (n *Network) SinkGroupIndex() int {
	return n.NumGroups() - 1
}

// IsSink reports whether node i has no downstream successor.
func (n *Network) IsSink(i int32) bool {
	return n.Downstream[i] == int32(n.N)
}
