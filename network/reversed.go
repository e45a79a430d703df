package network

// Reversed builds an auxiliary network whose forward direction corresponds
// to the *predecessors* of the original network: node i's "downstream" in
// the reversed network is one of i's upstream neighbours in the original
// (arbitrarily picked when i has several; callers that need all
// predecessors, such as the streamorder kernel, should not rely on this
// single-successor view and instead walk Predecessors directly).
//
// The real purpose of Reversed is the spec.md §9 / §4.6 streamorder
// construction note: "resolved by constructing an auxiliary network with
// downstream replaced by a reversed adjacency ... traversed in the opposite
// direction -- never by mutating the original". Reversed never touches n; it
// returns an independent Network sharing n's Level/Groups (the grouping
// itself is unchanged -- only which array "downstream" points to changes).
// kernel.Streamorder does not call Reversed: it walks n.Predecessors for the
// actual multi-predecessor fan-in.
func (n *Network) Reversed() *Network {
	r := &Network{
		N:            n.N,
		Sinks:        n.Sources,
		Sources:      n.Sinks,
		Level:        n.Level,
		SinkLevel:    n.SinkLevel,
		GroupBacking: n.GroupBacking,
		GroupOffsets: n.GroupOffsets,
		Mask:         n.Mask,
		MaskShape:    n.MaskShape,
	}
	r.Downstream = make([]int32, n.N)
	hasPred := make([]bool, n.N)
	for i, d := range n.Downstream {
		if d == int32(n.N) {
			continue
		}
		r.Downstream[d] = int32(i)
		hasPred[d] = true
	}
	for i := range r.Downstream {
		if !hasPred[i] {
			r.Downstream[i] = int32(n.N)
		}
	}
	return r
}

// Predecessors returns, for every node, the list of nodes whose downstream
// is that node -- i.e. full fan-in, unlike the single-pick Downstream array
// Reversed() exposes. Built once per call; kernels that need it on every
// sweep (streamorder) should build it once and reuse it, not call this per
// group.
func (n *Network) Predecessors() (backing []int32, offsets []int32) {
	offsets = make([]int32, n.N+1)
	for _, d := range n.Downstream {
		if int(d) < n.N {
			offsets[d+1]++
		}
	}
	for i := 0; i < n.N; i++ {
		offsets[i+1] += offsets[i]
	}
	backing = make([]int32, offsets[n.N])
	cursor := append([]int32(nil), offsets[:n.N]...)
	for i, d := range n.Downstream {
		if int(d) < n.N {
			backing[cursor[d]] = int32(i)
			cursor[d]++
		}
	}
	return backing, offsets
}
