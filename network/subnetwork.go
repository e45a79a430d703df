package network

import "github.com/hydrograph/hydrograph/group"

// Subnetwork restricts the network to the subset of nodes where keep[i] is
// true, renumbering them densely and remapping Downstream accordingly (a
// node whose original downstream fell outside the kept set becomes a sink in
// the subnetwork). Supplemental relative to the distilled spec -- grounded on
// original_source/.../methods.py:create_subnetwork, dropped by the
// distillation but in scope since no Non-goal excludes it.
//
// If recompute is false (the common case -- subsetting along an
// already-known catchment boundary cannot introduce a node whose longest
// path grows, since no edges are added), the parent's levels are reused
// verbatim except that every subnetwork sink is pinned to the subnetwork's
// own terminal level. If recompute is true, toposort relabels the subnetwork
// from scratch -- required whenever keep does not correspond to a union of
// complete catchments, since then a formerly-interior node's longest path
// from a source can change.
func (n *Network) Subnetwork(keep []bool, recompute bool) (*Network, error) {
	renumber := make([]int32, n.N)
	var m int32
	for i := 0; i < n.N; i++ {
		if keep[i] {
			renumber[i] = m
			m++
		} else {
			renumber[i] = int32(n.N) // placeholder; corrected to M below
		}
	}
	M := m
	for i := 0; i < n.N; i++ {
		if !keep[i] {
			renumber[i] = M
		}
	}

	downstream := make([]int32, M)
	for i := 0; i < n.N; i++ {
		if !keep[i] {
			continue
		}
		d := n.Downstream[i]
		var md int32
		if int(d) == n.N || !keep[d] {
			md = M
		} else {
			md = renumber[d]
		}
		downstream[renumber[i]] = md
	}

	var sub *Network
	var err error
	if recompute {
		sub, err = buildFromDownstream(downstream, [2]int{}, nil)
		if err != nil {
			return nil, err
		}
	} else {
		level := make([]int32, M)
		var maxLevel int32
		for i := 0; i < n.N; i++ {
			if !keep[i] {
				continue
			}
			l := n.Level[i]
			level[renumber[i]] = l
			if downstream[renumber[i]] != M && l > maxLevel {
				maxLevel = l
			}
		}
		sinkLevel := maxLevel + 1
		for i := int32(0); i < M; i++ {
			if downstream[i] == M {
				level[i] = sinkLevel
			}
		}
		backingArr, offsets := group.Index(level, sinkLevel)

		notASource := make([]bool, M)
		var sinks, sources []int32
		for i, d := range downstream {
			if d == M {
				sinks = append(sinks, int32(i))
			} else {
				notASource[d] = true
			}
		}
		for i, flagged := range notASource {
			if !flagged {
				sources = append(sources, int32(i))
			}
		}

		sub = &Network{
			N:            int(M),
			Downstream:   downstream,
			Sinks:        sinks,
			Sources:      sources,
			Level:        level,
			SinkLevel:    sinkLevel,
			GroupBacking: backingArr,
			GroupOffsets: offsets,
		}
	}

	if n.Mask != nil {
		mask := make([]bool, len(n.Mask))
		maskedIdx := 0
		for k := range n.Mask {
			if !n.Mask[k] {
				continue
			}
			mask[k] = keep[maskedIdx]
			maskedIdx++
		}
		sub.Mask = mask
		sub.MaskShape = n.MaskShape
	}

	return sub, nil
}
