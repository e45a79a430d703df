package network

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hydrograph/hydrograph/group"
	"github.com/hydrograph/hydrograph/toposort"
)

// Build renumbers the non-missing cells of a decoded raster (or any source
// producing the same contract -- see package raster) into a dense node space
// [0, N) and constructs the frozen Network: the downstream successor array,
// sources, sinks, topological levels and the group index.
//
// upstreamIdx/downstreamIdx are absolute (flattened, row-major) raster
// indices; missingMask is true for non-missing cells. maskShape is the
// original 2-D raster shape, used only to populate Network.Mask/MaskShape for
// later field adaptation -- pass [2]int{} if the caller has no 2-D shape
// (e.g. a synthetic test network).
//
// Build is infallible with respect to its own arithmetic but propagates
// ErrBadEncoding (self-loop or out-of-range successor produced by a corrupt
// decoder) and ErrCycleDetected (from the topological labeller) with
// index/axis context attached via github.com/pkg/errors.
func Build(upstreamIdx, downstreamIdx []int32, missingMask []bool, maskShape [2]int, opts ...Option) (*Network, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	if len(upstreamIdx) != len(downstreamIdx) {
		return nil, errors.Wrapf(ErrShapeMismatch, "upstreamIdx has %d entries, downstreamIdx has %d", len(upstreamIdx), len(downstreamIdx))
	}

	total := len(missingMask)
	renumber := make([]int32, total)
	var n int32
	for k := 0; k < total; k++ {
		if missingMask[k] {
			renumber[k] = n
			n++
		}
	}
	N := n
	for k := 0; k < total; k++ {
		if !missingMask[k] {
			renumber[k] = N
		}
	}

	downstream := make([]int32, N)
	for i := range downstream {
		downstream[i] = N
	}
	for p := range upstreamIdx {
		u := renumber[upstreamIdx[p]]
		d := renumber[downstreamIdx[p]]
		if u >= N {
			// The pair originates from a missing cell: not a node, ignore.
			continue
		}
		if u == d {
			return nil, errors.Wrapf(ErrBadEncoding, "self-loop at node %d", u)
		}
		if d > N {
			return nil, errors.Wrapf(ErrBadEncoding, "downstream target %d out of range for N=%d", d, N)
		}
		downstream[u] = d
	}

	net, err := buildFromDownstream(downstream, maskShape, missingMask)
	if err != nil {
		return nil, err
	}

	cfg.metrics.ObserveBuild(time.Since(start).Seconds())
	cfg.metrics.SetNetworkNodes(net.N)
	return net, nil
}

// buildFromDownstream finishes construction given a fully-renumbered
// downstream array: sinks/sources, topological labelling, and the group
// index. Shared by Build and by callers (netio, Subnetwork) that already
// have a dense downstream array and only need the derived structures.
func buildFromDownstream(downstream []int32, maskShape [2]int, missingMask []bool) (*Network, error) {
	N := int32(len(downstream))

	notASource := make([]bool, N)
	var sinks []int32
	for i, d := range downstream {
		if d == N {
			sinks = append(sinks, int32(i))
		} else {
			notASource[d] = true
		}
	}
	var sources []int32
	for i, flagged := range notASource {
		if !flagged {
			sources = append(sources, int32(i))
		}
	}

	level, sinkLevel, err := toposort.Label(downstream, N)
	if err != nil {
		return nil, errors.Wrap(err, "network: labelling")
	}

	backing, offsets := group.Index(level, sinkLevel)

	net := &Network{
		N:            int(N),
		Downstream:   downstream,
		Sinks:        sinks,
		Sources:      sources,
		Level:        level,
		SinkLevel:    sinkLevel,
		GroupBacking: backing,
		GroupOffsets: offsets,
	}
	if missingMask != nil {
		net.Mask = missingMask
		net.MaskShape = maskShape
	}
	return net, nil
}
