package kernel

import (
	"math"

	"github.com/hydrograph/hydrograph/field"
	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/sweep"
)

// LengthConfig bundles compute_distance's per-call extras into a single
// value (spec.md §9's "bundle extras into a kernel-config" design note),
// rather than threading weights/direction flags positionally.
type LengthConfig struct {
	// Weights gives a per-node edge weight; nil means every node costs 1,
	// matching length's documented default.
	Weights []float64
	// Op selects OpMin (shortest path, the only op for which the optional
	// reverse phase is valid) or OpMax (longest path, forward-only).
	Op Op
	// ReversePhase runs the optional second phase after the forward sweep;
	// only meaningful (and only accepted) when Op is OpMin.
	ReversePhase bool
}

// Length computes compute_distance / length.min / length.max (spec.md §4.6,
// §6): every node in starts is initialised to its own weight, every other
// node to the operator's identity (+Inf for min, -Inf for max) ahead of a
// forward sweep that relaxes field[d] against field[i]+w[i]. With
// Op==OpMin, an optional reverse phase then relaxes field[i] against
// field[d]+w[i] -- a node can shortcut through a downstream neighbour that
// was itself reached from a different, shorter start.
//
// Nodes never reached by any start remain at the operator's identity and are
// reported as mv in the returned field.
func Length(net *network.Network, starts []int32, cfg LengthConfig, mv float64, opts ...sweep.Option) (field.Array[float64], error) {
	if cfg.Op != OpMin && cfg.Op != OpMax {
		return field.Array[float64]{}, namedErr(ErrUnknownOp, opName(cfg.Op))
	}
	if cfg.ReversePhase && cfg.Op != OpMin {
		return field.Array[float64]{}, namedErr(ErrUnknownOp, "reverse phase requires OpMin")
	}

	weight := func(i int32) float64 {
		if cfg.Weights == nil {
			return 1
		}
		return cfg.Weights[i]
	}

	identity := math.Inf(1)
	if cfg.Op == OpMax {
		identity = math.Inf(-1)
	}

	data := make([]float64, net.N)
	for i := range data {
		data[i] = identity
	}
	for _, s := range starts {
		data[s] = weight(s)
	}

	f := rowField[float64]{data: data, n: net.N}
	sweep.Run[float64](net, f, sweep.Forward, func(net *network.Network, _ sweep.Field[float64], groupNodes []int32) {
		for _, i := range groupNodes {
			d := net.Downstream[i]
			if int(d) == net.N {
				continue
			}
			candidate := data[i] + weight(i)
			if cfg.Op == OpMin {
				if candidate < data[d] {
					data[d] = candidate
				}
			} else if candidate > data[d] {
				data[d] = candidate
			}
		}
	}, opts...)

	if cfg.ReversePhase {
		sweep.Run[float64](net, f, sweep.Reverse, func(net *network.Network, _ sweep.Field[float64], groupNodes []int32) {
			for _, i := range groupNodes {
				d := net.Downstream[i]
				if int(d) == net.N {
					continue
				}
				candidate := data[d] + weight(i)
				if candidate < data[i] {
					data[i] = candidate
				}
			}
		}, opts...)
	}

	for i, x := range data {
		if math.IsInf(x, 0) {
			data[i] = mv
		}
	}

	return field.NewArray1D(data), nil
}
