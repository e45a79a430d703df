package kernel

import (
	"github.com/hydrograph/hydrograph/field"
	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/sweep"
)

// Accumulate implements the flow_downstream operator (spec.md §4.6): for
// every eligible pair (i, d=downstream[i]), field[d] := op(field[d], field[i]),
// op one of sum/product/max/min. Multiple nodes in the same group may share
// a target d; op is associative and commutative, so the order a sequential
// sweep happens to visit them in never changes the result -- the same
// property sweep.RunParallelReduce (via kernel.AccumulateParallel) relies on to
// split a group across goroutines safely.
//
// Missing-value discipline: unlike the original NumPy implementation's
// NaN-conversion trick (branch-eliminated to help vectorization, spec.md
// §4.6), a scalar Go loop gets no benefit from that rewrite, so Accumulate
// checks field.IsMissing directly at each write -- same asymptotic cost,
// one code path for every element type satisfying field.Numeric.
func Accumulate[T field.Numeric](net *network.Network, f field.Array[T], op Op, mv T, acceptMissing bool, opts ...sweep.Option) (field.Array[T], error) {
	if op != OpSum && op != OpProduct && op != OpMax && op != OpMin {
		return field.Array[T]{}, namedErr(ErrUnknownOp, opName(op))
	}
	if _, err := field.CheckMissing(f.Data, mv, acceptMissing); err != nil {
		return field.Array[T]{}, err
	}

	out := f.Clone()
	n := out.N()
	for b := 0; b < out.BatchSize(); b++ {
		row := out.Row(b)
		sweep.Run[T](net, rowField[T]{data: row, n: n}, sweep.Forward, func(net *network.Network, _ sweep.Field[T], groupNodes []int32) {
			for _, i := range groupNodes {
				d := net.Downstream[i]
				if int(d) == net.N {
					continue
				}
				missing := field.IsMissing(row[i], mv) || field.IsMissing(row[d], mv)
				row[d] = applyGeneric(op, row[d], row[i])
				if missing {
					row[d] = mv
				}
			}
		}, opts...)
	}
	return out, nil
}

// rowField adapts a single flat row ([]T of length n) to sweep.Field[T] so
// Accumulate (and the other kernels in this package) can sweep one batch
// row at a time while still sharing the single-pass sweep.Run engine.
type rowField[T any] struct {
	data []T
	n    int
}

func (r rowField[T]) N() int         { return r.n }
func (r rowField[T]) BatchSize() int { return 1 }
func (r rowField[T]) Row(b int) []T  { return r.data }

// MoveDownstream implements move_downstream: writes into a fresh output of
// zeros, out[d] := op(out[d], field[i]) for every node i with a successor.
// Multiple sources sharing a target are combined with op; OpSum (the zero
// value of Op) sums them.
func MoveDownstream[T field.Numeric](net *network.Network, f field.Array[T], op Op, opts ...sweep.Option) field.Array[T] {
	out := f.Zeros()
	n := out.N()
	for b := 0; b < out.BatchSize(); b++ {
		src := f.Row(b)
		dst := out.Row(b)
		sweep.Run[T](net, rowField[T]{data: dst, n: n}, sweep.Forward, func(net *network.Network, _ sweep.Field[T], groupNodes []int32) {
			for _, i := range groupNodes {
				d := net.Downstream[i]
				if int(d) == net.N {
					continue
				}
				dst[d] = applyGeneric(op, dst[d], src[i])
			}
		}, opts...)
	}
	return out
}

// MoveUpstream implements move_upstream: out[i] := field[downstream[i]] for
// every non-sink i; sinks are left at the zero value (mv is the caller's
// responsibility to apply afterward via the field adapter, matching the
// teacher's pattern of leaving zero-value semantics to the shape adapter
// rather than baking mv into every kernel).
func MoveUpstream[T field.Numeric](net *network.Network, f field.Array[T]) field.Array[T] {
	// Every node reads only its own downstream neighbour's value, so unlike
	// every other kernel here there is no inter-node write dependency at
	// all -- no group ordering is required, and a single flat pass over all
	// N nodes suffices regardless of topology.
	out := f.Zeros()
	for b := 0; b < out.BatchSize(); b++ {
		src := f.Row(b)
		dst := out.Row(b)
		for i := 0; i < net.N; i++ {
			d := net.Downstream[i]
			if int(d) == net.N {
				continue
			}
			dst[i] = src[d]
		}
	}
	return out
}

func applyGeneric[T field.Numeric](op Op, dst, src T) T {
	switch any(dst).(type) {
	case float64:
		return T(Apply(op, float64(dst), float64(src)))
	default:
		return T(ApplyInt64(op, int64(dst), int64(src)))
	}
}

func opName(op Op) string {
	switch op {
	case OpSum:
		return "sum"
	case OpProduct:
		return "product"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	case OpMean:
		return "mean"
	case OpVar:
		return "var"
	case OpStdev:
		return "stdev"
	default:
		return "unknown"
	}
}
