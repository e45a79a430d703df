package kernel

import (
	"context"
	"math"

	"github.com/hydrograph/hydrograph/field"
	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/sweep"
)

// accEntry is the scratch element AccumulateParallel folds chunk results
// into: the running op value plus a missing flag, since a write into a
// shared target must still force mv once any contributing source is
// missing, and sweep.RunParallelReduce's combine only ever sees pairs of
// scratch entries, never the source row directly.
type accEntry[T field.Numeric] struct {
	val     T
	missing bool
}

// AccumulateParallel is the opt-in data-parallel counterpart of Accumulate
// (spec.md §5's non-normative parallelism guidance, wired to a concrete
// primitive via sweep.RunParallelReduce): each group's node slice is split
// across workers goroutines, every goroutine folds its chunk into a private
// accEntry scratch buffer, and the chunks are combined back into the row
// sequentially once all goroutines in that group finish. Because op is
// associative and commutative and missing-forcing is itself an OR, the
// result is identical to Accumulate regardless of how a group's nodes were
// partitioned across goroutines.
//
// workers<=0 defers to runtime.GOMAXPROCS(0) (see sweep.RunParallelReduce).
// Only worthwhile for wide groups on expensive per-element kernels; for the
// simple arithmetic here the sequential Accumulate is usually faster, so
// this exists to demonstrate the idiom, not as the default entry point.
func AccumulateParallel[T field.Numeric](ctx context.Context, net *network.Network, f field.Array[T], op Op, mv T, acceptMissing bool, workers int) (field.Array[T], error) {
	if op != OpSum && op != OpProduct && op != OpMax && op != OpMin {
		return field.Array[T]{}, namedErr(ErrUnknownOp, opName(op))
	}
	if _, err := field.CheckMissing(f.Data, mv, acceptMissing); err != nil {
		return field.Array[T]{}, err
	}

	out := f.Clone()
	n := out.N()
	identity := accEntry[T]{val: T(Identity(op))}
	if _, isFloat := any(identity.val).(float64); !isFloat {
		// Identity's ±Inf has no int64 value; use the int64 extremes instead.
		lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
		switch op {
		case OpMax:
			identity.val = T(lo)
		case OpMin:
			identity.val = T(hi)
		}
	}

	combine := func(dst, src accEntry[T]) accEntry[T] {
		return accEntry[T]{val: applyGeneric(op, dst.val, src.val), missing: dst.missing || src.missing}
	}
	isMissing := func(e accEntry[T]) bool { return e.missing || field.IsMissing(e.val, mv) }

	for b := 0; b < out.BatchSize(); b++ {
		row := out.Row(b)
		entries := make([]accEntry[T], n)
		for i := range entries {
			entries[i] = accEntry[T]{val: row[i]}
		}
		k := func(net *network.Network, scratch []accEntry[T], chunk []int32) {
			for _, i := range chunk {
				d := net.Downstream[i]
				if int(d) == n {
					continue
				}
				missing := isMissing(entries[i]) || isMissing(entries[d])
				cur := scratch[d]
				cur.val = applyGeneric(op, cur.val, entries[i].val)
				cur.missing = cur.missing || missing
				scratch[d] = cur
			}
		}
		if err := sweep.RunParallelReduce[accEntry[T]](ctx, net, entries, sweep.Forward, identity, combine, k, workers); err != nil {
			return field.Array[T]{}, err
		}
		for i, e := range entries {
			if isMissing(e) {
				row[i] = mv
			} else {
				row[i] = e.val
			}
		}
	}
	return out, nil
}
