// Package sweep implements the single point of control for every field
// operator: the generic monotone pass over a Network's topological groups.
// Forward sweeps visit groups in increasing level order; reverse sweeps
// visit them in decreasing order. Both skip the sinks' terminal group,
// because forward kernels have nothing to write into past a sink and
// reverse kernels have already finalized every sink before the sweep starts
// (spec.md §4.5).
package sweep

import (
	"time"

	"github.com/hydrograph/hydrograph/network"
)

// Direction selects which way the engine walks the group table.
type Direction int

const (
	// Forward visits Groups[0..L-2] in increasing order (L-1 is sinks).
	Forward Direction = iota
	// Reverse visits Groups[L-2..0] in decreasing order.
	Reverse
)

// Kernel is the node-wise operation applied to every member of one group.
// It mutates f in place for the nodes in groupNodes; implementations must
// use unordered-accumulation semantics (associative, commutative reduction)
// for any write whose target index can be shared by multiple nodes in
// groupNodes -- the engine imposes no locking or ordering within a group.
type Kernel[T any] func(net *network.Network, f Field[T], groupNodes []int32)

// Field is the minimal surface sweep needs from a field array: row access
// per batch, so a kernel can broadcast over trailing axes without the
// engine itself knowing anything about field shape. field.Array[T]
// satisfies this directly.
type Field[T any] interface {
	N() int
	BatchSize() int
	Row(b int) []T
}

// Run executes one monotone pass of k over net in direction dir, against
// every batch row of f independently. Run has no in-place/copy option: k
// always mutates f directly, and Run never clones it. The kernels in package
// kernel clone their input (see field.Array.Clone) or write into a fresh
// array before sweeping, so a caller's own array is left untouched.
func Run[T any](net *network.Network, f Field[T], dir Direction, k Kernel[T], opts ...Option) {
	numGroups := net.NumGroups()
	if numGroups == 0 {
		return
	}

	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	sinkIdx := net.SinkGroupIndex()

	switch dir {
	case Forward:
		for l := 0; l < sinkIdx; l++ {
			k(net, f, net.Group(l))
		}
	case Reverse:
		for l := sinkIdx - 1; l >= 0; l-- {
			k(net, f, net.Group(l))
		}
	}

	cfg.metrics.ObserveSweep(cfg.op, directionLabel(dir), time.Since(start).Seconds())
}

func directionLabel(dir Direction) string {
	if dir == Reverse {
		return "reverse"
	}
	return "forward"
}
