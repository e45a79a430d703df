package sweep

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hydrograph/hydrograph/network"
)

// ScratchKernel is Kernel restricted to a contiguous chunk of one group's
// node slice, writing only into its own private scratch buffer -- never the
// shared field -- so that RunParallelReduce can run many chunks
// concurrently with zero cross-goroutine writes, then fold the scratch
// buffers into the real field sequentially with combine. This is the
// concrete shape of spec.md §5's "non-normative" parallelism guidance: intra
// -group edges are pairwise non-conflicting in their *sources*, and the
// scatter-reduce primitive the guidance calls for is this chunk-private
// scratch + sequential combine.
type ScratchKernel[T any] func(net *network.Network, scratch []T, groupChunk []int32)

// RunParallelReduce partitions each visited group's node slice into up to
// workers contiguous chunks (workers<=0 defaults to runtime.GOMAXPROCS(0)),
// runs k concurrently over each chunk against its own private scratch buffer
// (pre-filled with identity), then folds every chunk's scratch into data
// with combine(dst, src) -- applied once per element, in chunk order, so
// combine need only be associative and commutative, matching the contract
// every kernel in package kernel already honours for same-target writes
// within a single sequential group.
//
// Groups themselves remain strictly sequential: only the chunks of one
// group's node slice run concurrently, never two different groups.
func RunParallelReduce[T any](ctx context.Context, net *network.Network, data []T, dir Direction, identity T, combine func(dst, src T) T, k ScratchKernel[T], workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	numGroups := net.NumGroups()
	if numGroups == 0 {
		return nil
	}
	sinkIdx := net.SinkGroupIndex()

	process := func(groupNodes []int32) error {
		if len(groupNodes) == 0 {
			return nil
		}
		chunks := partition(groupNodes, workers)
		scratches := make([][]T, len(chunks))

		g, ctx := errgroup.WithContext(ctx)
		for ci, chunk := range chunks {
			ci, chunk := ci, chunk
			scratch := make([]T, len(data))
			for i := range scratch {
				scratch[i] = identity
			}
			scratches[ci] = scratch
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				k(net, scratch, chunk)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, scratch := range scratches {
			for i, v := range scratch {
				if combine == nil {
					continue
				}
				data[i] = combine(data[i], v)
			}
		}
		return nil
	}

	switch dir {
	case Forward:
		for l := 0; l < sinkIdx; l++ {
			if err := process(net.Group(l)); err != nil {
				return err
			}
		}
	case Reverse:
		for l := sinkIdx - 1; l >= 0; l-- {
			if err := process(net.Group(l)); err != nil {
				return err
			}
		}
	}
	return nil
}

// partition splits nodes into up to workers contiguous, roughly equal
// chunks; a group smaller than workers simply gets fewer, non-empty chunks.
func partition[E any](nodes []E, workers int) [][]E {
	if workers > len(nodes) {
		workers = len(nodes)
	}
	if workers <= 0 {
		return nil
	}
	chunks := make([][]E, 0, workers)
	base := len(nodes) / workers
	rem := len(nodes) % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, nodes[start:start+size])
		start += size
	}
	return chunks
}
