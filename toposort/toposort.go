package toposort

// Label assigns every node its topological level via the "BFS-of-waves"
// algorithm: level[i] ends up equal to the length of the longest directed
// path from any source to i. Sinks (downstream[i] == n) are then segregated
// into a distinct terminal level one past the maximum non-sink level, so
// sinks always form the last group regardless of their path length -- this
// preserves the "apply then stop" semantics the accumulate kernel depends on.
//
// Complexity: O(N) iterations of the outer wave loop in the worst case (a
// single chain), each touching its frontier once. The frontier is not
// deduplicated, so total work is the sum over sources of their path lengths
// to a sink: O(N) for a single chain, up to O(N^2) when many sources feed one
// long chain. The frontier buffers themselves hold at most N entries each.
//
// Returns ErrCycleDetected if no terminating wave is found within n
// iterations -- the only way a downstream relation on n nodes can exhaust n
// waves without reaching a fixed point is a cycle.
func Label(downstream []int32, n int32) (level []int32, sinkLevel int32, err error) {
	level = make([]int32, n)
	if n == 0 {
		return level, 0, nil
	}

	notASource := make([]bool, n)
	for _, d := range downstream {
		if d != n {
			notASource[d] = true
		}
	}

	// visited tracks which nodes the wave pass actually reached, since
	// level[i]==0 is ambiguous between "a genuine source" and "never
	// touched because it sits on a cycle with no source to start a wave
	// from" (e.g. a pure cycle disjoint from every source).
	visited := make([]bool, n)
	frontier := make([]int32, 0, n)
	for i := int32(0); i < n; i++ {
		if !notASource[i] {
			visited[i] = true
			if d := downstream[i]; d != n {
				frontier = append(frontier, d)
			}
		}
	}

	next := make([]int32, 0, n)
	wave := int32(1)
	for len(frontier) > 0 {
		if wave > n {
			return nil, 0, ErrCycleDetected
		}
		next = next[:0]
		for _, i := range frontier {
			level[i] = wave // last write wins: the longest walk overwrites shorter ones
			visited[i] = true
			if d := downstream[i]; d != n {
				next = append(next, d)
			}
		}
		frontier, next = next, frontier
		wave++
	}

	for i := int32(0); i < n; i++ {
		if downstream[i] != n && !visited[i] {
			return nil, 0, ErrCycleDetected // unreachable from any source: lies on a cycle
		}
	}

	var maxLevel int32
	for i := int32(0); i < n; i++ {
		if downstream[i] == n {
			continue // sinks get their level assigned below, not from the wave pass
		}
		if level[i] > maxLevel {
			maxLevel = level[i]
		}
	}
	sinkLevel = maxLevel + 1
	for i := int32(0); i < n; i++ {
		if downstream[i] == n {
			level[i] = sinkLevel
		}
	}

	return level, sinkLevel, nil
}
