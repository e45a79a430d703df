// Package toposort assigns every node of a river network its topological
// level -- the longest-path distance from any source -- and detects cycles.
// A forward sweep over nodes ordered by increasing level visits every
// predecessor of a node strictly before the node itself; a reverse sweep
// visits every successor strictly before the node. This is the only
// correctness property the sweep engine (package sweep) depends on.
package toposort

import "errors"

// ErrCycleDetected indicates the BFS-of-waves labeller did not terminate
// within N iterations, i.e. the downstream relation contains a cycle. No
// partial labelling is ever returned alongside this error.
var ErrCycleDetected = errors.New("toposort: cycle detected")
