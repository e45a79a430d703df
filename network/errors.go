// Package network defines the frozen, immutable river-network graph built
// from a decoded raster drainage encoding: node renumbering, the downstream
// successor array, sources/sinks, and the topological grouping used by the
// sweep engine.
//
// Error policy (mirrors the teacher's builder package):
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Construction wraps sentinels with github.com/pkg/errors for index/axis
//     context without losing errors.Is matching.
package network

import (
	"errors"

	"github.com/hydrograph/hydrograph/toposort"
)

// ErrBadEncoding indicates a downstream pointer outside [0, N] or a self-loop.
var ErrBadEncoding = errors.New("network: bad encoding")

// ErrShapeMismatch indicates the upstream and downstream index arrays passed
// to Build differ in length.
var ErrShapeMismatch = errors.New("network: shape mismatch")

// ErrCycleDetected is an alias of toposort.ErrCycleDetected so callers can
// check either sentinel with errors.Is against the same underlying error
// value; the topological labeller owns cycle detection, network only
// re-exports it for callers who otherwise have no reason to import toposort.
var ErrCycleDetected = toposort.ErrCycleDetected

// ErrEmptyNetwork names the zero-node condition. No function in this module
// returns it.
var ErrEmptyNetwork = errors.New("network: empty network")
