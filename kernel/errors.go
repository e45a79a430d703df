// Package kernel implements the node-wise bodies plugged into the sweep
// engine: accumulate, move, catchment/subcatchment fill, length, streamorder
// and the zonal reducer. Every kernel honours the unordered-accumulation
// contract sweep.Kernel documents -- writes to a shared target index are
// combined with an associative, commutative operator.
package kernel

import "errors"

// ErrUnknownOp indicates an Op value outside the supported set for the
// calling kernel (e.g. OpVar requested from Accumulate, which only makes
// sense as a single-pass zonal reduction, not a streaming accumulation).
var ErrUnknownOp = errors.New("kernel: unknown operator")
