package sweep

import "github.com/hydrograph/hydrograph/metrics"

// Option configures optional ambient behaviour for Run. The zero value of
// every option is a no-op, so Run(...) with no options behaves exactly as it
// did before this type existed.
type Option func(*runConfig)

type runConfig struct {
	metrics *metrics.Collectors
	op      string
}

// WithMetrics wires mc's ObserveSweep instrument into Run, labelled by op
// (the kernel verb name, e.g. "accumulate") and the pass's Direction. mc may
// be nil (metrics.New(nil)'s result), in which case the recording call is a
// no-op -- see package metrics.
func WithMetrics(mc *metrics.Collectors, op string) Option {
	return func(c *runConfig) { c.metrics = mc; c.op = op }
}
