package network

import "github.com/hydrograph/hydrograph/metrics"

// Option configures optional ambient behaviour for Build. The zero value of
// every option is a no-op, so Build(...) with no options behaves exactly as
// it did before this type existed.
type Option func(*buildConfig)

type buildConfig struct {
	metrics *metrics.Collectors
}

// WithMetrics wires mc's ObserveBuild/SetNetworkNodes instruments into Build.
// mc may be nil (metrics.New(nil)'s result), in which case the recording
// calls are no-ops -- see package metrics.
func WithMetrics(mc *metrics.Collectors) Option {
	return func(c *buildConfig) { c.metrics = mc }
}
