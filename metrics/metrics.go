// Package metrics wires optional Prometheus instrumentation into the engine.
// Grounded on rockstar-0000-aistore's direct github.com/prometheus/client_golang
// dependency (the pack's only Prometheus consumer); nothing here is specific
// to that repo's metric names since the pack never exercises the client
// beyond the dependency declaration, so the instruments themselves follow
// the upstream client_golang idiom (NewHistogram/NewHistogramVec/NewGauge +
// MustRegister) directly.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors bundles every instrument the engine reports against. A nil
// *Collectors (returned by New(nil)) makes every recording method a no-op,
// so hydro's public API stays usable with zero Prometheus wiring -- callers
// opt in by passing a real prometheus.Registerer.
type Collectors struct {
	buildDuration prometheus.Histogram
	sweepDuration *prometheus.HistogramVec
	networkNodes  prometheus.Gauge
}

// New registers the engine's instruments against reg and returns the
// resulting Collectors. reg may be nil, in which case New returns nil and
// every method on a nil *Collectors is a safe no-op.
func New(reg prometheus.Registerer) *Collectors {
	if reg == nil {
		return nil
	}
	c := &Collectors{
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hydrograph_build_duration_seconds",
			Help:    "Time spent building a Network from a raster decode through group indexing.",
			Buckets: prometheus.DefBuckets,
		}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hydrograph_sweep_duration_seconds",
			Help:    "Time spent executing one grouped-sweep operator call.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "direction"}),
		networkNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hydrograph_network_nodes",
			Help: "Node count (N) of the most recently built Network.",
		}),
	}
	reg.MustRegister(c.buildDuration, c.sweepDuration, c.networkNodes)
	return c
}

// ObserveBuild records the wall-clock duration of a network.Build call.
func (c *Collectors) ObserveBuild(seconds float64) {
	if c == nil {
		return
	}
	c.buildDuration.Observe(seconds)
}

// ObserveSweep records the wall-clock duration of one sweep.Run call,
// labelled by the kernel operator name and sweep direction.
func (c *Collectors) ObserveSweep(op, direction string, seconds float64) {
	if c == nil {
		return
	}
	c.sweepDuration.WithLabelValues(op, direction).Observe(seconds)
}

// SetNetworkNodes reports the node count of the currently active Network.
func (c *Collectors) SetNetworkNodes(n int) {
	if c == nil {
		return
	}
	c.networkNodes.Set(float64(n))
}
