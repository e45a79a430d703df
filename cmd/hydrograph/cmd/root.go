package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hydrograph/hydrograph/metrics"
)

var (
	verbose     bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "hydrograph",
	Short: "Grouped-sweep river-network field operator CLI",
	Long: `hydrograph decodes a drainage raster into a Network, caches the
result, and runs flow accumulation against it. No other field operator
is exposed as a command.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (disabled if empty)")

	rootCmd.Example = `  # Decode a D8 raster and cache the built network
  hydrograph decode --format d8 --height 4 --width 4 drainage.d8 network.bin

  # Run flow accumulation over a cached network
  hydrograph accumulate --op sum network.bin field.bin

  # Same, with Prometheus instrumentation exposed on :9090/metrics
  hydrograph --metrics-addr :9090 accumulate --op sum network.bin field.bin`
}

// collectors returns the process-wide metrics.Collectors for this invocation:
// nil (no-op) unless --metrics-addr was set, in which case a registry is
// created and served over HTTP for the lifetime of the command.
func collectors() *metrics.Collectors {
	if metricsAddr == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	mc := metrics.New(reg)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(metricsAddr, mux); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "metrics: server on %s stopped: %v\n", metricsAddr, err)
		}
	}()
	return mc
}
