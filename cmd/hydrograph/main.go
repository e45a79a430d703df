// Command hydrograph is a small batch/ops CLI over the hydro library:
// decode a raster drainage map, build (and cache) its Network, and run a
// field operator against a stored field. Purely illustrative -- hydro's
// public API never depends on this package.
package main

import "github.com/hydrograph/hydrograph/cmd/hydrograph/cmd"

func main() {
	cmd.Execute()
}
