package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrograph/hydrograph/netio"
	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/raster"
)

var (
	decodeFormat string
	decodeHeight int
	decodeWidth  int
)

var decodeCmd = &cobra.Command{
	Use:   "decode <raster-file> <network-out>",
	Short: "Decode a drainage raster and cache the built Network",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "d8", "raster encoding: d8|cama-downxy|cama-nextxy")
	decodeCmd.Flags().IntVar(&decodeHeight, "height", 0, "raster height in cells")
	decodeCmd.Flags().IntVar(&decodeWidth, "width", 0, "raster width in cells")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if decodeHeight <= 0 || decodeWidth <= 0 {
		return fmt.Errorf("decode: --height and --width must be positive")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("decode: read raster file: %w", err)
	}

	var upstream, downstream []int32
	var mask []bool

	switch decodeFormat {
	case "d8":
		upstream, downstream, mask, err = raster.DecodeD8(raw, decodeHeight, decodeWidth)
	case "cama-downxy":
		dx, dy, perr := decodeInt32Pairs(raw)
		if perr != nil {
			return perr
		}
		upstream, downstream, mask, err = raster.DecodeCaMaDownXY(dx, dy, decodeHeight, decodeWidth)
	case "cama-nextxy":
		nx, ny, perr := decodeInt32Pairs(raw)
		if perr != nil {
			return perr
		}
		upstream, downstream, mask, err = raster.DecodeCaMaNextXY(nx, ny, decodeHeight, decodeWidth)
	default:
		return fmt.Errorf("decode: unknown --format %q", decodeFormat)
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	net, err := network.Build(upstream, downstream, mask, [2]int{decodeHeight, decodeWidth}, network.WithMetrics(collectors()))
	if err != nil {
		return fmt.Errorf("decode: build network: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("decode: create output: %w", err)
	}
	defer out.Close()

	if err := netio.Save(out, net); err != nil {
		return fmt.Errorf("decode: save network: %w", err)
	}

	if verbose {
		fmt.Printf("decoded %s: %d nodes, %d groups\n", args[0], net.N, net.NumGroups())
	}
	return nil
}

// decodeInt32Pairs reads a raw file laid out as two consecutive int32
// arrays of equal length (dx then dy, or nextx then nexty) -- a minimal
// textual-free interchange format for this CLI's own demo purposes, not a
// format any upstream tool produces.
func decodeInt32Pairs(raw []byte) ([]int32, []int32, error) {
	if len(raw)%8 != 0 {
		return nil, nil, fmt.Errorf("decode: raw CaMa file length %d not a multiple of 8", len(raw))
	}
	n := len(raw) / 8
	a := make([]int32, n)
	b := make([]int32, n)
	for i := 0; i < n; i++ {
		a[i] = int32(le32(raw[i*4:]))
		b[i] = int32(le32(raw[n*4+i*4:]))
	}
	return a, b, nil
}

func le32(b []byte) int32 {
	return int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16 | int32(b[3])<<24
}
