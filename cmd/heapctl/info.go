package main

import (
	"github.com/dustin/go-humanize"
	"github.com/joshuapare/gcheap/internal/layout"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the compiled heap geometry",
	Long: `Print the heap geometry this binary was compiled with: block and
region sizing, per-block reserve, and the size class boundaries.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := message.NewPrinter(language.English)

		printInfo("Heap geometry:\n")
		printInfo("  block size:        %s\n", humanize.IBytes(uint64(layout.BlockSize)))
		printInfo("  block capacity:    %s (reserve %s)\n",
			humanize.IBytes(uint64(layout.BlockCapacity)),
			humanize.IBytes(uint64(layout.LineSize)))
		printInfo("  blocks per region: %d\n", layout.BlocksPerRegion)
		printInfo("  region size:       %s\n", humanize.IBytes(uint64(layout.RegionSize)))
		printInfo("  max allocation:    %s bytes\n", p.Sprintf("%d", uint64(layout.MaxAllocSize)))

		printInfo("Size classes:\n")
		printInfo("  small:  1 .. %d bytes\n", layout.LineSize)
		printInfo("  medium: %d .. %d bytes\n", layout.LineSize+1, layout.BlockCapacity)
		printInfo("  large:  %d bytes and up (dedicated spans)\n", layout.BlockCapacity+1)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
