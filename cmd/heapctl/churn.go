package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joshuapare/gcheap/cmd/heapctl/logger"
	"github.com/joshuapare/gcheap/heap/alloc"
	"github.com/joshuapare/gcheap/internal/layout"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	churnCount   int
	churnSize    int
	churnAlign   int
	refreshEvery int
)

var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Run an allocation churn workload against a live arena",
	Long: `Allocate a stream of objects of a fixed size and alignment, optionally
collapsing the arena back to one block every N allocations, and report
throughput and footprint. Useful as an operational smoke test of block
replacement and refresh behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if churnSize < 1 {
			return fmt.Errorf("object size must be at least 1 byte, got %d", churnSize)
		}
		l, err := layout.New(churnSize, churnAlign)
		if err != nil {
			return err
		}

		arena := alloc.NewArena()
		defer arena.Close()
		a := alloc.New(arena)

		logger.Debug("churn starting", "count", churnCount, "size", churnSize, "align", churnAlign)

		start := time.Now()
		for i := 0; i < churnCount; i++ {
			p, err := a.Alloc(l)
			if err != nil {
				return fmt.Errorf("allocation %d: %w", i, err)
			}
			// Touch the object so the pages are really ours.
			*(*byte)(p) = byte(i)

			if refreshEvery > 0 && (i+1)%refreshEvery == 0 {
				if err := arena.Refresh(); err != nil {
					return fmt.Errorf("refresh after %d allocations: %w", i+1, err)
				}
				logger.Debug("arena refreshed", "after", i+1, "size", arena.Size())
			}
		}
		elapsed := time.Since(start)

		p := message.NewPrinter(language.English)
		rate := float64(churnCount) / elapsed.Seconds()

		printInfo("Churn complete:\n")
		printInfo("  allocations: %s in %s (%s/s)\n",
			p.Sprintf("%d", churnCount), elapsed.Round(time.Microsecond), p.Sprintf("%.0f", rate))
		printInfo("  arena size:  %s\n", humanize.IBytes(uint64(arena.Size())))
		printInfo("  outstanding: %d blocks, %d pooled\n",
			arena.Store().Outstanding(), arena.Store().FreeCount())
		return nil
	},
}

func init() {
	churnCmd.Flags().IntVarP(&churnCount, "count", "n", 100_000, "Number of allocations")
	churnCmd.Flags().IntVarP(&churnSize, "size", "s", 64, "Object size in bytes")
	churnCmd.Flags().IntVarP(&churnAlign, "align", "a", 8, "Object alignment (power of two)")
	churnCmd.Flags().IntVarP(&refreshEvery, "refresh-every", "r", 0, "Refresh the arena every N allocations (0 = never)")
	rootCmd.AddCommand(churnCmd)
}
