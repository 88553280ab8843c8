package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
	"github.com/SeamusWaldron/cubecore/pkg/optimizer"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <moves>...",
	Short: "Shorten a move sequence",
	Long: `Shorten a move sequence with local rewrites: same-face folding,
inverse cancellation, reordering of opposite-face turns, wide-move fusion
and rotation cancellation.

Tokens that are not valid moves are passed through unchanged.

Usage:
  cubecore optimize "R R U U' R M'"
  cubecore optimize --json R U D U'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOptimize,
}

var optimizeJSON bool

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().BoolVar(&optimizeJSON, "json", false, "Print the report as JSON")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	report := newOptimizer().Analyze(movesFromArgs(args))

	if optimizeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(report)
	return nil
}

func printReport(r optimizer.Report) {
	fmt.Println(moveStyle.Render(joinMoves(r.Moves)))
	fmt.Println()
	fmt.Printf("HTM:       %s -> %s (saved %s, %s%% of original)\n",
		humanize.Comma(int64(r.Original.HTM)),
		humanize.Comma(int64(r.Optimized.HTM)),
		humanize.Comma(int64(r.Reduction)),
		humanize.FormatFloat("#,###.#", r.Efficiency*100))
	printMetric("QTM", r.Original.QTM, r.Optimized.QTM)
	printMetric("STM", r.Original.STM, r.Optimized.STM)
	printMetric("Rotations", r.Original.Rotations, r.Optimized.Rotations)

	if len(r.Unrecognized) > 0 {
		fmt.Println()
		fmt.Println(errorStyle.Render(fmt.Sprintf("Passed through %s unrecognized: %s",
			humanize.Comma(int64(len(r.Unrecognized))), joinMoves(r.Unrecognized))))
	}
}

func printMetric(name string, before, after int) {
	fmt.Printf("%-10s %s -> %s\n", name+":", humanize.Comma(int64(before)), humanize.Comma(int64(after)))
}

// printMetrics prints a single set of metrics.
func printMetrics(m notation.Metrics) {
	fmt.Printf("HTM %d  QTM %d  STM %d  rotations %d\n", m.HTM, m.QTM, m.STM, m.Rotations)
}
