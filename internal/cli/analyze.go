// internal/cli/analyze.go
package sortbench

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/sortbench/internal/analysis"
	"github.com/mwiater/sortbench/internal/report"
)

var analyzeOpts struct {
	inputPath  string
	outputPath string
}

// analyzeCmd recomputes growth factors from a previously written results CSV.
// Growth rows are always derived from measurement rows, never stored on their
// own, so re-running analysis on an old CSV is always safe.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Recompute growth factors from a benchmark results CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		input := analyzeOpts.inputPath
		if input == "" {
			input = filepath.Join(cfg.ReportsPath(), report.ResultsFileName)
		}

		rows, err := report.ReadResultsCSV(input)
		if err != nil {
			return err
		}

		patterns, err := cfg.PatternList()
		if err != nil {
			return err
		}
		growth := analysis.Analyze(rows, analysis.DefaultLadder, patterns, algorithmNames())

		output := analyzeOpts.outputPath
		if output == "" {
			output = filepath.Join(cfg.ReportsPath(), report.GrowthFileName)
		}
		if err := report.WriteGrowthCSV(growth, output); err != nil {
			return err
		}
		color.Green("✓ Growth factors: %s (%d rows from %d measurements)", output, len(growth), len(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeOpts.inputPath, "input", "", "results CSV to analyze (defaults to <reports>/"+report.ResultsFileName+")")
	analyzeCmd.Flags().StringVar(&analyzeOpts.outputPath, "output", "", "growth CSV to write (defaults to <reports>/"+report.GrowthFileName+")")
}
