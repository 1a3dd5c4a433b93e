// internal/cli/run.go
package sortbench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/sortbench/internal/analysis"
	"github.com/mwiater/sortbench/internal/bench"
	"github.com/mwiater/sortbench/internal/logging"
	"github.com/mwiater/sortbench/internal/report"
	"github.com/mwiater/sortbench/internal/sortalgo"
)

var runOpts struct {
	smallSizes []int
	largeSizes []int
	patterns   []string
	repeats    int
	reportsDir string
}

// runCmd executes the full benchmark matrix and writes the reports.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sorting benchmarks and write CSV + README reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		// Flags override the config file for this invocation only.
		if cmd.Flags().Changed("sizes") {
			cfg.SmallSizes = runOpts.smallSizes
		}
		if cmd.Flags().Changed("large-sizes") {
			cfg.LargeSizes = runOpts.largeSizes
		}
		if cmd.Flags().Changed("patterns") {
			cfg.Patterns = runOpts.patterns
		}
		if cmd.Flags().Changed("repeats") {
			cfg.Repeats = runOpts.repeats
		}
		if cmd.Flags().Changed("reports-dir") {
			cfg.ReportsDir = runOpts.reportsDir
		}

		runner, err := bench.NewRunner(cfg)
		if err != nil {
			return err
		}

		outdir := cfg.ReportsPath()
		if err := os.MkdirAll(outdir, 0o755); err != nil {
			return fmt.Errorf("create reports directory: %w", err)
		}

		color.Cyan("Running benchmarks (repeats=%d)...", cfg.RepeatCount())
		rows, err := runner.Run()
		if err != nil {
			return err
		}
		logging.LogEvent("[RUN] collected %d measurement rows (%s)", len(rows), report.SummaryCounts(rows))

		resultsPath := filepath.Join(outdir, report.ResultsFileName)
		if err := report.WriteResultsCSV(rows, resultsPath); err != nil {
			return err
		}
		color.Green("✓ Results: %s", resultsPath)

		patterns, err := cfg.PatternList()
		if err != nil {
			return err
		}
		growth := analysis.Analyze(rows, analysis.DefaultLadder, patterns, algorithmNames())

		growthPath := filepath.Join(outdir, report.GrowthFileName)
		if err := report.WriteGrowthCSV(growth, growthPath); err != nil {
			return err
		}
		color.Green("✓ Growth factors: %s", growthPath)

		if !cfg.NoReadme {
			readme, err := report.RenderReadme(rows, growth, analysis.DefaultLadder)
			if err != nil {
				return err
			}
			readmePath := filepath.Join(outdir, "README.md")
			if err := os.WriteFile(readmePath, []byte(readme), 0o644); err != nil {
				return fmt.Errorf("write readme: %w", err)
			}
			color.Green("✓ Report: %s", readmePath)
		}

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), report.Summary(rows))
		return nil
	},
}

func algorithmNames() []string {
	var names []string
	for _, algo := range sortalgo.Registry() {
		names = append(names, algo.Name)
	}
	return names
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntSliceVar(&runOpts.smallSizes, "sizes", nil, "sizes measured by every algorithm")
	runCmd.Flags().IntSliceVar(&runOpts.largeSizes, "large-sizes", nil, "sizes measured only by non-quadratic algorithms")
	runCmd.Flags().StringSliceVar(&runOpts.patterns, "patterns", nil, "dataset patterns (random, sorted, reversed, nearly_sorted)")
	runCmd.Flags().IntVar(&runOpts.repeats, "repeats", 0, "trials per measurement; the minimum is kept")
	runCmd.Flags().StringVar(&runOpts.reportsDir, "reports-dir", "", "output directory for CSV and README reports")
}
