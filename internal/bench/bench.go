// internal/bench/bench.go
// Package bench orchestrates benchmark runs: it cross-products data patterns
// and sizes with the registered sorting algorithms and collects one
// measurement row per combination.
package bench

import (
	"fmt"

	"github.com/mwiater/sortbench/internal/appconfig"
	"github.com/mwiater/sortbench/internal/dataset"
	"github.com/mwiater/sortbench/internal/harness"
	"github.com/mwiater/sortbench/internal/logging"
	"github.com/mwiater/sortbench/internal/sortalgo"
)

// One fixed seed per size regime, not per size: datasets of different sizes
// within a regime share a seed but are not prefixes of one another.
const (
	smallSizeSeed = 123
	largeSizeSeed = 777
)

// Runner executes a benchmark run over a fixed configuration and algorithm
// registry. Runs are single-threaded on purpose: concurrent trials would
// contend for CPU and corrupt the minimum-duration signal.
type Runner struct {
	smallSizes []int
	largeSizes []int
	patterns   []dataset.Pattern
	repeats    int
	algorithms []sortalgo.Algorithm
}

// NewRunner builds a Runner from the application configuration and the
// default algorithm registry. The configuration is validated up front so a
// bad pattern or size never aborts a half-finished run.
func NewRunner(cfg *appconfig.Config) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	patterns, err := cfg.PatternList()
	if err != nil {
		return nil, err
	}
	return &Runner{
		smallSizes: cfg.SmallSizeList(),
		largeSizes: cfg.LargeSizeList(),
		patterns:   patterns,
		repeats:    cfg.RepeatCount(),
		algorithms: sortalgo.Registry(),
	}, nil
}

// Run executes the full benchmark matrix and returns its measurement rows in
// deterministic order: pattern-major, then size, then algorithm registration
// order. Small sizes are measured by every algorithm; large sizes skip the
// quadratic ones by policy, not by failure.
func (r *Runner) Run() ([]Row, error) {
	var rows []Row
	for _, pattern := range r.patterns {
		for _, size := range r.smallSizes {
			cell, err := r.measureCell(pattern, size, smallSizeSeed, false)
			if err != nil {
				return nil, err
			}
			rows = append(rows, cell...)
		}
		for _, size := range r.largeSizes {
			cell, err := r.measureCell(pattern, size, largeSizeSeed, true)
			if err != nil {
				return nil, err
			}
			rows = append(rows, cell...)
		}
	}
	return rows, nil
}

// measureCell generates one dataset and measures every eligible algorithm
// against it. The dataset is generated exactly once and shared read-only so
// the algorithms see identical input; each trial sorts a private copy.
func (r *Runner) measureCell(pattern dataset.Pattern, size int, seed int64, skipQuadratic bool) ([]Row, error) {
	data, err := dataset.Generate(size, pattern, seed)
	if err != nil {
		return nil, fmt.Errorf("generate %s/%d: %w", pattern, size, err)
	}

	var rows []Row
	for _, algo := range r.algorithms {
		if skipQuadratic && algo.Quadratic {
			continue
		}
		elapsed, err := harness.Measure(algo, data, r.repeats)
		if err != nil {
			return nil, fmt.Errorf("measure %s on %s/%d: %w", algo.Name, pattern, size, err)
		}
		logging.LogEvent("[BENCH] pattern=%s n=%d algorithm=%s min=%s", pattern, size, algo.Name, elapsed)
		rows = append(rows, Row{
			Pattern:   pattern,
			Size:      size,
			Algorithm: algo.Name,
			Duration:  elapsed,
		})
	}
	return rows, nil
}
