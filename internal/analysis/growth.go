// internal/analysis/growth.go
// Package analysis derives empirical growth factors from benchmark
// measurement rows: the runtime multiplier between consecutive reference
// sizes, per pattern and algorithm, as a proxy for complexity class.
package analysis

import (
	"fmt"
	"math"

	"github.com/mwiater/sortbench/internal/bench"
	"github.com/mwiater/sortbench/internal/dataset"
)

// DefaultLadder is the reference size ladder used for growth comparison.
// All three points sit inside the small-size regime so every algorithm,
// quadratic included, has measurements there.
var DefaultLadder = []int{1000, 2000, 5000}

// GrowthRow holds the empirical runtime multiplier between two ladder sizes
// for one (pattern, algorithm) pair. Ratio is NaN when either side of the
// pair has no measurement.
type GrowthRow struct {
	Pattern   dataset.Pattern `json:"pattern"`
	Algorithm string          `json:"algorithm"`
	Pair      string          `json:"pair"`
	Ratio     float64         `json:"growth"`
}

// Analyze computes growth rows for every (pattern, algorithm) combination
// over consecutive ladder sizes. A missing measurement degrades only the
// pairs that touch it: the affected ratios come back NaN while every other
// combination stays numeric.
func Analyze(rows []bench.Row, ladder []int, patterns []dataset.Pattern, algorithms []string) []GrowthRow {
	if len(ladder) < 2 {
		return nil
	}

	var out []GrowthRow
	for _, pattern := range patterns {
		for _, algo := range algorithms {
			durations := make([]float64, len(ladder))
			for i, size := range ladder {
				durations[i] = minSeconds(rows, pattern, size, algo)
			}
			for i := 1; i < len(ladder); i++ {
				out = append(out, GrowthRow{
					Pattern:   pattern,
					Algorithm: algo,
					Pair:      PairLabel(ladder[i-1], ladder[i]),
					Ratio:     durations[i] / durations[i-1],
				})
			}
		}
	}
	return out
}

// minSeconds returns the smallest duration recorded for the cell, or NaN when
// no row matches. Taking the minimum again here keeps accidental duplicate
// rows from skewing a ratio.
func minSeconds(rows []bench.Row, pattern dataset.Pattern, size int, algorithm string) float64 {
	best := math.NaN()
	for _, r := range rows {
		if r.Pattern != pattern || r.Size != size || r.Algorithm != algorithm {
			continue
		}
		s := r.Seconds()
		if math.IsNaN(best) || s < best {
			best = s
		}
	}
	return best
}

// PairLabel renders a size pair as e.g. "1k→2k" or "1500→3000".
func PairLabel(a, b int) string {
	return fmt.Sprintf("%s→%s", shortSize(a), shortSize(b))
}

func shortSize(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
