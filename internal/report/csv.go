// internal/report/csv.go
// Package report serializes benchmark output: CSV tables, a markdown summary,
// and a styled terminal view. The benchmark core defines the row schema; this
// package only encodes it.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mwiater/sortbench/internal/analysis"
	"github.com/mwiater/sortbench/internal/bench"
	"github.com/mwiater/sortbench/internal/dataset"
)

// ResultsFileName is the tabular export of measurement rows.
const ResultsFileName = "sort_bench_results.csv"

// GrowthFileName is the tabular export of growth-factor rows.
const GrowthFileName = "sort_growth_factors.csv"

var resultsHeader = []string{"pattern", "n", "algorithm", "time_sec"}
var growthHeader = []string{"pattern", "algorithm", "pair", "growth"}

// WriteResultsCSV writes measurement rows to path in row order.
func WriteResultsCSV(rows []bench.Row, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results csv: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(resultsHeader); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Pattern.String(),
			strconv.Itoa(r.Size),
			r.Algorithm,
			strconv.FormatFloat(r.Seconds(), 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write results row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadResultsCSV loads measurement rows previously written by
// WriteResultsCSV, so growth analysis can run without re-benchmarking.
func ReadResultsCSV(path string) ([]bench.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read results csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("results csv %s is empty", path)
	}

	var rows []bench.Row
	for i, record := range records[1:] {
		if len(record) != len(resultsHeader) {
			return nil, fmt.Errorf("results csv row %d: want %d fields, got %d", i+2, len(resultsHeader), len(record))
		}
		pattern, err := dataset.ParsePattern(record[0])
		if err != nil {
			return nil, fmt.Errorf("results csv row %d: %w", i+2, err)
		}
		size, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("results csv row %d: bad size %q", i+2, record[1])
		}
		seconds, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("results csv row %d: bad duration %q", i+2, record[3])
		}
		rows = append(rows, bench.Row{
			Pattern:   pattern,
			Size:      size,
			Algorithm: record[2],
			Duration:  time.Duration(seconds * float64(time.Second)),
		})
	}
	return rows, nil
}

// WriteGrowthCSV writes growth-factor rows to path. NaN ratios are written
// literally as "NaN": a missing measurement is expected degraded data, not a
// serialization failure.
func WriteGrowthCSV(growth []analysis.GrowthRow, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create growth csv: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(growthHeader); err != nil {
		return fmt.Errorf("write growth header: %w", err)
	}
	for _, g := range growth {
		record := []string{
			g.Pattern.String(),
			g.Algorithm,
			g.Pair,
			strconv.FormatFloat(g.Ratio, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write growth row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
