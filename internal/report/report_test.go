package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/sortbench/internal/analysis"
	"github.com/mwiater/sortbench/internal/bench"
	"github.com/mwiater/sortbench/internal/dataset"
)

func sampleRows() []bench.Row {
	return []bench.Row{
		{Pattern: dataset.Random, Size: 1000, Algorithm: "Insertion", Duration: 40 * time.Millisecond},
		{Pattern: dataset.Random, Size: 1000, Algorithm: "Merge", Duration: 10 * time.Millisecond},
		{Pattern: dataset.Random, Size: 2000, Algorithm: "Merge", Duration: 21 * time.Millisecond},
		{Pattern: dataset.Random, Size: 5000, Algorithm: "Merge", Duration: 58 * time.Millisecond},
	}
}

func TestResultsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ResultsFileName)
	rows := sampleRows()

	if err := WriteResultsCSV(rows, path); err != nil {
		t.Fatalf("WriteResultsCSV: %v", err)
	}
	got, err := ReadResultsCSV(path)
	if err != nil {
		t.Fatalf("ReadResultsCSV: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("round trip: got %d rows, want %d", len(got), len(rows))
	}
	for i, r := range got {
		w := rows[i]
		if r.Pattern != w.Pattern || r.Size != w.Size || r.Algorithm != w.Algorithm {
			t.Fatalf("row %d = %+v, want %+v", i, r, w)
		}
		if math.Abs(r.Seconds()-w.Seconds()) > 1e-9 {
			t.Fatalf("row %d duration = %v, want %v", i, r.Duration, w.Duration)
		}
	}
}

func TestResultsCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), ResultsFileName)
	if err := WriteResultsCSV(nil, path); err != nil {
		t.Fatalf("WriteResultsCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "pattern,n,algorithm,time_sec" {
		t.Fatalf("header = %q", got)
	}
}

func TestReadResultsCSVRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadResultsCSV(empty); err == nil {
		t.Fatalf("expected error for empty csv")
	}

	bad := filepath.Join(dir, "bad.csv")
	content := "pattern,n,algorithm,time_sec\nspiral,1000,Merge,0.5\n"
	if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadResultsCSV(bad); err == nil {
		t.Fatalf("expected error for unknown pattern")
	}
}

func TestWriteGrowthCSVEncodesNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), GrowthFileName)
	growth := []analysis.GrowthRow{
		{Pattern: dataset.Random, Algorithm: "Merge", Pair: "1k→2k", Ratio: 2.1},
		{Pattern: dataset.Random, Algorithm: "Insertion", Pair: "1k→2k", Ratio: math.NaN()},
	}
	if err := WriteGrowthCSV(growth, path); err != nil {
		t.Fatalf("WriteGrowthCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "random,Insertion,1k→2k,NaN") {
		t.Fatalf("NaN ratio not encoded literally:\n%s", content)
	}
	if !strings.HasPrefix(content, "pattern,algorithm,pair,growth") {
		t.Fatalf("missing growth header:\n%s", content)
	}
}

func TestRenderReadme(t *testing.T) {
	rows := sampleRows()
	growth := analysis.Analyze(rows, analysis.DefaultLadder, []dataset.Pattern{dataset.Random}, []string{"Insertion", "Merge", "Stdsort"})

	out, err := RenderReadme(rows, growth, analysis.DefaultLadder)
	if err != nil {
		t.Fatalf("RenderReadme: %v", err)
	}
	for _, want := range []string{
		"# Sorting benchmark",
		"| 1000 |",
		"0.0100",
		"| random | Merge |",
		"1k→2k",
		"NaN", // Insertion has no measurement past 1000
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("readme missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryCounts(t *testing.T) {
	rows := sampleRows()
	if got := SummaryCounts(rows); got != "random=4" {
		t.Fatalf("SummaryCounts = %q", got)
	}
	if got := SummaryCounts(nil); got != "" {
		t.Fatalf("SummaryCounts(nil) = %q, want empty", got)
	}
}

func TestSummaryContainsRows(t *testing.T) {
	out := Summary(sampleRows())
	for _, want := range []string{"PATTERN", "ALGORITHM", "random", "Merge", "1000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
