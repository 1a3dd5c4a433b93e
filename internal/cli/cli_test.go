// internal/cli/cli_test.go
package sortbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/sortbench/internal/report"
)

// chdirTemp moves the test into a temp dir so the run log and default config
// lookups never touch the repo tree.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	return tempDir
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRunCommandWritesReports(t *testing.T) {
	tempDir := chdirTemp(t)
	outdir := filepath.Join(tempDir, "out")

	execute(t, "run",
		"--sizes", "10,20",
		"--large-sizes", "50",
		"--patterns", "sorted",
		"--repeats", "1",
		"--reports-dir", outdir,
	)

	results, err := report.ReadResultsCSV(filepath.Join(outdir, report.ResultsFileName))
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	// 3 algorithms at two small sizes, 2 at the large one.
	if len(results) != 8 {
		t.Fatalf("got %d measurement rows, want 8", len(results))
	}

	if _, err := os.Stat(filepath.Join(outdir, report.GrowthFileName)); err != nil {
		t.Fatalf("growth csv missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outdir, "README.md")); err != nil {
		t.Fatalf("readme missing: %v", err)
	}
}

func TestRunCommandHonorsNoReadme(t *testing.T) {
	tempDir := chdirTemp(t)
	outdir := filepath.Join(tempDir, "out")

	execute(t, "run",
		"--sizes", "10",
		"--large-sizes", "50",
		"--patterns", "sorted",
		"--repeats", "1",
		"--reports-dir", outdir,
		"--noReadme",
	)

	if _, err := os.Stat(filepath.Join(outdir, "README.md")); !os.IsNotExist(err) {
		t.Fatalf("readme should not have been written: %v", err)
	}
}

func TestAnalyzeCommandFromCSV(t *testing.T) {
	tempDir := chdirTemp(t)

	input := filepath.Join(tempDir, "results.csv")
	content := "pattern,n,algorithm,time_sec\n" +
		"random,1000,Merge,0.01\n" +
		"random,2000,Merge,0.02\n" +
		"random,5000,Merge,0.08\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(tempDir, "growth.csv")
	execute(t, "analyze", "--input", input, "--output", output)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read growth csv: %v", err)
	}
	got := string(data)
	// 0.02/0.01 and 0.08/0.02 divide exactly in binary, so the ratios
	// serialize as bare integers.
	if !strings.Contains(got, "random,Merge,1k→2k,2\n") {
		t.Fatalf("missing merge growth row:\n%s", got)
	}
	if !strings.Contains(got, "random,Merge,2k→5k,4\n") {
		t.Fatalf("missing merge growth row:\n%s", got)
	}
	// Insertion has no measurements in the input, so its ratios are NaN.
	if !strings.Contains(got, "random,Insertion,1k→2k,NaN") {
		t.Fatalf("missing NaN insertion row:\n%s", got)
	}
}

func TestConfigCommandShowsDefaults(t *testing.T) {
	chdirTemp(t)

	out := execute(t, "config")
	if !strings.Contains(out, "Current configuration:") {
		t.Fatalf("missing configuration header:\n%s", out)
	}
	if !strings.Contains(out, "Repeats:     3") {
		t.Fatalf("missing default repeats:\n%s", out)
	}
}
