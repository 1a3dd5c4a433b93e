package harness

import (
	"slices"
	"strings"
	"testing"

	"github.com/mwiater/sortbench/internal/sortalgo"
)

func TestMeasureReturnsDuration(t *testing.T) {
	data := []int{9, 3, 7, 1, 5}
	for _, algo := range sortalgo.Registry() {
		d, err := Measure(algo, data, 3)
		if err != nil {
			t.Fatalf("Measure(%s): %v", algo.Name, err)
		}
		if d <= 0 {
			t.Fatalf("Measure(%s) = %v, want positive duration", algo.Name, d)
		}
	}
}

func TestMeasureDoesNotMutateDataset(t *testing.T) {
	data := []int{9, 3, 7, 1, 5}
	before := slices.Clone(data)

	algo := sortalgo.Registry()[0]
	if _, err := Measure(algo, data, 3); err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if !slices.Equal(data, before) {
		t.Fatalf("dataset mutated across trials: %v", data)
	}
}

func TestMeasureRejectsNonPositiveRepeats(t *testing.T) {
	algo := sortalgo.Registry()[0]
	for _, repeats := range []int{0, -1} {
		if _, err := Measure(algo, []int{1}, repeats); err == nil {
			t.Fatalf("Measure with repeats=%d: expected error", repeats)
		}
	}
}

func TestMeasureRecoversPanic(t *testing.T) {
	broken := sortalgo.Algorithm{
		Name: "Broken",
		Sort: func(in []int) []int { panic("boom") },
	}
	_, err := Measure(broken, []int{3, 1, 2}, 2)
	if err == nil {
		t.Fatalf("expected error from panicking algorithm")
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Fatalf("error should name the algorithm: %v", err)
	}
}

func TestMeasureRejectsMalformedResults(t *testing.T) {
	cases := []sortalgo.Algorithm{
		{Name: "Truncates", Sort: func(in []int) []int { return in[:len(in)-1] }},
		{Name: "Shuffles", Sort: func(in []int) []int { return []int{2, 1, 3} }},
	}
	for _, algo := range cases {
		if _, err := Measure(algo, []int{3, 1, 2}, 1); err == nil {
			t.Fatalf("%s: expected error for malformed result", algo.Name)
		}
	}
}
