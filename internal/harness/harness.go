// internal/harness/harness.go
// Package harness times a single sorting algorithm against a single dataset
// under a minimum-of-repeats protocol.
package harness

import (
	"fmt"
	"slices"
	"time"

	"github.com/mwiater/sortbench/internal/sortalgo"
)

// Measure runs algo against repeats fresh copies of data and returns the
// minimum observed wall-clock duration of the sort call alone. The copy cost
// is excluded from the timed region. The minimum, not the mean, is kept:
// scheduler preemption only ever inflates a trial, so the smallest sample is
// the cleanest one.
func Measure(algo sortalgo.Algorithm, data []int, repeats int) (time.Duration, error) {
	if repeats < 1 {
		return 0, fmt.Errorf("repeats must be positive, got %d", repeats)
	}

	var best time.Duration
	for trial := 0; trial < repeats; trial++ {
		elapsed, out, err := runTrial(algo, slices.Clone(data))
		if err != nil {
			return 0, err
		}
		if err := checkResult(algo.Name, data, out); err != nil {
			return 0, err
		}
		if trial == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}

// runTrial times one sort call, converting a panic inside the algorithm into
// an error so the orchestrator can abort the run cleanly.
func runTrial(algo sortalgo.Algorithm, input []int) (elapsed time.Duration, out []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("algorithm %q panicked during sort: %v", algo.Name, r)
		}
	}()

	start := time.Now()
	out = algo.Sort(input)
	elapsed = time.Since(start)
	return elapsed, out, nil
}

// checkResult rejects malformed sort output. Runs outside the timed region.
func checkResult(name string, in, out []int) error {
	if len(out) != len(in) {
		return fmt.Errorf("algorithm %q returned %d elements, want %d", name, len(out), len(in))
	}
	if !slices.IsSorted(out) {
		return fmt.Errorf("algorithm %q returned an unsorted result", name)
	}
	return nil
}
