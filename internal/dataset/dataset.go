// internal/dataset/dataset.go
// Package dataset generates reproducible integer sequences for benchmarking.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
)

// Pattern identifies the statistical shape of a generated dataset.
type Pattern string

const (
	// Random draws each element uniformly from [0, maxRandomValue].
	Random Pattern = "random"
	// Sorted yields 0, 1, ..., size-1.
	Sorted Pattern = "sorted"
	// Reversed yields size, size-1, ..., 1.
	Reversed Pattern = "reversed"
	// NearlySorted yields the sorted sequence with ~1% random pair swaps.
	NearlySorted Pattern = "nearly_sorted"
)

// maxRandomValue bounds the uniform draw for the random pattern.
const maxRandomValue = 1_000_000

// ErrInvalidPattern is returned when an unknown pattern is requested.
var ErrInvalidPattern = errors.New("unknown dataset pattern")

// AllPatterns returns the supported patterns in canonical order.
func AllPatterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, NearlySorted}
}

// ParsePattern converts a wire string into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case Random, Sorted, Reversed, NearlySorted:
		return Pattern(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}

// String returns the wire form of the pattern.
func (p Pattern) String() string {
	return string(p)
}

// Generate produces a dataset of the given size and pattern. The same
// (size, pattern, seed) triple always yields the same sequence; growth-factor
// comparisons across algorithms depend on it. A size of zero (or less) yields
// an empty slice.
func Generate(size int, pattern Pattern, seed int64) ([]int, error) {
	if size < 0 {
		size = 0
	}

	switch pattern {
	case Random:
		rnd := rand.New(rand.NewSource(seed))
		out := make([]int, size)
		for i := range out {
			out[i] = rnd.Intn(maxRandomValue + 1)
		}
		return out, nil
	case Sorted:
		out := make([]int, size)
		for i := range out {
			out[i] = i
		}
		return out, nil
	case Reversed:
		out := make([]int, size)
		for i := range out {
			out[i] = size - i
		}
		return out, nil
	case NearlySorted:
		out := make([]int, size)
		for i := range out {
			out[i] = i
		}
		if size > 1 {
			rnd := rand.New(rand.NewSource(seed))
			swaps := max(1, size/100)
			for s := 0; s < swaps; s++ {
				i, j := rnd.Intn(size), rnd.Intn(size)
				out[i], out[j] = out[j], out[i]
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
}
