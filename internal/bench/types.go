// internal/bench/types.go
package bench

import (
	"time"

	"github.com/mwiater/sortbench/internal/dataset"
)

// Row holds one measurement: the minimum sort duration for a single
// (pattern, size, algorithm) cell. A benchmark run emits at most one Row
// per distinct cell.
type Row struct {
	Pattern   dataset.Pattern `json:"pattern"`
	Size      int             `json:"n"`
	Algorithm string          `json:"algorithm"`
	Duration  time.Duration   `json:"duration"`
}

// Seconds reports the measured duration in seconds, the unit used by the
// exported CSV and by growth-ratio arithmetic.
func (r Row) Seconds() float64 {
	return r.Duration.Seconds()
}
