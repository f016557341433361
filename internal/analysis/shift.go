package analysis

import (
	"fmt"
	"math"
)

// Shift compares a grid before and after an adjustment.
type Shift struct {
	// Changed counts points whose value differs bit-for-bit.
	Changed     int     `json:"changed"`
	MaxAbsDelta float64 `json:"max_abs_delta"`
	MeanDelta   float64 `json:"mean_delta"`
}

func CompareGrids(before, after []float64) (Shift, error) {
	if len(before) != len(after) {
		return Shift{}, fmt.Errorf("grid lengths differ: %d vs %d", len(before), len(after))
	}
	s := Shift{}
	if len(before) == 0 {
		return s, nil
	}
	sum := 0.0
	for i := range before {
		d := after[i] - before[i]
		if after[i] != before[i] {
			s.Changed++
		}
		sum += d
		if math.Abs(d) > s.MaxAbsDelta {
			s.MaxAbsDelta = math.Abs(d)
		}
	}
	s.MeanDelta = sum / float64(len(before))
	return s, nil
}
