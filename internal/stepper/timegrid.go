package stepper

import (
	"errors"
	"slices"
	"sort"
)

// TimeGrid returns the ascending times a rollback visits: steps uniform
// intervals on [0, maturity] merged with every stopping time inside that range.
// Stopping times are inserted as given so exact-match conditions fire on them.
func TimeGrid(maturity float64, steps int, stopping ...[]float64) ([]float64, error) {
	if maturity <= 0 {
		return nil, errors.New("maturity must be > 0")
	}
	if steps < 1 {
		return nil, errors.New("steps must be >= 1")
	}
	times := make([]float64, 0, steps+1)
	dt := maturity / float64(steps)
	for i := 0; i < steps; i++ {
		times = append(times, float64(i)*dt)
	}
	times = append(times, maturity)

	for _, st := range stopping {
		for _, t := range st {
			if t >= 0 && t <= maturity {
				times = append(times, t)
			}
		}
	}
	sort.Float64s(times)
	return slices.Compact(times), nil
}
