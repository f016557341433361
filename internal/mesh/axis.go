package mesh

import (
	"errors"
	"fmt"
	"math"
)

// UniformAxis returns n evenly spaced points on [lo, hi].
// A single point axis sits at lo.
func UniformAxis(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.New("points must be > 0")
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	if hi <= lo {
		return nil, errors.New("hi must be > lo")
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// Pin the endpoint against accumulated rounding.
	out[n-1] = hi
	return out, nil
}

// LogPriceAxis returns n points uniform in log-price between minPrice and maxPrice.
func LogPriceAxis(minPrice, maxPrice float64, n int) ([]float64, error) {
	if minPrice <= 0 {
		return nil, errors.New("minPrice must be > 0")
	}
	if n < 2 {
		return nil, errors.New("price axis needs at least 2 points")
	}
	return UniformAxis(math.Log(minPrice), math.Log(maxPrice), n)
}

// LogOf converts explicit price levels into the log-space representation the
// layout stores for a price axis.
func LogOf(prices []float64) ([]float64, error) {
	out := make([]float64, len(prices))
	for i, p := range prices {
		if p <= 0 {
			return nil, errors.New("price levels must be > 0")
		}
		out[i] = math.Log(p)
	}
	return out, nil
}

// WithPriceAxis builds a layout with logPrice inserted at position at among
// the other axes. With no other axes a single-point state axis is added so
// the price axis has one orthogonal line to be swept along.
func WithPriceAxis(logPrice []float64, others [][]float64, at int) (*Layout, error) {
	if len(others) == 0 {
		others = [][]float64{{0}}
	}
	if at < 0 || at > len(others) {
		return nil, fmt.Errorf("price axis index %d out of range [0,%d]", at, len(others))
	}
	axes := make([][]float64, 0, len(others)+1)
	axes = append(axes, others[:at]...)
	axes = append(axes, logPrice)
	axes = append(axes, others[at:]...)
	return NewLayout(axes...)
}
