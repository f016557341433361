// Package dividend shifts PDE grid values across discrete cash dividends.
//
// At a dividend time the underlying price drops by the paid amount, so the
// value held at price S just before the event equals the value at S-D just
// after it. The Adjuster resamples the price axis of a flattened grid to
// reflect that jump.
package dividend

import (
	"fmt"
	"math"
	"slices"

	"fdm-dividend/internal/interp"
)

// Layout is the geometry an Adjuster needs from a mesh.
// Coordinates along the price axis are expected in log-price.
type Layout interface {
	Dims() []int
	Strides() []int
	Coordinates(axis int) []float64
}

// Adjuster applies a fixed dividend schedule to grids of one geometry.
// It is immutable after construction and may be shared across grids, but a
// single grid must not be adjusted concurrently.
type Adjuster struct {
	times   []float64
	amounts []float64

	// prices are the price-axis coordinates in linear price space.
	prices  []float64
	dims    []int
	strides []int
	axis    int
}

// NewAdjuster builds an Adjuster for dividends amounts[i] paid at times[i].
// Event times are matched exactly; callers must step onto them without rounding.
func NewAdjuster(times, amounts []float64, layout Layout, axis int) (*Adjuster, error) {
	if len(times) != len(amounts) {
		return nil, &ConfigError{
			Field: "schedule",
			Err:   fmt.Errorf("%w: %d times, %d amounts", ErrScheduleMismatch, len(times), len(amounts)),
		}
	}
	dims := layout.Dims()
	if axis < 0 || axis >= len(dims) {
		return nil, &ConfigError{
			Field: "axis",
			Err:   fmt.Errorf("%w: %d not in [0,%d)", ErrAxisOutOfRange, axis, len(dims)),
		}
	}

	raw := layout.Coordinates(axis)
	if len(raw) != dims[axis] || len(raw) < 2 {
		return nil, &ConfigError{Field: "price axis", Err: ErrPriceAxis}
	}
	prices := make([]float64, len(raw))
	for i, x := range raw {
		prices[i] = math.Exp(x)
		if i > 0 && !(prices[i] > prices[i-1]) {
			return nil, &ConfigError{
				Field: "price axis",
				Err:   fmt.Errorf("%w: price[%d]=%g, price[%d]=%g", ErrPriceAxis, i-1, prices[i-1], i, prices[i]),
			}
		}
	}

	return &Adjuster{
		times:   slices.Clone(times),
		amounts: slices.Clone(amounts),
		prices:  prices,
		dims:    dims,
		strides: layout.Strides(),
		axis:    axis,
	}, nil
}

// Amount reports the dividend paid at exactly t.
func (a *Adjuster) Amount(t float64) (float64, bool) {
	i := slices.Index(a.times, t)
	if i < 0 {
		return 0, false
	}
	return a.amounts[i], true
}

// StoppingTimes returns the scheduled event times.
func (a *Adjuster) StoppingTimes() []float64 {
	return slices.Clone(a.times)
}

// Prices returns the cached price-axis levels.
func (a *Adjuster) Prices() []float64 {
	return slices.Clone(a.prices)
}

// Apply adjusts grid in place if t is a scheduled dividend time and is a no-op
// otherwise. grid must hold at least as many values as the layout describes.
//
// Each orthogonal axis is swept on its own with the remaining orthogonal axes
// held at index 0. On a two-axis mesh that reaches every point; on meshes with
// more axes the points off those lines are left untouched.
func (a *Adjuster) Apply(grid []float64, t float64) {
	amount, ok := a.Amount(t)
	if !ok {
		return
	}

	// Every slice reads pre-dividend values, whatever order slices are written in.
	snapshot := slices.Clone(grid)

	n := len(a.prices)
	xSpacing := a.strides[a.axis]
	slice := make([]float64, n)
	for d, extent := range a.dims {
		if d == a.axis {
			continue
		}
		ySpacing := a.strides[d]
		for j := 0; j < extent; j++ {
			for k := 0; k < n; k++ {
				slice[k] = snapshot[j*ySpacing+k*xSpacing]
			}
			f, err := interp.NewLinear(a.prices, slice)
			if err != nil {
				// prices were validated in NewAdjuster
				panic(err)
			}
			for k := 0; k < n; k++ {
				v, err := f.Eval(a.query(k, amount), true)
				if err != nil {
					panic(err)
				}
				grid[j*ySpacing+k*xSpacing] = v
			}
		}
	}
}

// query is the pre-dividend price whose value moves to price k.
func (a *Adjuster) query(k int, amount float64) float64 {
	return math.Max(a.prices[0], a.prices[k]-amount)
}
