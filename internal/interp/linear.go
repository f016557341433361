// Package interp implements one-dimensional piecewise-linear interpolation.
package interp

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by NewLinear and Eval.
var (
	ErrTooFewPoints  = errors.New("interp: at least 2 points required")
	ErrNotIncreasing = errors.New("interp: x values must be strictly increasing")
	ErrOutOfRange    = errors.New("interp: x outside domain")
)

// Linear is a piecewise-linear function through (xs[i], ys[i]).
// It keeps references to the caller's slices; they must not be modified while
// the interpolant is in use.
type Linear struct {
	xs []float64
	ys []float64
}

// NewLinear returns the interpolant through (xs[i], ys[i]). xs must hold at
// least two strictly increasing values and match ys in length.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%g, x[%d]=%g", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}
	return &Linear{xs: xs, ys: ys}, nil
}

// XMin is the first knot.
func (l *Linear) XMin() float64 { return l.xs[0] }

// XMax is the last knot.
func (l *Linear) XMax() float64 { return l.xs[len(l.xs)-1] }

// Eval returns the interpolated value at x. Outside [XMin, XMax] the first or
// last segment is extended when allowExtrapolation is set; otherwise
// ErrOutOfRange is returned.
func (l *Linear) Eval(x float64, allowExtrapolation bool) (float64, error) {
	if !allowExtrapolation && (x < l.XMin() || x > l.XMax()) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, x, l.XMin(), l.XMax())
	}
	i := l.segment(x)
	x0, x1 := l.xs[i], l.xs[i+1]
	y0, y1 := l.ys[i], l.ys[i+1]
	return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
}

// segment returns the index i of the segment [xs[i], xs[i+1]] used for x,
// clamped to the first and last segment.
func (l *Linear) segment(x float64) int {
	n := len(l.xs)
	// First index with xs[j] > x.
	j := sort.Search(n, func(j int) bool { return l.xs[j] > x })
	i := j - 1
	if i < 0 {
		return 0
	}
	if i > n-2 {
		return n - 2
	}
	return i
}
