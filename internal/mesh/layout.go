package mesh

import (
	"errors"
	"fmt"
)

// Layout describes a multi-dimensional mesh flattened into a single slice.
//
// Axis 0 varies fastest: stride[0] = 1 and stride[i] = stride[i-1]*dims[i-1].
// Coordinates are stored in the representation the caller supplied; for the
// price axis that is log-price (see LogPriceAxis and LogOf).
type Layout struct {
	dims    []int
	strides []int
	coords  [][]float64
	size    int
}

func NewLayout(axes ...[]float64) (*Layout, error) {
	if len(axes) == 0 {
		return nil, errors.New("layout needs at least one axis")
	}
	l := &Layout{
		dims:    make([]int, len(axes)),
		strides: make([]int, len(axes)),
		coords:  make([][]float64, len(axes)),
	}
	stride := 1
	for i, a := range axes {
		if len(a) == 0 {
			return nil, fmt.Errorf("axis %d is empty", i)
		}
		l.dims[i] = len(a)
		l.strides[i] = stride
		l.coords[i] = append([]float64(nil), a...)
		stride *= len(a)
	}
	l.size = stride
	return l, nil
}

// Rank is the number of axes.
func (l *Layout) Rank() int { return len(l.dims) }

// Size is the number of points in the flattened grid.
func (l *Layout) Size() int { return l.size }

func (l *Layout) Dims() []int { return append([]int(nil), l.dims...) }

func (l *Layout) Strides() []int { return append([]int(nil), l.strides...) }

// Coordinates returns a copy of the raw coordinate values along axis.
// It panics if axis is out of range.
func (l *Layout) Coordinates(axis int) []float64 {
	return append([]float64(nil), l.coords[axis]...)
}

// Index flattens per-axis coordinate indices into a grid offset.
func (l *Layout) Index(coords []int) (int, error) {
	if len(coords) != len(l.dims) {
		return 0, fmt.Errorf("got %d coordinates for a rank %d layout", len(coords), len(l.dims))
	}
	idx := 0
	for i, c := range coords {
		if c < 0 || c >= l.dims[i] {
			return 0, fmt.Errorf("coordinate %d out of range [0,%d) on axis %d", c, l.dims[i], i)
		}
		idx += c * l.strides[i]
	}
	return idx, nil
}

// Fill returns a grid of Size() values where each point is f evaluated at its
// raw coordinates.
func (l *Layout) Fill(f func(x []float64) float64) []float64 {
	out := make([]float64, l.size)
	x := make([]float64, len(l.dims))
	for n := range out {
		rem := n
		for i := len(l.dims) - 1; i >= 0; i-- {
			c := rem / l.strides[i]
			rem -= c * l.strides[i]
			x[i] = l.coords[i][c]
		}
		out[n] = f(x)
	}
	return out
}
