package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLayoutStrides(t *testing.T) {
	l, err := NewLayout([]float64{0, 1, 2}, []float64{10, 20}, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	require.Equal(t, 3, l.Rank())
	require.Equal(t, []int{3, 2, 4}, l.Dims())
	require.Equal(t, []int{1, 3, 6}, l.Strides())
	require.Equal(t, 24, l.Size())

	idx, err := l.Index([]int{2, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 2+1*3+3*6, idx)
}

func TestNewLayoutRejectsEmptyAxis(t *testing.T) {
	_, err := NewLayout()
	require.Error(t, err)

	_, err = NewLayout([]float64{1}, nil)
	require.ErrorContains(t, err, "axis 1 is empty")
}

func TestIndexBounds(t *testing.T) {
	l, err := NewLayout([]float64{0, 1}, []float64{0, 1, 2})
	require.NoError(t, err)

	_, err = l.Index([]int{0})
	require.Error(t, err)
	_, err = l.Index([]int{2, 0})
	require.Error(t, err)
	_, err = l.Index([]int{0, -1})
	require.Error(t, err)
}

func TestAccessorsReturnCopies(t *testing.T) {
	axis := []float64{1, 2, 3}
	l, err := NewLayout(axis)
	require.NoError(t, err)

	axis[0] = 100
	c := l.Coordinates(0)
	require.Equal(t, []float64{1, 2, 3}, c)

	c[1] = -1
	l.Dims()[0] = 7
	l.Strides()[0] = 7
	require.Equal(t, []float64{1, 2, 3}, l.Coordinates(0))
	require.Equal(t, []int{3}, l.Dims())
	require.Equal(t, []int{1}, l.Strides())
}

func TestFillVisitsCoordinates(t *testing.T) {
	l, err := NewLayout([]float64{1, 2}, []float64{10, 20, 30})
	require.NoError(t, err)

	grid := l.Fill(func(x []float64) float64 { return x[0] + x[1] })
	require.Equal(t, []float64{11, 12, 21, 22, 31, 32}, grid)
}

func TestUniformAxis(t *testing.T) {
	a, err := UniformAxis(0, 1, 5)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, a, 1e-15)

	a, err = UniformAxis(3, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, a)

	_, err = UniformAxis(0, 1, 0)
	require.Error(t, err)
	_, err = UniformAxis(1, 0, 3)
	require.Error(t, err)
}

func TestLogPriceAxis(t *testing.T) {
	a, err := LogPriceAxis(50, 200, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Log(50), a[0], 1e-12)
	require.InDelta(t, math.Log(100), a[1], 1e-12)
	require.Equal(t, math.Log(200), a[2])

	_, err = LogPriceAxis(0, 200, 3)
	require.Error(t, err)
	_, err = LogPriceAxis(50, 200, 1)
	require.Error(t, err)
}

func TestLogOf(t *testing.T) {
	a, err := LogOf([]float64{1, math.E})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1}, a, 1e-15)

	_, err = LogOf([]float64{1, -2})
	require.Error(t, err)
}

func TestWithPriceAxis(t *testing.T) {
	price := []float64{4, 5, 6}

	l, err := WithPriceAxis(price, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, l.Dims())

	l, err = WithPriceAxis(price, [][]float64{{0, 1}, {7, 8, 9, 10}}, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, l.Dims())
	require.Equal(t, price, l.Coordinates(1))

	_, err = WithPriceAxis(price, [][]float64{{0, 1}}, 2)
	require.Error(t, err)
}
