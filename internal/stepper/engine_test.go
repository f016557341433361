package stepper

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"

	"github.com/stretchr/testify/require"
)

func newAdjuster(t *testing.T, times, amounts []float64) (*mesh.Layout, *dividend.Adjuster) {
	t.Helper()
	logs, err := mesh.LogOf([]float64{80, 90, 100, 110, 120})
	require.NoError(t, err)
	l, err := mesh.NewLayout(logs, []float64{0})
	require.NoError(t, err)
	a, err := dividend.NewAdjuster(times, amounts, l, 0)
	require.NoError(t, err)
	return l, a
}

func TestTimeGridMergesStoppingTimes(t *testing.T) {
	times, err := TimeGrid(1, 4, []float64{0.3, 1.5, -1, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.3, 0.5, 0.75, 1}, times)

	_, err = TimeGrid(0, 4)
	require.Error(t, err)
	_, err = TimeGrid(1, 0)
	require.Error(t, err)
}

func TestRunFiresDividendOnce(t *testing.T) {
	l, a := newAdjuster(t, []float64{1.0}, []float64{5.0})
	grid := []float64{80, 90, 100, 110, 120}

	res, err := New(l.Size(), nil).Run(context.Background(), grid, 2, 2, nil, a)
	require.NoError(t, err)

	require.Equal(t, 1, res.Fired)
	require.Len(t, res.Ledger, 3)
	require.Equal(t, []float64{2, 1, 0}, []float64{res.Ledger[0].Time, res.Ledger[1].Time, res.Ledger[2].Time})

	require.False(t, res.Ledger[0].Fired)
	require.True(t, res.Ledger[1].Fired)
	require.True(t, res.Ledger[1].Changed)
	require.Equal(t, 5.0, res.Ledger[1].Dividend)
	require.False(t, res.Ledger[2].Changed)

	require.InDeltaSlice(t, []float64{80, 85, 95, 105, 115}, grid, 1e-9)
	require.InDelta(t, 115.0, res.Final.Max, 1e-9)
}

func TestRunLandsOnOffGridDividend(t *testing.T) {
	l, a := newAdjuster(t, []float64{0.3}, []float64{5.0})
	grid := []float64{80, 90, 100, 110, 120}

	res, err := New(l.Size(), nil).Run(context.Background(), grid, 1, 2, Identity{}, a)
	require.NoError(t, err)

	require.Equal(t, 1, res.Fired)
	require.Len(t, res.Ledger, 4)
	require.InDeltaSlice(t, []float64{80, 85, 95, 105, 115}, grid, 1e-9)
}

func TestRunRejectsWrongGridSize(t *testing.T) {
	l, a := newAdjuster(t, []float64{1.0}, []float64{5.0})

	_, err := New(l.Size(), nil).Run(context.Background(), []float64{1, 2}, 1, 1, nil, a)
	require.ErrorIs(t, err, ErrGridSize)
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	l, a := newAdjuster(t, []float64{1.0}, []float64{5.0})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(l.Size(), nil).Run(ctx, make([]float64, l.Size()), 1, 1, nil, a)
	require.ErrorIs(t, err, context.Canceled)
}

type failingEvolver struct{}

func (failingEvolver) Evolve([]float64, float64, float64) error { return errors.New("boom") }

func TestRunPropagatesEvolverError(t *testing.T) {
	_, err := New(2, nil).Run(context.Background(), []float64{1, 2}, 1, 1, failingEvolver{})
	require.ErrorContains(t, err, "boom")
}

func TestRunAppliesPlainConditions(t *testing.T) {
	var seen []float64
	cond := ConditionFunc(func(grid []float64, t float64) { seen = append(seen, t) })

	_, err := New(1, nil).Run(context.Background(), []float64{0}, 1, 2, nil, cond)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.5, 0}, seen)
}

func TestEncodeLedgerCSV(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeLedgerCSV(&buf, []LedgerRow{
		{Index: 0, Time: 1, Dividend: 5, Fired: true, Changed: true, Min: 80, Max: 115, Mean: 96},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "index,time,dividend,fired,changed,min,max,mean", lines[0])
	require.Equal(t, "0,1.000000,5.000000,true,true,80.000000,115.000000,96.000000", lines[1])
}
