package stepper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"fdm-dividend/internal/analysis"
)

var ErrGridSize = errors.New("grid size does not match layout")

// Engine rolls a grid back from maturity to time zero.
type Engine struct {
	size   int
	logger *slog.Logger
}

// New returns an Engine for grids of size points. A nil logger discards output.
func New(size int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{size: size, logger: logger}
}

// Run evolves grid backward over TimeGrid(maturity, steps, ...), applying all
// conditions at maturity and after every step. Stopping times of conditions
// that implement StoppingTimer are added to the time grid.
func (e *Engine) Run(ctx context.Context, grid []float64, maturity float64, steps int, ev Evolver, conds ...Condition) (*Result, error) {
	if len(grid) != e.size {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrGridSize, len(grid), e.size)
	}
	if ev == nil {
		ev = Identity{}
	}

	var stopping [][]float64
	for _, c := range conds {
		if st, ok := c.(StoppingTimer); ok {
			stopping = append(stopping, st.StoppingTimes())
		}
	}
	times, err := TimeGrid(maturity, steps, stopping...)
	if err != nil {
		return nil, err
	}

	ledger := make([]LedgerRow, 0, len(times))
	fired := 0
	prev := make([]float64, len(grid))

	for i := len(times) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := times[i]
		if i < len(times)-1 {
			if err := ev.Evolve(grid, times[i+1], t); err != nil {
				return nil, fmt.Errorf("evolve %g -> %g: %w", times[i+1], t, err)
			}
		}

		copy(prev, grid)
		row := LedgerRow{Index: len(ledger), Time: t}
		for _, c := range conds {
			if p, ok := c.(Payer); ok {
				if amt, ok := p.Amount(t); ok {
					row.Fired = true
					row.Dividend += amt
				}
			}
			c.Apply(grid, t)
		}
		if row.Fired {
			fired++
			e.logger.Debug("dividend applied", "time", t, "amount", row.Dividend)
		}
		row.Changed = !slices.Equal(prev, grid)

		s := analysis.Summarize(grid)
		row.Min, row.Max, row.Mean = s.Min, s.Max, s.Mean
		ledger = append(ledger, row)
	}

	return &Result{
		Ledger: ledger,
		Final:  analysis.Summarize(grid),
		Fired:  fired,
	}, nil
}
