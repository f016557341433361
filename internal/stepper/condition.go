package stepper

// Condition is applied to the grid at every visited time.
// *dividend.Adjuster is the main implementation.
type Condition interface {
	Apply(grid []float64, t float64)
}

// StoppingTimer is a Condition that must be visited at exact times.
type StoppingTimer interface {
	StoppingTimes() []float64
}

// Payer reports a cash amount paid at exactly t.
type Payer interface {
	Amount(t float64) (float64, bool)
}

// Evolver advances grid values backward from time from to time to.
type Evolver interface {
	Evolve(grid []float64, from, to float64) error
}

// Identity leaves the grid unchanged between times, isolating the effect of
// the conditions.
type Identity struct{}

func (Identity) Evolve([]float64, float64, float64) error { return nil }

// ConditionFunc adapts a function to a Condition.
type ConditionFunc func(grid []float64, t float64)

func (f ConditionFunc) Apply(grid []float64, t float64) { f(grid, t) }
