package stepper

import "fdm-dividend/internal/analysis"

// LedgerRow is one visited time of a rollback, recorded after conditions ran.
type LedgerRow struct {
	Index int
	Time  float64

	// Dividend is the total amount paid at Time by conditions that report one.
	Dividend float64
	Fired    bool
	Changed  bool

	Min  float64
	Max  float64
	Mean float64
}

type Result struct {
	Ledger []LedgerRow
	Final  analysis.Summary
	Fired  int
}
