package models

import (
	"fdm-dividend/internal/analysis"

	"github.com/shopspring/decimal"
)

// AdjustResponse represents the response from an adjustment
type AdjustResponse struct {
	Applied bool             `json:"applied"`
	Amount  decimal.Decimal  `json:"amount"`
	Grid    []float64        `json:"grid"`
	Before  analysis.Summary `json:"before"`
	After   analysis.Summary `json:"after"`
	Shift   analysis.Shift   `json:"shift"`
}

// RollbackResponse represents the response from a rollback run
type RollbackResponse struct {
	Status string           `json:"status"`
	Fired  int              `json:"fired"`
	Steps  int              `json:"steps"`
	Final  analysis.Summary `json:"final"`
	Grid   []float64        `json:"grid"`
	Ledger []LedgerRow      `json:"ledger,omitempty"`
}

// LedgerRow represents one visited time in the rollback ledger
type LedgerRow struct {
	Index    int     `json:"index"`
	Time     float64 `json:"time"`
	Dividend float64 `json:"dividend"`
	Fired    bool    `json:"fired"`
	Changed  bool    `json:"changed"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
