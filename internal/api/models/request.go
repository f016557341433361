package models

import "github.com/shopspring/decimal"

// ScenarioRequest describes the mesh and dividend schedule an adjuster is built for.
type ScenarioRequest struct {
	// PriceLevels are the price-axis points in price space (not log).
	PriceLevels []float64 `json:"price_levels" binding:"required,min=2"`
	// OtherAxes are the orthogonal axes' raw coordinates. Empty means a single
	// one-point state axis.
	OtherAxes      [][]float64     `json:"other_axes,omitempty"`
	PriceAxisIndex int             `json:"price_axis_index"`
	Dividends      []DividendEvent `json:"dividends"`
}

// DividendEvent is one cash dividend. Amount accepts a JSON number or string.
type DividendEvent struct {
	Time   float64         `json:"time"`
	Amount decimal.Decimal `json:"amount"`
}

// AdjustRequest represents the request body for a single adjustment
type AdjustRequest struct {
	Scenario ScenarioRequest `json:"scenario"`
	Grid     []float64       `json:"grid" binding:"required"`
	Time     float64         `json:"time"`
}

// RollbackRequest represents the request body for a rollback over a time grid
type RollbackRequest struct {
	Scenario ScenarioRequest `json:"scenario"`
	// Grid defaults to the price level at every point when omitted.
	Grid          []float64 `json:"grid,omitempty"`
	Maturity      float64   `json:"maturity" binding:"required,gt=0"`
	Steps         int       `json:"steps" binding:"required,min=1,max=100000"`
	IncludeLedger bool      `json:"include_ledger,omitempty"`
}
