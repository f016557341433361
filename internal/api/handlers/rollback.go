package handlers

import (
	"errors"
	"math"
	"net/http"

	"fdm-dividend/internal/api/models"
	"fdm-dividend/internal/stepper"

	"github.com/gin-gonic/gin"
)

// Rollback handles POST /api/v1/rollback
func (h *GridHandler) Rollback(c *gin.Context) {
	var req models.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err, nil)
		return
	}

	adj, layout, err := h.buildAdjuster(req.Scenario)
	if err != nil {
		h.scenarioError(c, err)
		return
	}

	grid := req.Grid
	if grid == nil {
		grid = layout.Fill(func(x []float64) float64 {
			return math.Exp(x[req.Scenario.PriceAxisIndex])
		})
	}

	res, err := stepper.New(layout.Size(), h.logger).Run(c.Request.Context(), grid, req.Maturity, req.Steps, stepper.Identity{}, adj)
	if err != nil {
		if errors.Is(err, stepper.ErrGridSize) {
			writeError(c, http.StatusBadRequest, "GRID_SIZE_MISMATCH", err, map[string]any{"dims": layout.Dims()})
			return
		}
		writeError(c, http.StatusBadRequest, "ROLLBACK_FAILED", err, nil)
		return
	}

	resp := models.RollbackResponse{
		Status: "completed",
		Fired:  res.Fired,
		Steps:  len(res.Ledger),
		Final:  res.Final,
		Grid:   grid,
	}
	if req.IncludeLedger {
		resp.Ledger = make([]models.LedgerRow, 0, len(res.Ledger))
		for _, r := range res.Ledger {
			resp.Ledger = append(resp.Ledger, models.LedgerRow{
				Index:    r.Index,
				Time:     r.Time,
				Dividend: r.Dividend,
				Fired:    r.Fired,
				Changed:  r.Changed,
				Min:      r.Min,
				Max:      r.Max,
				Mean:     r.Mean,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}
