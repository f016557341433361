package handlers

import (
	"fmt"
	"net/http"
	"slices"

	"fdm-dividend/internal/analysis"
	"fdm-dividend/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Adjust handles POST /api/v1/adjust
func (h *GridHandler) Adjust(c *gin.Context) {
	var req models.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err, nil)
		return
	}

	adj, layout, err := h.buildAdjuster(req.Scenario)
	if err != nil {
		h.scenarioError(c, err)
		return
	}
	if len(req.Grid) != layout.Size() {
		writeError(c, http.StatusBadRequest, "GRID_SIZE_MISMATCH",
			fmt.Errorf("grid has %d values, layout needs %d", len(req.Grid), layout.Size()),
			map[string]any{"dims": layout.Dims()})
		return
	}

	before := slices.Clone(req.Grid)
	adj.Apply(req.Grid, req.Time)

	resp := models.AdjustResponse{
		Grid:   req.Grid,
		Before: analysis.Summarize(before),
		After:  analysis.Summarize(req.Grid),
	}
	if amt, ok := adj.Amount(req.Time); ok {
		resp.Applied = true
		resp.Amount = decimal.NewFromFloat(amt)
	}
	// Lengths match, so CompareGrids cannot fail here.
	resp.Shift, _ = analysis.CompareGrids(before, req.Grid)

	c.JSON(http.StatusOK, resp)
}
