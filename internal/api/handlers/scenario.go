package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fdm-dividend/internal/api/models"
	"fdm-dividend/internal/data"
	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"

	"github.com/gin-gonic/gin"
)

// GridHandler serves adjustment and rollback requests.
type GridHandler struct {
	cache  *data.AdjusterCache
	logger *slog.Logger
}

// NewGridHandler creates a new grid handler. cache may be nil.
func NewGridHandler(cache *data.AdjusterCache, logger *slog.Logger) *GridHandler {
	return &GridHandler{cache: cache, logger: logger}
}

// buildAdjuster returns the adjuster and layout for a scenario, reusing a
// cached adjuster for an identical scenario.
func (h *GridHandler) buildAdjuster(s models.ScenarioRequest) (*dividend.Adjuster, *mesh.Layout, error) {
	times := make([]float64, len(s.Dividends))
	amounts := make([]float64, len(s.Dividends))
	for i, d := range s.Dividends {
		times[i] = d.Time
		amounts[i] = d.Amount.InexactFloat64()
	}

	var key string
	if h.cache != nil {
		axes := make([][]float64, 0, len(s.OtherAxes)+1)
		axes = append(axes, s.PriceLevels)
		axes = append(axes, s.OtherAxes...)
		k, err := data.GenerateCacheKey(data.ScenarioKey{
			Axes:           axes,
			PriceAxisIndex: s.PriceAxisIndex,
			Times:          times,
			Amounts:        amounts,
		})
		if err == nil {
			key = k
			if e, ok := h.cache.Get(key); ok {
				return e.Adjuster, e.Layout, nil
			}
		}
	}

	logPrice, err := mesh.LogOf(s.PriceLevels)
	if err != nil {
		return nil, nil, err
	}
	l, err := mesh.WithPriceAxis(logPrice, s.OtherAxes, s.PriceAxisIndex)
	if err != nil {
		return nil, nil, err
	}
	a, err := dividend.NewAdjuster(times, amounts, l, s.PriceAxisIndex)
	if err != nil {
		return nil, nil, err
	}
	if key != "" {
		h.cache.Set(key, a, l)
	}
	return a, l, nil
}

func writeError(c *gin.Context, status int, code string, err error, details map[string]any) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

func (h *GridHandler) scenarioError(c *gin.Context, err error) {
	h.logger.Warn("scenario rejected", "error", err)
	var details map[string]any
	var cfgErr *dividend.ConfigError
	if errors.As(err, &cfgErr) {
		details = map[string]any{"field": cfgErr.Field}
	}
	writeError(c, http.StatusBadRequest, "INVALID_SCENARIO", err, details)
}
