package main

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"fdm-dividend/internal/config"
	"fdm-dividend/internal/data"
	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"
)

// scenario is a built adjuster plus the grid it acts on.
type scenario struct {
	cfg      *config.Config
	adjuster *dividend.Adjuster
	layout   *mesh.Layout
	// axes are kept as loaded, price levels included, so saving does not
	// pass them through log and exp.
	axes       [][]float64
	priceIndex int
	values     []float64
}

// loadScenario reads the YAML scenario and, if gridPath is set, takes the mesh
// and values from that grid file instead of the config's grid section. Without
// a grid file every point starts at its price level.
func loadScenario(cfgPath, gridPath string) (*scenario, error) {
	if cfgPath == "" {
		return nil, errors.New("-config is required")
	}
	if gridPath != "" {
		return loadGridScenario(cfgPath, gridPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	a, l, err := cfg.Adjuster()
	if err != nil {
		return nil, err
	}
	idx := cfg.Grid.PriceAxisIndex
	axes := make([][]float64, l.Rank())
	for i := range axes {
		axes[i] = l.Coordinates(i)
	}
	if levels := cfg.Grid.Price.Levels; len(levels) > 0 {
		axes[idx] = slices.Clone(levels)
	} else {
		axes[idx] = a.Prices()
	}
	return &scenario{
		cfg:        cfg,
		adjuster:   a,
		layout:     l,
		axes:       axes,
		priceIndex: idx,
		values:     l.Fill(func(x []float64) float64 { return math.Exp(x[idx]) }),
	}, nil
}

func loadGridScenario(cfgPath, gridPath string) (*scenario, error) {
	cfg, err := config.LoadSchedule(cfgPath)
	if err != nil {
		return nil, err
	}
	g, err := data.LoadGridJSON(gridPath)
	if err != nil {
		return nil, err
	}
	l, err := g.Layout()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gridPath, err)
	}
	times, amounts, err := cfg.Schedule()
	if err != nil {
		return nil, err
	}
	a, err := dividend.NewAdjuster(times, amounts, l, g.PriceAxisIndex)
	if err != nil {
		return nil, err
	}
	axes := make([][]float64, len(g.Axes))
	for i, ax := range g.Axes {
		axes[i] = slices.Clone(ax)
	}
	return &scenario{
		cfg:        cfg,
		adjuster:   a,
		layout:     l,
		axes:       axes,
		priceIndex: g.PriceAxisIndex,
		values:     g.Values,
	}, nil
}

// gridFile converts the scenario back into the on-disk grid shape.
func (s *scenario) gridFile() *data.GridFile {
	axes := make([][]float64, len(s.axes))
	for i, ax := range s.axes {
		axes[i] = slices.Clone(ax)
	}
	return &data.GridFile{Axes: axes, PriceAxisIndex: s.priceIndex, Values: s.values}
}
