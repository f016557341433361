package data

import (
	"encoding/json"
	"fmt"
	"os"

	"fdm-dividend/internal/mesh"
)

// GridFile is the JSON shape of a saved grid.
//
// Example:
//
//	{
//	  "axes": [[80, 90, 100], [0]],
//	  "price_axis_index": 0,
//	  "values": [ ... ]
//	}
//
// The price axis is stored as price levels; every other axis as raw coordinates.
type GridFile struct {
	Axes           [][]float64 `json:"axes"`
	PriceAxisIndex int         `json:"price_axis_index"`
	Values         []float64   `json:"values"`
}

func LoadGridJSON(path string) (*GridFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g GridFile
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func SaveGridJSON(path string, g *GridFile) error {
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Layout converts the file's axes into a mesh layout with a log-price axis and
// checks that Values covers it.
func (g *GridFile) Layout() (*mesh.Layout, error) {
	if g.PriceAxisIndex < 0 || g.PriceAxisIndex >= len(g.Axes) {
		return nil, fmt.Errorf("price_axis_index %d out of range [0,%d)", g.PriceAxisIndex, len(g.Axes))
	}
	logPrice, err := mesh.LogOf(g.Axes[g.PriceAxisIndex])
	if err != nil {
		return nil, err
	}
	axes := make([][]float64, len(g.Axes))
	copy(axes, g.Axes)
	axes[g.PriceAxisIndex] = logPrice

	l, err := mesh.NewLayout(axes...)
	if err != nil {
		return nil, err
	}
	if len(g.Values) != l.Size() {
		return nil, fmt.Errorf("grid has %d values, layout needs %d", len(g.Values), l.Size())
	}
	return l, nil
}
