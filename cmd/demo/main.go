package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"
)

// Demo:
// - Build a 5-point price axis with one single-point orthogonal axis
// - Schedule a dividend and apply it at a matching and a non-matching time
// - Print each grid so the shift is visible
func main() {
	amount := flag.Float64("amount", 5.0, "Dividend amount")
	at := flag.Float64("at", 1.0, "Dividend time")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	prices := []float64{80, 90, 100, 110, 120}
	logPrice, err := mesh.LogOf(prices)
	if err != nil {
		logger.Error("price axis", "error", err)
		os.Exit(1)
	}
	layout, err := mesh.WithPriceAxis(logPrice, nil, 0)
	if err != nil {
		logger.Error("layout", "error", err)
		os.Exit(1)
	}
	adj, err := dividend.NewAdjuster([]float64{*at}, []float64{*amount}, layout, 0)
	if err != nil {
		logger.Error("adjuster", "error", err)
		os.Exit(1)
	}

	for _, t := range []float64{*at, *at + 1} {
		grid := slices.Clone(prices)
		adj.Apply(grid, t)
		_, fired := adj.Amount(t)
		fmt.Printf("t=%-5g fired=%-5v grid=%v\n", t, fired, round(grid))
	}
}

// round trims exp/log noise for display.
func round(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprintf("%.4f", x)
	}
	return out
}
