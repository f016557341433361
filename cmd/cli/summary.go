package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fdm-dividend/internal/analysis"
	"fdm-dividend/internal/data"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	gridPath string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "prints distribution statistics of a grid file" }
func (*summaryCmd) Usage() string {
	return `cli summary -grid <grid.json>

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gridPath, "grid", "", "Grid JSON to summarize")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.gridPath == "" {
		fmt.Fprintln(os.Stderr, "-grid is required")
		return subcommands.ExitUsageError
	}
	g, err := data.LoadGridJSON(c.gridPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := g.Layout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("dims=%v strides=%v price_axis=%d\n", l.Dims(), l.Strides(), g.PriceAxisIndex)
	printSummary("grid", analysis.Summarize(g.Values))
	return subcommands.ExitSuccess
}

func printSummary(label string, s analysis.Summary) {
	fmt.Printf("%-7s count=%d min=%.6f max=%.6f mean=%.6f p05=%.6f p95=%.6f\n",
		label, s.Count, s.Min, s.Max, s.Mean, s.P05, s.P95)
}
