package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"fdm-dividend/internal/analysis"
	"fdm-dividend/internal/data"

	"github.com/google/subcommands"
)

type adjustCmd struct {
	configPath string
	gridPath   string
	outPath    string
	time       float64
}

func (*adjustCmd) Name() string { return "adjust" }
func (*adjustCmd) Synopsis() string {
	return "applies the dividend scheduled at one time to a grid"
}
func (*adjustCmd) Usage() string {
	return `cli adjust -config <scenario.yaml> -t <time> [-grid <grid.json>] [-out <grid.json>]

  Applies the dividend paid at exactly -t. Times not in the schedule leave the
  grid unchanged. Without -grid every point starts at its price level.

`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to YAML scenario")
	f.StringVar(&c.gridPath, "grid", "", "Optional grid JSON to adjust")
	f.StringVar(&c.outPath, "out", "", "Optional path to write the adjusted grid JSON")
	f.Float64Var(&c.time, "t", 0, "Evaluation time")
}

func (c *adjustCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadScenario(c.configPath, c.gridPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	before := slices.Clone(s.values)
	s.adjuster.Apply(s.values, c.time)

	amt, ok := s.adjuster.Amount(c.time)
	if !ok {
		slog.Info("no dividend scheduled", "time", c.time)
	} else {
		slog.Info("dividend applied", "time", c.time, "amount", amt)
	}

	shift, err := analysis.CompareGrids(before, s.values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printSummary("before", analysis.Summarize(before))
	printSummary("after", analysis.Summarize(s.values))
	fmt.Printf("changed=%d max_abs_delta=%.6f mean_delta=%.6f\n", shift.Changed, shift.MaxAbsDelta, shift.MeanDelta)

	if c.outPath != "" {
		if err := data.SaveGridJSON(c.outPath, s.gridFile()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %d values to %s\n", len(s.values), c.outPath)
	}
	return subcommands.ExitSuccess
}
