package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fdm-dividend/internal/data"
	"fdm-dividend/internal/stepper"

	"github.com/google/subcommands"
)

type rollbackCmd struct {
	configPath string
	gridPath   string
	outPath    string
	finalPath  string
}

func (*rollbackCmd) Name() string { return "rollback" }
func (*rollbackCmd) Synopsis() string {
	return "rolls a grid back from maturity to zero, applying dividends on the way"
}
func (*rollbackCmd) Usage() string {
	return `cli rollback -config <scenario.yaml> [-grid <grid.json>] [-out results/ledger.csv] [-final <grid.json>]

  Visits rollback.steps uniform times on [0, rollback.maturity] plus every
  dividend time, and writes one ledger row per visited time.

`
}

func (c *rollbackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to YAML scenario")
	f.StringVar(&c.gridPath, "grid", "", "Optional grid JSON holding values at maturity")
	f.StringVar(&c.outPath, "out", "results/ledger.csv", "Output ledger CSV path")
	f.StringVar(&c.finalPath, "final", "", "Optional path to write the grid at time zero")
}

func (c *rollbackCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadScenario(c.configPath, c.gridPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := s.cfg.RequireRollback(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine := stepper.New(s.layout.Size(), slog.Default())
	res, err := engine.Run(ctx, s.values, s.cfg.Rollback.Maturity, s.cfg.Rollback.Steps, stepper.Identity{}, s.adjuster)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(c.outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := stepper.WriteLedgerCSV(c.outPath, res.Ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.finalPath != "" {
		if err := data.SaveGridJSON(c.finalPath, s.gridFile()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), c.outPath)
	fmt.Printf("Dividends fired=%d\n", res.Fired)
	printSummary("final", res.Final)
	return subcommands.ExitSuccess
}
