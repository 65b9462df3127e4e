package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/pricewalk"
	"github.com/aretw0/pricewalk/internal/config"
	"github.com/aretw0/pricewalk/internal/presentation/tui"
	"github.com/aretw0/pricewalk/pkg/domain"
)

// SimulateOptions contains the configuration for the simulate command.
// Zero values fall back to the simulation section of the config file.
type SimulateOptions struct {
	GlobalOptions
	Process     string
	StartPrice  *int
	TimeSteps   *int
	NumTraces   *int
	Seed        *uint64
	Parallelism int
	Params      map[string]string // key=value pairs, decoded by the process
	JSON        bool
	Rows        int // Steps shown in the summary table
}

// apply overlays the command line on the config file.
func (o SimulateOptions) apply(cfg *config.Config) {
	sim := &cfg.Simulation
	if o.Process != "" {
		sim.Process = o.Process
	}
	if o.StartPrice != nil {
		sim.StartPrice = *o.StartPrice
	}
	if o.TimeSteps != nil {
		sim.TimeSteps = *o.TimeSteps
	}
	if o.NumTraces != nil {
		sim.NumTraces = *o.NumTraces
	}
	if o.Seed != nil {
		sim.Seed = o.Seed
	}
	if o.Parallelism > 0 {
		sim.Parallelism = o.Parallelism
	}
	if len(o.Params) > 0 {
		params := make(map[string]any, len(sim.Params)+len(o.Params))
		for k, v := range sim.Params {
			params[k] = v
		}
		for k, v := range o.Params {
			params[k] = v
		}
		sim.Params = params
	}
}

// RunSimulate generates a price table and writes it to w.
func RunSimulate(ctx context.Context, w io.Writer, opts SimulateOptions) error {
	cfg, logger, err := setup(opts.GlobalOptions)
	if err != nil {
		return err
	}
	opts.apply(&cfg)

	engine, closeStore, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sim, err := engine.Simulate(ctx, cfg.Simulation.Request())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if opts.JSON {
		return writeJSON(w, sim)
	}
	return printSummary(w, sim, opts.Rows)
}

// printSummary writes the Markdown summary, styled when w is a terminal.
func printSummary(w io.Writer, sim *domain.Simulation, rows int) error {
	if rows <= 0 {
		rows = tui.DefaultSummaryRows
	}
	md := tui.Summary(sim, rows)

	if !isTerminal(w) {
		_, err := io.WriteString(w, md)
		return err
	}

	tui.PrintBanner(w, pricewalk.Version)
	out, err := tui.NewRenderer()(md)
	if err != nil {
		out = md
	}
	_, err = io.WriteString(w, out)
	return err
}
