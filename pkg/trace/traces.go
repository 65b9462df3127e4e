package trace

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	"github.com/aretw0/pricewalk/pkg/sampler"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 64

// MaxCells bounds numTraces*(timeSteps+1) for a single PriceTraces call.
const MaxCells = 50_000_000

// CheckShape validates the table dimensions against maxCells.
// The product is never computed, so it cannot overflow.
func CheckShape(timeSteps, numTraces, maxCells int) error {
	if timeSteps < 0 {
		return fmt.Errorf("time steps %d: %w", timeSteps, domain.ErrInvalidArgument)
	}
	if numTraces < 1 {
		return fmt.Errorf("num traces %d: %w", numTraces, domain.ErrInvalidArgument)
	}
	// numTraces*(timeSteps+1) <= maxCells  <=>  timeSteps < maxCells/numTraces
	if timeSteps >= maxCells/numTraces {
		return fmt.Errorf("table of %d traces x %d steps exceeds %d cells: %w",
			numTraces, timeSteps, maxCells, domain.ErrInvalidArgument)
	}
	return nil
}

// PriceTraces generates numTraces independent runs of timeSteps transitions each.
//
// Every row gets a fresh process from newProcess and a fresh start state from
// newStart; states are mapped to scalars with project. The result has shape
// (numTraces, timeSteps+1) and column 0 holds the projected start states.
// If any row fails, no table is returned. Tables larger than MaxCells are
// rejected with domain.ErrInvalidArgument before any work starts.
func PriceTraces[S any](
	ctx context.Context,
	newProcess func() ports.Process[S],
	newStart func() S,
	timeSteps, numTraces int,
	project func(S) float64,
	opts ...Option,
) (domain.Table, error) {
	if err := CheckShape(timeSteps, numTraces, MaxCells); err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}

	cfg.logger.Debug("generating traces",
		"process", cfg.label,
		"time_steps", timeSteps,
		"num_traces", numTraces,
		"seed", cfg.seed,
		"parallelism", cfg.parallelism,
	)

	table := make(domain.Table, numTraces)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)

	for i := range numTraces {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			stream := Simulate(newProcess(), newStart(), sampler.NewRowSource(cfg.seed, i))
			row, err := collectRow(gctx, cfg, i, stream, timeSteps, project)
			if err != nil {
				return fmt.Errorf("trace %d: %w", i, err)
			}
			table[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early on cancellation without any row failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func collectRow[S any](
	ctx context.Context,
	cfg *config,
	trace int,
	stream *Stream[S],
	timeSteps int,
	project func(S) float64,
) ([]float64, error) {
	row := make([]float64, 0, timeSteps+1)
	for step := 0; step <= timeSteps; step++ {
		if step%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		state, err := stream.Next()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		value := project(state)
		row = append(row, value)

		if step > 0 && cfg.hooks.OnStep != nil {
			cfg.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep, Process: cfg.label},
				Trace:     trace,
				Step:      step,
				Value:     value,
			})
		}
	}

	if cfg.hooks.OnTraceComplete != nil {
		cfg.hooks.OnTraceComplete(ctx, &domain.TraceEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTraceComplete, Process: cfg.label},
			Trace:     trace,
			Steps:     timeSteps,
			Final:     row[len(row)-1],
		})
	}
	return row, nil
}
