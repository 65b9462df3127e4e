package pricewalk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/pricewalk/pkg/adapters/memory"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	"github.com/aretw0/pricewalk/pkg/sampler"
	"github.com/aretw0/pricewalk/pkg/trace"
	"github.com/google/uuid"
)

// MaxRolls bounds the number of throws of a single Roll call.
const MaxRolls = 1_000_000

// Engine is the high-level entry point for the pricewalk library.
// It builds processes from requests, runs the trace generator and keeps the results.
type Engine struct {
	store       ports.SimulationStore
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	parallelism int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom SimulationStore (default: in-memory).
func WithStore(store ports.SimulationStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithParallelism sets how many trace rows may be generated concurrently.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{parallelism: 1}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Simulate generates the table described by req, stores it and returns it.
func (e *Engine) Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.Simulation, error) {
	started := time.Now()

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	table, err := generate(ctx, req,
		trace.WithSeed(seed),
		trace.WithParallelism(e.parallelism),
		trace.WithLabel(string(req.Process)),
		trace.WithLifecycleHooks(e.hooks),
		trace.WithLogger(e.logger),
	)
	if err != nil {
		e.emit(ctx, req, "", started, err)
		e.logger.Warn("simulation failed", "process", req.Process, "err", err)
		return nil, err
	}

	sim := &domain.Simulation{
		ID:        uuid.NewString(),
		Request:   req,
		Seed:      seed,
		Table:     table,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.store.Save(ctx, sim); err != nil {
		e.emit(ctx, req, sim.ID, started, err)
		return nil, fmt.Errorf("save simulation: %w", err)
	}

	e.emit(ctx, req, sim.ID, started, nil)
	e.logger.Info("simulation complete",
		"id", sim.ID,
		"process", req.Process,
		"traces", req.NumTraces,
		"time_steps", req.TimeSteps,
		"seed", seed,
		"duration", time.Since(started),
	)
	return sim, nil
}

func (e *Engine) emit(ctx context.Context, req domain.SimulationRequest, id string, started time.Time, err error) {
	if e.hooks.OnSimulation == nil {
		return
	}
	e.hooks.OnSimulation(ctx, &domain.SimulationEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSimulation, Process: string(req.Process)},
		ID:        id,
		Traces:    req.NumTraces,
		Duration:  time.Since(started),
		Err:       err,
	})
}

// Get loads a stored simulation.
func (e *Engine) Get(ctx context.Context, id string) (*domain.Simulation, error) {
	return e.store.Load(ctx, id)
}

// List returns the IDs of stored simulations.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// Delete removes a stored simulation.
func (e *Engine) Delete(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

// Roll throws the given dice rolls times and returns the total of each throw.
func (e *Engine) Roll(ctx context.Context, sides []int, rolls int, seed *uint64) (*domain.DiceRoll, error) {
	if rolls > MaxRolls {
		return nil, fmt.Errorf("rolls %d exceeds %d: %w", rolls, MaxRolls, domain.ErrInvalidArgument)
	}

	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}

	dice, err := sampler.NewDice(sides, sampler.NewSource(s))
	if err != nil {
		return nil, err
	}
	totals, err := sampler.SampleN[int](dice, rolls)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("dice rolled", "sides", sides, "rolls", rolls, "seed", s)
	return &domain.DiceRoll{Sides: sides, Totals: totals, Seed: s}, nil
}
