package trace

import (
	"io"
	"log/slog"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// Option defines a functional option for configuring PriceTraces.
type Option func(*config)

type config struct {
	seed        uint64
	seeded      bool
	parallelism int
	label       string
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		parallelism: 1,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSeed fixes the seed rows are derived from. Without it a random seed is used.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithParallelism sets how many rows may be generated at once (minimum 1).
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithLabel names the process in lifecycle events and logs.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
