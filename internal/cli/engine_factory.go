package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/pricewalk"
	"github.com/aretw0/pricewalk/internal/config"
	"github.com/aretw0/pricewalk/pkg/adapters/memory"
	"github.com/aretw0/pricewalk/pkg/adapters/redis"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
)

// newStore builds the SimulationStore selected by the config.
// The returned close function releases backend connections.
func newStore(cfg config.Store) (ports.SimulationStore, func() error, error) {
	switch cfg.Driver {
	case "", config.DriverMemory:
		return memory.NewStore(), func() error { return nil }, nil
	case config.DriverRedis:
		opts := []redis.Option{redis.WithTTL(time.Duration(cfg.Redis.TTL))}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("store driver %q: %w", cfg.Driver, domain.ErrInvalidArgument)
	}
}

// newEngine wires the engine with the configured store, logger and hooks.
func newEngine(cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*pricewalk.Engine, func() error, error) {
	store, closeStore, err := newStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	merged := createDebugHooks(logger)
	for _, h := range hooks {
		merged = merged.Merge(h)
	}

	engine := pricewalk.New(
		pricewalk.WithStore(store),
		pricewalk.WithLogger(logger),
		pricewalk.WithParallelism(cfg.Simulation.Parallelism),
		pricewalk.WithLifecycleHooks(merged),
	)
	return engine, closeStore, nil
}
