package cli

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/pricewalk/internal/config"
	"github.com/aretw0/pricewalk/internal/logging"
	"github.com/aretw0/pricewalk/pkg/adapters/memory"
	"github.com/aretw0/pricewalk/pkg/adapters/redis"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("Memory by default", func(t *testing.T) {
		store, closeStore, err := newStore(config.Store{})
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, closeStore())
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default().Store
		cfg.Driver = config.DriverRedis
		cfg.Redis.Addr = mr.Addr()

		store, closeStore, err := newStore(cfg)
		require.NoError(t, err)
		defer closeStore()

		rs, ok := store.(*redis.Store)
		require.True(t, ok)
		assert.NoError(t, rs.Ping(context.Background()))
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, _, err := newStore(config.Store{Driver: "sqlite"})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestNewEngine_UsesConfiguredStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Store.Driver = config.DriverRedis
	cfg.Store.Redis.Addr = mr.Addr()

	engine, closeStore, err := newEngine(cfg, logging.NewNop())
	require.NoError(t, err)
	defer closeStore()

	seed := uint64(5)
	sim, err := engine.Simulate(context.Background(), domain.SimulationRequest{
		Process: domain.ProcessMomentum, StartPrice: 10, TimeSteps: 5, NumTraces: 2, Seed: &seed,
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists(config.Default().Store.Redis.Prefix+sim.ID))
}
