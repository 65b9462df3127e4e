package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/pricewalk/pkg/adapters/redis"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	ports.RunSimulationStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := redis.NewFromClient(client,
		redis.WithTTL(time.Second),
		redis.WithClock(func() time.Time { return clock }),
	)
	ctx := context.Background()

	sim := &domain.Simulation{ID: "sim-ttl", Table: domain.Table{{1}}}
	require.NoError(t, store.Save(ctx, sim))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "sim-ttl")

	// Expire the key in miniredis and move the index clock past the TTL.
	mr.FastForward(2 * time.Second)
	clock = clock.Add(2 * time.Second)

	_, err = store.Load(ctx, "sim-ttl")
	assert.ErrorIs(t, err, domain.ErrSimulationNotFound)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := redis.New(mr.Addr(), "", 0, redis.WithPrefix("test:"))
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Save(ctx, &domain.Simulation{ID: "abc"}))

	assert.True(t, mr.Exists("test:abc"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"abc"))
}
