package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/pricewalk/pkg/adapters/memory"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSimulationStoreContract(t, store)
}

func TestMemoryStore_ListOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.Simulation{ID: "late", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, &domain.Simulation{ID: "early", CreatedAt: base}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late"}, ids)
}

func TestMemoryStore_SaveIsolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	sim := &domain.Simulation{ID: "x", Table: domain.Table{{1, 2}}}
	require.NoError(t, store.Save(ctx, sim))
	sim.Table[0][0] = 99

	loaded, err := store.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loaded.Table[0][0])
}
