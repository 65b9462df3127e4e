package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSimulationStoreContract runs a suite of tests to verify that a SimulationStore
// implementation adheres to the defined interface contract.
func RunSimulationStoreContract(t *testing.T, store SimulationStore) {
	ctx := context.Background()
	simID := "contract-test-sim-" + time.Now().Format("20060102150405")

	newSim := func(id string) *domain.Simulation {
		seed := uint64(42)
		return &domain.Simulation{
			ID: id,
			Request: domain.SimulationRequest{
				Process:    domain.ProcessLevel,
				StartPrice: 100,
				TimeSteps:  2,
				NumTraces:  2,
				Params:     map[string]any{"level": 100},
				Seed:       &seed,
			},
			Seed:      seed,
			Table:     domain.Table{{100, 101, 100}, {100, 99, 98}},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		sim := newSim(simID)

		err := store.Save(ctx, sim)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, simID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sim.ID, loaded.ID)
		assert.Equal(t, sim.Seed, loaded.Seed)
		assert.Equal(t, sim.Table, loaded.Table)
		assert.Equal(t, sim.Request.Process, loaded.Request.Process)
		assert.True(t, sim.CreatedAt.Equal(loaded.CreatedAt))
		// JSON persistence may turn ints into float64, so only check presence.
		assert.NotNil(t, loaded.Request.Params["level"])
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, simID)
		require.NoError(t, err)
		loaded.Table[0][0] = -1

		again, err := store.Load(ctx, simID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, again.Table[0][0], "mutating a loaded table must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+simID)
		assert.ErrorIs(t, err, domain.ErrSimulationNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, newSim(simID))
		require.NoError(t, err)

		err = store.Delete(ctx, simID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, simID)
		assert.ErrorIs(t, err, domain.ErrSimulationNotFound, "Load after Delete should return ErrSimulationNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := simID + "-1"
		id2 := simID + "-2"
		_ = store.Save(ctx, newSim(id1))
		_ = store.Save(ctx, newSim(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
