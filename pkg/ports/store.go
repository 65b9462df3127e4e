package ports

import (
	"context"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// SimulationStore defines the interface for persisting generated simulations.
type SimulationStore interface {
	// Save persists the simulation under its ID.
	Save(ctx context.Context, sim *domain.Simulation) error

	// Load retrieves a simulation by ID.
	// Returns domain.ErrSimulationNotFound if it does not exist.
	Load(ctx context.Context, id string) (*domain.Simulation, error)

	// Delete removes a simulation. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored simulations.
	List(ctx context.Context) ([]string, error)
}
