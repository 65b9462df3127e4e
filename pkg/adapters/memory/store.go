package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// Store implements ports.SimulationStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Simulation
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Simulation),
	}
}

// Save persists the simulation in memory.
func (s *Store) Save(ctx context.Context, sim *domain.Simulation) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := sim.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sim.ID] = copied
	return nil
}

// Load retrieves the simulation from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Simulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sim, ok := s.data[id]
	if !ok {
		return nil, domain.ErrSimulationNotFound
	}

	// Copy on read so callers can't mutate the stored table through the pointer
	return sim.Clone(), nil
}

// Delete removes the simulation.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored simulation IDs, oldest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sims := make([]*domain.Simulation, 0, len(s.data))
	for _, sim := range s.data {
		sims = append(sims, sim)
	}
	sort.Slice(sims, func(i, j int) bool {
		if sims[i].CreatedAt.Equal(sims[j].CreatedAt) {
			return sims[i].ID < sims[j].ID
		}
		return sims[i].CreatedAt.Before(sims[j].CreatedAt)
	})

	ids := make([]string, len(sims))
	for i, sim := range sims {
		ids[i] = sim.ID
	}
	return ids, nil
}
