package repository

import (
	"context"
	"sync"

	"consorcio-simulator/domain"
)

// SimulationRepositoryMemory keeps the most recent simulations of this
// process. Oldest entries are evicted once capacity is reached.
type SimulationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	data     map[string]domain.Simulation
}

// NewSimulationRepositoryMemory creates an in-memory repository holding at
// most capacity simulations (unbounded when capacity <= 0).
func NewSimulationRepositoryMemory(capacity int) *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		capacity: capacity,
		data:     make(map[string]domain.Simulation),
	}
}

// Save stores the simulation in memory.
func (r *SimulationRepositoryMemory) Save(_ context.Context, sim domain.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[sim.ID]; !exists {
		r.order = append(r.order, sim.ID)
	}
	r.data[sim.ID] = sim

	for r.capacity > 0 && len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.data, oldest)
	}
	return nil
}

func (r *SimulationRepositoryMemory) FindByID(_ context.Context, id string) (domain.Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sim, ok := r.data[id]
	if !ok {
		return domain.Simulation{}, ErrSimulationNotFound
	}
	return sim, nil
}
