package repository

import (
	"context"
	"errors"
	"testing"

	"consorcio-simulator/domain"
)

func TestSimulationRepositoryMemory_SaveFind(t *testing.T) {
	repo := NewSimulationRepositoryMemory(0)
	ctx := context.Background()

	sim := domain.Simulation{ID: "01ABC", Explanation: "primeira"}
	if err := repo.Save(ctx, sim); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, "01ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Explanation != "primeira" {
		t.Errorf("unexpected simulation %+v", got)
	}

	sim.Explanation = "atualizada"
	_ = repo.Save(ctx, sim)
	got, _ = repo.FindByID(ctx, "01ABC")
	if got.Explanation != "atualizada" {
		t.Errorf("save should overwrite, got %q", got.Explanation)
	}
}

func TestSimulationRepositoryMemory_NotFound(t *testing.T) {
	repo := NewSimulationRepositoryMemory(10)

	_, err := repo.FindByID(context.Background(), "nope")
	if !errors.Is(err, ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
}

func TestSimulationRepositoryMemory_EvictsOldest(t *testing.T) {
	repo := NewSimulationRepositoryMemory(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_ = repo.Save(ctx, domain.Simulation{ID: id})
	}

	if _, err := repo.FindByID(ctx, "a"); !errors.Is(err, ErrSimulationNotFound) {
		t.Errorf("expected oldest simulation to be evicted")
	}
	for _, id := range []string{"b", "c"} {
		if _, err := repo.FindByID(ctx, id); err != nil {
			t.Errorf("expected %s to be kept: %v", id, err)
		}
	}
}
