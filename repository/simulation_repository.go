package repository

import (
	"context"
	"errors"

	"consorcio-simulator/domain"
)

var ErrSimulationNotFound = errors.New("simulação não encontrada")

type SimulationRepository interface {
	Save(ctx context.Context, sim domain.Simulation) error
	FindByID(ctx context.Context, id string) (domain.Simulation, error)
}
