package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/oklog/ulid/v2"

	"consorcio-simulator/domain"
	"consorcio-simulator/repository"
)

const cacheKeyPrefix = "consorcio:simulation:"

type SimulationService struct {
	schedule  *ScheduleService
	leverage  *LeverageService
	repo      repository.SimulationRepository
	cache     repository.CacheRepository
	cacheTTL  time.Duration
	explainer Explainer
	logger    *slog.Logger
	now       func() time.Time
}

// NewSimulationService wires the calculators with their collaborators. A nil
// explainer leaves simulations without explanation text.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	explainer Explainer,
	logger *slog.Logger,
) *SimulationService {
	return &SimulationService{
		schedule:  NewScheduleService(),
		leverage:  NewLeverageService(),
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		explainer: explainer,
		logger:    logger,
		now:       time.Now,
	}
}

// Calculate runs the schedule and, for the leveraged strategy, the leverage
// analysis. It has no side effects.
func (s *SimulationService) Calculate(
	input domain.ContractInput,
) (domain.Schedule, domain.ScheduleSummary, *domain.LeverageResult, error) {

	schedule, summary, err := s.schedule.CalculateSchedule(input)
	if err != nil {
		return nil, domain.ScheduleSummary{}, nil, err
	}

	if input.Strategy != domain.StrategyLeveraged || input.Investment == nil {
		return schedule, summary, nil, nil
	}

	lev := s.leverage.Analyze(summary, domain.LeverageInput{
		OwnBidValue:        input.OwnBidValue,
		ContemplationMonth: input.ContemplationMonth,
		TotalMonths:        input.TotalMonths,
		Investment:         *input.Investment,
	})
	return schedule, summary, &lev, nil
}

// Simulate validates the contract, computes it and records the result.
// Identical inputs are served from the cache.
func (s *SimulationService) Simulate(
	ctx context.Context,
	input domain.ContractInput,
) (domain.Simulation, error) {

	if err := ValidateContract(input); err != nil {
		return domain.Simulation{}, err
	}

	key, keyErr := CacheKey(input)
	if keyErr == nil {
		if sim, ok := s.cached(ctx, key); ok {
			s.save(ctx, sim)
			return sim, nil
		}
	}

	schedule, summary, lev, err := s.Calculate(input)
	if err != nil {
		return domain.Simulation{}, err
	}

	sim := domain.Simulation{
		ID:        ulid.Make().String(),
		Input:     input,
		Schedule:  schedule,
		Summary:   summary,
		Leverage:  lev,
		CreatedAt: s.now().UTC(),
	}
	if s.explainer != nil {
		sim.Explanation = s.explainer.ExplainSimulation(ctx, sim)
	}

	// Guardar o resultado (não crítico se falhar)
	s.save(ctx, sim)
	if keyErr == nil {
		s.store(ctx, key, sim)
	}

	s.logger.Info("simulation computed",
		"simulation_id", sim.ID,
		"strategy", input.Strategy,
		"asset_type", input.AssetType,
		"total_months", input.TotalMonths,
		"real_cost", summary.RealCost,
	)
	return sim, nil
}

// Get returns a simulation recorded by this process.
func (s *SimulationService) Get(ctx context.Context, id string) (domain.Simulation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SimulationService) cached(ctx context.Context, key string) (domain.Simulation, bool) {
	if s.cache == nil {
		return domain.Simulation{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Simulation{}, false
	}
	var sim domain.Simulation
	if err := json.Unmarshal([]byte(raw), &sim); err != nil {
		s.logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return domain.Simulation{}, false
	}
	s.logger.Debug("simulation served from cache", "simulation_id", sim.ID)
	return sim, true
}

func (s *SimulationService) store(ctx context.Context, key string, sim domain.Simulation) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(sim)
	if err != nil {
		s.logger.Warn("failed to encode simulation for cache", "simulation_id", sim.ID, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache simulation", "simulation_id", sim.ID, "error", err)
	}
}

func (s *SimulationService) save(ctx context.Context, sim domain.Simulation) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, sim); err != nil {
		s.logger.Warn("failed to save simulation", "simulation_id", sim.ID, "error", err)
	}
}

// CacheKey fingerprints a contract input.
func CacheKey(input domain.ContractInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}
