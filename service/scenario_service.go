package service

import (
	"errors"
	"log/slog"
	"sort"

	"consorcio-simulator/domain"
)

var ErrNoViableScenario = errors.New("nenhum mês de contemplação viável para o lance informado")

type ScenarioService struct {
	simulations *SimulationService
	logger      *slog.Logger
}

func NewScenarioService(simulations *SimulationService, logger *slog.Logger) *ScenarioService {
	return &ScenarioService{simulations: simulations, logger: logger}
}

// CompareContemplation evaluates the contract for every contemplation month
// in the requested range and ranks the outcomes, best first.
func (s *ScenarioService) CompareContemplation(
	input domain.ScenarioInput,
) (domain.ScenarioResult, error) {

	if err := ValidateScenario(input); err != nil {
		return domain.ScenarioResult{}, err
	}

	leveraged := input.Contract.Strategy == domain.StrategyLeveraged
	scenarios := []domain.ContemplationScenario{}

	for month := input.MinContemplationMonth; month <= input.MaxContemplationMonth; month++ {
		contract := input.Contract
		contract.ContemplationMonth = month

		_, summary, lev, err := s.simulations.Calculate(contract)
		if err != nil {
			s.logger.Warn("skipping contemplation month", "month", month, "error", err)
			continue
		}

		sc := domain.ContemplationScenario{
			ContemplationMonth:           month,
			PostContemplationInstallment: summary.PostContemplationInstallment,
			TotalPaid:                    summary.TotalCost,
			RealCost:                     summary.RealCost,
		}
		if lev != nil {
			net := lev.NetResult
			sc.NetResult = &net
		}
		scenarios = append(scenarios, sc)
	}

	if len(scenarios) == 0 {
		return domain.ScenarioResult{}, ErrNoViableScenario
	}

	scoreScenarios(scenarios, leveraged)

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Score > scenarios[j].Score
	})

	return domain.ScenarioResult{
		RecommendedMonth: scenarios[0].ContemplationMonth,
		Scenarios:        scenarios,
	}, nil
}

// scoreScenarios grades each scenario from 0 to 10: lower real cost is
// better, or a higher net leverage result under the leveraged strategy.
func scoreScenarios(scenarios []domain.ContemplationScenario, leveraged bool) {
	metric := func(sc domain.ContemplationScenario) float64 {
		if leveraged && sc.NetResult != nil {
			return *sc.NetResult
		}
		return -sc.RealCost
	}

	best, worst := metric(scenarios[0]), metric(scenarios[0])
	for _, sc := range scenarios[1:] {
		m := metric(sc)
		if m > best {
			best = m
		}
		if m < worst {
			worst = m
		}
	}

	spread := best - worst
	for i := range scenarios {
		score := 10.0
		if spread > 0 {
			score = 10.0 * (metric(scenarios[i]) - worst) / spread
		}
		scenarios[i].Score = score
		scenarios[i].Reason = scenarioReason(scenarios[i], leveraged)
	}
}

func scenarioReason(sc domain.ContemplationScenario, leveraged bool) string {
	if leveraged && sc.NetResult != nil {
		if *sc.NetResult >= 0 {
			return "Alavancagem supera o custo real do consórcio"
		}
		return "Alavancagem não cobre o custo real do consórcio"
	}
	if sc.RealCost <= 0 {
		return "Crédito corrigido cobre todo o custo do consórcio"
	}
	return "Custo real positivo após correção do crédito"
}
