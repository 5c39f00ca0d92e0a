package service

import (
	"errors"
	"testing"

	"consorcio-simulator/domain"
)

func newTestScenarioService() *ScenarioService {
	return NewScenarioService(newTestSimulationService(nil, nil, nil), discardLogger())
}

func TestCompareContemplation_Traditional(t *testing.T) {
	res, err := newTestScenarioService().CompareContemplation(domain.ScenarioInput{
		Contract:              referenceContract(),
		MinContemplationMonth: 1,
		MaxContemplationMonth: 36,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Scenarios) != 36 {
		t.Fatalf("expected 36 scenarios, got %d", len(res.Scenarios))
	}
	if res.RecommendedMonth != res.Scenarios[0].ContemplationMonth {
		t.Errorf("recommended month must be the best ranked scenario")
	}
	for i := 1; i < len(res.Scenarios); i++ {
		if res.Scenarios[i].Score > res.Scenarios[i-1].Score {
			t.Fatalf("scenarios not sorted by score at %d", i)
		}
	}
	best := res.Scenarios[0]
	for _, sc := range res.Scenarios {
		if sc.RealCost < best.RealCost-tolerance {
			t.Errorf("month %d has lower real cost than the recommendation", sc.ContemplationMonth)
		}
		if sc.NetResult != nil {
			t.Errorf("traditional scenarios carry no leverage result")
		}
		if sc.Score < 0 || sc.Score > 10 {
			t.Errorf("score %.2f out of range", sc.Score)
		}
	}
	if best.Score != 10 {
		t.Errorf("expected best score 10, got %.2f", best.Score)
	}
}

func TestCompareContemplation_Leveraged(t *testing.T) {
	res, err := newTestScenarioService().CompareContemplation(domain.ScenarioInput{
		Contract:              leveragedContract(),
		MinContemplationMonth: 6,
		MaxContemplationMonth: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	best := res.Scenarios[0]
	if best.NetResult == nil {
		t.Fatalf("expected leverage result on leveraged scenarios")
	}
	for _, sc := range res.Scenarios {
		if *sc.NetResult > *best.NetResult+tolerance {
			t.Errorf("month %d beats the recommendation", sc.ContemplationMonth)
		}
	}
}

func TestCompareContemplation_SkipsUnviableMonths(t *testing.T) {
	contract := referenceContract()
	// Only viable while the outstanding balance is at least the bid.
	contract.OwnBidValue = 100000
	contract.ContemplationMonth = 0

	res, err := newTestScenarioService().CompareContemplation(domain.ScenarioInput{
		Contract:              contract,
		MinContemplationMonth: 0,
		MaxContemplationMonth: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sc := range res.Scenarios {
		_, summary, err := NewScheduleService().CalculateSchedule(func() domain.ContractInput {
			c := contract
			c.ContemplationMonth = sc.ContemplationMonth
			return c
		}())
		if err != nil {
			t.Errorf("month %d should have been skipped", sc.ContemplationMonth)
			continue
		}
		if summary.CorrectedOutstandingBalance < contract.OwnBidValue {
			t.Errorf("month %d accepted a bid above the balance", sc.ContemplationMonth)
		}
	}
	if len(res.Scenarios) == 0 || len(res.Scenarios) == 61 {
		t.Errorf("expected some months to be skipped, got %d scenarios", len(res.Scenarios))
	}
}

func TestCompareContemplation_NoViableMonth(t *testing.T) {
	contract := referenceContract()
	contract.OwnBidValue = 500000

	_, err := newTestScenarioService().CompareContemplation(domain.ScenarioInput{
		Contract:              contract,
		MinContemplationMonth: 0,
		MaxContemplationMonth: 12,
	})
	if !errors.Is(err, ErrNoViableScenario) {
		t.Fatalf("expected ErrNoViableScenario, got %v", err)
	}
}

func TestCompareContemplation_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"negative", -1, 10},
		{"inverted", 20, 10},
		{"beyond term", 0, 121},
		{"too wide", 0, MaxScenarioRangeMonths + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract := referenceContract()
			contract.TotalMonths = 240
			if tt.name == "beyond term" {
				contract.TotalMonths = 120
			}
			_, err := newTestScenarioService().CompareContemplation(domain.ScenarioInput{
				Contract:              contract,
				MinContemplationMonth: tt.min,
				MaxContemplationMonth: tt.max,
			})
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
