package service

import (
	"context"
	"strings"
	"testing"

	"consorcio-simulator/domain"
)

func TestAIService_DisabledUsesFallback(t *testing.T) {
	svc := NewAIService(context.Background(), "", "", discardLogger())

	_, summary, err := NewScheduleService().CalculateSchedule(referenceContract())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sim := domain.Simulation{ID: "sim", Input: referenceContract(), Summary: summary}

	got := svc.ExplainSimulation(context.Background(), sim)
	if got != FallbackExplanation(sim) {
		t.Errorf("expected fallback explanation, got %q", got)
	}
	for _, want := range []string{"R$ 100.000,00", "120 meses", "R$ 1.000,00", "INCC", "R$ 55.901,50"} {
		if !strings.Contains(got, want) {
			t.Errorf("explanation %q does not mention %q", got, want)
		}
	}
}

func TestFallbackExplanation_Leverage(t *testing.T) {
	sim := domain.Simulation{
		Input:    referenceContract(),
		Summary:  domain.ScheduleSummary{IndexName: "INCC", RealCost: 1000},
		Leverage: &domain.LeverageResult{InvestMonths: 108, NetResult: 2500, Outperforms: true},
	}
	if got := FallbackExplanation(sim); !strings.Contains(got, "supera o custo real em R$ 2.500,00") {
		t.Errorf("unexpected explanation %q", got)
	}

	sim.Leverage = &domain.LeverageResult{InvestMonths: 108, NetResult: -2500}
	if got := FallbackExplanation(sim); !strings.Contains(got, "R$ 2.500,00 abaixo do custo real") {
		t.Errorf("unexpected explanation %q", got)
	}
}

func TestSimulationPrompt(t *testing.T) {
	sim := domain.Simulation{
		Input:    leveragedContract(),
		Summary:  domain.ScheduleSummary{IndexName: "INCC", IndexRate: 0.065, PeriodRate: 0.2},
		Leverage: &domain.LeverageResult{InvestedAmount: 106500, InvestMonths: 108, GrossRate: 0.1065, TaxRate: 0.15},
	}
	prompt := simulationPrompt(sim)
	for _, want := range []string{"INCC (6,50% a.a.)", "Taxas somadas: 20,00%", "ALAVANCAGEM", "108 meses a 10,65% a.a."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt does not contain %q", want)
		}
	}
}
