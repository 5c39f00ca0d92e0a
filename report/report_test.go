package report

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"consorcio-simulator/domain"
	"consorcio-simulator/service"
)

func referenceSimulation(t *testing.T, leveraged bool) domain.Simulation {
	t.Helper()

	input := domain.ContractInput{
		CreditValue:        100000,
		AdminFeeRate:       0.18,
		ReserveFundRate:    0.02,
		Strategy:           domain.StrategyTraditional,
		TotalMonths:        120,
		ContemplationMonth: 12,
		AssetType:          domain.AssetRealEstate,
	}
	if leveraged {
		input.Strategy = domain.StrategyLeveraged
		input.Investment = &domain.InvestmentInput{
			Type:       domain.InvestmentFixed,
			AnnualRate: 0.12,
		}
	}

	schedule, summary, err := service.NewScheduleService().CalculateSchedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sim := domain.Simulation{
		ID:        "01HZXREPORT",
		Input:     input,
		Schedule:  schedule,
		Summary:   summary,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if leveraged {
		lev := service.NewLeverageService().Analyze(summary, domain.LeverageInput{
			ContemplationMonth: input.ContemplationMonth,
			TotalMonths:        input.TotalMonths,
			Investment:         *input.Investment,
		})
		sim.Leverage = &lev
	}
	return sim
}

var tableRow = regexp.MustCompile(`(?m)^\| \d+ \|`)

func TestMarkdown_Traditional(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, referenceSimulation(t, false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := buf.String()

	for _, want := range []string{
		"# Resultado da Simulação",
		"**Prazo em anos:** 10,00",
		"INCC (6,50% a.a.)",
		"**1ª Parcela:** R$ 1.000,00",
		"**Total pago:** R$ 162.401,50",
		"**Crédito corrigido na contemplação:** R$ 106.500,00",
		"**Custo real:** R$ 55.901,50",
		"**Parcela após contemplação:**",
		"| 1 | R$ 1.000,00 | R$ 0,00 | R$ 1.000,00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
	if strings.Contains(md, "Análise de Alavancagem") {
		t.Error("traditional report must not include the leverage section")
	}
	if rows := len(tableRow.FindAllString(md, -1)); rows != 120 {
		t.Errorf("expected 120 schedule rows, got %d", rows)
	}
}

func TestMarkdown_Leveraged(t *testing.T) {
	sim := referenceSimulation(t, true)
	sim.Explanation = "Texto explicativo."

	var buf bytes.Buffer
	if err := Markdown(&buf, sim); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := buf.String()

	for _, want := range []string{
		"## Análise de Alavancagem",
		"**Prazo do investimento:** 108 meses",
		"**Valor investido:** R$ 106.500,00",
		"**Imposto de renda:**",
		"(15,00%)",
		"## Análise\n\nTexto explicativo.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, referenceSimulation(t, false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Simulação 01HZXREPORT</title>",
		"<h1>Resultado da Simulação</h1>",
		"<table>",
		"R$ 1.000,00</td>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("html does not contain %q", want)
		}
	}
}

func TestScenarios(t *testing.T) {
	net := -1234.5
	res := domain.ScenarioResult{
		RecommendedMonth: 12,
		Scenarios: []domain.ContemplationScenario{
			{ContemplationMonth: 12, PostContemplationInstallment: 1065, TotalPaid: 162401.5, RealCost: 55901.5, Score: 10},
			{ContemplationMonth: 24, PostContemplationInstallment: 1100, TotalPaid: 170000, RealCost: 60000, NetResult: &net, Score: 0},
		},
	}

	var buf bytes.Buffer
	if err := Scenarios(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := buf.String()

	for _, want := range []string{
		"**Mês recomendado:** 12",
		"| 12 | R$ 1.065,00 | R$ 162.401,50 | R$ 55.901,50 | - | 10,00 |",
		"| 24 | R$ 1.100,00 | R$ 170.000,00 | R$ 60.000,00 | R$ -1.234,50 | 0,00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("scenarios do not contain %q", want)
		}
	}
}

func TestNewView(t *testing.T) {
	v := NewView(referenceSimulation(t, true))

	if v.ID != "01HZXREPORT" || len(v.Schedule) != 120 {
		t.Fatalf("unexpected view %s with %d rows", v.ID, len(v.Schedule))
	}
	if got := v.Summary.RealCost.String(); got != "55901.5" {
		t.Errorf("expected real cost 55901.5, got %s", got)
	}
	if got := v.Summary.PostContemplationInstallment.StringFixed(2); got != "1065.00" {
		t.Errorf("expected post contemplation installment 1065.00, got %s", got)
	}
	if v.Summary.PostContemplationTotal == nil {
		t.Fatal("expected post contemplation total")
	}
	if got := v.Summary.Display["index"]; got != "INCC (6,50% a.a.)" {
		t.Errorf("unexpected index display %q", got)
	}
	if got := v.Summary.Display["total_paid"]; got != "R$ 162.401,50" {
		t.Errorf("total paid displays the total cost, got %q", got)
	}
	if v.Leverage == nil || v.Leverage.InvestedAmount.StringFixed(2) != "106500.00" {
		t.Errorf("unexpected leverage view %+v", v.Leverage)
	}
}
