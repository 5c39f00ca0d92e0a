package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"consorcio-simulator/domain"
	"consorcio-simulator/format"
)

const (
	defaultExplanationModel = "gemini-2.0-flash"
	explanationTimeout      = 30 * time.Second
)

// Explainer turns a simulation into a short text for the customer.
type Explainer interface {
	ExplainSimulation(ctx context.Context, sim domain.Simulation) string
}

type AIService struct {
	client  *genai.Client
	model   string
	enabled bool
	logger  *slog.Logger
}

// NewAIService returns an explainer backed by Gemini. Without an API key, or
// when the client cannot be built, it only produces the fallback text.
func NewAIService(ctx context.Context, apiKey, model string, logger *slog.Logger) *AIService {
	if model == "" {
		model = defaultExplanationModel
	}
	s := &AIService{model: model, logger: logger}
	if apiKey == "" {
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("genai client unavailable, using fallback explanations", "error", err)
		return s
	}
	s.client = client
	s.enabled = true
	return s
}

// ExplainSimulation generates a Portuguese explanation of the simulation.
func (s *AIService) ExplainSimulation(ctx context.Context, sim domain.Simulation) string {
	if !s.enabled {
		return FallbackExplanation(sim)
	}

	ctx, cancel := context.WithTimeout(ctx, explanationTimeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(simulationPrompt(sim)), config)
	if err != nil {
		s.logger.Warn("explanation generation failed", "simulation_id", sim.ID, "error", err)
		return FallbackExplanation(sim)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackExplanation(sim)
	}
	return text
}

const systemPrompt = "Você é um assessor financeiro especializado em consórcios no Brasil. " +
	"Explica simulações de forma clara, objetiva e em português, sempre citando os valores em reais."

func simulationPrompt(sim domain.Simulation) string {
	in, sum := sim.Input, sim.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "Analise esta simulação de consórcio e gere uma explicação de 3 a 4 frases.\n\n")
	fmt.Fprintf(&b, "CONTRATO:\n")
	fmt.Fprintf(&b, "- Crédito: %s\n", format.BRL(in.CreditValue))
	fmt.Fprintf(&b, "- Prazo: %d meses, contemplação no mês %d\n", in.TotalMonths, in.ContemplationMonth)
	fmt.Fprintf(&b, "- Taxas somadas: %s\n", format.Percent(sum.PeriodRate))
	fmt.Fprintf(&b, "- Índice de correção: %s (%s a.a.)\n", sum.IndexName, format.Percent(sum.IndexRate))
	fmt.Fprintf(&b, "- Lance próprio: %s\n\n", format.BRL(in.OwnBidValue))
	fmt.Fprintf(&b, "RESULTADO:\n")
	fmt.Fprintf(&b, "- Parcela cheia: %s\n", format.BRL(sum.FullInstallment))
	fmt.Fprintf(&b, "- Parcela após contemplação: %s\n", format.BRL(sum.PostContemplationInstallment))
	fmt.Fprintf(&b, "- Total pago: %s\n", format.BRL(sum.TotalCost))
	fmt.Fprintf(&b, "- Crédito corrigido: %s\n", format.BRL(sum.CorrectedCreditValue))
	fmt.Fprintf(&b, "- Custo real: %s\n", format.BRL(sum.RealCost))
	if lev := sim.Leverage; lev != nil {
		fmt.Fprintf(&b, "\nALAVANCAGEM:\n")
		fmt.Fprintf(&b, "- Valor investido: %s por %d meses a %s a.a.\n", format.BRL(lev.InvestedAmount), lev.InvestMonths, format.Percent(lev.GrossRate))
		fmt.Fprintf(&b, "- Imposto de renda: %s (%s)\n", format.BRL(lev.TaxAmount), format.Percent(lev.TaxRate))
		fmt.Fprintf(&b, "- Resultado da alavancagem: %s\n", format.BRL(lev.NetResult))
	}
	return b.String()
}

// FallbackExplanation is the deterministic text used when no model is
// available.
func FallbackExplanation(sim domain.Simulation) string {
	sum := sim.Summary
	text := fmt.Sprintf(
		"Com crédito de %s em %d meses, a parcela cheia é de %s e o custo real do consórcio, descontado o crédito corrigido pelo %s, é de %s.",
		format.BRL(sim.Input.CreditValue), sim.Input.TotalMonths,
		format.BRL(sum.FullInstallment), sum.IndexName, format.BRL(sum.RealCost),
	)
	lev := sim.Leverage
	if lev == nil {
		return text
	}
	if lev.Outperforms {
		return text + fmt.Sprintf(
			" Investindo o crédito por %d meses, o montante líquido supera o custo real em %s.",
			lev.InvestMonths, format.BRL(lev.NetResult),
		)
	}
	return text + fmt.Sprintf(
		" Investindo o crédito por %d meses, o montante líquido fica %s abaixo do custo real.",
		lev.InvestMonths, format.BRL(-lev.NetResult),
	)
}
