// Package cli implements the consorcio command line: the HTTP server and
// one-shot simulations printed to the terminal.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"consorcio-simulator/config"
	"consorcio-simulator/domain"
	"consorcio-simulator/repository"
	"consorcio-simulator/service"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "server")
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&scenariosCmd{}, "simulation")
}

// contractFlags collects a contract from the command line. Rates are typed
// as percentages, the way they appear on a consórcio proposal.
type contractFlags struct {
	credit        float64
	adminFee      float64
	reserveFund   float64
	insurance     float64
	strategy      string
	months        int
	contemplation int
	asset         string
	bid           float64

	investment    string
	annualRate    float64
	cdiPercentage float64
	estimatedCDI  float64
}

func (c *contractFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.credit, "credit", 0, "Valor do crédito (R$)")
	f.Float64Var(&c.adminFee, "admin-fee", 0, "Taxa de administração (%)")
	f.Float64Var(&c.reserveFund, "reserve-fund", 0, "Fundo de reserva (%)")
	f.Float64Var(&c.insurance, "insurance", 0, "Seguro prestamista (%)")
	f.StringVar(&c.strategy, "strategy", string(domain.StrategyTraditional), "Estratégia: traditional ou leveraged")
	f.IntVar(&c.months, "months", 1, "Prazo total (meses)")
	f.IntVar(&c.contemplation, "contemplation", 0, "Prazo de contemplação (meses)")
	f.StringVar(&c.asset, "asset", string(domain.AssetRealEstate), "Tipo de consórcio: real_estate ou vehicle")
	f.Float64Var(&c.bid, "bid", 0, "Lance com recursos próprios (R$)")
	f.StringVar(&c.investment, "investment", string(domain.InvestmentFixed), "Investimento (leveraged): fixed, inflation_linked ou cdi_linked")
	f.Float64Var(&c.annualRate, "rate", 0, "Taxa de juros anual (%), investimentos fixed e inflation_linked")
	f.Float64Var(&c.cdiPercentage, "cdi-percentage", 100, "% do CDI, investimento cdi_linked")
	f.Float64Var(&c.estimatedCDI, "cdi", 0, "CDI estimado ao ano (%)")
}

func (c *contractFlags) Contract() domain.ContractInput {
	in := domain.ContractInput{
		CreditValue:        c.credit,
		AdminFeeRate:       c.adminFee / 100,
		ReserveFundRate:    c.reserveFund / 100,
		InsuranceRate:      c.insurance / 100,
		Strategy:           domain.Strategy(c.strategy),
		TotalMonths:        c.months,
		ContemplationMonth: c.contemplation,
		AssetType:          domain.AssetType(c.asset),
		OwnBidValue:        c.bid,
	}
	if in.Strategy == domain.StrategyLeveraged {
		in.Investment = &domain.InvestmentInput{
			Type:          domain.InvestmentType(c.investment),
			AnnualRate:    c.annualRate / 100,
			CDIPercentage: c.cdiPercentage / 100,
			EstimatedCDI:  c.estimatedCDI / 100,
		}
	}
	return in
}

// newServices builds the services used by one-shot commands: in-memory
// collaborators and, when explain is set, the configured explainer.
func newServices(ctx context.Context, explain bool) (*service.SimulationService, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.NewLogger(os.Stderr)

	var explainer service.Explainer
	if explain {
		explainer = service.NewAIService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	}
	sims := service.NewSimulationService(
		repository.NewSimulationRepositoryMemory(1),
		repository.NewMemoryCache(),
		cfg.CacheTTL,
		explainer,
		logger,
	)
	return sims, logger, nil
}

// exitStatus reports err on stderr and picks the matching exit status.
func exitStatus(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it as is when plain
// is set or rendering fails.
func printMarkdown(w io.Writer, md string, plain bool) {
	if !plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}
