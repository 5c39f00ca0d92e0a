package report

import (
	"time"

	"github.com/shopspring/decimal"

	"consorcio-simulator/domain"
	"consorcio-simulator/format"
)

// View is the rounded, display-ready form of a simulation. Money figures
// carry two decimals; rates are kept as fractions.
type View struct {
	ID          string               `json:"id"`
	Input       domain.ContractInput `json:"input"`
	Summary     SummaryView          `json:"summary"`
	Leverage    *LeverageView        `json:"leverage,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
	Schedule    []RowView            `json:"schedule"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SummaryView struct {
	IndexName                    string            `json:"index_name"`
	IndexRate                    float64           `json:"index_rate"`
	PeriodRate                   float64           `json:"period_rate"`
	TermYears                    decimal.Decimal   `json:"term_years"`
	TotalPayable                 decimal.Decimal   `json:"total_payable"`
	FullInstallment              decimal.Decimal   `json:"full_installment"`
	OutstandingBalance           decimal.Decimal   `json:"outstanding_balance"`
	RemainingPeriods             int               `json:"remaining_periods"`
	YearsElapsedToContemplation  int               `json:"years_elapsed_to_contemplation"`
	CorrectedOutstandingBalance  decimal.Decimal   `json:"corrected_outstanding_balance"`
	BalanceAfterBid              decimal.Decimal   `json:"balance_after_bid"`
	PostContemplationInstallment decimal.Decimal   `json:"post_contemplation_installment"`
	FirstInstallment             decimal.Decimal   `json:"first_installment"`
	PostContemplationTotal       *decimal.Decimal  `json:"post_contemplation_total,omitempty"`
	TotalPaid                    decimal.Decimal   `json:"total_paid"`
	CorrectedCreditValue         decimal.Decimal   `json:"corrected_credit_value"`
	ReserveFundAmount            decimal.Decimal   `json:"reserve_fund_amount"`
	TotalCost                    decimal.Decimal   `json:"total_cost"`
	RealCost                     decimal.Decimal   `json:"real_cost"`
	Display                      map[string]string `json:"display"`
}

type LeverageView struct {
	InvestMonths   int               `json:"invest_months"`
	GrossRate      float64           `json:"gross_rate"`
	TaxRate        float64           `json:"tax_rate"`
	InvestedAmount decimal.Decimal   `json:"invested_amount"`
	GrossAmount    decimal.Decimal   `json:"gross_amount"`
	GrossReturn    decimal.Decimal   `json:"gross_return"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	NetReturn      decimal.Decimal   `json:"net_return"`
	NetAmount      decimal.Decimal   `json:"net_amount"`
	NetResult      decimal.Decimal   `json:"net_result"`
	Outperforms    bool              `json:"outperforms"`
	InflationIndex string            `json:"inflation_index,omitempty"`
	Display        map[string]string `json:"display"`
}

type RowView struct {
	Index              int             `json:"index"`
	BaseAmount         decimal.Decimal `json:"base_amount"`
	MonetaryCorrection decimal.Decimal `json:"monetary_correction"`
	Total              decimal.Decimal `json:"total"`
}

// NewView rounds a simulation for display.
func NewView(sim domain.Simulation) View {
	v := View{
		ID:          sim.ID,
		Input:       sim.Input,
		Summary:     newSummaryView(sim.Summary),
		Explanation: sim.Explanation,
		Schedule:    make([]RowView, 0, len(sim.Schedule)),
		CreatedAt:   sim.CreatedAt,
	}
	for _, row := range sim.Schedule {
		v.Schedule = append(v.Schedule, RowView{
			Index:              row.Index,
			BaseAmount:         format.Round2(row.BaseAmount),
			MonetaryCorrection: format.Round2(row.MonetaryCorrection),
			Total:              format.Round2(row.Total),
		})
	}
	if sim.Leverage != nil {
		lv := newLeverageView(*sim.Leverage)
		v.Leverage = &lv
	}
	return v
}

func newSummaryView(s domain.ScheduleSummary) SummaryView {
	v := SummaryView{
		IndexName:                    s.IndexName,
		IndexRate:                    s.IndexRate,
		PeriodRate:                   s.PeriodRate,
		TermYears:                    format.Round2(s.TermYears),
		TotalPayable:                 format.Round2(s.TotalPayable),
		FullInstallment:              format.Round2(s.FullInstallment),
		OutstandingBalance:           format.Round2(s.OutstandingBalance),
		RemainingPeriods:             s.RemainingPeriods,
		YearsElapsedToContemplation:  s.YearsElapsedToContemplation,
		CorrectedOutstandingBalance:  format.Round2(s.CorrectedOutstandingBalance),
		BalanceAfterBid:              format.Round2(s.BalanceAfterBid),
		PostContemplationInstallment: format.Round2(s.PostContemplationInstallment),
		FirstInstallment:             format.Round2(s.FirstInstallment),
		TotalPaid:                    format.Round2(s.TotalPaid),
		CorrectedCreditValue:         format.Round2(s.CorrectedCreditValue),
		ReserveFundAmount:            format.Round2(s.ReserveFundAmount),
		TotalCost:                    format.Round2(s.TotalCost),
		RealCost:                     format.Round2(s.RealCost),
		Display: map[string]string{
			"index":                  s.IndexName + " (" + format.Percent(s.IndexRate) + " a.a.)",
			"term_years":             format.Decimal2(s.TermYears),
			"first_installment":      format.BRL(s.FirstInstallment),
			"full_installment":       format.BRL(s.FullInstallment),
			"total_paid":             format.BRL(s.TotalCost),
			"corrected_credit_value": format.BRL(s.CorrectedCreditValue),
			"real_cost":              format.BRL(s.RealCost),
		},
	}
	if s.PostContemplationTotal != nil {
		t := format.Round2(*s.PostContemplationTotal)
		v.PostContemplationTotal = &t
		v.Display["post_contemplation_installment"] = format.BRL(*s.PostContemplationTotal)
	}
	return v
}

func newLeverageView(l domain.LeverageResult) LeverageView {
	return LeverageView{
		InvestMonths:   l.InvestMonths,
		GrossRate:      l.GrossRate,
		TaxRate:        l.TaxRate,
		InvestedAmount: format.Round2(l.InvestedAmount),
		GrossAmount:    format.Round2(l.GrossAmount),
		GrossReturn:    format.Round2(l.GrossReturn),
		TaxAmount:      format.Round2(l.TaxAmount),
		NetReturn:      format.Round2(l.NetReturn),
		NetAmount:      format.Round2(l.NetAmount),
		NetResult:      format.Round2(l.NetResult),
		Outperforms:    l.Outperforms,
		InflationIndex: l.InflationIndex,
		Display: map[string]string{
			"invested_amount": format.BRL(l.InvestedAmount),
			"gross_return":    format.BRL(l.GrossReturn),
			"tax_amount":      format.BRL(l.TaxAmount),
			"net_amount":      format.BRL(l.NetAmount),
			"net_result":      format.BRL(l.NetResult),
		},
	}
}
