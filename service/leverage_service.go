package service

import (
	"math"

	"consorcio-simulator/domain"
)

type LeverageService struct{}

func NewLeverageService() *LeverageService {
	return &LeverageService{}
}

// IncomeTaxRate returns the regressive fixed-income tax rate for a holding
// period in months.
func IncomeTaxRate(months int) float64 {
	for _, b := range taxBrackets {
		if months <= b.upToMonths {
			return b.rate
		}
	}
	return longTermTaxRate
}

// GrossAnnualRate returns the gross yearly yield of an investment.
func GrossAnnualRate(inv domain.InvestmentInput) float64 {
	switch inv.Type {
	case domain.InvestmentCDILinked:
		return inv.CDIPercentage * inv.EstimatedCDI
	case domain.InvestmentInflationLinked:
		return inv.AnnualRate + InflationSpread
	default:
		return inv.AnnualRate
	}
}

// Analyze projects the investment of the corrected credit from contemplation
// to the end of the contract and compares the net amount with the real cost
// of the consórcio.
func (s *LeverageService) Analyze(
	summary domain.ScheduleSummary,
	input domain.LeverageInput,
) domain.LeverageResult {

	invested := summary.CorrectedCreditValue - input.OwnBidValue
	months := input.TotalMonths - input.ContemplationMonth

	grossRate := GrossAnnualRate(input.Investment)
	monthlyRate := math.Pow(1+grossRate, 1.0/MonthsPerYear) - 1

	grossAmount := invested * math.Pow(1+monthlyRate, float64(months))
	grossReturn := grossAmount - invested

	taxRate := IncomeTaxRate(months)
	tax := grossReturn * taxRate
	netAmount := grossAmount - tax
	netResult := netAmount - summary.RealCost

	result := domain.LeverageResult{
		InvestedAmount: invested,
		InvestMonths:   months,
		GrossRate:      grossRate,
		MonthlyRate:    monthlyRate,
		GrossAmount:    grossAmount,
		GrossReturn:    grossReturn,
		TaxRate:        taxRate,
		TaxAmount:      tax,
		NetReturn:      grossReturn - tax,
		NetAmount:      netAmount,
		NetResult:      netResult,
		Outperforms:    netResult >= 0,
	}
	if input.Investment.Type == domain.InvestmentInflationLinked {
		result.InflationIndex = InflationIndexNote
	}
	return result
}
