package service

import (
	"math"

	"consorcio-simulator/domain"
)

type ScheduleService struct{}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// correctionIndex returns the index name and annual rate for an asset type.
func correctionIndex(asset domain.AssetType) (string, float64) {
	if asset == domain.AssetRealEstate {
		return RealEstateIndexName, RealEstateIndexRate
	}
	return VehicleIndexName, VehicleIndexRate
}

// CalculateSchedule builds the installment schedule and the cost summary of
// a contract. Inputs are expected to be range-checked already; the only
// failure is an own bid above the corrected outstanding balance.
func (s *ScheduleService) CalculateSchedule(
	input domain.ContractInput,
) (domain.Schedule, domain.ScheduleSummary, error) {

	periodRate := input.AdminFeeRate + input.ReserveFundRate + input.InsuranceRate
	indexName, indexRate := correctionIndex(input.AssetType)

	totalPayable := input.CreditValue * (1 + periodRate)
	fullInstallment := totalPayable / float64(input.TotalMonths)
	amortization := fullInstallment * float64(input.ContemplationMonth)

	outstanding := totalPayable - amortization
	remaining := input.TotalMonths - input.ContemplationMonth

	// Correção até a contemplação aplicada apenas em anos completos
	yearsToContemplation := input.ContemplationMonth / MonthsPerYear
	correctionFactor := math.Pow(1+indexRate, float64(yearsToContemplation))
	correctedOutstanding := outstanding * correctionFactor

	if input.OwnBidValue > correctedOutstanding {
		return nil, domain.ScheduleSummary{}, &BidExceedsBalanceError{
			Bid:     input.OwnBidValue,
			Balance: correctedOutstanding,
		}
	}

	balanceAfterBid := correctedOutstanding - input.OwnBidValue
	postInstallment := 0.0
	if remaining > 0 {
		postInstallment = balanceAfterBid / float64(remaining)
	}

	schedule := make(domain.Schedule, 0, input.TotalMonths)
	totalPaid := 0.0
	for i := 1; i <= input.TotalMonths; i++ {
		base := postInstallment
		if i <= input.ContemplationMonth {
			base = fullInstallment
		}

		// Correção linear pelos anos decorridos desde a primeira parcela
		yearsElapsed := (i - 1) / MonthsPerYear
		correction := 0.0
		if yearsElapsed > 0 {
			correction = base * indexRate * float64(yearsElapsed)
		}

		row := domain.InstallmentRow{
			Index:              i,
			BaseAmount:         base,
			MonetaryCorrection: correction,
			Total:              base + correction,
		}
		schedule = append(schedule, row)
		totalPaid += row.Total
	}

	correctedCredit := input.CreditValue * correctionFactor
	reserveFund := input.CreditValue * input.ReserveFundRate
	totalCost := totalPaid + input.OwnBidValue - reserveFund

	summary := domain.ScheduleSummary{
		PeriodRate:                   periodRate,
		IndexName:                    indexName,
		IndexRate:                    indexRate,
		TermYears:                    float64(input.TotalMonths) / MonthsPerYear,
		TotalPayable:                 totalPayable,
		FullInstallment:              fullInstallment,
		AmortizationAtContemplation:  amortization,
		OutstandingBalance:           outstanding,
		RemainingPeriods:             remaining,
		YearsElapsedToContemplation:  yearsToContemplation,
		CorrectedOutstandingBalance:  correctedOutstanding,
		BalanceAfterBid:              balanceAfterBid,
		PostContemplationInstallment: postInstallment,
		FirstInstallment:             schedule[0].Total,
		TotalPaid:                    totalPaid,
		CorrectedCreditValue:         correctedCredit,
		ReserveFundAmount:            reserveFund,
		TotalCost:                    totalCost,
		RealCost:                     totalCost - correctedCredit,
	}
	if remaining > 0 {
		next := schedule[input.ContemplationMonth].Total
		summary.PostContemplationTotal = &next
	}

	return schedule, summary, nil
}
