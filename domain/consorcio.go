package domain

// Strategy selects whether the leverage comparison runs.
type Strategy string

const (
	StrategyTraditional Strategy = "traditional"
	StrategyLeveraged   Strategy = "leveraged"
)

// AssetType selects the monetary correction index.
type AssetType string

const (
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
)

// ContractInput holds the parameters of a consórcio contract. Rates are
// fractions (0.18 means 18%).
type ContractInput struct {
	CreditValue        float64          `json:"credit_value" validate:"gte=0,lte=1000000000"`
	AdminFeeRate       float64          `json:"admin_fee_rate" validate:"gte=0,lte=1"`
	ReserveFundRate    float64          `json:"reserve_fund_rate" validate:"gte=0,lte=1"`
	InsuranceRate      float64          `json:"insurance_rate" validate:"gte=0,lte=1"`
	Strategy           Strategy         `json:"strategy" validate:"required,oneof=traditional leveraged"`
	TotalMonths        int              `json:"total_months" validate:"gte=1,lte=600"`
	ContemplationMonth int              `json:"contemplation_month" validate:"gte=0,ltefield=TotalMonths"`
	AssetType          AssetType        `json:"asset_type" validate:"required,oneof=real_estate vehicle"`
	OwnBidValue        float64          `json:"own_bid_value" validate:"gte=0"`
	Investment         *InvestmentInput `json:"investment,omitempty" validate:"required_if=Strategy leveraged"`
}

// InstallmentRow is one line of the schedule.
type InstallmentRow struct {
	Index              int     `json:"index"`
	BaseAmount         float64 `json:"base_amount"`
	MonetaryCorrection float64 `json:"monetary_correction"`
	Total              float64 `json:"total"`
}

// Schedule is the ordered list of installments, index 1 first.
type Schedule []InstallmentRow

// ScheduleSummary holds the aggregate figures of a contract. Values are not
// rounded.
type ScheduleSummary struct {
	PeriodRate                   float64 `json:"period_rate"`
	IndexName                    string  `json:"index_name"`
	IndexRate                    float64 `json:"index_rate"`
	TermYears                    float64 `json:"term_years"`
	TotalPayable                 float64 `json:"total_payable"`
	FullInstallment              float64 `json:"full_installment"`
	AmortizationAtContemplation  float64 `json:"amortization_at_contemplation"`
	OutstandingBalance           float64 `json:"outstanding_balance"`
	RemainingPeriods             int     `json:"remaining_periods"`
	YearsElapsedToContemplation  int     `json:"years_elapsed_to_contemplation"`
	CorrectedOutstandingBalance  float64 `json:"corrected_outstanding_balance"`
	BalanceAfterBid              float64 `json:"balance_after_bid"`
	PostContemplationInstallment float64 `json:"post_contemplation_installment"`
	FirstInstallment             float64 `json:"first_installment"`
	// PostContemplationTotal is the total of the first installment after
	// contemplation, nil when no installment remains.
	PostContemplationTotal *float64 `json:"post_contemplation_total,omitempty"`
	TotalPaid              float64  `json:"total_paid"`
	CorrectedCreditValue   float64  `json:"corrected_credit_value"`
	ReserveFundAmount      float64  `json:"reserve_fund_amount"`
	TotalCost              float64  `json:"total_cost"`
	RealCost               float64  `json:"real_cost"`
}
