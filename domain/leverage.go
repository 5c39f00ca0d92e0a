package domain

// InvestmentType selects how the gross annual rate of the leverage
// investment is obtained.
type InvestmentType string

const (
	InvestmentFixed           InvestmentType = "fixed"
	InvestmentInflationLinked InvestmentType = "inflation_linked"
	InvestmentCDILinked       InvestmentType = "cdi_linked"
)

// InvestmentInput describes where the credit is invested under the
// leveraged strategy. AnnualRate is used by fixed and inflation-linked
// investments, CDIPercentage and EstimatedCDI by CDI-linked ones.
type InvestmentInput struct {
	Type          InvestmentType `json:"type" validate:"required,oneof=fixed inflation_linked cdi_linked"`
	AnnualRate    float64        `json:"annual_rate" validate:"gte=0,lte=1"`
	CDIPercentage float64        `json:"cdi_percentage" validate:"gte=0,lte=5"`
	EstimatedCDI  float64        `json:"estimated_cdi" validate:"gte=0,lte=1"`
}

// LeverageInput is what the leverage analysis needs besides the schedule
// summary.
type LeverageInput struct {
	OwnBidValue        float64
	ContemplationMonth int
	TotalMonths        int
	Investment         InvestmentInput
}

type LeverageResult struct {
	InvestedAmount float64 `json:"invested_amount"`
	InvestMonths   int     `json:"invest_months"`
	GrossRate      float64 `json:"gross_rate"`
	MonthlyRate    float64 `json:"monthly_rate"`
	GrossAmount    float64 `json:"gross_amount"`
	GrossReturn    float64 `json:"gross_return"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	NetReturn      float64 `json:"net_return"`
	NetAmount      float64 `json:"net_amount"`
	NetResult      float64 `json:"net_result"`
	Outperforms    bool    `json:"outperforms"`
	// InflationIndex names the inflation assumption of inflation-linked
	// investments.
	InflationIndex string `json:"inflation_index,omitempty"`
}
