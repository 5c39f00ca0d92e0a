package domain

type ScenarioInput struct {
	Contract              ContractInput `json:"contract"`
	MinContemplationMonth int           `json:"min_contemplation_month"`
	MaxContemplationMonth int           `json:"max_contemplation_month"`
}

type ContemplationScenario struct {
	ContemplationMonth           int      `json:"contemplation_month"`
	PostContemplationInstallment float64  `json:"post_contemplation_installment"`
	TotalPaid                    float64  `json:"total_paid"`
	RealCost                     float64  `json:"real_cost"`
	NetResult                    *float64 `json:"net_result,omitempty"`
	Score                        float64  `json:"score"`
	Reason                       string   `json:"reason"`
}

type ScenarioResult struct {
	RecommendedMonth int                     `json:"recommended_month"`
	Scenarios        []ContemplationScenario `json:"scenarios"`
}
