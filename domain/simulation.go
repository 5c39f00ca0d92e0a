package domain

import "time"

// Simulation is the full outcome of one simulate action.
type Simulation struct {
	ID          string          `json:"id"`
	Input       ContractInput   `json:"input"`
	Schedule    Schedule        `json:"schedule"`
	Summary     ScheduleSummary `json:"summary"`
	Leverage    *LeverageResult `json:"leverage,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
