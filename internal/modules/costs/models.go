package costs

// TradeCost is the cost of adjusting one symbol's allocation.
type TradeCost struct {
	Symbol   string  `json:"symbol"`
	DeltaPct float64 `json:"delta_pct"` // absolute allocation change, percentage points
	CostPct  float64 `json:"cost_pct"`  // cost as a percentage of portfolio value
}

// CostResult summarizes the cost of moving between two allocations.
type CostResult struct {
	Trades       []TradeCost `json:"trades"`
	TotalCostPct float64     `json:"total_cost_pct"`
	TurnoverPct  float64     `json:"turnover_pct"` // sum of absolute allocation changes
	CostBps      float64     `json:"cost_bps"`     // per-trade rate used
}

// RebalancingImpact accumulates the same rebalancing cost over a
// multi-year horizon at a given frequency.
type RebalancingImpact struct {
	FrequencyYears   float64 `json:"frequency_years"` // years between rebalances
	Periods          int     `json:"periods"`
	CostPerPeriodPct float64 `json:"cost_per_period_pct"`
	TotalCostPct     float64 `json:"total_cost_pct"`
	HorizonYears     float64 `json:"horizon_years"`
}
