package decomposition

// HoldingContribution is one asset's contribution to portfolio beta and
// alpha (attribute * weight).
type HoldingContribution struct {
	Symbol            string  `json:"symbol"`
	Weight            float64 `json:"weight"`
	Beta              float64 `json:"beta"`
	BetaContribution  float64 `json:"beta_contribution"`
	Alpha             float64 `json:"alpha"`
	AlphaContribution float64 `json:"alpha_contribution"`
}

// RiskDecomposition aggregates the per-holding contributions.
type RiskDecomposition struct {
	Holdings       []HoldingContribution `json:"holdings"`
	PortfolioBeta  float64               `json:"portfolio_beta"`
	PortfolioAlpha float64               `json:"portfolio_alpha"`
}

// ConcentrationReport measures how concentrated an allocation is.
type ConcentrationReport struct {
	Top1Pct              float64            `json:"top1_pct"`
	Top3Pct              float64            `json:"top3_pct"`
	Herfindahl           float64            `json:"herfindahl"`
	Category             string             `json:"category"`
	SectorAllocations    map[string]float64 `json:"sector_allocations"`
	MaxSectorPct         float64            `json:"max_sector_pct"`
	DiversificationScore float64            `json:"diversification_score"` // 0-100, higher is better
}

// CorrelationStress summarizes the correlation structure and projects
// how it would tighten in a crisis.
type CorrelationStress struct {
	AvgCorrelation    float64 `json:"avg_correlation"`
	MinCorrelation    float64 `json:"min_correlation"`
	MaxCorrelation    float64 `json:"max_correlation"`
	StressCorrelation float64 `json:"stress_correlation"`
	BreakdownRisk     bool    `json:"breakdown_risk"`
}
