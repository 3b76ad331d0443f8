package allocation

import "github.com/foliolab/quant/internal/domain"

// Strategy identifies one of the heuristic allocation generators.
type Strategy string

const (
	StrategyOptimal     Strategy = "optimal"
	StrategyMinVariance Strategy = "min_variance"
	StrategyRiskParity  Strategy = "risk_parity"
	StrategyMaxReturn   Strategy = "max_return"
)

// StrategyResult pairs a strategy with its generated allocation.
type StrategyResult struct {
	Strategy   Strategy          `json:"strategy"`
	Allocation domain.Allocation `json:"allocation"`
}

// AllStrategies bundles every generator's output for one asset list.
type AllStrategies struct {
	Optimal     domain.Allocation `json:"optimal"`
	MinVariance domain.Allocation `json:"min_variance"`
	RiskParity  domain.Allocation `json:"risk_parity"`
	MaxReturn   domain.Allocation `json:"max_return"`
}
