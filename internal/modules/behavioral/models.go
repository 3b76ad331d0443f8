package behavioral

// Severity grades a detected bias.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Bias is one detected behavioral pattern with a remediation hint.
type Bias struct {
	Type           string   `json:"type"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Confidence     float64  `json:"confidence"` // 0-100
}

// InvestorScore combines four equally weighted 0-100 components.
type InvestorScore struct {
	Discipline      float64 `json:"discipline"`
	Diversification float64 `json:"diversification"`
	RiskAwareness   float64 `json:"risk_awareness"`
	Concentration   float64 `json:"concentration"`
	Overall         float64 `json:"overall"`
}

// GoalProbability is the analytic goal-achievement estimate.
type GoalProbability struct {
	Probability    float64 `json:"probability"` // 0-100
	ProjectedValue float64 `json:"projected_value"`
	YearsToGoal    float64 `json:"years_to_goal"` // 0 when undefined for the inputs
	Gap            float64 `json:"gap"`           // target - projected, floored at 0
	Confidence     string  `json:"confidence"`    // high / medium / low
}

// GoalMonteCarlo is the simulation-based goal estimate.
type GoalMonteCarlo struct {
	Probability float64 `json:"probability"` // % of paths reaching the target
	P5          float64 `json:"p5"`
	P50         float64 `json:"p50"`
	P95         float64 `json:"p95"`
	Simulations int     `json:"simulations"`
}
