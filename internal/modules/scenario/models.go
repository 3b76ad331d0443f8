package scenario

// StressScenario is one deterministic shock applied to the portfolio's
// baseline expected return.
type StressScenario struct {
	Name           string  `json:"name"`
	ImpactPct      float64 `json:"impact_pct"`      // one-off shock to annual return, percent
	DurationMonths int     `json:"duration_months"` // typical historical duration
	Probability    float64 `json:"probability"`     // historical-style annual probability, percent
}

// StressResult is the portfolio outcome under one stress scenario.
type StressResult struct {
	Scenario         StressScenario `json:"scenario"`
	BaselineReturn   float64        `json:"baseline_return"`
	StressedReturn   float64        `json:"stressed_return"`
	AffectedHoldings int            `json:"affected_holdings"`
}

// RegimeScenario is a macro regime with an equity-return assumption.
type RegimeScenario struct {
	Name            string  `json:"name"`
	EquityReturnPct float64 `json:"equity_return_pct"`
	Description     string  `json:"description"`
}

// RegimeResult projects the portfolio under one macro regime. The
// blended return mixes the portfolio's own expectation 50/50 with the
// regime's equity assumption, compounded over the horizon.
type RegimeResult struct {
	Regime         RegimeScenario `json:"regime"`
	BlendedReturn  float64        `json:"blended_return"`
	HorizonYears   int            `json:"horizon_years"`
	ProjectedValue float64        `json:"projected_value"`
}

// CrisisEvent is a named historical crisis archetype used for
// month-by-month stress path simulation.
type CrisisEvent struct {
	Name           string  `json:"name"`
	AnnualImpact   float64 `json:"annual_impact"` // percent, applied on top of baseline
	DurationMonths int     `json:"duration_months"`
}

// CrisisPathResult is the simulated stress/recovery path for one crisis.
type CrisisPathResult struct {
	Event         CrisisEvent `json:"event"`
	MaxLossPct    float64     `json:"max_loss_pct"`    // worst decline from starting capital, percent
	TroughValue   float64     `json:"trough_value"`    // lowest point on the path
	RecoveryMonth int         `json:"recovery_month"`  // first month back above start; 0 = not within horizon
	FinalValue    float64     `json:"final_value"`     // value at the end of the simulated horizon
	Path          []float64   `json:"path"`            // month-end values, starting capital first
}
