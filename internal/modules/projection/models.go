package projection

// YearPoint is one step of a compounded yearly projection.
type YearPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// DrawdownPoint is one month of a simulated path with its decline from
// the running peak.
type DrawdownPoint struct {
	Month       int     `json:"month"`
	Value       float64 `json:"value"`
	DrawdownPct float64 `json:"drawdown_pct"`
}

// BandPoint carries the analytic confidence bands for one month.
type BandPoint struct {
	Month    int     `json:"month"`
	Expected float64 `json:"expected"`
	Upper95  float64 `json:"upper_95"`
	Lower95  float64 `json:"lower_95"`
	Upper68  float64 `json:"upper_68"`
	Lower68  float64 `json:"lower_68"`
}

// PathResult is the outcome of a single Monte Carlo path.
type PathResult struct {
	FinalValue  float64 `json:"final_value"`
	MaxDrawdown float64 `json:"max_drawdown"` // fraction, 0.25 = 25%
}

// MonteCarloResult aggregates all simulated paths.
type MonteCarloResult struct {
	Simulations    int          `json:"simulations"`
	Years          int          `json:"years"`
	InitialCapital float64      `json:"initial_capital"`
	Mean           float64      `json:"mean"`
	Median         float64      `json:"median"`
	P5             float64      `json:"p5"`
	P25            float64      `json:"p25"`
	P75            float64      `json:"p75"`
	P95            float64      `json:"p95"`
	Min            float64      `json:"min"`
	Max            float64      `json:"max"`
	StdDev         float64      `json:"std_dev"`
	AvgMaxDrawdown float64      `json:"avg_max_drawdown"`
	Paths          []PathResult `json:"paths"`
}
