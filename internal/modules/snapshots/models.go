package snapshots

import "time"

// Kind labels what a stored snapshot summarizes.
type Kind string

const (
	KindMetrics    Kind = "metrics"
	KindMonteCarlo Kind = "monte_carlo"
)

// Snapshot is one stored analysis result for trend tracking. The engine
// itself never persists anything; callers post results here when they
// want history.
type Snapshot struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Kind           Kind      `json:"kind"`
	ExpectedReturn float64   `json:"expected_return"`
	Volatility     float64   `json:"volatility"`
	SharpeRatio    float64   `json:"sharpe_ratio"`
	Payload        string    `json:"payload"` // full result, JSON
	CreatedAt      time.Time `json:"created_at"`
}
