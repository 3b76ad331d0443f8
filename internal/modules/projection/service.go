package projection

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/metrics"
	"github.com/foliolab/quant/pkg/formulas"
)

const defaultCapital = 100000.0

// Service produces statistical projections of portfolio value: simple
// compounding, simulated drawdown paths, analytic confidence bands and
// Monte Carlo distributions. All randomness flows from the configured
// seed, so identical inputs give identical outputs.
type Service struct {
	cfg config.Engine
	log zerolog.Logger
}

// NewService creates a projection service.
func NewService(cfg config.Engine, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("service", "projection").Logger(),
	}
}

// HistoricalBacktest compounds the current weighted return year over
// year from a $100,000 base. This is a projection of declared expected
// returns, not a replay of historical prices.
func (s *Service) HistoricalBacktest(assets []domain.Asset, weights domain.WeightVector, years int) []YearPoint {
	if years <= 0 {
		years = 10
	}
	annual := metrics.WeightedReturn(assets, weights) / 100.0

	points := make([]YearPoint, 0, years+1)
	value := defaultCapital
	points = append(points, YearPoint{Year: 0, Value: value})
	for y := 1; y <= years; y++ {
		value *= 1.0 + annual
		points = append(points, YearPoint{Year: y, Value: value})
	}
	return points
}

// DrawdownSeries simulates one monthly compounding path with seeded
// volatility noise and reports the percentage decline from the running
// peak at each step.
func (s *Service) DrawdownSeries(assets []domain.Asset, weights domain.WeightVector, periods int) []DrawdownPoint {
	if periods <= 0 {
		periods = 60
	}
	monthlyReturn := metrics.WeightedReturn(assets, weights) / 12.0 / 100.0
	monthlyVol := metrics.WeightedRisk(assets, weights) / math.Sqrt(12) / 100.0

	rng := rand.New(rand.NewSource(s.cfg.Seed))
	values := make([]float64, 0, periods+1)
	value := defaultCapital
	values = append(values, value)
	for m := 1; m <= periods; m++ {
		value *= 1.0 + monthlyReturn + monthlyVol*formulas.NormalDraw(rng)
		if value < 0 {
			value = 0
		}
		values = append(values, value)
	}

	drawdowns := formulas.DrawdownAt(values)
	points := make([]DrawdownPoint, len(values))
	for i := range values {
		points[i] = DrawdownPoint{Month: i, Value: values[i], DrawdownPct: drawdowns[i]}
	}
	return points
}

// ConfidenceBands returns analytic lognormal-style bands around the
// expected compounded value: expected +/- 1.96 sigma (95%) and +/- 1
// sigma (68%), with sigma growing as monthlyVol * sqrt(elapsed months).
func (s *Service) ConfidenceBands(assets []domain.Asset, weights domain.WeightVector, periods int) []BandPoint {
	if periods <= 0 {
		periods = 60
	}
	monthlyReturn := metrics.WeightedReturn(assets, weights) / 12.0 / 100.0
	monthlyVol := metrics.WeightedRisk(assets, weights) / math.Sqrt(12) / 100.0

	points := make([]BandPoint, 0, periods+1)
	for m := 0; m <= periods; m++ {
		expected := defaultCapital * math.Pow(1.0+monthlyReturn, float64(m))
		sigma := monthlyVol * math.Sqrt(float64(m))

		points = append(points, BandPoint{
			Month:    m,
			Expected: expected,
			Upper95:  expected * (1.0 + 1.96*sigma),
			Lower95:  math.Max(0, expected*(1.0-1.96*sigma)),
			Upper68:  expected * (1.0 + sigma),
			Lower68:  math.Max(0, expected*(1.0-sigma)),
		})
	}
	return points
}
