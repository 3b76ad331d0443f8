package metrics

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
)

// Standard normal quantiles for the 95% parametric tail estimates.
const (
	z95     = 1.645
	zTail95 = 2.063
)

// Heuristic multiplier mapping volatility to an estimated max drawdown.
// Calibrated, not simulated.
const drawdownMultiple = 2.5

// Service computes portfolio-level risk/return statistics.
type Service struct {
	cfg config.Engine
	log zerolog.Logger
}

// NewService creates a metrics service.
func NewService(cfg config.Engine, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("service", "metrics").Logger(),
	}
}

// WeightedReturn returns the weight-dot-expected-return sum in percent.
// Empty input yields 0.
func WeightedReturn(assets []domain.Asset, weights domain.WeightVector) float64 {
	total := 0.0
	for i, asset := range assets {
		if i >= len(weights) {
			break
		}
		total += asset.ExpectedReturn * weights[i]
	}
	return total
}

// WeightedBeta returns the weighted portfolio beta. Empty input defaults
// to the market beta of 1.0.
func WeightedBeta(assets []domain.Asset, weights domain.WeightVector) float64 {
	if len(assets) == 0 || len(weights) == 0 {
		return 1.0
	}
	total := 0.0
	for i, asset := range assets {
		if i >= len(weights) {
			break
		}
		total += asset.Beta * weights[i]
	}
	return total
}

// WeightedRisk returns the naive weighted volatility in percent, ignoring
// cross-correlations. Empty input yields 0.
func WeightedRisk(assets []domain.Asset, weights domain.WeightVector) float64 {
	total := 0.0
	for i, asset := range assets {
		if i >= len(weights) {
			break
		}
		total += asset.Risk * weights[i]
	}
	return total
}

// PortfolioVolatility computes sqrt(w' Σ w) * 100 from the covariance
// matrix. Negative quadratic forms from numerical noise are clamped to 0
// before the square root.
func PortfolioVolatility(weights domain.WeightVector, cov [][]float64) float64 {
	n := len(weights)
	if n == 0 || len(cov) != n {
		return 0
	}

	flat := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		if len(cov[i]) != n {
			return 0
		}
		flat = append(flat, cov[i]...)
	}

	w := mat.NewVecDense(n, []float64(weights))
	sigma := mat.NewDense(n, n, flat)
	variance := mat.Inner(w, sigma, w)

	return math.Sqrt(math.Max(0, variance)) * 100.0
}

// Advanced computes the full PortfolioMetrics bundle from assets, weights
// and a covariance matrix.
func (s *Service) Advanced(assets []domain.Asset, weights domain.WeightVector, cov [][]float64) PortfolioMetrics {
	expectedReturn := WeightedReturn(assets, weights)
	volatility := PortfolioVolatility(weights, cov)
	beta := WeightedBeta(assets, weights)

	rf := s.cfg.RiskFreeRate
	market := s.cfg.MarketReturn

	// CAPM: what the market would pay for this beta.
	capmReturn := rf + beta*(market-rf)
	alpha := expectedReturn - capmReturn

	sharpe := 0.0
	if volatility > 0 {
		sharpe = (expectedReturn - rf) / volatility
	}

	// Downside deviation considers only assets expected to fall short of
	// the risk-free rate.
	downsideSum := 0.0
	for i, asset := range assets {
		if i >= len(weights) {
			break
		}
		shortfall := math.Max(0, rf-asset.ExpectedReturn) * weights[i]
		downsideSum += shortfall * shortfall
	}
	downsideDev := math.Sqrt(downsideSum)

	sortino := 0.0
	if downsideDev > 0 {
		sortino = (expectedReturn - rf) / downsideDev
	}

	maxDrawdown := volatility * drawdownMultiple

	calmar := 0.0
	if maxDrawdown > 0 {
		calmar = expectedReturn / maxDrawdown
	}

	treynor := 0.0
	if beta != 0 {
		treynor = (expectedReturn - rf) / beta
	}

	information := 0.0
	if volatility > 0 {
		information = alpha / volatility
	}

	return PortfolioMetrics{
		ExpectedReturn:   expectedReturn,
		Volatility:       volatility,
		SharpeRatio:      sharpe,
		SortinoRatio:     sortino,
		BetaPortfolio:    beta,
		AlphaPortfolio:   alpha,
		MaxDrawdown:      maxDrawdown,
		VaR95:            expectedReturn - z95*volatility,
		CVaR95:           expectedReturn - zTail95*volatility,
		CalmarRatio:      calmar,
		InformationRatio: information,
		TreynorRatio:     treynor,
	}
}
