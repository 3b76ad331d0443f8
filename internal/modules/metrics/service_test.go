package metrics

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/domain"
)

func TestWeightedAggregatesEmpty(t *testing.T) {
	if got := WeightedReturn(nil, nil); got != 0 {
		t.Errorf("WeightedReturn(empty) = %v, want 0", got)
	}
	if got := WeightedBeta(nil, nil); got != 1.0 {
		t.Errorf("WeightedBeta(empty) = %v, want 1.0", got)
	}
	if got := WeightedRisk(nil, nil); got != 0 {
		t.Errorf("WeightedRisk(empty) = %v, want 0", got)
	}
}

func TestWeightedReturn(t *testing.T) {
	assets := []domain.Asset{
		{Symbol: "A", ExpectedReturn: 10},
		{Symbol: "B", ExpectedReturn: 6},
	}
	weights := domain.WeightVector{0.5, 0.5}

	if got := WeightedReturn(assets, weights); math.Abs(got-8.0) > 1e-12 {
		t.Errorf("WeightedReturn = %v, want 8.0", got)
	}
}

func TestPortfolioVolatility(t *testing.T) {
	tests := []struct {
		name    string
		weights domain.WeightVector
		cov     [][]float64
		want    float64
	}{
		{
			name:    "single asset",
			weights: domain.WeightVector{1.0},
			cov:     [][]float64{{0.04}},
			want:    20.0,
		},
		{
			name:    "two uncorrelated equal weights",
			weights: domain.WeightVector{0.5, 0.5},
			cov: [][]float64{
				{0.04, 0},
				{0, 0.04},
			},
			want: math.Sqrt(0.02) * 100,
		},
		{
			name:    "negative quadratic form clamps to zero",
			weights: domain.WeightVector{1.0},
			cov:     [][]float64{{-0.01}},
			want:    0,
		},
		{
			name:    "empty",
			weights: domain.WeightVector{},
			cov:     [][]float64{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PortfolioVolatility(tt.weights, tt.cov)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PortfolioVolatility = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("volatility must never be negative, got %v", got)
			}
		})
	}
}

func TestAdvancedSingleAsset(t *testing.T) {
	// Single asset, weight 1.0, return 10%, beta 1.0, risk 20%:
	// sharpe = (10 - 4.5) / 20 = 0.275
	svc := NewService(config.DefaultEngine(), zerolog.Nop())
	assets := []domain.Asset{{Symbol: "A", Beta: 1.0, Risk: 20, ExpectedReturn: 10}}
	weights := domain.WeightVector{1.0}
	cov := [][]float64{{0.04}}

	m := svc.Advanced(assets, weights, cov)

	assert.InDelta(t, 10.0, m.ExpectedReturn, 1e-9)
	assert.InDelta(t, 20.0, m.Volatility, 1e-9)
	assert.InDelta(t, 0.275, m.SharpeRatio, 1e-9)
	assert.InDelta(t, 1.0, m.BetaPortfolio, 1e-9)
	// CAPM return for beta 1 equals the market return, so alpha = 10 - 10 = 0.
	assert.InDelta(t, 0.0, m.AlphaPortfolio, 1e-9)
	assert.InDelta(t, 50.0, m.MaxDrawdown, 1e-9) // 20 * 2.5
	assert.InDelta(t, 10.0-1.645*20.0, m.VaR95, 1e-9)
	assert.InDelta(t, 10.0-2.063*20.0, m.CVaR95, 1e-9)
	assert.InDelta(t, 10.0/50.0, m.CalmarRatio, 1e-9)
	assert.InDelta(t, 5.5, m.TreynorRatio, 1e-9)
	assert.InDelta(t, 0.0, m.InformationRatio, 1e-9)
}

func TestAdvancedZeroVolatility(t *testing.T) {
	svc := NewService(config.DefaultEngine(), zerolog.Nop())
	assets := []domain.Asset{{Symbol: "A", Beta: 1.0, Risk: 0, ExpectedReturn: 10}}
	m := svc.Advanced(assets, domain.WeightVector{1.0}, [][]float64{{0}})

	assert.Zero(t, m.SharpeRatio)
	assert.Zero(t, m.InformationRatio)
	assert.Zero(t, m.CalmarRatio)
}

func TestAdvancedSortinoDownsideOnly(t *testing.T) {
	svc := NewService(config.DefaultEngine(), zerolog.Nop())
	// One asset below the risk-free rate contributes downside; the other
	// does not.
	assets := []domain.Asset{
		{Symbol: "A", Beta: 1, Risk: 20, ExpectedReturn: 2},
		{Symbol: "B", Beta: 1, Risk: 20, ExpectedReturn: 12},
	}
	weights := domain.WeightVector{0.5, 0.5}
	cov := [][]float64{
		{0.04, 0},
		{0, 0.04},
	}

	m := svc.Advanced(assets, weights, cov)

	// downside = sqrt((max(0, 4.5-2)*0.5)^2) = 1.25
	// sortino = (7 - 4.5) / 1.25 = 2.0
	assert.InDelta(t, 2.0, m.SortinoRatio, 1e-9)
}

func TestAdvancedEmptyPortfolio(t *testing.T) {
	svc := NewService(config.DefaultEngine(), zerolog.Nop())
	m := svc.Advanced(nil, nil, nil)

	assert.Zero(t, m.ExpectedReturn)
	assert.Zero(t, m.Volatility)
	assert.Zero(t, m.SharpeRatio)
	assert.Equal(t, 1.0, m.BetaPortfolio)
}
