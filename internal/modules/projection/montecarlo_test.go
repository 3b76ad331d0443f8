package projection

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliolab/quant/internal/config"
)

func TestMonteCarloReproducible(t *testing.T) {
	assets, weights := growthPortfolio()

	first := newTestService().MonteCarlo(assets, weights, 100000, 3, 500)
	second := newTestService().MonteCarlo(assets, weights, 100000, 3, 500)

	require.Equal(t, first.Mean, second.Mean, "same seed must give identical means")
	require.Equal(t, first.Median, second.Median)
	require.Equal(t, first.Min, second.Min)
	require.Equal(t, first.Max, second.Max)
	for i := range first.Paths {
		require.Equal(t, first.Paths[i].FinalValue, second.Paths[i].FinalValue,
			"path %d differs between runs", i)
	}
}

func TestMonteCarloDifferentSeeds(t *testing.T) {
	assets, weights := growthPortfolio()

	cfg := config.DefaultEngine()
	cfg.Seed = 2
	other := NewService(cfg, zerolog.Nop()).MonteCarlo(assets, weights, 100000, 3, 500)
	base := newTestService().MonteCarlo(assets, weights, 100000, 3, 500)

	assert.NotEqual(t, base.Mean, other.Mean, "different seeds should give different draws")
}

func TestMonteCarloMeanConvergence(t *testing.T) {
	// E[1 + mu + sigma*Z] = 1 + mu, so the mean final value converges to
	// the analytic monthly compounding of the expected return.
	assets, weights := growthPortfolio()
	years := 5

	result := newTestService().MonteCarlo(assets, weights, 100000, years, 4000)

	monthly := 10.0 / 12.0 / 100.0
	analytic := 100000 * math.Pow(1+monthly, float64(years*12))

	assert.InEpsilon(t, analytic, result.Mean, 0.05,
		"Monte Carlo mean should be within 5%% of the analytic compounded value")
}

func TestMonteCarloAggregates(t *testing.T) {
	assets, weights := growthPortfolio()

	result := newTestService().MonteCarlo(assets, weights, 100000, 3, 1000)

	require.Len(t, result.Paths, 1000)
	assert.Equal(t, 1000, result.Simulations)
	assert.Equal(t, 3, result.Years)

	assert.LessOrEqual(t, result.Min, result.P5)
	assert.LessOrEqual(t, result.P5, result.P25)
	assert.LessOrEqual(t, result.P25, result.Median)
	assert.LessOrEqual(t, result.Median, result.P75)
	assert.LessOrEqual(t, result.P75, result.P95)
	assert.LessOrEqual(t, result.P95, result.Max)

	assert.Greater(t, result.StdDev, 0.0)
	assert.GreaterOrEqual(t, result.AvgMaxDrawdown, 0.0)
	assert.Less(t, result.AvgMaxDrawdown, 1.0)

	for i, path := range result.Paths {
		assert.GreaterOrEqual(t, path.FinalValue, 0.0, "path %d", i)
		assert.GreaterOrEqual(t, path.MaxDrawdown, 0.0, "path %d", i)
		assert.LessOrEqual(t, path.MaxDrawdown, 1.0, "path %d", i)
	}
}

func TestMonteCarloDefaults(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Simulations = 50
	svc := NewService(cfg, zerolog.Nop())
	assets, weights := growthPortfolio()

	result := svc.MonteCarlo(assets, weights, 0, 0, 0)

	assert.Equal(t, 50, result.Simulations, "should fall back to configured simulation count")
	assert.Equal(t, 5, result.Years)
	assert.Equal(t, 100000.0, result.InitialCapital)
}

func TestMonteCarloEmptyPortfolio(t *testing.T) {
	result := newTestService().MonteCarlo(nil, nil, 100000, 2, 100)

	// No return, no volatility: every path stays at the initial capital.
	assert.Equal(t, 100000.0, result.Mean)
	assert.Equal(t, 100000.0, result.Min)
	assert.Equal(t, 100000.0, result.Max)
	assert.Zero(t, result.AvgMaxDrawdown)
}
