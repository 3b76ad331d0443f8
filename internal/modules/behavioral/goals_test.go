package behavioral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalAnalyticProbabilityBounds(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name    string
		target  float64
		current float64
		horizon int
		ret     float64
		vol     float64
	}{
		{"easily reached", 50000, 100000, 10, 8, 10},
		{"stretch goal", 5000000, 100000, 10, 8, 15},
		{"flat return", 200000, 100000, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.GoalAnalytic(tt.target, tt.current, tt.horizon, tt.ret, tt.vol)
			assert.GreaterOrEqual(t, result.Probability, 0.0)
			assert.LessOrEqual(t, result.Probability, 100.0)
			assert.GreaterOrEqual(t, result.Gap, 0.0)
		})
	}
}

func TestGoalAnalyticProjection(t *testing.T) {
	svc := newTestService()

	// 100k at 8% with 5% annual contributions over 10 years, compounded
	// monthly, lands well above 220k.
	result := svc.GoalAnalytic(300000, 100000, 10, 8, 10)

	assert.Greater(t, result.ProjectedValue, 220000.0)
	assert.Less(t, result.ProjectedValue, 300000.0)
	assert.InDelta(t, 300000.0-result.ProjectedValue, result.Gap, 1e-9)
	assert.Equal(t, "high", result.Confidence)
}

func TestGoalAnalyticConfidenceBands(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, "high", svc.GoalAnalytic(200000, 100000, 10, 8, 12).Confidence)
	assert.Equal(t, "medium", svc.GoalAnalytic(200000, 100000, 10, 8, 18).Confidence)
	assert.Equal(t, "low", svc.GoalAnalytic(200000, 100000, 10, 8, 25).Confidence)
}

func TestYearsToGoal(t *testing.T) {
	// ln(10) / ln(1.08) is just under 30 years.
	years := yearsToGoal(1000000, 100000, 8)
	assert.InDelta(t, 29.92, years, 0.05)
}

func TestYearsToGoalSentinel(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		current float64
		ret     float64
	}{
		{"zero growth", 1000000, 100000, 0},
		{"negative growth", 1000000, 100000, -5},
		{"zero capital", 1000000, 0, 8},
		{"target already met", 100000, 100000, 8},
		{"target below current", 50000, 100000, 8},
		{"zero target", 0, 100000, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, yearsToGoal(tt.target, tt.current, tt.ret))
		})
	}
}

func TestGoalAnalyticDegradesOnBadInput(t *testing.T) {
	svc := newTestService()

	for _, result := range []GoalProbability{
		svc.GoalAnalytic(0, 100000, 10, 8, 10),
		svc.GoalAnalytic(100000, 100000, 0, 8, 10),
		svc.GoalAnalytic(100000, -1, 10, 8, 10),
	} {
		assert.Zero(t, result.ProjectedValue)
		assert.Zero(t, result.Probability)
	}
}

func TestGoalMonteCarloReproducible(t *testing.T) {
	svc := newTestService()

	first := svc.GoalMonteCarloEstimate(500000, 100000, 15, 8, 15, 500)
	second := svc.GoalMonteCarloEstimate(500000, 100000, 15, 8, 15, 500)

	assert.Equal(t, first.Probability, second.Probability)
	assert.Equal(t, first.P50, second.P50)
}

func TestGoalMonteCarloBounds(t *testing.T) {
	svc := newTestService()

	result := svc.GoalMonteCarloEstimate(500000, 100000, 15, 8, 15, 1000)

	require.Equal(t, 1000, result.Simulations)
	assert.GreaterOrEqual(t, result.Probability, 0.0)
	assert.LessOrEqual(t, result.Probability, 100.0)
	assert.LessOrEqual(t, result.P5, result.P50)
	assert.LessOrEqual(t, result.P50, result.P95)
	assert.False(t, math.IsNaN(result.P5))
}

func TestGoalMonteCarloSimulationsFallback(t *testing.T) {
	svc := newTestService()
	svc.cfg.Simulations = 200

	result := svc.GoalMonteCarloEstimate(500000, 100000, 5, 8, 15, 0)
	assert.Equal(t, 200, result.Simulations)
}

func TestGoalMonteCarloDegradesOnBadInput(t *testing.T) {
	svc := newTestService()

	result := svc.GoalMonteCarloEstimate(0, 100000, 10, 8, 15, 100)
	assert.Zero(t, result.Simulations)
	assert.Zero(t, result.Probability)
}
