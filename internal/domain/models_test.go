package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocationWeightsRoundTrip(t *testing.T) {
	assets := []Asset{
		{Symbol: "VTI"},
		{Symbol: "BND"},
		{Symbol: "GLD"},
	}
	alloc := Allocation{"VTI": 60, "BND": 30, "GLD": 10}

	weights := alloc.Weights(assets)
	assert.Equal(t, WeightVector{0.6, 0.3, 0.1}, weights)
	assert.InDelta(t, 1.0, weights.Sum(), 1e-12)

	back := weights.ToAllocation(assets)
	for sym, pct := range alloc {
		assert.InDelta(t, pct, back[sym], 1e-9, "symbol %s", sym)
	}
}

func TestAllocationWeightsMissingSymbol(t *testing.T) {
	assets := []Asset{
		{Symbol: "VTI"},
		{Symbol: "UNLISTED"},
	}
	alloc := Allocation{"VTI": 100}

	weights := alloc.Weights(assets)
	assert.Equal(t, WeightVector{1.0, 0.0}, weights)
}

func TestToAllocationShortVector(t *testing.T) {
	assets := []Asset{{Symbol: "A"}, {Symbol: "B"}, {Symbol: "C"}}
	weights := WeightVector{0.5, 0.5}

	alloc := weights.ToAllocation(assets)
	assert.Equal(t, 50.0, alloc["A"])
	assert.Equal(t, 50.0, alloc["B"])
	assert.NotContains(t, alloc, "C")
}

func TestAllocationSum(t *testing.T) {
	assert.Equal(t, 0.0, Allocation{}.Sum())
	assert.Equal(t, 100.0, Allocation{"A": 40, "B": 60}.Sum())
}

func TestEqualWeights(t *testing.T) {
	assert.Empty(t, EqualWeights(0))
	assert.Empty(t, EqualWeights(-3))

	weights := EqualWeights(4)
	assert.Len(t, weights, 4)
	for _, w := range weights {
		assert.Equal(t, 0.25, w)
	}
	assert.InDelta(t, 1.0, weights.Sum(), 1e-12)
}
