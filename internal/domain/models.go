package domain

// Asset represents a single holding as supplied by the data backend.
// Attributes are assumed present and numeric; the engine never mutates them.
type Asset struct {
	Symbol         string  `json:"symbol"`
	Sector         string  `json:"sector"`
	Beta           float64 `json:"beta"`
	Risk           float64 `json:"risk"`            // annualized volatility, percent
	ExpectedReturn float64 `json:"expected_return"` // annualized, percent
	ProfitMargin   float64 `json:"profit_margin"`   // fractional, e.g. 0.25
	Domestic       bool    `json:"domestic"`
}

// WeightVector is an ordered list of fractional weights, index-aligned
// with the asset list it was built against. Weights are >= 0 and are
// expected (not enforced) to sum to ~1.0.
type WeightVector []float64

// Allocation maps symbol to a percentage of the portfolio (0-100).
// Missing symbols are treated as a 0% allocation.
type Allocation map[string]float64

// Sum returns the total allocated percentage.
func (a Allocation) Sum() float64 {
	total := 0.0
	for _, pct := range a {
		total += pct
	}
	return total
}

// Weights converts an allocation to a weight vector aligned with assets.
// This is the single canonical Allocation -> WeightVector conversion;
// symbols absent from the allocation contribute a 0 weight.
func (a Allocation) Weights(assets []Asset) WeightVector {
	weights := make(WeightVector, len(assets))
	for i, asset := range assets {
		weights[i] = a[asset.Symbol] / 100.0
	}
	return weights
}

// ToAllocation converts a weight vector back to the symbol-keyed
// percentage representation.
func (w WeightVector) ToAllocation(assets []Asset) Allocation {
	alloc := make(Allocation, len(assets))
	for i, asset := range assets {
		if i >= len(w) {
			break
		}
		alloc[asset.Symbol] = w[i] * 100.0
	}
	return alloc
}

// Sum returns the total weight.
func (w WeightVector) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// EqualWeights returns a uniform weight vector for n assets.
func EqualWeights(n int) WeightVector {
	if n <= 0 {
		return WeightVector{}
	}
	weights := make(WeightVector, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	return weights
}
