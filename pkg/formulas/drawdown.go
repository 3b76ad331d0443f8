package formulas

// MaxDrawdown calculates the maximum drawdown of a value path.
//
// Drawdown Formula:
//
//	Drawdown = (Peak Value - Current Value) / Peak Value
//	Max Drawdown = Maximum of all drawdowns
//
// Returns a positive fraction (0.25 = 25% loss from peak); 0 for paths
// shorter than two points.
func MaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	maxDrawdown := 0.0
	peak := values[0]

	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdown := (peak - v) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}

// DrawdownAt returns the percentage decline from the running peak at
// each point of the path, as positive percentages.
func DrawdownAt(values []float64) []float64 {
	out := make([]float64, len(values))
	peak := 0.0
	for i, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			out[i] = (peak - v) / peak * 100.0
		}
	}
	return out
}
