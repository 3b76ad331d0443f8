package matrix

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
)

func testAssets() []domain.Asset {
	return []domain.Asset{
		{Symbol: "AAA", Sector: "tech", Beta: 1.0, Risk: 18, ExpectedReturn: 12},
		{Symbol: "BBB", Sector: "tech", Beta: 1.0, Risk: 18, ExpectedReturn: 10},
		{Symbol: "CCC", Sector: "tech", Beta: 1.0, Risk: 18, ExpectedReturn: 8},
	}
}

func TestCorrelationDiagonalAndBounds(t *testing.T) {
	b := NewBuilder(42, zerolog.Nop())
	assets := []domain.Asset{
		{Symbol: "A", Sector: "tech", Beta: 1.8, Risk: 35},
		{Symbol: "B", Sector: "energy", Beta: 0.4, Risk: 12},
		{Symbol: "C", Sector: "tech", Beta: -0.9, Risk: 22},
		{Symbol: "D", Sector: "health", Beta: 2.5, Risk: 50},
	}

	corr := b.Correlation(assets)

	for i := range corr {
		if corr[i][i] != 1.0 {
			t.Errorf("corr[%d][%d] = %v, want 1.0", i, i, corr[i][i])
		}
		for j := range corr[i] {
			if i == j {
				continue
			}
			if corr[i][j] < -0.5 || corr[i][j] > 0.95 {
				t.Errorf("corr[%d][%d] = %v, out of [-0.5, 0.95]", i, j, corr[i][j])
			}
		}
	}
}

func TestCorrelationSymmetry(t *testing.T) {
	b := NewBuilder(7, zerolog.Nop())
	corr := b.Correlation(testAssets())

	for i := range corr {
		for j := range corr[i] {
			if corr[i][j] != corr[j][i] {
				t.Errorf("corr[%d][%d]=%v != corr[%d][%d]=%v", i, j, corr[i][j], j, i, corr[j][i])
			}
		}
	}
}

func TestCorrelationSameSectorUnitBeta(t *testing.T) {
	// Three same-sector beta-1 assets: off-diagonal = 0.6 + 0.3 + noise,
	// with noise bounded by 0.1.
	b := NewBuilder(1, zerolog.Nop())
	corr := b.Correlation(testAssets())

	for i := range corr {
		for j := range corr[i] {
			if i == j {
				continue
			}
			if math.Abs(corr[i][j]-0.9) > 0.1+1e-9 {
				t.Errorf("corr[%d][%d] = %v, want 0.9 +/- 0.1", i, j, corr[i][j])
			}
		}
	}
}

func TestCorrelationReproducible(t *testing.T) {
	assets := testAssets()
	first := NewBuilder(99, zerolog.Nop()).Correlation(assets)
	second := NewBuilder(99, zerolog.Nop()).Correlation(assets)

	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("same seed produced different matrices at [%d][%d]", i, j)
			}
		}
	}
}

func TestCorrelationEmpty(t *testing.T) {
	b := NewBuilder(1, zerolog.Nop())
	corr := b.Correlation(nil)
	if len(corr) != 0 {
		t.Errorf("expected empty matrix, got %d rows", len(corr))
	}
}

func TestCovariance(t *testing.T) {
	b := NewBuilder(1, zerolog.Nop())
	assets := []domain.Asset{
		{Symbol: "A", Risk: 20},
		{Symbol: "B", Risk: 10},
	}
	corr := [][]float64{
		{1.0, 0.5},
		{0.5, 1.0},
	}

	cov := b.Covariance(assets, corr)

	if math.Abs(cov[0][0]-0.04) > 1e-12 {
		t.Errorf("cov[0][0] = %v, want 0.04", cov[0][0])
	}
	if math.Abs(cov[0][1]-0.5*0.2*0.1) > 1e-12 {
		t.Errorf("cov[0][1] = %v, want 0.01", cov[0][1])
	}
	if cov[0][1] != cov[1][0] {
		t.Errorf("covariance not symmetric: %v vs %v", cov[0][1], cov[1][0])
	}
}
