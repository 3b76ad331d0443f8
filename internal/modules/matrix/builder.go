package matrix

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/pkg/formulas"
)

const (
	// Correlation model coefficients. The pairwise correlation is a
	// heuristic proxy built from declared betas and sectors, not an
	// estimate from historical returns.
	betaCoupling    = 0.6
	sameSectorBonus = 0.3
	noiseAmplitude  = 0.1
	corrFloor       = -0.5
	corrCeil        = 0.95
)

// Builder constructs correlation and covariance matrices from per-asset
// attributes. The random source is seeded by the caller so repeated
// builds with the same seed produce identical matrices.
type Builder struct {
	rng *rand.Rand
	log zerolog.Logger
}

// NewBuilder creates a matrix builder with its own seeded random stream.
func NewBuilder(seed int64, log zerolog.Logger) *Builder {
	return &Builder{
		rng: rand.New(rand.NewSource(seed)),
		log: log.With().Str("component", "matrix").Logger(),
	}
}

// Correlation builds the pairwise correlation matrix.
// Diagonal entries are exactly 1.0. Off-diagonal entries are
// clamp(-0.5, 0.95, beta_i*beta_j*0.6 + sectorBonus + noise) with the
// noise sampled once per unordered pair: the upper triangle is computed
// and mirrored, so the matrix is symmetric by construction.
func (b *Builder) Correlation(assets []domain.Asset) [][]float64 {
	n := len(assets)
	corr := make([][]float64, n)
	for i := range corr {
		corr[i] = make([]float64, n)
		corr[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			value := assets[i].Beta * assets[j].Beta * betaCoupling
			if assets[i].Sector == assets[j].Sector {
				value += sameSectorBonus
			}
			value += formulas.SymmetricNoise(b.rng, noiseAmplitude)
			value = formulas.Clamp(value, corrFloor, corrCeil)

			corr[i][j] = value
			corr[j][i] = value
		}
	}

	return corr
}

// Covariance derives the covariance matrix from a correlation matrix
// and the per-asset volatilities: corr[i][j] * (risk_i/100) * (risk_j/100).
func (b *Builder) Covariance(assets []domain.Asset, corr [][]float64) [][]float64 {
	n := len(assets)
	cov := make([][]float64, n)
	for i := range cov {
		cov[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i >= len(corr) || j >= len(corr[i]) {
				continue
			}
			cov[i][j] = corr[i][j] * (assets[i].Risk / 100.0) * (assets[j].Risk / 100.0)
		}
	}
	return cov
}
