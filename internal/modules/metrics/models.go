package metrics

// PortfolioMetrics bundles the derived risk/return scalars for one
// (assets, weights) pair. It is recomputed fresh on every call.
type PortfolioMetrics struct {
	ExpectedReturn   float64 `json:"expected_return"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	SortinoRatio     float64 `json:"sortino_ratio"`
	BetaPortfolio    float64 `json:"beta_portfolio"`
	AlphaPortfolio   float64 `json:"alpha_portfolio"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	VaR95            float64 `json:"var_95"`
	CVaR95           float64 `json:"cvar_95"`
	CalmarRatio      float64 `json:"calmar_ratio"`
	InformationRatio float64 `json:"information_ratio"`
	TreynorRatio     float64 `json:"treynor_ratio"`
}
