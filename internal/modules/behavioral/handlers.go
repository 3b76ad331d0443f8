package behavioral

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/matrix"
	"github.com/foliolab/quant/internal/modules/metrics"
)

// Handler handles behavioral HTTP requests
type Handler struct {
	service *Service
	metrics *metrics.Service
	builder *matrix.Builder
	log     zerolog.Logger
}

// NewHandler creates a new behavioral handler
func NewHandler(service *Service, metricsSvc *metrics.Service, builder *matrix.Builder, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		metrics: metricsSvc,
		builder: builder,
		log:     log.With().Str("handler", "behavioral").Logger(),
	}
}

type portfolioRequest struct {
	Assets     []domain.Asset      `json:"assets"`
	Allocation domain.Allocation   `json:"allocation,omitempty"`
	Weights    domain.WeightVector `json:"weights,omitempty"`
}

func (r *portfolioRequest) resolveAllocation() domain.Allocation {
	if len(r.Allocation) > 0 {
		return r.Allocation
	}
	if len(r.Weights) > 0 {
		return r.Weights.ToAllocation(r.Assets)
	}
	return domain.EqualWeights(len(r.Assets)).ToAllocation(r.Assets)
}

type goalRequest struct {
	Target          float64 `json:"target"`
	Current         float64 `json:"current"`
	HorizonYears    int     `json:"horizon_years"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
	VolatilityPct   float64 `json:"volatility_pct"`
	Simulations     int     `json:"simulations,omitempty"`
}

// HandleBiases returns the detected behavioral biases
func (h *Handler) HandleBiases(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.DetectBiases(req.Assets, req.resolveAllocation()))
}

// HandleScore returns the 0-100 investor score
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	alloc := req.resolveAllocation()
	weights := alloc.Weights(req.Assets)
	corr := h.builder.Correlation(req.Assets)
	cov := h.builder.Covariance(req.Assets, corr)
	bundle := h.metrics.Advanced(req.Assets, weights, cov)

	h.writeJSON(w, http.StatusOK, h.service.Score(req.Assets, alloc, bundle.SharpeRatio))
}

// HandleGoal returns the analytic goal probability
func (h *Handler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.GoalAnalytic(req.Target, req.Current, req.HorizonYears, req.AnnualReturnPct, req.VolatilityPct))
}

// HandleGoalMonteCarlo returns the simulation-based goal probability
func (h *Handler) HandleGoalMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result := h.service.GoalMonteCarloEstimate(req.Target, req.Current, req.HorizonYears, req.AnnualReturnPct, req.VolatilityPct, req.Simulations)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
