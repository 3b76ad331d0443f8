package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/matrix"
)

// Handler handles metrics HTTP requests
type Handler struct {
	service *Service
	builder *matrix.Builder
	log     zerolog.Logger
}

// NewHandler creates a new metrics handler
func NewHandler(service *Service, builder *matrix.Builder, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		builder: builder,
		log:     log.With().Str("handler", "metrics").Logger(),
	}
}

// AnalysisRequest is the common payload for metric calculations:
// the holdings plus either an allocation map or an index-aligned
// weight vector. When both are present the allocation wins.
type AnalysisRequest struct {
	Assets     []domain.Asset      `json:"assets"`
	Allocation domain.Allocation   `json:"allocation,omitempty"`
	Weights    domain.WeightVector `json:"weights,omitempty"`
}

// ResolveWeights returns the index-aligned weight vector for the request.
func (r *AnalysisRequest) ResolveWeights() domain.WeightVector {
	if len(r.Allocation) > 0 {
		return r.Allocation.Weights(r.Assets)
	}
	if len(r.Weights) > 0 {
		return r.Weights
	}
	return domain.EqualWeights(len(r.Assets))
}

// HandleAdvanced returns the full PortfolioMetrics bundle
func (h *Handler) HandleAdvanced(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weights := req.ResolveWeights()
	corr := h.builder.Correlation(req.Assets)
	cov := h.builder.Covariance(req.Assets, corr)

	result := h.service.Advanced(req.Assets, weights, cov)
	h.writeJSON(w, http.StatusOK, result)
}

// HandleMatrices returns the correlation and covariance matrices
func (h *Handler) HandleMatrices(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	corr := h.builder.Correlation(req.Assets)
	cov := h.builder.Covariance(req.Assets, corr)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"correlation": corr,
		"covariance":  cov,
	})
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
