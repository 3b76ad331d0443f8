package decomposition

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
	"github.com/foliolab/quant/internal/modules/matrix"
)

// Handler handles decomposition HTTP requests
type Handler struct {
	service *Service
	builder *matrix.Builder
	log     zerolog.Logger
}

// NewHandler creates a new decomposition handler
func NewHandler(service *Service, builder *matrix.Builder, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		builder: builder,
		log:     log.With().Str("handler", "decomposition").Logger(),
	}
}

type request struct {
	Assets     []domain.Asset      `json:"assets"`
	Allocation domain.Allocation   `json:"allocation,omitempty"`
	Weights    domain.WeightVector `json:"weights,omitempty"`
}

func (r *request) resolveWeights() domain.WeightVector {
	if len(r.Allocation) > 0 {
		return r.Allocation.Weights(r.Assets)
	}
	if len(r.Weights) > 0 {
		return r.Weights
	}
	return domain.EqualWeights(len(r.Assets))
}

func (r *request) resolveAllocation() domain.Allocation {
	if len(r.Allocation) > 0 {
		return r.Allocation
	}
	return r.resolveWeights().ToAllocation(r.Assets)
}

// HandleDecompose returns per-holding beta/alpha contributions
func (h *Handler) HandleDecompose(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Decompose(req.Assets, req.resolveWeights()))
}

// HandleConcentration returns the concentration report
func (h *Handler) HandleConcentration(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Concentration(req.Assets, req.resolveAllocation()))
}

// HandleCorrelationStress returns the correlation stress summary
func (h *Handler) HandleCorrelationStress(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	corr := h.builder.Correlation(req.Assets)
	h.writeJSON(w, http.StatusOK, h.service.Stress(corr))
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
