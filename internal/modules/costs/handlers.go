package costs

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
)

// Handler handles cost HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new costs handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "costs").Logger(),
	}
}

type request struct {
	NewAllocation  domain.Allocation `json:"new_allocation"`
	OldAllocation  domain.Allocation `json:"old_allocation"`
	Bps            float64           `json:"bps,omitempty"`
	FrequencyYears float64           `json:"frequency_years,omitempty"`
}

// HandleTransactionCosts estimates the one-off cost of a reallocation
func (h *Handler) HandleTransactionCosts(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.TransactionCosts(req.NewAllocation, req.OldAllocation, req.Bps))
}

// HandleRebalancingImpact accumulates the cost over a five-year horizon
func (h *Handler) HandleRebalancingImpact(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.Impact(req.NewAllocation, req.OldAllocation, req.FrequencyYears, req.Bps))
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
