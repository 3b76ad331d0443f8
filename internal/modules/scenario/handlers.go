package scenario

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
)

// Handler handles scenario HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new scenario handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "scenario").Logger(),
	}
}

type request struct {
	Assets       []domain.Asset      `json:"assets"`
	Allocation   domain.Allocation   `json:"allocation,omitempty"`
	Weights      domain.WeightVector `json:"weights,omitempty"`
	Capital      float64             `json:"capital,omitempty"`
	HorizonYears int                 `json:"horizon_years,omitempty"`
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

// HandleStressTests runs the seven fixed stress scenarios
func (h *Handler) HandleStressTests(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.RunStressTests(req.Assets, req.resolveWeights()))
}

// HandleRegimes runs the four macro-regime projections
func (h *Handler) HandleRegimes(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	capital := req.Capital
	if capital <= 0 {
		capital = 100000
	}
	h.writeJSON(w, http.StatusOK, h.service.ExtendedScenarios(req.Assets, req.resolveWeights(), capital, req.HorizonYears))
}

// HandleStressPaths runs the eight crisis path simulations
func (h *Handler) HandleStressPaths(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.StressPaths(req.Assets, req.resolveWeights(), req.Capital))
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
