package projection

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
)

// Handler handles projection HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new projection handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "projection").Logger(),
	}
}

type request struct {
	Assets      []domain.Asset      `json:"assets"`
	Allocation  domain.Allocation   `json:"allocation,omitempty"`
	Weights     domain.WeightVector `json:"weights,omitempty"`
	Years       int                 `json:"years,omitempty"`
	Periods     int                 `json:"periods,omitempty"`
	Capital     float64             `json:"capital,omitempty"`
	Simulations int                 `json:"simulations,omitempty"`
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

// HandleBacktest returns the compounded yearly projection
func (h *Handler) HandleBacktest(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.HistoricalBacktest(req.Assets, req.resolveWeights(), req.Years))
}

// HandleDrawdowns returns the simulated monthly drawdown series
func (h *Handler) HandleDrawdowns(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.DrawdownSeries(req.Assets, req.resolveWeights(), req.Periods))
}

// HandleConfidenceBands returns the analytic confidence bands
func (h *Handler) HandleConfidenceBands(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.ConfidenceBands(req.Assets, req.resolveWeights(), req.Periods))
}

// HandleMonteCarlo runs the Monte Carlo simulation
func (h *Handler) HandleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result := h.service.MonteCarlo(req.Assets, req.resolveWeights(), req.Capital, req.Years, req.Simulations)
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
