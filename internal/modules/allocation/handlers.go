package allocation

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/domain"
)

// Handler handles allocation HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "allocation").Logger(),
	}
}

type request struct {
	Assets   []domain.Asset `json:"assets"`
	Strategy Strategy       `json:"strategy,omitempty"`
}

// HandleGenerate returns either a single strategy's allocation or all
// four when no strategy is named.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Strategy {
	case StrategyOptimal:
		h.writeJSON(w, http.StatusOK, StrategyResult{Strategy: req.Strategy, Allocation: h.service.Optimal(req.Assets)})
	case StrategyMinVariance:
		h.writeJSON(w, http.StatusOK, StrategyResult{Strategy: req.Strategy, Allocation: h.service.MinVariance(req.Assets)})
	case StrategyRiskParity:
		h.writeJSON(w, http.StatusOK, StrategyResult{Strategy: req.Strategy, Allocation: h.service.RiskParity(req.Assets)})
	case StrategyMaxReturn:
		h.writeJSON(w, http.StatusOK, StrategyResult{Strategy: req.Strategy, Allocation: h.service.MaxReturn(req.Assets)})
	case "":
		h.writeJSON(w, http.StatusOK, h.service.All(req.Assets))
	default:
		h.writeError(w, http.StatusBadRequest, "unknown strategy")
	}
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
