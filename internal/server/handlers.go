package server

import (
	"encoding/json"
	"net/http"
	"time"
)

var startTime = time.Now()

// handleHealth is a simple liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSystemStatus reports uptime and the active engine constants
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(time.Since(startTime).Seconds()),
		"engine": map[string]interface{}{
			"risk_free_rate":       s.cfg.Engine.RiskFreeRate,
			"market_return":        s.cfg.Engine.MarketReturn,
			"simulations":          s.cfg.Engine.Simulations,
			"transaction_cost_bps": s.cfg.Engine.TransactionCostBps,
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
