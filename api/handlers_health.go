package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"leaderboard": "unknown",
			"wallet":      "unknown",
		},
	}

	if s.leaderboardService.Healthy() {
		status["services"].(map[string]string)["leaderboard"] = "up"
	}

	if s.walletService.Healthy() {
		status["services"].(map[string]string)["wallet"] = "up"
	}

	s.sendJSONResponse(w, status)
}
