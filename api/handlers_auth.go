package api

import (
	"encoding/json"
	"net/http"

	"github.com/blub-trading/board-proxy/auth"
)

// handleAuthStart begins the twitter login flow and returns the redirect URL
func (s *Server) handleAuthStart(w http.ResponseWriter, r *http.Request) {
	start, err := s.authClient.StartTwitterAuth(r.Context())
	if err != nil {
		http.Error(w, "Login temporarily unavailable", http.StatusBadGateway)
		return
	}

	s.sendJSONResponse(w, start)
}

// handleAuthUser returns the current session. This endpoint never fails: an
// unreachable gateway reads as logged out.
func (s *Server) handleAuthUser(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, s.authClient.CurrentUser(r.Context()))
}

// handleAuthLogout ends the current session
func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.authClient.Logout(r.Context()); err != nil {
		http.Error(w, "Logout failed", http.StatusBadGateway)
		return
	}

	s.sendJSONResponse(w, map[string]bool{"success": true})
}

// walletLinkRequest is the body of a wallet link request
type walletLinkRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// handleWalletLink attaches a wallet address to the logged-in identity
func (s *Server) handleWalletLink(w http.ResponseWriter, r *http.Request) {
	var req walletLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !auth.ValidWalletAddress(req.WalletAddress) {
		http.Error(w, "Invalid wallet address", http.StatusBadRequest)
		return
	}

	if err := s.authClient.LinkWallet(r.Context(), req.WalletAddress); err != nil {
		http.Error(w, "Wallet link failed", http.StatusBadGateway)
		return
	}

	s.sendJSONResponse(w, map[string]bool{"success": true})
}
