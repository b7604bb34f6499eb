package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blub-trading/board-proxy/auth"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// walletResponse is the per-wallet detail payload
type walletResponse struct {
	Wallet string          `json:"wallet"`
	Data   []vl.DisplayRow `json:"data"`
}

// handleWallet serves the trading volume records of one wallet address
func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if !auth.ValidWalletAddress(address) {
		http.Error(w, "Invalid wallet address", http.StatusBadRequest)
		return
	}

	records, err := s.walletService.GetWallet(r.Context(), address)
	if err != nil {
		http.Error(w, "Wallet data temporarily unavailable", http.StatusBadGateway)
		return
	}

	s.sendJSONResponse(w, walletResponse{
		Wallet: address,
		Data:   vl.ProjectRecords(records),
	})
}
