package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blub-trading/board-proxy/auth"
	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/metrics"
	"github.com/blub-trading/board-proxy/volumes_leaderboard"
	"github.com/blub-trading/board-proxy/volumes_wallet"
)

type Server struct {
	port               string
	config             *config.Config
	leaderboardService *volumes_leaderboard.Service
	walletService      *volumes_wallet.Service
	authClient         *auth.Client
	server             *http.Server
	upgrader           websocket.Upgrader
}

func New(port string, cfg *config.Config, leaderboardService *volumes_leaderboard.Service, walletService *volumes_wallet.Service, authClient *auth.Client) *Server {
	return &Server{
		port:               port,
		config:             cfg,
		leaderboardService: leaderboardService,
		walletService:      walletService,
		authClient:         authClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The board UI is served from another origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router builds the HTTP routing table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	// Leaderboard endpoints
	router.HandleFunc("/api/v1/leaderboard", s.withLatency("leaderboard", s.handleLeaderboard)).Methods("GET")
	router.HandleFunc("/api/v1/leaderboard/wallets/{address}", s.withLatency("wallet", s.handleWallet)).Methods("GET")
	router.HandleFunc("/api/v1/leaderboard/updates", s.handleUpdates)

	// Auth gateway passthrough
	router.HandleFunc("/api/v1/auth/twitter/start", s.withLatency("auth_start", s.handleAuthStart)).Methods("GET")
	router.HandleFunc("/api/v1/auth/user", s.withLatency("auth_user", s.handleAuthUser)).Methods("GET")
	router.HandleFunc("/api/v1/auth/logout", s.withLatency("auth_logout", s.handleAuthLogout)).Methods("POST")
	router.HandleFunc("/api/v1/wallet/link", s.withLatency("wallet_link", s.handleWalletLink)).Methods("POST")

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// withLatency records served-request latency per endpoint
func (s *Server) withLatency(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		metrics.RecordRequestLatency(endpoint, start)
	}
}
