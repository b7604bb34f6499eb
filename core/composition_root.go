package core

import (
	"context"
	"os"

	"github.com/blub-trading/board-proxy/api"
	"github.com/blub-trading/board-proxy/auth"
	"github.com/blub-trading/board-proxy/cache"
	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/volumes_leaderboard"
	"github.com/blub-trading/board-proxy/volumes_wallet"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Create Cache service
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Create Leaderboard service with cache and trading API client
	leaderboardClient := volumes_leaderboard.NewTradingAPIClient(cfg)
	leaderboardService := volumes_leaderboard.NewService(cfg, cacheService, leaderboardClient)
	registry.Register(leaderboardService)

	// Create Wallet detail service sharing the same cache
	walletClient := volumes_wallet.NewTradingAPIClient(cfg)
	walletService := volumes_wallet.NewService(cfg, cacheService, walletClient)
	registry.Register(walletService)

	// Auth gateway passthrough client (no lifecycle of its own)
	authClient := auth.NewClient(cfg)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server and register it as a service
	server := api.New(port, cfg, leaderboardService, walletService, authClient)
	registry.Register(server)

	return registry, nil
}
