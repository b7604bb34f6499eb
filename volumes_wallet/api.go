// Package volumes_wallet serves per-wallet trading volume details from the
// trading API, cached per address for a short TTL.
package volumes_wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/blub-trading/board-proxy/auth"
	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/metrics"
	vc "github.com/blub-trading/board-proxy/volumes_common"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// APIClient defines interface for per-wallet trading API operations
//
//go:generate mockgen -destination=mocks/api_client.go -package=mock_volumes_wallet . APIClient
type APIClient interface {
	// FetchWallet fetches the volume records of a single wallet address
	FetchWallet(ctx context.Context, walletAddress string) ([]vl.RawVolumeRecord, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// TradingAPIClient implements APIClient against the trading-volumes backend
type TradingAPIClient struct {
	config          *config.Config
	httpClient      *vc.HTTPClientWithRetries
	successfulFetch atomic.Bool
}

// NewTradingAPIClient creates a new per-wallet trading API client
func NewTradingAPIClient(cfg *config.Config) *TradingAPIClient {
	retryOpts := vc.DefaultRetryOptions()
	retryOpts.LogPrefix = "WalletAPI"

	metricsHandler := vc.NewHttpRequestMetricsWriter(metrics.ServiceWallet)

	return &TradingAPIClient{
		config:     cfg,
		httpClient: vc.NewHTTPClientWithRetries(retryOpts, metricsHandler, vc.GetRateLimiterManagerInstance()),
	}
}

// Healthy reports whether the client has had at least one successful fetch
func (c *TradingAPIClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchWallet fetches all volume records of one wallet with retry capability
func (c *TradingAPIClient) FetchWallet(ctx context.Context, walletAddress string) ([]vl.RawVolumeRecord, error) {
	if !auth.ValidWalletAddress(walletAddress) {
		return nil, fmt.Errorf("invalid wallet address %q", walletAddress)
	}

	request, err := vc.NewRequestBuilder(c.config.TradingAPIURL, vc.LEADERBOARD_API_PATH+walletAddress).
		Build()
	if err != nil {
		return nil, err
	}

	resp, body, duration, err := c.httpClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []vl.RawVolumeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		log.Printf("WalletAPI: Error parsing wallet response: %v", err)
		return nil, err
	}

	log.Printf("WalletAPI: Fetched %d records for %s in %.2fs",
		len(records), walletAddress, duration.Seconds())

	c.successfulFetch.Store(true)

	return records, nil
}
