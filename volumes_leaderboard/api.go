package volumes_leaderboard

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/metrics"
	vc "github.com/blub-trading/board-proxy/volumes_common"
)

// APIClient defines interface for trading API leaderboard operations.
// The in-package test mock exists alongside mocks/ because the service tests
// reach unexported state and must stay in this package, where importing
// mocks/ would cycle.
//
//go:generate mockgen -destination=mocks/api_client.go -package=mock_volumes_leaderboard . APIClient
//go:generate mockgen -destination=mock_api_client_test.go -package=volumes_leaderboard . APIClient
type APIClient interface {
	// FetchPage fetches a single leaderboard page for the given query state
	FetchPage(ctx context.Context, state QueryState) (*PageEnvelope, error)
	// Healthy checks if at least one fetch has succeeded
	Healthy() bool
}

// TradingAPIClient implements APIClient against the trading-volumes backend
type TradingAPIClient struct {
	config          *config.Config
	httpClient      *vc.HTTPClientWithRetries
	successfulFetch atomic.Bool
}

// NewTradingAPIClient creates a new trading API client with retry support
func NewTradingAPIClient(cfg *config.Config) *TradingAPIClient {
	retryOpts := vc.DefaultRetryOptions()
	retryOpts.LogPrefix = "TradingAPI"

	metricsHandler := vc.NewHttpRequestMetricsWriter(metrics.ServiceLeaderboard)

	return &TradingAPIClient{
		config:     cfg,
		httpClient: vc.NewHTTPClientWithRetries(retryOpts, metricsHandler, vc.GetRateLimiterManagerInstance()),
	}
}

// Healthy reports whether the client has had at least one successful fetch
func (c *TradingAPIClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchPage fetches a single leaderboard page with retry capability
func (c *TradingAPIClient) FetchPage(ctx context.Context, state QueryState) (*PageEnvelope, error) {
	values, err := state.Values()
	if err != nil {
		return nil, err
	}

	request, err := vc.NewRequestBuilder(c.config.TradingAPIURL, vc.LEADERBOARD_API_PATH).
		WithValues(values).
		Build()
	if err != nil {
		return nil, err
	}

	resp, body, duration, err := c.httpClient.ExecuteRequest(request.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var page PageEnvelope
	if err := json.Unmarshal(body, &page); err != nil {
		log.Printf("TradingAPI: Error parsing leaderboard response: %v", err)
		return nil, err
	}

	log.Printf("TradingAPI: Fetched page %d with %d items in %.2fs",
		state.Page, len(page.Items), duration.Seconds())

	c.successfulFetch.Store(true)

	return &page, nil
}
