package volumes_wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blub-trading/board-proxy/cache"
	"github.com/blub-trading/board-proxy/config"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// Service serves wallet detail records through a per-address read-through
// cache. Addresses are case-insensitive; cache keys are lowercased so mixed
// casing of the same wallet shares one entry.
type Service struct {
	config *config.Config
	cache  *cache.Service
	client APIClient
}

// NewService creates a new wallet detail service
func NewService(cfg *config.Config, cacheService *cache.Service, client APIClient) *Service {
	return &Service{
		config: cfg,
		cache:  cacheService,
		client: client,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// GetWallet returns the volume records of one wallet, served from cache when
// a fresh copy exists
func (s *Service) GetWallet(ctx context.Context, walletAddress string) ([]vl.RawVolumeRecord, error) {
	key := cacheKey(walletAddress)

	loaded, err := s.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
		records, err := s.client.FetchWallet(ctx, walletAddress)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}, s.config.Wallet.CacheTTL)
	if err != nil {
		return nil, err
	}

	raw, ok := loaded[key]
	if !ok {
		return nil, fmt.Errorf("wallet records missing after cache load")
	}

	var records []vl.RawVolumeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Healthy checks if the service can reach the trading API
func (s *Service) Healthy() bool {
	return s.client.Healthy()
}

func cacheKey(walletAddress string) string {
	return "wallet:" + strings.ToLower(walletAddress)
}
