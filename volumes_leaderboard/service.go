package volumes_leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blub-trading/board-proxy/cache"
	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/events"
	"github.com/blub-trading/board-proxy/metrics"
	"github.com/blub-trading/board-proxy/scheduler"
)

// Service serves leaderboard pages from the trading API through a short-lived
// read-through cache, and keeps the default first page refreshed in the
// background so update subscribers can be notified of new data.
type Service struct {
	config        *config.Config
	cache         *cache.Service
	client        APIClient
	scheduler     *scheduler.Scheduler
	subscriptions *events.SubscriptionManager

	defaultPage struct {
		sync.RWMutex
		data *PageEnvelope
	}
}

// NewService creates a new leaderboard service
func NewService(cfg *config.Config, cacheService *cache.Service, client APIClient) *Service {
	return &Service{
		config:        cfg,
		cache:         cacheService,
		client:        client,
		subscriptions: events.NewSubscriptionManager(),
	}
}

// Start begins the periodic refresh of the default page
func (s *Service) Start(ctx context.Context) error {
	s.scheduler = scheduler.New(
		s.config.Leaderboard.UpdateInterval,
		func(ctx context.Context) {
			if err := s.refreshDefaultPage(ctx); err != nil {
				log.Printf("Leaderboard: Error refreshing default page: %v", err)
			}
		},
	)

	s.scheduler.Start(ctx, true)
	return nil
}

func (s *Service) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SubscribeOnUpdates returns a subscription notified whenever a background
// refresh lands new data
func (s *Service) SubscribeOnUpdates() events.ISubscription {
	return s.subscriptions.Subscribe()
}

// GetPage returns the requested leaderboard page, served from cache when a
// fresh copy of the same query exists
func (s *Service) GetPage(ctx context.Context, state QueryState) (*PageEnvelope, error) {
	key := state.CacheKey()

	loaded, err := s.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
		page, err := s.client.FetchPage(ctx, state)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(page)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{key: data}, nil
	}, s.config.Leaderboard.CacheTTL)
	if err != nil {
		return nil, err
	}

	raw, ok := loaded[key]
	if !ok {
		return nil, fmt.Errorf("leaderboard page missing after cache load")
	}

	var page PageEnvelope
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetDefaultPage returns the last background-refreshed default page, or nil
// when no refresh has succeeded yet
func (s *Service) GetDefaultPage() *PageEnvelope {
	s.defaultPage.RLock()
	defer s.defaultPage.RUnlock()
	return s.defaultPage.data
}

// refreshDefaultPage fetches the default first page and notifies subscribers
func (s *Service) refreshDefaultPage(ctx context.Context) error {
	startTime := time.Now()

	state := DefaultQueryState().WithLimit(s.config.Leaderboard.DefaultLimit)
	page, err := s.client.FetchPage(ctx, state)

	metrics.RecordFetchCycle(metrics.ServiceLeaderboard, startTime)

	if err != nil {
		return err
	}

	s.defaultPage.Lock()
	s.defaultPage.data = page
	s.defaultPage.Unlock()

	if page != nil {
		metrics.RecordCacheSize(metrics.ServiceLeaderboard, len(page.Items))
	}

	s.subscriptions.Emit(ctx)

	return nil
}

// Healthy checks if the service has data or can reach the trading API
func (s *Service) Healthy() bool {
	if page := s.GetDefaultPage(); page != nil && len(page.Items) > 0 {
		return true
	}
	return s.client.Healthy()
}
