package cache

import (
	"context"
	"fmt"
	"time"
)

// Service implements the Cache interface on top of an in-memory go-cache
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	expiration := config.GoCache.DefaultExpiration
	cleanup := config.GoCache.CleanupInterval
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	if cleanup == 0 {
		cleanup = 2 * time.Minute
	}

	return &Service{
		goCache: NewGoCache(expiration, cleanup),
		config:  config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// GetOrLoad returns cached data for the keys, loading and caching the missing
// ones through loader
func (s *Service) GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	cached := s.goCache.Get(keys)
	result := cached.Found

	if len(cached.MissingKeys) > 0 {
		loaded, err := loader(cached.MissingKeys)
		if err != nil {
			return nil, fmt.Errorf("failed to load data: %w", err)
		}

		if len(loaded) > 0 {
			s.goCache.Set(loaded, ttl)
		}

		for key, value := range loaded {
			result[key] = value
		}
	}

	return result, nil
}

// Delete removes items from cache by keys
func (s *Service) Delete(keys []string) {
	if s.goCache != nil {
		s.goCache.Delete(keys)
	}
}

// Clear removes all items from cache
func (s *Service) Clear() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// ItemCount returns the number of items currently cached
func (s *Service) ItemCount() int {
	return s.goCache.ItemCount()
}
