package volumes_common

import (
	"math"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// IRateLimiterManager provides a way to get a rate limiter for a request URL
//
//go:generate mockgen -destination=mocks/rate_limiter_manager.go . IRateLimiterManager
type IRateLimiterManager interface {
	GetLimiterForURL(u *url.URL) *rate.Limiter
	SetRate(requestsPerMinute, burst int)
}

// Default upstream budget in requests per minute, used when config is not provided
const defaultUpstreamRPM = 120

// RateLimiterManager manages one limiter per upstream host. The trading
// backend has no API keys, so the host is the budget boundary.
type RateLimiterManager struct {
	mu            sync.RWMutex
	hostToLimiter map[string]*rate.Limiter
	rpm           int
	burst         int
}

var (
	managerOnce   sync.Once
	globalManager *RateLimiterManager
)

// GetRateLimiterManagerInstance returns the global singleton RateLimiterManager instance
func GetRateLimiterManagerInstance() *RateLimiterManager {
	managerOnce.Do(func() {
		globalManager = &RateLimiterManager{
			hostToLimiter: make(map[string]*rate.Limiter),
		}
	})
	return globalManager
}

// SetRate applies a new budget and rebuilds existing limiters
func (m *RateLimiterManager) SetRate(requestsPerMinute, burst int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rpm == requestsPerMinute && m.burst == burst {
		return
	}

	m.rpm = requestsPerMinute
	m.burst = burst

	limit := m.limitLocked()
	for host := range m.hostToLimiter {
		m.hostToLimiter[host] = rate.NewLimiter(limit, m.burstLocked(limit))
	}
}

// GetLimiterForURL returns the limiter for the URL's host, creating it if missing
func (m *RateLimiterManager) GetLimiterForURL(u *url.URL) *rate.Limiter {
	if m == nil || u == nil {
		return nil
	}

	host := u.Hostname()
	if host == "" {
		return nil
	}

	m.mu.RLock()
	if lim, ok := m.hostToLimiter[host]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.hostToLimiter[host]; ok {
		return lim
	}

	limit := m.limitLocked()
	limiter := rate.NewLimiter(limit, m.burstLocked(limit))
	m.hostToLimiter[host] = limiter
	return limiter
}

func (m *RateLimiterManager) limitLocked() rate.Limit {
	rpm := m.rpm
	if rpm <= 0 {
		rpm = defaultUpstreamRPM
	}
	return rate.Limit(float64(rpm) / 60.0)
}

func (m *RateLimiterManager) burstLocked(limit rate.Limit) int {
	if m.burst > 0 {
		return m.burst
	}
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
