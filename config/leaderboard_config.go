package config

import "time"

const (
	// Default base URL of the trading backend, matching the local dev setup
	DEFAULT_TRADING_API_URL = "http://localhost:8000"

	DEFAULT_PAGE_LIMIT = 10
)

// DefaultPageLimits is the allowed set of page sizes when the config does not
// override it
var DefaultPageLimits = []int{10, 20, 25, 50, 100}

// LeaderboardFetcherConfig configures the leaderboard page fetching service
type LeaderboardFetcherConfig struct {
	// UpdateInterval is how often the default first page is refreshed
	UpdateInterval time.Duration `yaml:"update_interval"`

	// CacheTTL is how long an on-demand fetched page stays valid
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// DefaultLimit is the page size used for the periodically refreshed page
	DefaultLimit int `yaml:"default_limit"`

	// AllowedLimits is the whitelist of page sizes accepted from clients
	AllowedLimits []int `yaml:"allowed_limits"`
}

func (c *LeaderboardFetcherConfig) applyDefaults() {
	if c.UpdateInterval == 0 {
		c.UpdateInterval = 60 * time.Second
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 30 * time.Second
	}
	if c.DefaultLimit == 0 {
		c.DefaultLimit = DEFAULT_PAGE_LIMIT
	}
	if len(c.AllowedLimits) == 0 {
		c.AllowedLimits = DefaultPageLimits
	}
}

// LimitAllowed reports whether the given page size is in the allowed set
func (c *LeaderboardFetcherConfig) LimitAllowed(limit int) bool {
	for _, allowed := range c.AllowedLimits {
		if limit == allowed {
			return true
		}
	}
	return false
}
