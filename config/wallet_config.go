package config

import "time"

// WalletFetcherConfig configures the per-wallet trading volumes service
type WalletFetcherConfig struct {
	// CacheTTL is how long a fetched wallet detail response stays valid
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

func (c *WalletFetcherConfig) applyDefaults() {
	if c.CacheTTL == 0 {
		c.CacheTTL = 30 * time.Second
	}
}
