package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blub-trading/board-proxy/cache"
)

// Config is the root configuration for the board proxy
type Config struct {
	// Base URL of the trading-volumes backend API
	TradingAPIURL string `yaml:"trading_api_url"`

	// Base URL of the auth gateway (twitter login, session, wallet linking)
	AuthGatewayURL string `yaml:"auth_gateway_url"`

	Leaderboard LeaderboardFetcherConfig `yaml:"leaderboard"`
	Wallet      WalletFetcherConfig      `yaml:"wallet"`
	Auth        AuthClientConfig         `yaml:"auth"`
	Cache       cache.Config             `yaml:"cache"`
}

// LoadConfig reads the yaml config file and applies defaults for missing sections
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	config.applyDefaults()

	return &config, nil
}

// DefaultConfig returns a config with all defaults applied, used when no
// config file is present
func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.TradingAPIURL == "" {
		c.TradingAPIURL = DEFAULT_TRADING_API_URL
	}
	if c.AuthGatewayURL == "" {
		c.AuthGatewayURL = c.TradingAPIURL
	}
	c.Leaderboard.applyDefaults()
	c.Wallet.applyDefaults()
	c.Auth.applyDefaults()
	if c.Cache.GoCache.DefaultExpiration == 0 {
		c.Cache = cache.DefaultCacheConfig()
	}
}
