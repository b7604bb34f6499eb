package config

import "time"

// AuthClientConfig configures the auth gateway client.
//
// Auth calls are deliberately not retried: a failed session check degrades to
// the logged-out state instead of propagating an error.
type AuthClientConfig struct {
	// RequestTimeout is the total timeout for a single auth gateway call
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func (c *AuthClientConfig) applyDefaults() {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 10 * time.Second
	}
}
