// Package auth wraps the auth gateway endpoints the board UI depends on:
// social-login start, session check, logout and wallet linking. The OAuth
// flow itself lives in the gateway; these are opaque passthrough calls.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/blub-trading/board-proxy/config"
)

const (
	TWITTER_START_PATH = "/auth/twitter/start"
	CURRENT_USER_PATH  = "/auth/user"
	LOGOUT_PATH        = "/auth/logout"
	WALLET_LINK_PATH   = "/api/wallet/link"
)

// walletAddressPattern matches a 0x-prefixed 40-hex-digit wallet address
var walletAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// AuthStart is the response of the twitter login start endpoint
type AuthStart struct {
	AuthURL string `json:"auth_url"`
}

// UserSession is the current session state. Authenticated false is the
// graceful-degradation value for any failed check.
type UserSession struct {
	Authenticated   bool    `json:"authenticated"`
	Username        *string `json:"username,omitempty"`
	DisplayName     *string `json:"display_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// gatewayError is the error payload shape of the auth gateway
type gatewayError struct {
	Detail string `json:"detail"`
}

// Client calls the auth gateway. Requests are deliberately not retried: a
// failed session check degrades to logged-out instead of erroring, and the
// remaining calls surface their failure to the caller directly.
type Client struct {
	config     *config.Config
	httpClient *http.Client
}

// NewClient creates a new auth gateway client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Auth.RequestTimeout,
		},
	}
}

// StartTwitterAuth asks the gateway for the OAuth redirect URL
func (c *Client) StartTwitterAuth(ctx context.Context) (*AuthStart, error) {
	body, err := c.do(ctx, http.MethodGet, TWITTER_START_PATH, nil)
	if err != nil {
		return nil, err
	}

	var start AuthStart
	if err := json.Unmarshal(body, &start); err != nil {
		return nil, fmt.Errorf("parsing auth start response: %w", err)
	}
	if start.AuthURL == "" {
		return nil, fmt.Errorf("auth start response missing auth_url")
	}
	return &start, nil
}

// CurrentUser checks the session. Any transport or HTTP failure is treated as
// "not authenticated", never as a hard error.
func (c *Client) CurrentUser(ctx context.Context) *UserSession {
	body, err := c.do(ctx, http.MethodGet, CURRENT_USER_PATH, nil)
	if err != nil {
		log.Printf("Auth: Session check failed, treating as logged out: %v", err)
		return &UserSession{Authenticated: false}
	}

	var session UserSession
	if err := json.Unmarshal(body, &session); err != nil {
		log.Printf("Auth: Unreadable session response, treating as logged out: %v", err)
		return &UserSession{Authenticated: false}
	}
	return &session
}

// Logout ends the current session
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, LOGOUT_PATH, nil)
	return err
}

// LinkWallet attaches a wallet address to the logged-in identity. The address
// is validated before the gateway is called.
func (c *Client) LinkWallet(ctx context.Context, walletAddress string) error {
	if !walletAddressPattern.MatchString(walletAddress) {
		return fmt.Errorf("invalid wallet address %q", walletAddress)
	}

	payload, err := json.Marshal(map[string]string{"wallet_address": walletAddress})
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, WALLET_LINK_PATH, payload)
	return err
}

// ValidWalletAddress reports whether the address has the expected format
func ValidWalletAddress(walletAddress string) bool {
	return walletAddressPattern.MatchString(walletAddress)
}

// do executes a single gateway call without retries
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	url := strings.TrimRight(c.config.AuthGatewayURL, "/") + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var gwErr gatewayError
		if json.Unmarshal(body, &gwErr) == nil && gwErr.Detail != "" {
			return nil, fmt.Errorf("auth gateway error %d %s: %s",
				resp.StatusCode, resp.Status, gwErr.Detail)
		}
		return nil, fmt.Errorf("auth gateway error %d %s", resp.StatusCode, resp.Status)
	}

	return body, nil
}
