package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/core"
)

// TestEnv is one running proxy instance wired to a mock upstream
type TestEnv struct {
	Registry      *core.Registry
	Upstream      *MockUpstream
	CancelFunc    context.CancelFunc
	ServerBaseURL string
}

// SetupTest starts the full service stack against a mock upstream
func SetupTest(t *testing.T) *TestEnv {
	ctx, cancel := context.WithCancel(context.Background())

	upstream := NewMockUpstream()

	cfg := config.DefaultConfig()
	cfg.TradingAPIURL = upstream.URL()
	cfg.AuthGatewayURL = upstream.URL()
	cfg.Leaderboard.UpdateInterval = 100 * time.Millisecond
	cfg.Leaderboard.CacheTTL = time.Minute

	testPort := "18081"
	os.Setenv("PORT", testPort)

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		upstream.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		upstream.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	serverBaseURL := fmt.Sprintf("http://localhost:%s", testPort)

	// Wait until the server answers
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(serverBaseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			break
		}
		if err == nil {
			resp.Body.Close()
		}
		if time.Now().After(deadline) {
			registry.StopAll()
			upstream.Close()
			cancel()
			t.Fatalf("Server not responding: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	return &TestEnv{
		Registry:      registry,
		Upstream:      upstream,
		CancelFunc:    cancel,
		ServerBaseURL: serverBaseURL,
	}
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.Upstream != nil {
		env.Upstream.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
}
