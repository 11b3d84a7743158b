package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cryptodash/price-proxy/core"
)

// TestEnv represents a running service wired to a mock upstream
type TestEnv struct {
	Registry      *core.Registry
	Upstream      *MockUpstream
	Context       context.Context
	CancelFunc    context.CancelFunc
	ConfigPath    string
	ServerBaseURL string
}

// SetupTest starts the full service against a mock upstream
func SetupTest(t *testing.T) *TestEnv {
	ctx, cancel := context.WithCancel(context.Background())

	upstream := NewMockUpstream()

	cfg, configPath, err := loadTestConfig(upstream.URL())
	if err != nil {
		upstream.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	os.Setenv("PORT", testPort)
	cfg.Port = testPort

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		cleanupTestConfig(configPath)
		upstream.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		cleanupTestConfig(configPath)
		upstream.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	serverBaseURL := fmt.Sprintf("http://localhost:%s", testPort)

	// Wait for the listener to come up
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(serverBaseURL + "/v1/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			registry.StopAll()
			cleanupTestConfig(configPath)
			upstream.Close()
			cancel()
			t.Fatalf("Server not responding: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	return &TestEnv{
		Registry:      registry,
		Upstream:      upstream,
		Context:       ctx,
		CancelFunc:    cancel,
		ConfigPath:    configPath,
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
	cleanupTestConfig(env.ConfigPath)
}
