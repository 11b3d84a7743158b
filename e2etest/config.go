package e2etest

import (
	"fmt"
	"os"

	"github.com/cryptodash/price-proxy/config"
)

// testPort is a fixed port for the service under test, distinct from
// the default so the tests can run next to a local instance
const testPort = "8091"

// loadTestConfig writes a config file pointing at the mock upstream
// and loads it through the regular config path
func loadTestConfig(upstreamURL string) (*config.Config, string, error) {
	content := fmt.Sprintf(`port: "%s"
debug: false
coingecko:
  endpoint: %s
  timeout: 5s
cache:
  go_cache:
    default_expiration: 5m
    cleanup_interval: 10m
    enabled: true
  top_list_ttl: 60s
  full_list_ttl: 300s
  coin_ttl: 60s
rate_limit:
  requests_per_minute: 100000
  burst: 100000
`, testPort, upstreamURL)

	file, err := os.CreateTemp("", "price-proxy-e2e-*.yaml")
	if err != nil {
		return nil, "", err
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, "", err
	}
	file.Close()

	cfg, err := config.LoadConfig(file.Name())
	if err != nil {
		os.Remove(file.Name())
		return nil, "", err
	}
	return cfg, file.Name(), nil
}

// cleanupTestConfig removes the temporary config file
func cleanupTestConfig(path string) {
	if path != "" {
		os.Remove(path)
	}
}
