package core

import (
	"context"

	"github.com/cryptodash/price-proxy/api"
	"github.com/cryptodash/price-proxy/cache"
	"github.com/cryptodash/price-proxy/coingecko"
	"github.com/cryptodash/price-proxy/coins"
	"github.com/cryptodash/price-proxy/config"
	"github.com/cryptodash/price-proxy/metrics"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Cache service backs every cached read below
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Upstream client reports request outcomes to the metrics writer
	client := coingecko.NewClient(cfg, metrics.NewMetricsWriter(metrics.ServiceUpstream))

	// Coins service layers resolution, search and normalization on top
	coinsService := coins.NewService(cfg, cacheService, client)
	registry.Register(coinsService)

	// HTTP server goes last so everything it serves is started first
	server := api.New(cfg, coinsService)
	registry.Register(server)

	return registry, nil
}
