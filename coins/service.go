package coins

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cryptodash/price-proxy/cache"
	"github.com/cryptodash/price-proxy/coingecko"
	"github.com/cryptodash/price-proxy/config"
	"github.com/cryptodash/price-proxy/events"
	"github.com/cryptodash/price-proxy/metrics"
	"github.com/cryptodash/price-proxy/scheduler"
)

//go:generate mockgen -destination=mocks/api_client.go -package=mocks . APIClient

// APIClient is the upstream surface the coins service consumes
type APIClient interface {
	FetchMarkets(ctx context.Context, opts coingecko.MarketsOptions) ([]byte, error)
	FetchCoin(ctx context.Context, id string) ([]byte, error)
	FetchSimplePrice(ctx context.Context, ids, currencies []string) ([]byte, error)
	FetchTrending(ctx context.Context) ([]byte, error)
	FetchGlobal(ctx context.Context) ([]byte, error)
	Healthy() bool
}

// Cache keys owned by this service
const (
	topListKey  = "top_list"
	fullListKey = "full_list"
	coinKeyFmt  = "coin:%s"
)

const (
	topListPerPage  = 10
	fullListPerPage = 250

	trendingTTL = 5 * time.Minute
	globalTTL   = 5 * time.Minute
)

// Service serves coin lists, symbol resolution, search and detail
// lookups on top of the cache layer and the upstream client
type Service struct {
	cfg           *config.Config
	cache         cache.Cache
	client        APIClient
	metricsWriter *metrics.MetricsWriter
	updates       *events.SubscriptionManager
	refresher     *scheduler.Scheduler
}

// NewService creates a new coins service
func NewService(cfg *config.Config, cacheService cache.Cache, client APIClient) *Service {
	s := &Service{
		cfg:           cfg,
		cache:         cacheService,
		client:        client,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceCoins),
		updates:       events.NewSubscriptionManager(),
	}

	s.refresher = scheduler.New(cfg.Refresher.GetInterval(), func(ctx context.Context) {
		s.refreshTopList(ctx)
	})

	return s
}

// Start starts the optional top-list refresher
func (s *Service) Start(ctx context.Context) error {
	if s.cfg.Refresher.Enabled {
		log.Printf("Coins: starting top list refresher with interval %v", s.cfg.Refresher.GetInterval())
		s.refresher.Start(ctx, true)
	}
	return nil
}

// Stop stops the refresher
func (s *Service) Stop() {
	s.refresher.Stop()
}

// SubscribeOnUpdate subscribes to top list refresh notifications
func (s *Service) SubscribeOnUpdate() *events.Subscription {
	return s.updates.Subscribe()
}

// Healthy reports whether the upstream client has fetched successfully
func (s *Service) Healthy() bool {
	return s.client.Healthy()
}

// TopMarkets returns the top coins by market cap, summary-normalized
func (s *Service) TopMarkets(ctx context.Context) ([]map[string]interface{}, error) {
	body, err := s.getOrLoad(topListKey, s.cfg.Cache.GetTopListTTL(), func() ([]byte, error) {
		return s.client.FetchMarkets(ctx, coingecko.MarketsOptions{
			PerPage: topListPerPage,
			Page:    1,
		})
	})
	if err != nil {
		return nil, err
	}

	coinList, err := decodeCoinList(body)
	if err != nil {
		return nil, err
	}

	for i := range coinList {
		coinList[i] = NormalizeSummary(coinList[i])
	}
	return coinList, nil
}

// fullList returns the cached top-250 list used for resolution and search
func (s *Service) fullList(ctx context.Context) ([]map[string]interface{}, error) {
	body, err := s.getOrLoad(fullListKey, s.cfg.Cache.GetFullListTTL(), func() ([]byte, error) {
		return s.client.FetchMarkets(ctx, coingecko.MarketsOptions{
			PerPage: fullListPerPage,
			Page:    1,
		})
	})
	if err != nil {
		return nil, err
	}
	return decodeCoinList(body)
}

// ResolveSymbolToID maps a ticker symbol to its upstream id. The source
// list is market-cap ordered and the first match wins, so duplicate
// symbols resolve to the highest-cap coin. Lookup failures are logged
// and reported as not found.
func (s *Service) ResolveSymbolToID(ctx context.Context, symbol string) (string, bool) {
	symbol = strings.ToLower(symbol)

	coinList, err := s.fullList(ctx)
	if err != nil {
		log.Printf("Coins: failed to fetch coin list for symbol resolution: %v", err)
		return "", false
	}

	for _, coin := range coinList {
		if coinSymbol, ok := coin["symbol"].(string); ok && strings.ToLower(coinSymbol) == symbol {
			if id, ok := coin["id"].(string); ok {
				return id, true
			}
		}
	}
	return "", false
}

// Search returns coins whose name or symbol contains the keyword,
// case-insensitive, in market-cap order. An invalid keyword fails with
// a ValidationError; an empty result is not an error.
func (s *Service) Search(ctx context.Context, keyword string) ([]map[string]interface{}, error) {
	if verr := validateSearchQuery(keyword); verr != nil {
		return nil, verr
	}

	coinList, err := s.fullList(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(keyword)
	results := make([]map[string]interface{}, 0)
	for _, coin := range coinList {
		name, _ := coin["name"].(string)
		symbol, _ := coin["symbol"].(string)
		if strings.Contains(strings.ToLower(name), keyword) ||
			strings.Contains(strings.ToLower(symbol), keyword) {
			results = append(results, NormalizeSummary(coin))
		}
	}
	return results, nil
}

// CoinBySymbol resolves a symbol and returns the coin's detail data,
// details-normalized. Unresolvable symbols fail with ErrNotFound.
func (s *Service) CoinBySymbol(ctx context.Context, symbol string) (map[string]interface{}, error) {
	id, ok := s.ResolveSymbolToID(ctx, symbol)
	if !ok {
		return nil, ErrNotFound
	}

	body, err := s.getOrLoad(fmt.Sprintf(coinKeyFmt, id), s.cfg.Cache.GetCoinTTL(), func() ([]byte, error) {
		return s.client.FetchCoin(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	var coin map[string]interface{}
	if err := json.Unmarshal(body, &coin); err != nil {
		return nil, fmt.Errorf("failed to parse coin data: %w", err)
	}
	return NormalizeDetails(coin), nil
}

// SimplePrice returns spot prices for the given ids and currencies in
// the upstream shape, cached per parameter combination
func (s *Service) SimplePrice(ctx context.Context, ids, currencies []string) (map[string]interface{}, error) {
	key := fmt.Sprintf("simple_price:%s:%s", strings.Join(ids, ","), strings.Join(currencies, ","))
	body, err := s.getOrLoad(key, s.cfg.Cache.GetCoinTTL(), func() ([]byte, error) {
		return s.client.FetchSimplePrice(ctx, ids, currencies)
	})
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

// Trending returns the trending coins payload in the upstream shape
func (s *Service) Trending(ctx context.Context) (map[string]interface{}, error) {
	body, err := s.getOrLoad("trending", trendingTTL, func() ([]byte, error) {
		return s.client.FetchTrending(ctx)
	})
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

// Global returns global market data in the upstream shape
func (s *Service) Global(ctx context.Context) (map[string]interface{}, error) {
	body, err := s.getOrLoad("global", globalTTL, func() ([]byte, error) {
		return s.client.FetchGlobal(ctx)
	})
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

// getOrLoad reads a single key through the cache, fetching on a miss
func (s *Service) getOrLoad(key string, ttl time.Duration, fetch func() ([]byte, error)) ([]byte, error) {
	data, err := s.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
		start := time.Now()
		body, err := fetch()
		if err != nil {
			return nil, err
		}
		s.metricsWriter.RecordFetchDuration(time.Since(start))
		return map[string][]byte{key: body}, nil
	}, ttl)
	if err != nil {
		return nil, err
	}
	return data[key], nil
}

// refreshTopList re-fetches the hot key and notifies subscribers
func (s *Service) refreshTopList(ctx context.Context) {
	body, err := s.client.FetchMarkets(ctx, coingecko.MarketsOptions{
		PerPage: topListPerPage,
		Page:    1,
	})
	if err != nil {
		log.Printf("Coins: top list refresh failed: %v", err)
		return
	}

	if err := s.cache.Set(map[string][]byte{topListKey: body}, s.cfg.Cache.GetTopListTTL()); err != nil {
		log.Printf("Coins: failed to cache refreshed top list: %v", err)
		return
	}

	s.updates.Emit(ctx)
}

func decodeCoinList(body []byte) ([]map[string]interface{}, error) {
	var coinList []map[string]interface{}
	if err := json.Unmarshal(body, &coinList); err != nil {
		return nil, fmt.Errorf("failed to parse coin list: %w", err)
	}
	return coinList, nil
}

func decodeObject(body []byte) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse upstream payload: %w", err)
	}
	return payload, nil
}
