package coingecko

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cryptodash/price-proxy/config"
)

// API paths for the consumed CoinGecko v3 endpoints
const (
	MARKETS_API_PATH      = "/coins/markets"
	COIN_API_PATH         = "/coins/"
	SIMPLE_PRICE_API_PATH = "/simple/price"
	TRENDING_API_PATH     = "/search/trending"
	GLOBAL_API_PATH       = "/global"
)

// StatusHandler receives the outcome of every upstream request
type StatusHandler interface {
	OnRequest(status string)
}

// MarketsOptions parameterizes a /coins/markets request
type MarketsOptions struct {
	Currency  string
	Order     string
	PerPage   int
	Page      int
	Sparkline bool
	IDs       []string
}

// Client issues GET requests against the CoinGecko REST API.
// Every call is a single attempt bounded by the configured timeout;
// there is no retry logic, callers decide how to handle failures.
type Client struct {
	endpoint        string
	apiKey          string
	timeout         time.Duration
	httpClient      *http.Client
	statusHandler   StatusHandler
	successfulFetch atomic.Bool
}

// NewClient creates an upstream client from the service configuration
func NewClient(cfg *config.Config, handler StatusHandler) *Client {
	apiKey := ""
	if cfg.APIKey.HasKey() {
		apiKey = cfg.APIKey.Key
	}

	return &Client{
		endpoint:      cfg.Coingecko.GetEndpoint(),
		apiKey:        apiKey,
		timeout:       cfg.Coingecko.GetTimeout(),
		httpClient:    &http.Client{},
		statusHandler: handler,
	}
}

// Fetch performs a GET request against the given API path with the
// given query parameters and returns the raw response body
func (c *Client) Fetch(ctx context.Context, apiPath string, params map[string]string) ([]byte, error) {
	rb := NewRequestBuilder(c.endpoint, apiPath)
	for key, value := range params {
		rb.With(key, value)
	}
	return c.execute(ctx, rb.WithAPIKey(c.apiKey))
}

// requestBuilder is the part of RequestBuilder execute needs,
// letting endpoint-specific builders plug in
type requestBuilder interface {
	Build(ctx context.Context) (*http.Request, error)
}

// execute runs a built request once and classifies the outcome
func (c *Client) execute(ctx context.Context, rb requestBuilder) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := rb.Build(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if isTimeout(err) {
			c.onRequest("timeout")
			log.Printf("CoinGecko: Request to %s timed out after %.2fs", req.URL.Path, duration.Seconds())
			return nil, &UpstreamError{Kind: ErrorKindTimeout, Err: err}
		}
		c.onRequest("error")
		log.Printf("CoinGecko: Request to %s failed after %.2fs: %v", req.URL.Path, duration.Seconds(), err)
		return nil, &UpstreamError{Kind: ErrorKindNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.onRequest("error")
		return nil, &UpstreamError{Kind: ErrorKindNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.onRequest("rate_limited")
		} else {
			c.onRequest("error")
		}
		log.Printf("CoinGecko: Request to %s returned status %d after %.2fs: %s",
			req.URL.Path, resp.StatusCode, duration.Seconds(), string(body))
		return nil, &UpstreamError{Kind: ErrorKindStatus, Status: resp.StatusCode, Body: string(body)}
	}

	c.onRequest("success")
	c.successfulFetch.Store(true)

	return body, nil
}

// FetchMarkets fetches a page of the markets list
func (c *Client) FetchMarkets(ctx context.Context, opts MarketsOptions) ([]byte, error) {
	rb := NewMarketsRequestBuilder(c.endpoint)
	rb.WithCurrency(opts.Currency).WithAPIKey(c.apiKey)
	rb.WithOrder(opts.Order).
		WithPerPage(opts.PerPage).
		WithPage(opts.Page).
		WithIDs(opts.IDs).
		WithSparkline(opts.Sparkline)

	return c.execute(ctx, rb)
}

// FetchCoin fetches detail data for a single coin by its CoinGecko id.
// Localization, tickers, community and developer payloads are switched
// off; market data stays on for the price fields.
func (c *Client) FetchCoin(ctx context.Context, id string) ([]byte, error) {
	return c.Fetch(ctx, COIN_API_PATH+id, map[string]string{
		"localization":   "false",
		"tickers":        "false",
		"market_data":    "true",
		"community_data": "false",
		"developer_data": "false",
	})
}

// FetchSimplePrice fetches spot prices for the given ids and currencies
func (c *Client) FetchSimplePrice(ctx context.Context, ids, currencies []string) ([]byte, error) {
	return c.Fetch(ctx, SIMPLE_PRICE_API_PATH, map[string]string{
		"ids":           strings.Join(ids, ","),
		"vs_currencies": strings.Join(currencies, ","),
	})
}

// FetchTrending fetches the trending coins list
func (c *Client) FetchTrending(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, TRENDING_API_PATH, nil)
}

// FetchGlobal fetches global market data
func (c *Client) FetchGlobal(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, GLOBAL_API_PATH, nil)
}

// Healthy reports whether at least one fetch has succeeded
func (c *Client) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *Client) onRequest(status string) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status)
	}
}

// isTimeout reports whether the transport error was a deadline hit
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
