package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodash/price-proxy/config"
)

type capturingStatusHandler struct {
	mu       sync.Mutex
	statuses []string
}

func (h *capturingStatusHandler) OnRequest(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func (h *capturingStatusHandler) last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.statuses) == 0 {
		return ""
	}
	return h.statuses[len(h.statuses)-1]
}

func newTestClient(endpoint, apiKey string, timeout time.Duration, handler StatusHandler) *Client {
	cfg := &config.Config{
		Coingecko: config.CoingeckoConfig{
			Endpoint: endpoint,
			Timeout:  timeout,
		},
		APIKey: &config.APIKeySettings{Key: apiKey},
	}
	return NewClient(cfg, handler)
}

func TestClient_Fetch_Success(t *testing.T) {
	handler := &capturingStatusHandler{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		w.Write([]byte(`[{"id":"bitcoin"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, handler)

	body, err := client.Fetch(context.Background(), MARKETS_API_PATH, map[string]string{"vs_currency": "usd"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"bitcoin"}]`, string(body))
	assert.Equal(t, "success", handler.last())
	assert.True(t, client.Healthy())
}

func TestClient_Fetch_StatusError(t *testing.T) {
	handler := &capturingStatusHandler{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"upstream down"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, handler)

	_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
	require.Error(t, err)

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindStatus, ue.Kind)
	assert.Equal(t, http.StatusInternalServerError, ue.Status)
	assert.Contains(t, ue.Body, "upstream down")
	assert.Equal(t, "error", handler.last())
	assert.False(t, client.Healthy())
}

func TestClient_Fetch_RateLimited(t *testing.T) {
	handler := &capturingStatusHandler{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, handler)

	_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
	require.Error(t, err)

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindStatus, ue.Kind)
	assert.Equal(t, http.StatusTooManyRequests, ue.Status)
	assert.Equal(t, "rate_limited", handler.last())
}

func TestClient_Fetch_Timeout(t *testing.T) {
	handler := &capturingStatusHandler{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 20*time.Millisecond, handler)

	_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
	require.Error(t, err)

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindTimeout, ue.Kind)
	assert.Equal(t, "timeout", handler.last())
}

func TestClient_Fetch_SingleAttempt(t *testing.T) {
	var requests int
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, nil)

	_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requests)
}

func TestClient_APIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-pro-api-key")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Run("key forwarded as header", func(t *testing.T) {
		client := newTestClient(server.URL, "pro-key", 5*time.Second, nil)
		_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
		require.NoError(t, err)
		assert.Equal(t, "pro-key", gotKey)
	})

	t.Run("no header without key", func(t *testing.T) {
		client := newTestClient(server.URL, "", 5*time.Second, nil)
		_, err := client.Fetch(context.Background(), GLOBAL_API_PATH, nil)
		require.NoError(t, err)
		assert.Empty(t, gotKey)
	})
}

func TestClient_FetchMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "usd", query.Get("vs_currency"))
		assert.Equal(t, "market_cap_desc", query.Get("order"))
		assert.Equal(t, "10", query.Get("per_page"))
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "false", query.Get("sparkline"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, nil)

	_, err := client.FetchMarkets(context.Background(), MarketsOptions{
		PerPage: 10,
		Page:    1,
	})
	require.NoError(t, err)
}

func TestClient_FetchCoin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "false", query.Get("localization"))
		assert.Equal(t, "false", query.Get("tickers"))
		assert.Equal(t, "true", query.Get("market_data"))
		assert.Equal(t, "false", query.Get("community_data"))
		assert.Equal(t, "false", query.Get("developer_data"))
		w.Write([]byte(`{"id":"bitcoin"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, nil)

	body, err := client.FetchCoin(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"bitcoin"}`, string(body))
}

func TestClient_FetchSimplePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd,eur", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin":{"usd":1}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", 5*time.Second, nil)

	_, err := client.FetchSimplePrice(context.Background(), []string{"bitcoin", "ethereum"}, []string{"usd", "eur"})
	require.NoError(t, err)
}
