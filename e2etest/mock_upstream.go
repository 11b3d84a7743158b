package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockUpstream is a stand-in for the CoinGecko API used by the
// end-to-end tests. It serves fixed fixtures and can be switched into
// a failing mode to exercise error mapping.
type MockUpstream struct {
	server   *httptest.Server
	mu       sync.Mutex
	failing  bool
	requests map[string]int
}

// NewMockUpstream creates and starts a mock upstream server
func NewMockUpstream() *MockUpstream {
	m := &MockUpstream{
		requests: make(map[string]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

// URL returns the base URL of the mock server
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts the mock server down
func (m *MockUpstream) Close() {
	m.server.Close()
}

// SetFailing switches every subsequent response to 502
func (m *MockUpstream) SetFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

// RequestCount returns how many requests hit the given path
func (m *MockUpstream) RequestCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[path]
}

func (m *MockUpstream) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests[r.URL.Path]++
	failing := m.failing
	m.mu.Unlock()

	if failing {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
		return
	}

	switch {
	case r.URL.Path == "/coins/markets":
		m.writeJSON(w, marketsFixture())
	case strings.HasPrefix(r.URL.Path, "/coins/"):
		id := strings.TrimPrefix(r.URL.Path, "/coins/")
		detail, ok := coinDetailFixture(id)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"coin not found"}`))
			return
		}
		m.writeJSON(w, detail)
	case r.URL.Path == "/simple/price":
		m.writeJSON(w, map[string]interface{}{
			"bitcoin": map[string]interface{}{"usd": 45000.5},
		})
	case r.URL.Path == "/search/trending":
		m.writeJSON(w, map[string]interface{}{
			"coins": []interface{}{
				map[string]interface{}{"item": map[string]interface{}{"id": "bitcoin"}},
			},
		})
	case r.URL.Path == "/global":
		m.writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{"active_cryptocurrencies": 12000},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (m *MockUpstream) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func marketsFixture() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 45000.5, "market_cap_rank": 1},
		{"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 2500.75, "market_cap_rank": 2},
		{"id": "bitcoin-cash", "symbol": "bch", "name": "Bitcoin Cash", "current_price": 450.25, "market_cap_rank": 3},
	}
}

func coinDetailFixture(id string) (map[string]interface{}, bool) {
	prices := map[string]float64{
		"bitcoin":  45000.5,
		"ethereum": 2500.75,
	}
	price, ok := prices[id]
	if !ok {
		return nil, false
	}
	return map[string]interface{}{
		"id": id,
		"market_data": map[string]interface{}{
			"current_price": map[string]interface{}{"usd": price},
		},
	}, true
}
