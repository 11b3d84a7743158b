package api

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/cryptodash/price-proxy/config"
)

// RateLimiterManager manages per-caller-IP token buckets. Limiters are
// created lazily on first sight of an IP and kept for the process
// lifetime.
type RateLimiterManager struct {
	mu          sync.RWMutex
	ipToLimiter map[string]*rate.Limiter
	limitPerSec rate.Limit
	burst       int
}

// NewRateLimiterManager creates a manager from the rate limit configuration
func NewRateLimiterManager(cfg config.RateLimitConfig) *RateLimiterManager {
	rpm := cfg.GetRequestsPerMinute()

	return &RateLimiterManager{
		ipToLimiter: make(map[string]*rate.Limiter),
		limitPerSec: rate.Every(time.Minute / time.Duration(rpm)),
		burst:       cfg.GetBurst(),
	}
}

// Allow reports whether the caller may proceed, consuming one token
func (m *RateLimiterManager) Allow(ip string) bool {
	return m.getLimiterForIP(ip).Allow()
}

// getLimiterForIP returns the limiter for an IP, creating it if missing
func (m *RateLimiterManager) getLimiterForIP(ip string) *rate.Limiter {
	m.mu.RLock()
	if limiter, ok := m.ipToLimiter[ip]; ok {
		m.mu.RUnlock()
		return limiter
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, ok := m.ipToLimiter[ip]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(m.limitPerSec, m.burst)
	m.ipToLimiter[ip] = limiter
	return limiter
}

// clientIP extracts the caller IP, honoring the first hop of
// X-Forwarded-For when the service runs behind a proxy
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		firstHop := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if firstHop != "" {
			return firstHop
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
