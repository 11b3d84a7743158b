package api

import (
	"context"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cryptodash/price-proxy/coins"
	"github.com/cryptodash/price-proxy/config"
)

// Server exposes the coins service over HTTP
type Server struct {
	cfg          *config.Config
	coinsService *coins.Service
	rateLimiter  *RateLimiterManager
	server       *http.Server
	lastRefresh  atomic.Int64
	watchCancel  context.CancelFunc
}

// New creates a new API server
func New(cfg *config.Config, coinsService *coins.Service) *Server {
	return &Server{
		cfg:          cfg,
		coinsService: coinsService,
		rateLimiter:  NewRateLimiterManager(cfg.RateLimit),
	}
}

// newRouter builds the route table, factored out for handler tests
func (s *Server) newRouter() *mux.Router {
	router := mux.NewRouter()

	// Health and metrics bypass the rate limiter
	router.HandleFunc("/v1/health", s.handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(s.rateLimitMiddleware)
	v1.HandleFunc("/coins/markets", s.handleTopMarkets).Methods("GET")
	v1.HandleFunc("/coins/search", s.handleSearch).Methods("GET")
	v1.HandleFunc("/coins/trending", s.handleTrending).Methods("GET")
	v1.HandleFunc("/coins/{symbol}", s.handleCoinBySymbol).Methods("GET")
	v1.HandleFunc("/simple/price", s.handleSimplePrice).Methods("GET")
	v1.HandleFunc("/global", s.handleGlobal).Methods("GET")

	return router
}

// Start launches the HTTP listener and begins watching the coins
// service for refresh notifications
func (s *Server) Start(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	s.watchCancel = cancel
	s.coinsService.SubscribeOnUpdate().Watch(watchCtx, func() {
		s.lastRefresh.Store(time.Now().Unix())
	}, false)

	s.server = &http.Server{
		Addr:    ":" + s.cfg.GetPort(),
		Handler: s.newRouter(),
	}

	log.Printf("Server starting at http://localhost:%s", s.cfg.GetPort())
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.watchCancel != nil {
		s.watchCancel()
	}
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

// rateLimitMiddleware rejects callers whose token bucket is exhausted
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(clientIP(r)) {
			s.sendRateLimited(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
