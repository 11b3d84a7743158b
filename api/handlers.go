package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cryptodash/price-proxy/coins"
)

// handleHealth responds with the service status, bypassing the limiter
// so orchestrators can always probe it
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]string{
			"coingecko": "unknown",
		},
	}

	if s.coinsService.Healthy() {
		status["services"].(map[string]string)["coingecko"] = "up"
	}

	if lastRefresh := s.lastRefresh.Load(); lastRefresh > 0 {
		status["last_refresh"] = time.Unix(lastRefresh, 0).UTC().Format(time.RFC3339)
	}

	s.sendJSONResponse(w, r, http.StatusOK, status)
}

// handleTopMarkets serves the cached top coins list
func (s *Server) handleTopMarkets(w http.ResponseWriter, r *http.Request) {
	coinList, err := s.coinsService.TopMarkets(r.Context())
	if err != nil {
		s.sendError(w, r, http.StatusInternalServerError, "Failed to fetch top coins", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    coinList,
		"count":   len(coinList),
	})
}

// handleSearch serves substring search over the cached coin list
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := s.coinsService.Search(r.Context(), query)
	if err != nil {
		if verr, ok := coins.AsValidationError(err); ok {
			s.sendJSONResponse(w, r, http.StatusUnprocessableEntity, map[string]interface{}{
				"success": false,
				"message": verr.Message,
				"data":    []interface{}{},
			})
			return
		}
		s.sendError(w, r, http.StatusInternalServerError, "Failed to search coins", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    results,
		"count":   len(results),
		"query":   query,
	})
}

// handleTrending serves the cached trending coins payload
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	trending, err := s.coinsService.Trending(r.Context())
	if err != nil {
		s.sendError(w, r, http.StatusInternalServerError, "Failed to fetch trending coins", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    trending,
	})
}

// handleCoinBySymbol resolves a ticker symbol and serves coin details
func (s *Server) handleCoinBySymbol(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	coin, err := s.coinsService.CoinBySymbol(r.Context(), symbol)
	if err != nil {
		if err == coins.ErrNotFound {
			s.sendJSONResponse(w, r, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": fmt.Sprintf("Cryptocurrency with symbol '%s' not found", symbol),
			})
			return
		}
		s.sendError(w, r, http.StatusInternalServerError, "Failed to fetch coin details", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    coin,
	})
}

// handleSimplePrice proxies spot prices in the upstream shape
func (s *Server) handleSimplePrice(w http.ResponseWriter, r *http.Request) {
	ids := splitParamLowercase(r.URL.Query().Get("ids"))
	currencies := splitParamLowercase(r.URL.Query().Get("vs_currencies"))

	if len(ids) == 0 {
		s.sendJSONResponse(w, r, http.StatusUnprocessableEntity, map[string]interface{}{
			"success": false,
			"message": `Query parameter "ids" is required`,
		})
		return
	}
	if len(currencies) == 0 {
		s.sendJSONResponse(w, r, http.StatusUnprocessableEntity, map[string]interface{}{
			"success": false,
			"message": `Query parameter "vs_currencies" is required`,
		})
		return
	}

	prices, err := s.coinsService.SimplePrice(r.Context(), ids, currencies)
	if err != nil {
		s.sendError(w, r, http.StatusInternalServerError, "Failed to fetch prices", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, prices)
}

// handleGlobal serves cached global market data
func (s *Server) handleGlobal(w http.ResponseWriter, r *http.Request) {
	global, err := s.coinsService.Global(r.Context())
	if err != nil {
		s.sendError(w, r, http.StatusInternalServerError, "Failed to fetch global market data", err)
		return
	}

	s.sendJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    global,
	})
}
