package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cryptodash/price-proxy/metrics"
)

// sendJSONResponse is the common wrapper for JSON responses that sets
// Content-Type, Content-Length and ETag headers and records the
// request metric
func (s *Server) sendJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(statusCode)

	recordRequest(r, statusCode)

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendError logs the cause and returns the generic error envelope.
// The cause is only exposed to the caller in a debug configuration.
func (s *Server) sendError(w http.ResponseWriter, r *http.Request, statusCode int, message string, cause error) {
	log.Printf("API: %s %s failed: %v", r.Method, r.URL.Path, cause)

	payload := map[string]interface{}{
		"success": false,
		"message": message,
	}
	if s.cfg.Debug && cause != nil {
		payload["error"] = cause.Error()
	}

	s.sendJSONResponse(w, r, statusCode, payload)
}

// sendRateLimited returns the 429 envelope and counts the rejection
func (s *Server) sendRateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.RateLimitedRequestsTotal.Inc()
	s.sendJSONResponse(w, r, http.StatusTooManyRequests, map[string]interface{}{
		"success": false,
		"message": "Too many requests",
	})
}

// recordRequest counts a handled request under its route template so
// path variables do not blow up metric cardinality
func recordRequest(r *http.Request, statusCode int) {
	endpoint := r.URL.Path
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			endpoint = template
		}
	}
	metrics.HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

// splitParamLowercase splits a comma-separated query parameter into
// trimmed lower-case parts
func splitParamLowercase(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
