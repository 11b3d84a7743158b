package coingecko

import (
	"errors"
	"fmt"
)

// ErrorKind classifies upstream failures
type ErrorKind int

const (
	// ErrorKindNetwork means the request never produced a response
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindTimeout means the configured request timeout elapsed
	ErrorKindTimeout
	// ErrorKindStatus means the upstream answered outside 2xx
	ErrorKindStatus
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindStatus:
		return "upstream_status"
	default:
		return "network"
	}
}

// UpstreamError is the typed failure returned for any CoinGecko
// request that did not succeed
type UpstreamError struct {
	Kind   ErrorKind
	Status int    // HTTP status, set for ErrorKindStatus
	Body   string // Response body, set for ErrorKindStatus
	Err    error  // Underlying transport error, if any
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case ErrorKindTimeout:
		return fmt.Sprintf("coingecko request timed out: %v", e.Err)
	case ErrorKindStatus:
		return fmt.Sprintf("coingecko request failed with status %d: %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("coingecko request failed: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsUpstreamError extracts an UpstreamError from an error chain
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
