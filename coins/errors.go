package coins

import "errors"

// ErrNotFound is returned when a symbol cannot be resolved to a known coin
var ErrNotFound = errors.New("coin not found")

// ValidationError rejects a malformed search query. Message is safe to
// return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
