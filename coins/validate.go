package coins

import "regexp"

const maxSearchQueryLength = 100

// searchQueryPattern limits queries to letters, digits, whitespace,
// hyphens and dots
var searchQueryPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.]+$`)

// validateSearchQuery checks a search keyword against the accepted
// format and returns the first failing rule's message
func validateSearchQuery(query string) *ValidationError {
	if query == "" {
		return &ValidationError{Message: `Search query parameter "q" is required`}
	}
	if len(query) > maxSearchQueryLength {
		return &ValidationError{Message: "Search query must not exceed 100 characters"}
	}
	if !searchQueryPattern.MatchString(query) {
		return &ValidationError{Message: "Search query contains invalid characters"}
	}
	return nil
}
