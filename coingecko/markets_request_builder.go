package coingecko

import (
	"strconv"
	"strings"
)

// MarketsRequestBuilder builds requests for the /coins/markets endpoint
type MarketsRequestBuilder struct {
	*RequestBuilder
}

// NewMarketsRequestBuilder creates a request builder for the markets
// endpoint with the default list parameters
func NewMarketsRequestBuilder(baseURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, MARKETS_API_PATH),
	}

	rb.WithCurrency("usd")
	rb.WithOrder("market_cap_desc")

	return rb
}

// WithPage adds the page parameter for pagination
func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	if page > 0 {
		rb.With("page", strconv.Itoa(page))
	}
	return rb
}

// WithPerPage adds the per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	if perPage > 0 {
		rb.With("per_page", strconv.Itoa(perPage))
	}
	return rb
}

// WithOrder adds the ordering parameter
func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

// WithIDs adds the ids parameter (comma-separated coin IDs)
func (rb *MarketsRequestBuilder) WithIDs(ids []string) *MarketsRequestBuilder {
	if len(ids) > 0 {
		rb.With("ids", strings.Join(ids, ","))
	}
	return rb
}

// WithSparkline sets the sparkline parameter explicitly
func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}
