package coins

// Normalization works on generic JSON maps so upstream fields that
// this service does not know about pass through untouched.

// NormalizeSummary adds a price field to a markets list entry.
// Fallback order: current_price, then price, then 0.
func NormalizeSummary(coin map[string]interface{}) map[string]interface{} {
	if coin == nil {
		return nil
	}
	coin["price"] = firstPresent(coin["current_price"], coin["price"])
	return coin
}

// NormalizeDetails adds a price field to a coin detail payload.
// Fallback order: market_data.current_price.usd, then current_price,
// then price, then 0.
func NormalizeDetails(coin map[string]interface{}) map[string]interface{} {
	if coin == nil {
		return nil
	}
	coin["price"] = firstPresent(marketDataUSD(coin), coin["current_price"], coin["price"])
	return coin
}

// marketDataUSD digs out market_data.current_price.usd, nil if absent
func marketDataUSD(coin map[string]interface{}) interface{} {
	marketData, ok := coin["market_data"].(map[string]interface{})
	if !ok {
		return nil
	}
	currentPrice, ok := marketData["current_price"].(map[string]interface{})
	if !ok {
		return nil
	}
	return currentPrice["usd"]
}

// firstPresent returns the first non-nil candidate, 0 if none
func firstPresent(candidates ...interface{}) interface{} {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return float64(0)
}
