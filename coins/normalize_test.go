package coins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSummary(t *testing.T) {
	tests := []struct {
		name string
		coin map[string]interface{}
		want interface{}
	}{
		{
			name: "current_price wins",
			coin: map[string]interface{}{"current_price": 45000.5, "price": 1.0},
			want: 45000.5,
		},
		{
			name: "falls back to price",
			coin: map[string]interface{}{"price": 1.5},
			want: 1.5,
		},
		{
			name: "defaults to zero",
			coin: map[string]interface{}{"id": "bitcoin"},
			want: float64(0),
		},
		{
			name: "zero current_price is kept",
			coin: map[string]interface{}{"current_price": float64(0), "price": 1.5},
			want: float64(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSummary(tt.coin)
			assert.Equal(t, tt.want, got["price"])
		})
	}
}

func TestNormalizeSummary_KeepsUnknownFields(t *testing.T) {
	coin := map[string]interface{}{
		"id":            "bitcoin",
		"current_price": 45000.5,
		"some_new_field": map[string]interface{}{
			"nested": true,
		},
	}

	got := NormalizeSummary(coin)

	assert.Equal(t, "bitcoin", got["id"])
	assert.Equal(t, coin["some_new_field"], got["some_new_field"])
}

func TestNormalizeDetails(t *testing.T) {
	tests := []struct {
		name string
		coin map[string]interface{}
		want interface{}
	}{
		{
			name: "market_data usd price wins",
			coin: map[string]interface{}{
				"market_data": map[string]interface{}{
					"current_price": map[string]interface{}{"usd": 45000.5},
				},
				"current_price": 1.0,
			},
			want: 45000.5,
		},
		{
			name: "falls back to current_price",
			coin: map[string]interface{}{
				"market_data":   map[string]interface{}{},
				"current_price": 2500.75,
			},
			want: 2500.75,
		},
		{
			name: "falls back to price",
			coin: map[string]interface{}{"price": 3.0},
			want: 3.0,
		},
		{
			name: "defaults to zero",
			coin: map[string]interface{}{"id": "bitcoin"},
			want: float64(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDetails(tt.coin)
			assert.Equal(t, tt.want, got["price"])
		})
	}
}

func TestNormalize_NilInput(t *testing.T) {
	assert.Nil(t, NormalizeSummary(nil))
	assert.Nil(t, NormalizeDetails(nil))
}
