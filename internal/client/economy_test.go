package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbxweb/rbxweb/pkg/rbx"
)

func TestEconomyCurrencyBalance(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/156/currency", r.URL.Path)
		_, _ = w.Write([]byte(`{"robux":1337}`))
	}))

	balance, err := client.Economy().CurrencyBalance(context.Background(), 156)
	require.NoError(t, err)
	assert.Equal(t, int64(1337), balance.Robux)
}

func TestEconomyCurrencyBalanceUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":0,"message":"Authorization has been denied for this request."}]}`))
	}))

	_, err := client.Economy().CurrencyBalance(context.Background(), 156)
	require.Error(t, err)
	assert.True(t, rbx.IsUnauthorized(err))
}

func TestEconomyResaleData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/assets/1029025/resale-data", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"assetStock": null,
			"sales": 12345,
			"numberRemaining": null,
			"recentAveragePrice": 50000,
			"originalPrice": 100,
			"priceDataPoints": [{"value":49000,"date":"2024-02-28T00:00:00Z"}],
			"volumeDataPoints": [{"value":3,"date":"2024-02-28T00:00:00Z"}]
		}`))
	}))

	data, err := client.Economy().ResaleData(context.Background(), 1029025)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), data.RecentAveragePrice)
	require.NotNil(t, data.OriginalPrice)
	assert.Equal(t, int64(100), *data.OriginalPrice)
	require.Len(t, data.PriceDataPoints, 1)
	assert.Equal(t, int64(49000), data.PriceDataPoints[0].Value)
}
