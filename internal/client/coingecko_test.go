package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexZinkM/sapphire-api/internal/logger"
	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *CoinGeckoClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.URL, timeout, zerolog.Nop())
	t.Cleanup(c.Close)
	return c
}

func TestMarketsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		q := r.URL.Query()
		assert.Equal(t, "usd", q.Get("vs_currency"))
		assert.Equal(t, "bitcoin,ethereum", q.Get("ids"))
		assert.Equal(t, "market_cap_desc", q.Get("order"))
		assert.Equal(t, "100", q.Get("per_page"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "false", q.Get("sparkline"))
		assert.Equal(t, "24h", q.Get("price_change_percentage"))
		assert.False(t, q.Has("category"))

		w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":65000.5,
			 "price_change_24h":120.25,"price_change_percentage_24h":0.18,"last_updated":"2024-05-01T10:00:00.000Z"},
			{"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img/eth.png","current_price":null,
			 "price_change_24h":null,"price_change_percentage_24h":null,"last_updated":"2024-05-01T10:00:00.000Z"}
		]`))
	}, time.Second)

	coins, err := c.Markets(context.Background(), MarketsQuery{
		IDs:                   []string{"bitcoin", "ethereum"},
		PerPage:               100,
		PriceChangePercentage: "24h",
	})
	require.NoError(t, err)
	require.Len(t, coins, 2)

	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, 65000.5, coins[0].CurrentPrice)
	assert.Equal(t, "https://img/btc.png", coins[0].Image)
	assert.Equal(t, 0.0, coins[1].CurrentPrice)
	assert.Equal(t, 0.0, coins[1].PriceChange24h)
}

func TestMarketsCategoryQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "tron-ecosystem", q.Get("category"))
		assert.Equal(t, "50", q.Get("per_page"))
		assert.False(t, q.Has("ids"))
		assert.False(t, q.Has("price_change_percentage"))
		w.Write([]byte(`[]`))
	}, time.Second)

	coins, err := c.Markets(context.Background(), MarketsQuery{Category: "tron-ecosystem", PerPage: 50})
	require.NoError(t, err)
	assert.Empty(t, coins)
}

func TestCoinDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/chainlink", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "false", q.Get("localization"))
		assert.Equal(t, "false", q.Get("tickers"))
		assert.Equal(t, "true", q.Get("market_data"))
		assert.Equal(t, "false", q.Get("community_data"))
		assert.Equal(t, "false", q.Get("developer_data"))
		assert.Equal(t, "false", q.Get("sparkline"))

		w.Write([]byte(`{"id":"chainlink","symbol":"link","name":"Chainlink",
			"image":{"large":"https://img/link-large.png"},
			"market_data":{"current_price":{"usd":14.2,"eur":13.1},"price_change_24h":-0.3,"price_change_percentage_24h":null}}`))
	}, time.Second)

	detail, err := c.CoinDetail(context.Background(), "chainlink")
	require.NoError(t, err)
	assert.Equal(t, "chainlink", detail.ID)
	assert.Equal(t, "https://img/link-large.png", detail.Image.Large)
	require.NotNil(t, detail.MarketData)
	assert.Equal(t, 14.2, detail.MarketData.CurrentPrice["usd"])
	require.NotNil(t, detail.MarketData.PriceChange24h)
	assert.Equal(t, -0.3, *detail.MarketData.PriceChange24h)
	assert.Nil(t, detail.MarketData.PriceChangePercentage24h)
}

func TestCoinDetailEscapesID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/a%2Fb", r.URL.EscapedPath())
		w.Write([]byte(`{"id":"a/b"}`))
	}, time.Second)

	detail, err := c.CoinDetail(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", detail.ID)
	assert.Nil(t, detail.MarketData)
}

func TestCoinList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/list", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_platform"))
		w.Write([]byte(`[
			{"id":"usd-coin","symbol":"usdc","name":"USDC","platforms":{"ethereum":"0xa0b8","tron":null}},
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","platforms":{}}
		]`))
	}, time.Second)

	coins, err := c.CoinList(context.Background())
	require.NoError(t, err)
	require.Len(t, coins, 2)
	require.NotNil(t, coins[0].Platforms["ethereum"])
	assert.Equal(t, "0xa0b8", *coins[0].Platforms["ethereum"])
	assert.Contains(t, coins[0].Platforms, "tron")
	assert.Nil(t, coins[0].Platforms["tron"])
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		kind       model.ErrorKind
		wantDetail string
	}{
		{"not found", http.StatusNotFound, `{"error":"coin not found"}`, model.KindNotFound, "status 404: coin not found"},
		{"rate limited", http.StatusTooManyRequests, `{"status":{"error_code":429,"error_message":"You've exceeded the Rate Limit"}}`, model.KindUpstreamUnavailable, "status 429: You've exceeded the Rate Limit"},
		{"server error", http.StatusBadGateway, `<html>bad gateway</html>`, model.KindUpstreamUnavailable, "status 502"},
		{"malformed", http.StatusOK, `{"id":`, model.KindUpstreamMalformed, "decoding /coins/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, time.Second)

			_, err := c.CoinDetail(context.Background(), "x")
			require.Error(t, err)

			var apiErr *model.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)

	_, err := c.CoinList(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUpstreamTimeout)
}

func TestContextDeadline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.CoinList(ctx)
	assert.ErrorIs(t, err, model.ErrUpstreamTimeout)
}

func TestCanceledRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := c.CoinList(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, model.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, model.ErrUpstreamTimeout)
}

func TestLogsCarryComponent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c := NewCoinGeckoClient(srv.URL, time.Second, zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer c.Close()

	_, err := c.CoinList(context.Background())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
	assert.Equal(t, "coingecko_client", entry[logger.ComponentField])
	assert.Equal(t, "/coins/list", entry["path"])
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := NewCoinGeckoClient(addr, time.Second, zerolog.Nop())
	defer c.Close()

	_, err := c.CoinList(context.Background())
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}
