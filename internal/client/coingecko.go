package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	applog "github.com/AlexZinkM/sapphire-api/internal/logger"
	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 API.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 4 << 10
)

// CoinGeckoClient client for CoinGecko API.
// It is safe for concurrent use; one instance is shared by all requests.
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewCoinGeckoClient creates a new CoinGecko client.
// A zero timeout falls back to DefaultTimeout.
func NewCoinGeckoClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CoinGeckoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		logger: applog.Component(logger, "coingecko_client"),
	}
}

// Close releases pooled connections. The client must not be used afterwards.
func (c *CoinGeckoClient) Close() {
	c.client.CloseIdleConnections()
}

// MarketsQuery selects coins for GET /coins/markets.
// Either IDs or Category narrows the result; both may be empty.
type MarketsQuery struct {
	IDs                   []string
	Category              string
	PerPage               int
	PriceChangePercentage string
}

// MarketCoin is one row of GET /coins/markets.
type MarketCoin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	LastUpdated              string  `json:"last_updated"`
}

// CoinDetail is the subset of GET /coins/{id} the API exposes.
type CoinDetail struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  struct {
		Large string `json:"large"`
	} `json:"image"`
	MarketData *CoinMarketData `json:"market_data"`
}

// CoinMarketData is the market_data section of a coin detail.
// The change fields are nil when the upstream reports null or omits them.
type CoinMarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	PriceChange24h           *float64           `json:"price_change_24h"`
	PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
}

// ListedCoin is one entry of GET /coins/list?include_platform=true.
type ListedCoin struct {
	ID        string             `json:"id"`
	Symbol    string             `json:"symbol"`
	Name      string             `json:"name"`
	Platforms map[string]*string `json:"platforms"`
}

// Markets fetches market rows in USD ordered by market cap.
func (c *CoinGeckoClient) Markets(ctx context.Context, q MarketsQuery) ([]MarketCoin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	if len(q.IDs) > 0 {
		params.Set("ids", strings.Join(q.IDs, ","))
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(q.PerPage))
	params.Set("page", "1")
	params.Set("sparkline", "false")
	if q.PriceChangePercentage != "" {
		params.Set("price_change_percentage", q.PriceChangePercentage)
	}

	var coins []MarketCoin
	if err := c.get(ctx, "/coins/markets", params, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// CoinDetail fetches one coin with market data and nothing else.
// The id is passed through unvalidated and path-escaped.
func (c *CoinGeckoClient) CoinDetail(ctx context.Context, id string) (*CoinDetail, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")
	params.Set("sparkline", "false")

	var detail CoinDetail
	if err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CoinList fetches the entire coin universe with platform contracts.
func (c *CoinGeckoClient) CoinList(ctx context.Context) ([]ListedCoin, error) {
	params := url.Values{}
	params.Set("include_platform", "true")

	var coins []ListedCoin
	if err := c.get(ctx, "/coins/list", params, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.NewError(model.KindUpstreamUnavailable, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// the caller went away; the upstream did nothing wrong
			return err
		}
		c.logger.Debug().Err(err).Str("path", path).Dur("latency", time.Since(start)).Msg("upstream request failed")
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return model.NewError(model.KindUpstreamTimeout, "reading "+path, err)
		}
		return model.NewError(model.KindUpstreamMalformed, "decoding "+path, err)
	}
	return nil
}

func (c *CoinGeckoClient) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	detail := fmt.Sprintf("status %d", resp.StatusCode)
	if msg := upstreamErrorMessage(body); msg != "" {
		detail += ": " + msg
	}

	if resp.StatusCode == http.StatusNotFound {
		return model.NewError(model.KindNotFound, detail, nil)
	}
	return model.NewError(model.KindUpstreamUnavailable, detail, nil)
}

// upstreamErrorMessage extracts the error text CoinGecko puts in error bodies.
func upstreamErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	res := gjson.GetManyBytes(body, "error", "status.error_message")
	for _, r := range res {
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}

func classifyTransportError(err error) error {
	if isTimeout(err) {
		return model.NewError(model.KindUpstreamTimeout, "", err)
	}
	return model.NewError(model.KindUpstreamUnavailable, "", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
