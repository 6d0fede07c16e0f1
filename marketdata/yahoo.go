package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// YahooClient fetches quotes from the Yahoo Finance chart endpoint. It asks
// for one trading day of history and takes the latest close.
type YahooClient struct {
	baseURL    string
	httpClient HTTPClient
	userAgent  string
}

// YahooOption is a configuration option for the Yahoo client.
type YahooOption func(*YahooClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) YahooOption {
	return func(c *YahooClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) YahooOption {
	return func(c *YahooClient) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) YahooOption {
	return func(c *YahooClient) {
		c.userAgent = userAgent
	}
}

// NewYahooClient creates a Yahoo Finance client.
func NewYahooClient(options ...YahooOption) *YahooClient {
	c := &YahooClient{
		baseURL:    defaultYahooBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		userAgent:  "stockpilot/1.0",
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *YahooClient) Name() string { return "yahoo" }

// Latest returns the most recent close for the symbol. Symbols are
// case-insensitive; Yahoo expects them uppercased.
func (c *YahooClient) Latest(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}, unavailable(symbol, "empty symbol")
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, unavailable(symbol, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, unavailable(symbol, "failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		if desc := gjson.GetBytes(body, "chart.error.description"); desc.Exists() {
			return Quote{}, unavailable(symbol, desc.String())
		}
		return Quote{}, unavailable(symbol, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	result := gjson.GetBytes(body, "chart.result.0")
	if !result.Exists() {
		return Quote{}, unavailable(symbol, "no chart data")
	}

	closes := result.Get("indicators.quote.0.close").Array()
	timestamps := result.Get("timestamp").Array()

	// Walk backwards so a trailing null (e.g. an open trading period with
	// no print yet) falls through to the last real close.
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i].Type == gjson.Null {
			continue
		}
		q := Quote{
			Symbol:   symbol,
			Price:    closes[i].Float(),
			Currency: result.Get("meta.currency").String(),
		}
		if i < len(timestamps) {
			q.Time = time.Unix(timestamps[i].Int(), 0).UTC()
		}
		return q, nil
	}
	return Quote{}, unavailable(symbol, "no close price in chart data")
}
