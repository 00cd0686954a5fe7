// Package alphavantage fetches quotes, exchange rates and symbol matches from the Alpha Vantage API.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// Field paths in the Alpha Vantage payloads.
const (
	pathQuotePrice  = `$["Global Quote"]["05. price"]`
	pathFXRate      = `$["Realtime Currency Exchange Rate"]["5. Exchange Rate"]`
	pathBestMatches = `$.bestMatches`
)

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 1 << 20

// ErrRateLimited is returned when the API answers with a usage notice instead of data.
var ErrRateLimited = errors.New("alpha vantage request limit reached")

// ErrMissingField is returned when the expected value is absent from the payload.
var ErrMissingField = errors.New("alpha vantage payload missing field")

// Client talks to Alpha Vantage over HTTP.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	cryptoSymbols map[string]struct{}
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithCryptoSymbols sets the tickers quoted through the currency exchange endpoint.
func WithCryptoSymbols(symbols []string) Option {
	return func(c *Client) {
		for _, s := range symbols {
			c.cryptoSymbols[strings.ToUpper(strings.TrimSpace(s))] = struct{}{}
		}
	}
}

// NewClient creates a client. Timeouts come from the caller's context.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{},
		baseURL:       DefaultBaseURL,
		apiKey:        apiKey,
		cryptoSymbols: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ providers.MarketDataProvider = (*Client)(nil)
	_ providers.FXProvider         = (*Client)(nil)
)

// FetchUnitPrice returns the latest USD price of ticker. Crypto symbols are quoted against USD.
func (c *Client) FetchUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	symbol, isCrypto := c.cryptoBase(ticker)
	if isCrypto {
		return c.fetchDecimal(ctx, pathFXRate, url.Values{
			"function":      {"CURRENCY_EXCHANGE_RATE"},
			"from_currency": {symbol},
			"to_currency":   {domain.USD},
		})
	}
	return c.fetchDecimal(ctx, pathQuotePrice, url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {ticker},
	})
}

// FetchExchangeRate returns how many pair.Quote units one pair.Base buys.
func (c *Client) FetchExchangeRate(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	return c.fetchDecimal(ctx, pathFXRate, url.Values{
		"function":      {"CURRENCY_EXCHANGE_RATE"},
		"from_currency": {pair.Base},
		"to_currency":   {pair.Quote},
	})
}

// SearchInstruments runs SYMBOL_SEARCH for query.
func (c *Client) SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error) {
	payload, err := c.get(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {query},
	})
	if err != nil {
		return nil, err
	}

	raw, err := jsonpath.Get(pathBestMatches, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: bestMatches: %v", ErrMissingField, err)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: bestMatches is not a list", ErrMissingField)
	}

	matches := make([]domain.InstrumentMatch, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		match := domain.InstrumentMatch{
			Symbol:   stringField(m, "1. symbol"),
			Name:     stringField(m, "2. name"),
			Type:     stringField(m, "3. type"),
			Region:   stringField(m, "4. region"),
			Currency: stringField(m, "8. currency"),
		}
		if match.Symbol == "" {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// cryptoBase reports whether ticker is a configured crypto symbol, accepting "BTC" and "BTC-USD".
func (c *Client) cryptoBase(ticker string) (string, bool) {
	base := strings.TrimSuffix(strings.ToUpper(ticker), "-USD")
	_, ok := c.cryptoSymbols[base]
	return base, ok
}

func (c *Client) fetchDecimal(ctx context.Context, path string, params url.Values) (decimal.Decimal, error) {
	payload, err := c.get(ctx, params)
	if err != nil {
		return decimal.Zero, err
	}

	raw, err := jsonpath.Get(path, payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrMissingField, path, err)
	}
	// jsonpath may answer with a one element list
	if list, ok := raw.([]any); ok && len(list) > 0 {
		raw = list[0]
	}

	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is empty", ErrMissingField, path)
	}
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed number %q at %s: %w", s, path, err)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive value %s at %s", value, path)
	}
	return value, nil
}

func (c *Client) get(ctx context.Context, params url.Values) (map[string]any, error) {
	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage %s request failed: %w", params.Get("function"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("alpha vantage %s returned status %d", params.Get("function"), resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode alpha vantage response: %w", err)
	}

	// Exhausted keys get a 200 with a notice instead of data
	for _, key := range []string{"Note", "Information", "Error Message"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			if key == "Error Message" {
				return nil, fmt.Errorf("alpha vantage error: %s", msg)
			}
			return nil, fmt.Errorf("%w: %s", ErrRateLimited, msg)
		}
	}
	return payload, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
