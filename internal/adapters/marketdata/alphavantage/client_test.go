package alphavantage_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/asset_compass/internal/adapters/marketdata/alphavantage"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *alphavantage.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return alphavantage.NewClient("test-key",
		alphavantage.WithBaseURL(srv.URL),
		alphavantage.WithCryptoSymbols([]string{"btc", "ETH"}))
}

func TestFetchUnitPrice_Stock(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		_, _ = w.Write([]byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "255.0000"}}`))
	})

	price, err := client.FetchUnitPrice(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "255", price.String())
}

func TestFetchUnitPrice_CryptoUsesExchangeRate(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "CURRENCY_EXCHANGE_RATE", q.Get("function"))
		assert.Equal(t, "BTC", q.Get("from_currency"))
		assert.Equal(t, "USD", q.Get("to_currency"))
		_, _ = w.Write([]byte(`{"Realtime Currency Exchange Rate": {"5. Exchange Rate": "64321.12000000"}}`))
	})

	price, err := client.FetchUnitPrice(context.Background(), "BTC-USD")
	require.NoError(t, err)
	assert.Equal(t, "64321.12", price.String())
}

func TestFetchUnitPrice_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unknown symbol returns empty quote", http.StatusOK, `{"Global Quote": {}}`, alphavantage.ErrMissingField},
		{"rate limit note", http.StatusOK, `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute"}`, alphavantage.ErrRateLimited},
		{"information notice", http.StatusOK, `{"Information": "daily limit reached"}`, alphavantage.ErrRateLimited},
		{"server error", http.StatusInternalServerError, `oops`, nil},
		{"malformed json", http.StatusOK, `{"Global Quote":`, nil},
		{"non numeric price", http.StatusOK, `{"Global Quote": {"05. price": "N/A"}}`, nil},
		{"zero price", http.StatusOK, `{"Global Quote": {"05. price": "0.0000"}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.FetchUnitPrice(context.Background(), "MSFT")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestFetchUnitPrice_ContextTimeout(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.FetchUnitPrice(ctx, "ZZZZ")
	assert.Error(t, err)
}

func TestFetchExchangeRate(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "USD", q.Get("from_currency"))
		assert.Equal(t, "ZAR", q.Get("to_currency"))
		_, _ = w.Write([]byte(`{"Realtime Currency Exchange Rate": {"1. From_Currency Code": "USD", "5. Exchange Rate": "18.50000000"}}`))
	})

	rate, err := client.FetchExchangeRate(context.Background(), domain.USDTo("ZAR"))
	require.NoError(t, err)
	assert.Equal(t, "18.5", rate.String())
}

func TestSearchInstruments(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SYMBOL_SEARCH", r.URL.Query().Get("function"))
		assert.Equal(t, "tesla", r.URL.Query().Get("keywords"))
		_, _ = w.Write([]byte(`{"bestMatches": [
			{"1. symbol": "TSLA", "2. name": "Tesla Inc", "3. type": "Equity", "4. region": "United States", "8. currency": "USD"},
			{"2. name": "missing symbol"},
			{"1. symbol": "TL0.DEX", "2. name": "Tesla", "3. type": "Equity", "4. region": "XETRA", "8. currency": "EUR"}
		]}`))
	})

	matches, err := client.SearchInstruments(context.Background(), "tesla")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, domain.InstrumentMatch{Symbol: "TSLA", Name: "Tesla Inc", Type: "Equity", Region: "United States", Currency: "USD"}, matches[0])
	assert.Equal(t, "EUR", matches[1].Currency)
	assert.False(t, matches[1].Synthetic)
}

func TestSearchInstruments_MissingList(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something": "else"}`))
	})

	_, err := client.SearchInstruments(context.Background(), "tesla")
	assert.ErrorIs(t, err, alphavantage.ErrMissingField)
}
