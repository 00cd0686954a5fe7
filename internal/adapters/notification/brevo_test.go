package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/asset_compass/internal/adapters/notification"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrevoNotifier_SendsTradeEmail(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<1@brevo>"}`))
	}))
	defer srv.Close()

	n := notification.NewBrevoNotifier("secret", "bot@example.com", "AssetCompass", srv.URL)
	err := n.NotifyTrade(context.Background(), domain.TradeNotification{
		OwnerEmail:     "owner@example.com",
		Ticker:         "AAPL",
		Quantity:       decimal.RequireFromString("1.0598823529"),
		Price:          decimal.RequireFromString("255"),
		InvestedAmount: decimal.RequireFromString("270.27"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Trade Executed: AAPL", got["subject"])
	to := got["to"].([]any)[0].(map[string]any)
	assert.Equal(t, "owner@example.com", to["email"])
	assert.Contains(t, got["htmlContent"], "1.0598823529")
	assert.Contains(t, got["htmlContent"], "$270.27")
}

func TestBrevoNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	n := notification.NewBrevoNotifier("bad", "bot@example.com", "AssetCompass", srv.URL)
	err := n.NotifyTrade(context.Background(), domain.TradeNotification{OwnerEmail: "a@b.c", Ticker: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
