// Package notification delivers trade confirmations.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	"github.com/SscSPs/asset_compass/internal/middleware"
)

// BrevoEndpoint is Brevo's transactional email API.
const BrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

var tradeEmail = template.Must(template.New("trade").Parse(`<html><body style="font-family: sans-serif;">
<h2>Trade Executed</h2>
<p>Your order for <strong>{{.Ticker}}</strong> was filled.</p>
<ul>
<li>Units: {{.Quantity}}</li>
<li>Price: {{.Price}}</li>
<li>Total invested: {{.Invested}}</li>
</ul>
</body></html>`))

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmail struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// BrevoNotifier sends trade confirmations through Brevo.
type BrevoNotifier struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	sender     brevoContact
}

// NewBrevoNotifier creates a notifier. An empty endpoint means BrevoEndpoint.
func NewBrevoNotifier(apiKey, senderEmail, senderName, endpoint string) *BrevoNotifier {
	if endpoint == "" {
		endpoint = BrevoEndpoint
	}
	return &BrevoNotifier{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiKey:     apiKey,
		sender:     brevoContact{Email: senderEmail, Name: senderName},
	}
}

var _ providers.TradeNotifier = (*BrevoNotifier)(nil)

func (n *BrevoNotifier) NotifyTrade(ctx context.Context, t domain.TradeNotification) error {
	var html bytes.Buffer
	err := tradeEmail.Execute(&html, struct {
		Ticker, Quantity, Price, Invested string
	}{
		Ticker:   t.Ticker,
		Quantity: t.Quantity.String(),
		Price:    domain.FormatAmount(t.Price, domain.USD),
		Invested: domain.FormatAmount(t.InvestedAmount, domain.USD),
	})
	if err != nil {
		return fmt.Errorf("failed to render trade email: %w", err)
	}

	body, err := json.Marshal(brevoEmail{
		Sender:      n.sender,
		To:          []brevoContact{{Email: t.OwnerEmail}},
		Subject:     "Trade Executed: " + t.Ticker,
		HTMLContent: html.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode trade email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build brevo request: %w", err)
	}
	req.Header.Set("api-key", n.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	middleware.GetLoggerFromCtx(ctx).Info("Trade email sent", "ticker", t.Ticker)
	return nil
}
