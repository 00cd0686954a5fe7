package notification

import (
	"context"
	"log/slog"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	"github.com/SscSPs/asset_compass/internal/middleware"
)

// LogNotifier only logs trade confirmations. It is used when no mail provider is configured.
type LogNotifier struct{}

var _ providers.TradeNotifier = LogNotifier{}

func (LogNotifier) NotifyTrade(ctx context.Context, t domain.TradeNotification) error {
	middleware.GetLoggerFromCtx(ctx).Info("Trade confirmation",
		slog.String("to", t.OwnerEmail),
		slog.String("ticker", t.Ticker),
		slog.String("quantity", t.Quantity.String()),
		slog.String("price", t.Price.String()),
		slog.String("invested_usd", t.InvestedAmount.String()))
	return nil
}
