package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/platform/metrics"
	"github.com/SscSPs/asset_compass/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const manualTickerFallback = "MANUAL"

// TradeOption configures optional dependencies for the trade service
type TradeOption func(*tradeService)

// WithTradeNotifier sets the collaborator told about every successful buy.
func WithTradeNotifier(notifier providers.TradeNotifier) TradeOption {
	return func(s *tradeService) {
		s.notifier = notifier
	}
}

// WithTradeClock overrides the time source, for tests.
func WithTradeClock(now func() time.Time) TradeOption {
	return func(s *tradeService) {
		s.now = now
	}
}

type tradeService struct {
	BaseService
	holdingRepo portsrepo.HoldingRepositoryFacade
	ledger      portssvc.LedgerSvc
	oracle      portssvc.PriceOracleSvc
	notifier    providers.TradeNotifier
	locks       *keyedMutex
	now         func() time.Time
}

// NewTradeService creates the trade executor.
func NewTradeService(
	holdingRepo portsrepo.HoldingRepositoryFacade,
	ledger portssvc.LedgerSvc,
	oracle portssvc.PriceOracleSvc,
	opts ...TradeOption,
) portssvc.TradeSvcFacade {
	s := &tradeService{
		holdingRepo: holdingRepo,
		ledger:      ledger,
		oracle:      oracle,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Buy converts order.InvestedAmount into units of order.Ticker at the current price.
func (s *tradeService) Buy(ctx context.Context, order domain.BuyOrder) (*domain.TradeReceipt, error) {
	defer metrics.ObserveTrade("buy", time.Now())
	logger := s.GetLogger(ctx)

	if strings.TrimSpace(order.OwnerRef) == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}
	if !order.InvestedAmount.IsPositive() {
		return nil, apperrors.NewValidationError("invested amount must be greater than zero")
	}
	currency, err := resolveCurrency(order.PaymentCurrency)
	if err != nil {
		return nil, err
	}
	instrumentType := order.InstrumentType
	if instrumentType == "" {
		instrumentType = domain.Stock
	}
	if !instrumentType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown instrument type %q", order.InstrumentType))
	}

	unitPrice, err := s.oracle.GetUnitPrice(ctx, order.Ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve price of %s: %w", order.Ticker, err)
	}
	ticker, err := NormalizeTicker(order.Ticker)
	if err != nil {
		return nil, err
	}

	rate := decimal.NewFromInt(1)
	investedUSD := order.InvestedAmount
	if currency != domain.USD {
		quote := s.oracle.GetExchangeRate(ctx, domain.USDTo(currency))
		rate = quote.Rate
		investedUSD = accounting.ConvertToUSD(order.InvestedAmount, rate)
		if quote.Stale {
			logger.Warn("Buy converted with a stale exchange rate",
				slog.String("pair", quote.Pair.String()), slog.String("rate", rate.String()))
		}
	}

	quantity := accounting.ResolveQuantity(investedUSD, unitPrice)
	if !quantity.IsPositive() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invested amount %s %s buys no units of %s", order.InvestedAmount, currency, ticker))
	}

	name := strings.TrimSpace(order.Name)
	if name == "" {
		name = ticker
	}
	now := s.now().UTC()
	holding := domain.Holding{
		HoldingID:                 uuid.NewString(),
		OwnerRef:                  order.OwnerRef,
		Ticker:                    ticker,
		Name:                      name,
		InstrumentType:            instrumentType,
		Quantity:                  quantity,
		UnitPriceAtAcquisition:    unitPrice,
		ExchangeRateAtAcquisition: rate,
		PaymentCurrency:           currency,
		AcquiredAt:                now,
		UpdatedAt:                 now,
	}

	entry, err := s.persistNew(ctx, holding, domain.Buy, unitPrice.Mul(quantity))
	if err != nil {
		return nil, err
	}

	logger.Info("Buy executed",
		slog.String("holding_id", holding.HoldingID),
		slog.String("ticker", ticker),
		slog.String("quantity", quantity.String()),
		slog.String("unit_price", unitPrice.String()),
		slog.String("invested_usd", investedUSD.String()))

	s.notifyBuy(ctx, order.OwnerEmail, holding, investedUSD)

	return &domain.TradeReceipt{
		Holding:           holding,
		Entry:             *entry,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		ExchangeRate:      rate,
		InvestedAmount:    order.InvestedAmount,
		InvestedAmountUSD: investedUSD,
	}, nil
}

// CreateManualAsset records a legacy asset as one unit worth its total USD value.
func (s *tradeService) CreateManualAsset(ctx context.Context, asset domain.ManualAsset) (*domain.Holding, error) {
	defer metrics.ObserveTrade("manual_create", time.Now())

	if strings.TrimSpace(asset.OwnerRef) == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}
	name := strings.TrimSpace(asset.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("asset name is required")
	}
	if !asset.Value.IsPositive() {
		return nil, apperrors.NewValidationError("asset value must be greater than zero")
	}
	currency, err := resolveCurrency(asset.Currency)
	if err != nil {
		return nil, err
	}
	instrumentType := asset.InstrumentType
	if instrumentType == "" {
		instrumentType = domain.Other
	}
	if !instrumentType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown instrument type %q", asset.InstrumentType))
	}

	rate := decimal.NewFromInt(1)
	valueUSD := asset.Value
	if currency != domain.USD {
		quote := s.oracle.GetExchangeRate(ctx, domain.USDTo(currency))
		rate = quote.Rate
		valueUSD = accounting.ConvertToUSD(asset.Value, rate)
	}
	unitPrice := accounting.RoundHalfDown(valueUSD, domain.UnitPriceScale)
	if !unitPrice.IsPositive() {
		return nil, apperrors.NewValidationError("asset value is too small to record")
	}

	now := s.now().UTC()
	holding := domain.Holding{
		HoldingID:                 uuid.NewString(),
		OwnerRef:                  asset.OwnerRef,
		Ticker:                    manualTicker(asset.Ticker, name),
		Name:                      name,
		InstrumentType:            instrumentType,
		Quantity:                  decimal.NewFromInt(1),
		UnitPriceAtAcquisition:    unitPrice,
		ExchangeRateAtAcquisition: rate,
		PaymentCurrency:           currency,
		AcquiredAt:                now,
		UpdatedAt:                 now,
	}

	if _, err := s.persistNew(ctx, holding, domain.InitialDeposit, unitPrice); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Manual asset recorded",
		slog.String("holding_id", holding.HoldingID), slog.String("value_usd", unitPrice.String()))
	return &holding, nil
}

// RefreshPrice replaces the reference price of a holding with the current one. Quantity never changes.
func (s *tradeService) RefreshPrice(ctx context.Context, holdingID string) (*domain.RefreshResult, error) {
	defer metrics.ObserveTrade("refresh", time.Now())

	unlock := s.locks.Lock(holdingID)
	defer unlock()

	current, err := s.findHolding(ctx, holdingID)
	if err != nil {
		return nil, err
	}

	newPrice, err := s.oracle.GetUnitPrice(ctx, current.Ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve price of %s: %w", current.Ticker, err)
	}

	updated := *current
	updated.UnitPriceAtAcquisition = newPrice
	updated.UpdatedAt = s.now().UTC()

	if err := s.persistUpdate(ctx, *current, updated, domain.PriceRefresh, newPrice.Mul(updated.Quantity)); err != nil {
		return nil, err
	}

	oldPrice := current.UnitPriceAtAcquisition
	s.LogInfo(ctx, "Holding price refreshed",
		slog.String("holding_id", holdingID),
		slog.String("old_price", oldPrice.String()),
		slog.String("new_price", newPrice.String()))

	return &domain.RefreshResult{
		Holding:    updated,
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		Quantity:   updated.Quantity,
		ProfitLoss: newPrice.Sub(oldPrice).Mul(updated.Quantity),
	}, nil
}

// ManualAdjust overwrites the total USD value of a holding.
func (s *tradeService) ManualAdjust(ctx context.Context, holdingID string, newValue decimal.Decimal) (*domain.Holding, error) {
	defer metrics.ObserveTrade("manual_adjust", time.Now())

	if !newValue.IsPositive() {
		return nil, apperrors.NewValidationError("new value must be greater than zero")
	}

	unlock := s.locks.Lock(holdingID)
	defer unlock()

	current, err := s.findHolding(ctx, holdingID)
	if err != nil {
		return nil, err
	}
	if !current.Quantity.IsPositive() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("holding %s has no quantity to value", holdingID))
	}

	unitPrice := accounting.DivRoundHalfDown(newValue, current.Quantity, domain.UnitPriceScale)
	if !unitPrice.IsPositive() {
		return nil, apperrors.NewValidationError("new value is too small for the held quantity")
	}

	updated := *current
	updated.UnitPriceAtAcquisition = unitPrice
	updated.UpdatedAt = s.now().UTC()

	// The entry records the value the holding now derives, so history and net worth agree.
	if err := s.persistUpdate(ctx, *current, updated, domain.ManualUpdate, updated.ValueUSD()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Holding value adjusted",
		slog.String("holding_id", holdingID), slog.String("new_value", newValue.String()))
	return &updated, nil
}

func (s *tradeService) GetHolding(ctx context.Context, holdingID string) (*domain.Holding, error) {
	return s.findHolding(ctx, holdingID)
}

func (s *tradeService) ListHoldings(ctx context.Context, ownerRef string) ([]domain.Holding, error) {
	if strings.TrimSpace(ownerRef) == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}
	holdings, err := s.holdingRepo.FindHoldingsByOwner(ctx, ownerRef)
	if err != nil {
		s.LogError(ctx, err, "Failed to list holdings", slog.String("owner_ref", ownerRef))
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// DeleteHolding removes a holding. Its ledger entries stay as an audit trail.
func (s *tradeService) DeleteHolding(ctx context.Context, holdingID string) error {
	unlock := s.locks.Lock(holdingID)
	defer unlock()

	if err := s.holdingRepo.DeleteHolding(ctx, holdingID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete holding", slog.String("holding_id", holdingID))
		}
		return fmt.Errorf("failed to delete holding %s: %w", holdingID, err)
	}
	s.LogInfo(ctx, "Holding deleted", slog.String("holding_id", holdingID))
	return nil
}

func (s *tradeService) findHolding(ctx context.Context, holdingID string) (*domain.Holding, error) {
	if strings.TrimSpace(holdingID) == "" {
		return nil, apperrors.NewValidationError("holding id is required")
	}
	holding, err := s.holdingRepo.FindHoldingByID(ctx, holdingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find holding", slog.String("holding_id", holdingID))
		}
		return nil, fmt.Errorf("failed to get holding %s: %w", holdingID, err)
	}
	return holding, nil
}

// persistNew saves a fresh holding and its first ledger entry. If the entry cannot be
// appended the holding is removed again.
func (s *tradeService) persistNew(ctx context.Context, holding domain.Holding, kind domain.EntryKind, value decimal.Decimal) (*domain.LedgerEntry, error) {
	if err := s.holdingRepo.SaveHolding(ctx, holding); err != nil {
		s.LogError(ctx, err, "Failed to save holding", slog.String("holding_id", holding.HoldingID))
		return nil, fmt.Errorf("failed to save holding: %w", err)
	}

	entry, err := s.ledger.Append(ctx, holding.HoldingID, kind, value)
	if err != nil {
		if delErr := s.holdingRepo.DeleteHolding(ctx, holding.HoldingID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove holding after ledger failure", slog.String("holding_id", holding.HoldingID))
		}
		return nil, err
	}
	return entry, nil
}

// persistUpdate saves updated and appends its ledger entry, restoring previous if the append fails.
func (s *tradeService) persistUpdate(ctx context.Context, previous, updated domain.Holding, kind domain.EntryKind, value decimal.Decimal) error {
	if err := s.holdingRepo.SaveHolding(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save holding", slog.String("holding_id", updated.HoldingID))
		return fmt.Errorf("failed to save holding %s: %w", updated.HoldingID, err)
	}

	if _, err := s.ledger.Append(ctx, updated.HoldingID, kind, value); err != nil {
		if restoreErr := s.holdingRepo.SaveHolding(ctx, previous); restoreErr != nil {
			s.LogError(ctx, restoreErr, "Failed to restore holding after ledger failure", slog.String("holding_id", previous.HoldingID))
		}
		return err
	}
	return nil
}

func (s *tradeService) notifyBuy(ctx context.Context, ownerEmail string, holding domain.Holding, investedUSD decimal.Decimal) {
	if s.notifier == nil || strings.TrimSpace(ownerEmail) == "" {
		return
	}
	err := s.notifier.NotifyTrade(ctx, domain.TradeNotification{
		OwnerEmail:     ownerEmail,
		Ticker:         holding.Ticker,
		Quantity:       holding.Quantity,
		Price:          holding.UnitPriceAtAcquisition,
		InvestedAmount: investedUSD,
	})
	if err != nil {
		s.LogWarn(ctx, "Trade notification not dispatched",
			slog.String("holding_id", holding.HoldingID), slog.String("error", err.Error()))
	}
}

func resolveCurrency(code string) (string, error) {
	currency := domain.NormalizeCurrencyCode(code)
	if currency == "" {
		return domain.USD, nil
	}
	if !domain.IsKnownCurrency(currency) {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown currency %q", code))
	}
	return currency, nil
}

// manualTicker uses the given ticker, else the first word of name, keeping only symbol characters.
func manualTicker(ticker, name string) string {
	candidate := strings.TrimSpace(ticker)
	if candidate == "" {
		if fields := strings.Fields(name); len(fields) > 0 {
			candidate = fields[0]
		}
	}
	candidate = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', strings.ContainsRune(".^=-", r):
			return r
		}
		return -1
	}, strings.ToUpper(candidate))
	if len(candidate) > 20 {
		candidate = candidate[:20]
	}
	if candidate == "" {
		return manualTickerFallback
	}
	return candidate
}
