package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100
)

// LedgerOption configures optional dependencies for the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerClock overrides the time source used to stamp entries.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	now        func() time.Time
}

// NewLedgerService creates the append-only ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, opts ...LedgerOption) portssvc.LedgerSvc {
	s := &ledgerService{
		ledgerRepo: ledgerRepo,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ledgerService) Append(ctx context.Context, holdingRef string, kind domain.EntryKind, valueAtTime decimal.Decimal) (*domain.LedgerEntry, error) {
	if strings.TrimSpace(holdingRef) == "" {
		return nil, apperrors.NewValidationError("ledger entry requires a holding reference")
	}
	if !kind.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown ledger entry kind %q", kind))
	}

	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		HoldingRef:  holdingRef,
		Kind:        kind,
		ValueAtTime: valueAtTime,
		Timestamp:   s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.ledgerRepo.AppendEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append ledger entry",
			slog.String("holding_id", holdingRef), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to append %s entry: %w", kind, err)
	}

	metrics.LedgerEntries.WithLabelValues(string(kind)).Inc()
	s.LogDebug(ctx, "Ledger entry appended",
		slog.String("entry_id", entry.EntryID), slog.String("holding_id", holdingRef), slog.String("kind", string(kind)))
	return &entry, nil
}

func (s *ledgerService) History(ctx context.Context, holdingRef string) ([]domain.LedgerEntry, error) {
	entries, _, err := s.ledgerRepo.FindEntriesByHolding(ctx, holdingRef, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of holding %s: %w", holdingRef, err)
	}
	return entries, nil
}

func (s *ledgerService) HistoryPage(ctx context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = defaultHistoryPageSize
	}
	if limit > maxHistoryPageSize {
		limit = maxHistoryPageSize
	}
	entries, next, err := s.ledgerRepo.FindEntriesByHolding(ctx, holdingRef, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history page of holding %s: %w", holdingRef, err)
	}
	return entries, next, nil
}
