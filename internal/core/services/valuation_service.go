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
	"github.com/shopspring/decimal"
)

type valuationService struct {
	BaseService
	holdingRepo       portsrepo.HoldingReader
	oracle            portssvc.PriceOracleSvc
	referenceCurrency string
	now               func() time.Time
}

// NewValuationService creates the net worth aggregator. It never writes anything.
func NewValuationService(holdingRepo portsrepo.HoldingReader, oracle portssvc.PriceOracleSvc, referenceCurrency string) portssvc.ValuationSvc {
	ref := domain.NormalizeCurrencyCode(referenceCurrency)
	if ref == "" {
		ref = domain.USD
	}
	return &valuationService{
		holdingRepo:       holdingRepo,
		oracle:            oracle,
		referenceCurrency: ref,
		now:               time.Now,
	}
}

// NetWorth values every holding at quantity × unit price and converts the sum with one rate.
func (s *valuationService) NetWorth(ctx context.Context, ownerRef string) (*domain.NetWorth, error) {
	if strings.TrimSpace(ownerRef) == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}

	holdings, err := s.holdingRepo.FindHoldingsByOwner(ctx, ownerRef)
	if err != nil {
		s.LogError(ctx, err, "Failed to load holdings for net worth", slog.String("owner_ref", ownerRef))
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	quote := s.oracle.GetExchangeRate(ctx, domain.USDTo(s.referenceCurrency))

	totalUSD := decimal.Zero
	total := decimal.Zero
	for _, h := range holdings {
		value := h.ValueUSD()
		totalUSD = totalUSD.Add(value)
		total = total.Add(value.Mul(quote.Rate))
	}

	return &domain.NetWorth{
		OwnerRef:          ownerRef,
		Total:             total,
		TotalUSD:          totalUSD,
		ReferenceCurrency: s.referenceCurrency,
		RateUsed:          quote.Rate,
		RateStale:         quote.Stale,
		HoldingCount:      len(holdings),
		ComputedAt:        s.now().UTC(),
	}, nil
}
