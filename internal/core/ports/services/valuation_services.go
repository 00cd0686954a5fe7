package services

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
)

// ValuationSvc aggregates holdings into a single figure.
type ValuationSvc interface {
	// NetWorth sums all holdings of ownerRef in the reference currency at one rate.
	NetWorth(ctx context.Context, ownerRef string) (*domain.NetWorth, error)
}
