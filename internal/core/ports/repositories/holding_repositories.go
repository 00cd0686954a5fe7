package repositories

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
)

// HoldingReader defines read operations for holding data
type HoldingReader interface {
	// FindHoldingByID retrieves a holding by its ID. Returns apperrors.ErrNotFound if absent.
	FindHoldingByID(ctx context.Context, holdingID string) (*domain.Holding, error)

	// FindHoldingsByOwner retrieves every holding of an owner, oldest acquisition first.
	FindHoldingsByOwner(ctx context.Context, ownerRef string) ([]domain.Holding, error)
}

// HoldingWriter defines write operations for holding data
type HoldingWriter interface {
	// SaveHolding inserts the holding or overwrites the stored record with the same ID.
	SaveHolding(ctx context.Context, holding domain.Holding) error

	// DeleteHolding removes a holding. Returns apperrors.ErrNotFound if absent.
	DeleteHolding(ctx context.Context, holdingID string) error
}

// HoldingRepositoryFacade combines all holding-related repository interfaces
type HoldingRepositoryFacade interface {
	HoldingReader
	HoldingWriter
}
