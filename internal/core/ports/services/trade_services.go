package services

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradeExecutorSvc defines the mutating operations on holdings.
type TradeExecutorSvc interface {
	// Buy converts an invested amount into a new holding and records a BUY entry.
	Buy(ctx context.Context, order domain.BuyOrder) (*domain.TradeReceipt, error)

	// CreateManualAsset records a legacy asset by total value with an INITIAL_DEPOSIT entry.
	CreateManualAsset(ctx context.Context, asset domain.ManualAsset) (*domain.Holding, error)

	// RefreshPrice replaces the held reference price with a live one.
	RefreshPrice(ctx context.Context, holdingID string) (*domain.RefreshResult, error)

	// ManualAdjust overwrites a holding's total USD value.
	ManualAdjust(ctx context.Context, holdingID string, newValue decimal.Decimal) (*domain.Holding, error)
}

// HoldingReaderSvc defines read and boundary operations on holdings.
type HoldingReaderSvc interface {
	GetHolding(ctx context.Context, holdingID string) (*domain.Holding, error)
	ListHoldings(ctx context.Context, ownerRef string) ([]domain.Holding, error)
	DeleteHolding(ctx context.Context, holdingID string) error
}

// TradeSvcFacade combines all holding-related service interfaces
type TradeSvcFacade interface {
	TradeExecutorSvc
	HoldingReaderSvc
}
