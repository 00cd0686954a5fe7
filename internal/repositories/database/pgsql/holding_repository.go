package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/SscSPs/asset_compass/internal/models"
	"github.com/SscSPs/asset_compass/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const holdingColumns = `holding_id, owner_ref, ticker, name, instrument_type, quantity,
	unit_price_at_acquisition, exchange_rate_at_acquisition, payment_currency, acquired_at, updated_at`

type PgxHoldingRepository struct {
	BaseRepository
}

// newPgxHoldingRepository creates a new repository for holdings.
func newPgxHoldingRepository(pool *pgxpool.Pool) portsrepo.HoldingRepositoryFacade {
	return &PgxHoldingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HoldingRepositoryFacade = (*PgxHoldingRepository)(nil)

// SaveHolding inserts a holding or overwrites the row with the same ID.
func (r *PgxHoldingRepository) SaveHolding(ctx context.Context, holding domain.Holding) error {
	m := mapping.ToModelHolding(holding)
	query := `
		INSERT INTO holdings (` + holdingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (holding_id) DO UPDATE SET
			ticker = EXCLUDED.ticker,
			name = EXCLUDED.name,
			instrument_type = EXCLUDED.instrument_type,
			quantity = EXCLUDED.quantity,
			unit_price_at_acquisition = EXCLUDED.unit_price_at_acquisition,
			exchange_rate_at_acquisition = EXCLUDED.exchange_rate_at_acquisition,
			payment_currency = EXCLUDED.payment_currency,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HoldingID,
		m.OwnerRef,
		m.Ticker,
		m.Name,
		m.InstrumentType,
		m.Quantity,
		m.UnitPriceAtAcquisition,
		m.ExchangeRateAtAcquisition,
		m.PaymentCurrency,
		m.AcquiredAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save holding %s: %w", m.HoldingID, err)
	}
	return nil
}

// FindHoldingByID retrieves a holding by its ID.
func (r *PgxHoldingRepository) FindHoldingByID(ctx context.Context, holdingID string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings WHERE holding_id = $1;`

	m, err := scanHolding(r.Pool.QueryRow(ctx, query, holdingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("holding not found: " + holdingID)
		}
		return nil, fmt.Errorf("failed to find holding %s: %w", holdingID, err)
	}
	d := mapping.ToDomainHolding(m)
	return &d, nil
}

// FindHoldingsByOwner retrieves every holding of an owner, oldest first.
func (r *PgxHoldingRepository) FindHoldingsByOwner(ctx context.Context, ownerRef string) ([]domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings WHERE owner_ref = $1 ORDER BY acquired_at ASC, holding_id ASC;`

	rows, err := r.Pool.Query(ctx, query, ownerRef)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings of %s: %w", ownerRef, err)
	}
	defer rows.Close()

	holdings := []models.Holding{}
	for rows.Next() {
		m, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding rows: %w", err)
	}
	return mapping.ToDomainHoldingSlice(holdings), nil
}

// DeleteHolding removes a holding row. Ledger rows are left untouched.
func (r *PgxHoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM holdings WHERE holding_id = $1;`, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding %s: %w", holdingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("holding not found: " + holdingID)
	}
	return nil
}

func scanHolding(row pgx.Row) (models.Holding, error) {
	var m models.Holding
	err := row.Scan(
		&m.HoldingID,
		&m.OwnerRef,
		&m.Ticker,
		&m.Name,
		&m.InstrumentType,
		&m.Quantity,
		&m.UnitPriceAtAcquisition,
		&m.ExchangeRateAtAcquisition,
		&m.PaymentCurrency,
		&m.AcquiredAt,
		&m.UpdatedAt,
	)
	return m, err
}
