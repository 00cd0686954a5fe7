package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/SscSPs/asset_compass/internal/models"
	"github.com/SscSPs/asset_compass/internal/utils/mapping"
	"github.com/SscSPs/asset_compass/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendEntry inserts a new ledger row.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO ledger_entries (entry_id, holding_id, entry_type, value_at_time, ts)
		VALUES ($1, $2, $3, $4, $5);`,
		m.EntryID, m.HoldingID, m.EntryType, m.ValueAtTime, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry for holding %s: %w", m.HoldingID, err)
	}
	return nil
}

// FindEntriesByHolding lists entries of a holding newest first using token-based pagination.
// A limit of 0 returns every entry.
func (r *PgxLedgerRepository) FindEntriesByHolding(ctx context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	baseQuery := `
		SELECT entry_id, holding_id, entry_type, value_at_time, ts
		FROM ledger_entries
		WHERE holding_id = $1
	`
	// entry_id breaks ties between entries stamped in the same instant
	orderByClause := `ORDER BY ts DESC, entry_id DESC`

	args := []interface{}{holdingRef}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastTS, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (ts, entry_id) < ($2, $3)`
		args = append(args, lastTS, lastID)
	}
	query += " " + orderByClause

	// We fetch one extra item to determine if there's a next page.
	if limit > 0 {
		query += " LIMIT $" + strconv.Itoa(len(args)+1)
		args = append(args, limit+1)
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for holding "+holdingRef, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		var m models.LedgerEntry
		err := row.Scan(&m.EntryID, &m.HoldingID, &m.EntryType, &m.ValueAtTime, &m.Timestamp)
		return m, err
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entries for holding "+holdingRef, err)
	}

	var next *string
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Timestamp, last.EntryID)
		next = &token
	}

	return mapping.ToDomainLedgerEntrySlice(entries), next, nil
}
