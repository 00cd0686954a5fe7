package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persisted row of a value snapshot. Rows are insert-only.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`    // Primary Key (UUID)
	HoldingID   string          `json:"holdingID"`  // no FK: entries outlive deleted holdings
	EntryType   string          `json:"entryType"`
	ValueAtTime decimal.Decimal `json:"valueAtTime"` // numeric(38,14), USD
	Timestamp   time.Time       `json:"timestamp"`
}
