package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells which operation produced a ledger entry.
type EntryKind string

const (
	InitialDeposit EntryKind = "INITIAL_DEPOSIT"
	Buy            EntryKind = "BUY"
	ManualUpdate   EntryKind = "MANUAL_UPDATE"
	PriceRefresh   EntryKind = "PRICE_REFRESH"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	switch k {
	case InitialDeposit, Buy, ManualUpdate, PriceRefresh:
		return true
	}
	return false
}

// LedgerEntry is an immutable value snapshot of a holding.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	HoldingRef  string          `json:"holdingRef"`
	Kind        EntryKind       `json:"kind"`
	ValueAtTime decimal.Decimal `json:"valueAtTime"` // total USD value
	Timestamp   time.Time       `json:"timestamp"`
}
