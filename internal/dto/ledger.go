package dto

import (
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerEntriesParams defines query parameters for a holding's history.
type ListLedgerEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Kind        string          `json:"kind"`
	ValueAtTime decimal.Decimal `json:"valueAtTime"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ListLedgerEntriesResponse is one page of history, newest first.
type ListLedgerEntriesResponse struct {
	HoldingID string                `json:"holdingID"`
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		Kind:        string(e.Kind),
		ValueAtTime: e.ValueAtTime,
		Timestamp:   e.Timestamp,
	}
}

// ToListLedgerEntriesResponse builds a history page response
func ToListLedgerEntriesResponse(holdingID string, entries []domain.LedgerEntry, nextToken *string) ListLedgerEntriesResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(e)
	}
	return ListLedgerEntriesResponse{HoldingID: holdingID, Entries: res, NextToken: nextToken}
}
