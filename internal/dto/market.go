package dto

import (
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateParams selects the USD/<currency> pair.
type ExchangeRateParams struct {
	Currency string `form:"currency" binding:"required,iso4217"`
}

// SearchParams carries a free text instrument search.
type SearchParams struct {
	Query string `form:"query" binding:"required,max=100"`
}

// ExchangeRateResponse defines the data returned for an exchange rate lookup.
type ExchangeRateResponse struct {
	Base          string          `json:"base"`
	Quote         string          `json:"quote"`
	Rate          decimal.Decimal `json:"rate"`
	LastFetchedAt *time.Time      `json:"lastFetchedAt,omitempty"` // absent for seeded rates
	Stale         bool            `json:"stale"`
}

// UnitPriceResponse defines the data returned for a price lookup.
type UnitPriceResponse struct {
	Ticker    string          `json:"ticker"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Currency  string          `json:"currency"`
}

// InstrumentMatchResponse is one search hit.
type InstrumentMatchResponse struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Region    string `json:"region"`
	Currency  string `json:"currency"`
	Synthetic bool   `json:"synthetic"`
}

// SearchResponse wraps search hits.
type SearchResponse struct {
	Matches []InstrumentMatchResponse `json:"matches"`
}

// ToExchangeRateResponse converts a domain.RateQuote to its DTO
func ToExchangeRateResponse(q domain.RateQuote) ExchangeRateResponse {
	res := ExchangeRateResponse{
		Base:  q.Pair.Base,
		Quote: q.Pair.Quote,
		Rate:  q.Rate,
		Stale: q.Stale,
	}
	if !q.LastFetchedAt.IsZero() {
		t := q.LastFetchedAt
		res.LastFetchedAt = &t
	}
	return res
}

// ToSearchResponse converts search hits to their DTO
func ToSearchResponse(matches []domain.InstrumentMatch) SearchResponse {
	res := make([]InstrumentMatchResponse, len(matches))
	for i, m := range matches {
		res[i] = InstrumentMatchResponse(m)
	}
	return SearchResponse{Matches: res}
}
