package services

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.^=-]{1,20}$`)

// Fallback prices live in [10.00, 1000.00).
const (
	fallbackMinCents  = 1_000
	fallbackSpanCents = 99_000
)

// NormalizeTicker upper-cases and trims ticker and checks it is a plausible symbol.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if !tickerPattern.MatchString(t) {
		return "", apperrors.NewPriceUnavailableError(fmt.Sprintf("ticker %q is not a valid symbol", ticker))
	}
	return t, nil
}

// FallbackUnitPrice derives a stable USD price from the ticker alone.
// The same ticker always yields the same price, across calls and processes.
func FallbackUnitPrice(ticker string) (decimal.Decimal, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return decimal.Zero, err
	}
	cents := fallbackMinCents + int64(tickerHash(t)%fallbackSpanCents)
	return decimal.New(cents, -2), nil
}

func tickerHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// syntheticMatches builds an offline search result for query.
// It echoes the query as a symbol so a user can still trade it at its fallback price.
func syntheticMatches(query string) []domain.InstrumentMatch {
	symbol := strings.ToUpper(strings.TrimSpace(query))
	if i := strings.IndexAny(symbol, " \t"); i > 0 {
		symbol = symbol[:i]
	}
	if !tickerPattern.MatchString(symbol) {
		return []domain.InstrumentMatch{}
	}
	instrumentType := domain.Stock
	if strings.HasSuffix(symbol, "-USD") {
		instrumentType = domain.Crypto
	}
	return []domain.InstrumentMatch{{
		Symbol:    symbol,
		Name:      strings.TrimSpace(query),
		Type:      string(instrumentType),
		Region:    "United States",
		Currency:  domain.USD,
		Synthetic: true,
	}}
}
