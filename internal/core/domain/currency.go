package domain

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD is the internal reference currency every holding is priced in.
const USD = "USD"

// NormalizeCurrencyCode upper-cases and trims an ISO 4217 code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsKnownCurrency reports whether code is an ISO 4217 currency known to go-money.
func IsKnownCurrency(code string) bool {
	code = NormalizeCurrencyCode(code)
	return len(code) == 3 && money.GetCurrency(code) != nil
}

// FormatAmount renders amount in the display format of currency (e.g. "R1,234.50").
// Unknown currencies fall back to the plain decimal string.
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(NormalizeCurrencyCode(currency))
	if cur == nil {
		return amount.StringFixed(CashScale)
	}
	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// CurrencyPair identifies an exchange rate: Quote units per one Base unit.
type CurrencyPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// NewCurrencyPair normalises both legs.
func NewCurrencyPair(base, quote string) CurrencyPair {
	return CurrencyPair{Base: NormalizeCurrencyCode(base), Quote: NormalizeCurrencyCode(quote)}
}

// USDTo is shorthand for the USD/quote pair.
func USDTo(quote string) CurrencyPair {
	return NewCurrencyPair(USD, quote)
}

// Identity reports whether both legs are the same currency.
func (p CurrencyPair) Identity() bool {
	return p.Base == p.Quote
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Quote
}

// RateCell is the cached value of one currency pair.
type RateCell struct {
	Rate          decimal.Decimal `json:"rate" msgpack:"rate"`
	LastFetchedAt time.Time       `json:"lastFetchedAt" msgpack:"lastFetchedAt"`
}

// RateQuote is what the price oracle hands out for a pair.
// Stale is set when the value came from the cache or seed instead of a live fetch.
type RateQuote struct {
	Pair          CurrencyPair    `json:"pair"`
	Rate          decimal.Decimal `json:"rate"`
	LastFetchedAt time.Time       `json:"lastFetchedAt"`
	Stale         bool            `json:"stale"`
}
