package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentType classifies what a holding is a position in.
type InstrumentType string

const (
	Stock  InstrumentType = "STOCK"
	ETF    InstrumentType = "ETF"
	Crypto InstrumentType = "CRYPTO"
	Other  InstrumentType = "OTHER"
)

// Valid reports whether t is one of the known instrument types.
func (t InstrumentType) Valid() bool {
	switch t {
	case Stock, ETF, Crypto, Other:
		return true
	}
	return false
}

// ParseInstrumentType normalises s to an InstrumentType. Empty input maps to Other.
func ParseInstrumentType(s string) (InstrumentType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Other, true
	}
	t := InstrumentType(s)
	return t, t.Valid()
}

// Fixed-point scales used for persisted values.
// Live quotes keep up to QuotePriceScale places; prices derived from a total value use UnitPriceScale.
const (
	QuantityScale     int32 = 10
	QuotePriceScale   int32 = 10
	UnitPriceScale    int32 = 4
	ExchangeRateScale int32 = 4
	CashScale         int32 = 2
)

// Holding is a user's position in one instrument. Prices are always stored in USD.
type Holding struct {
	HoldingID                 string          `json:"holdingID"`
	OwnerRef                  string          `json:"ownerRef"`
	Ticker                    string          `json:"ticker"`
	Name                      string          `json:"name"`
	InstrumentType            InstrumentType  `json:"instrumentType"`
	Quantity                  decimal.Decimal `json:"quantity"`                  // scale 10
	UnitPriceAtAcquisition    decimal.Decimal `json:"unitPriceAtAcquisition"`    // scale 4, USD
	ExchangeRateAtAcquisition decimal.Decimal `json:"exchangeRateAtAcquisition"` // scale 4, locked at purchase
	PaymentCurrency           string          `json:"paymentCurrency"`
	AcquiredAt                time.Time       `json:"acquiredAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// ValueUSD is quantity × unit price.
func (h Holding) ValueUSD() decimal.Decimal {
	return h.Quantity.Mul(h.UnitPriceAtAcquisition)
}

// OwnedBy reports whether ownerRef owns the holding.
func (h Holding) OwnedBy(ownerRef string) bool {
	return ownerRef != "" && h.OwnerRef == ownerRef
}
