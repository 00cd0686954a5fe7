package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is the persisted row of a position.
type Holding struct {
	HoldingID                 string          `json:"holdingID"` // Primary Key (UUID)
	OwnerRef                  string          `json:"ownerRef"`
	Ticker                    string          `json:"ticker"`
	Name                      string          `json:"name"`
	InstrumentType            string          `json:"instrumentType"`
	Quantity                  decimal.Decimal `json:"quantity"`                  // numeric(30,10)
	UnitPriceAtAcquisition    decimal.Decimal `json:"unitPriceAtAcquisition"`    // numeric(20,4), USD
	ExchangeRateAtAcquisition decimal.Decimal `json:"exchangeRateAtAcquisition"` // numeric(20,4)
	PaymentCurrency           string          `json:"paymentCurrency"`
	AcquiredAt                time.Time       `json:"acquiredAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}
