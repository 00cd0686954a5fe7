package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuyOrder is a request to convert cash into an instrument position.
type BuyOrder struct {
	OwnerRef        string
	OwnerEmail      string // optional, used for the trade confirmation
	Ticker          string
	Name            string
	InstrumentType  InstrumentType
	InvestedAmount  decimal.Decimal // in PaymentCurrency
	PaymentCurrency string
}

// TradeReceipt echoes what a buy resolved to.
type TradeReceipt struct {
	Holding           Holding         `json:"holding"`
	Entry             LedgerEntry     `json:"entry"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	InvestedAmount    decimal.Decimal `json:"investedAmount"`
	InvestedAmountUSD decimal.Decimal `json:"investedAmountUSD"`
}

// RefreshResult reports a price refresh of one holding.
type RefreshResult struct {
	Holding    Holding         `json:"holding"`
	OldPrice   decimal.Decimal `json:"oldPrice"`
	NewPrice   decimal.Decimal `json:"newPrice"`
	Quantity   decimal.Decimal `json:"quantity"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
}

// ManualAsset describes a legacy, non-ticker asset recorded by total value.
type ManualAsset struct {
	OwnerRef       string
	Name           string
	Ticker         string
	InstrumentType InstrumentType
	Value          decimal.Decimal // in Currency
	Currency       string
}

// NetWorth is the aggregated value of all holdings of an owner.
type NetWorth struct {
	OwnerRef          string          `json:"ownerRef"`
	Total             decimal.Decimal `json:"total"`
	TotalUSD          decimal.Decimal `json:"totalUSD"`
	ReferenceCurrency string          `json:"referenceCurrency"`
	RateUsed          decimal.Decimal `json:"rateUsed"`
	RateStale         bool            `json:"rateStale"`
	HoldingCount      int             `json:"holdingCount"`
	ComputedAt        time.Time       `json:"computedAt"`
}

// TradeNotification is handed to the notification collaborator after a buy.
type TradeNotification struct {
	OwnerEmail     string
	Ticker         string
	Quantity       decimal.Decimal
	Price          decimal.Decimal
	InvestedAmount decimal.Decimal // USD
}
