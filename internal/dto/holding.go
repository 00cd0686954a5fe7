package dto

import (
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BuyRequest defines the data needed to buy into an instrument.
type BuyRequest struct {
	Ticker          string          `json:"ticker" binding:"required,max=20"`
	Name            string          `json:"name" binding:"max=255"`                                          // Optional, defaults to the ticker
	InstrumentType  string          `json:"instrumentType" binding:"omitempty,oneof=STOCK ETF CRYPTO OTHER"` // Optional, defaults to STOCK
	InvestedAmount  decimal.Decimal `json:"investedAmount" binding:"required,posdecimal"`
	PaymentCurrency string          `json:"paymentCurrency" binding:"omitempty,iso4217"` // Optional, defaults to USD
}

// CreateManualAssetRequest defines the data needed to record a legacy asset by value.
type CreateManualAssetRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Ticker         string          `json:"ticker" binding:"max=20"`                                         // Optional, derived from the name
	InstrumentType string          `json:"instrumentType" binding:"omitempty,oneof=STOCK ETF CRYPTO OTHER"` // Optional, defaults to OTHER
	Value          decimal.Decimal `json:"value" binding:"required,posdecimal"`
	Currency       string          `json:"currency" binding:"omitempty,iso4217"` // Optional, defaults to USD
}

// ManualAdjustRequest overwrites the total USD value of a holding.
type ManualAdjustRequest struct {
	NewValue decimal.Decimal `json:"newValue" binding:"required,posdecimal"`
}

// HoldingResponse defines the data returned for a holding.
type HoldingResponse struct {
	HoldingID                 string          `json:"holdingID"`
	Ticker                    string          `json:"ticker"`
	Name                      string          `json:"name"`
	InstrumentType            string          `json:"instrumentType"`
	Quantity                  decimal.Decimal `json:"quantity"`
	UnitPrice                 decimal.Decimal `json:"unitPrice"`
	ExchangeRateAtAcquisition decimal.Decimal `json:"exchangeRateAtAcquisition"`
	PaymentCurrency           string          `json:"paymentCurrency"`
	ValueUSD                  decimal.Decimal `json:"valueUSD"`
	AcquiredAt                time.Time       `json:"acquiredAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// ListHoldingsResponse wraps the holdings of the caller.
type ListHoldingsResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
}

// TradeReceiptResponse echoes what a buy resolved to.
type TradeReceiptResponse struct {
	Holding           HoldingResponse `json:"holding"`
	EntryID           string          `json:"entryID"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	InvestedAmount    decimal.Decimal `json:"investedAmount"`
	InvestedAmountUSD decimal.Decimal `json:"investedAmountUSD"`
	PaymentCurrency   string          `json:"paymentCurrency"`
}

// RefreshPriceResponse reports a price refresh.
type RefreshPriceResponse struct {
	Holding    HoldingResponse `json:"holding"`
	OldPrice   decimal.Decimal `json:"oldPrice"`
	NewPrice   decimal.Decimal `json:"newPrice"`
	Quantity   decimal.Decimal `json:"quantity"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
}

// ToHoldingResponse converts a domain.Holding to HoldingResponse DTO
func ToHoldingResponse(h *domain.Holding) HoldingResponse {
	return HoldingResponse{
		HoldingID:                 h.HoldingID,
		Ticker:                    h.Ticker,
		Name:                      h.Name,
		InstrumentType:            string(h.InstrumentType),
		Quantity:                  h.Quantity,
		UnitPrice:                 h.UnitPriceAtAcquisition,
		ExchangeRateAtAcquisition: h.ExchangeRateAtAcquisition,
		PaymentCurrency:           h.PaymentCurrency,
		ValueUSD:                  accounting.RoundHalfDown(h.ValueUSD(), domain.CashScale),
		AcquiredAt:                h.AcquiredAt,
		UpdatedAt:                 h.UpdatedAt,
	}
}

// ToListHoldingsResponse converts a slice of domain.Holding to ListHoldingsResponse
func ToListHoldingsResponse(holdings []domain.Holding) ListHoldingsResponse {
	res := make([]HoldingResponse, len(holdings))
	for i := range holdings {
		res[i] = ToHoldingResponse(&holdings[i])
	}
	return ListHoldingsResponse{Holdings: res}
}

// ToTradeReceiptResponse converts a domain.TradeReceipt to its DTO
func ToTradeReceiptResponse(r *domain.TradeReceipt) TradeReceiptResponse {
	return TradeReceiptResponse{
		Holding:           ToHoldingResponse(&r.Holding),
		EntryID:           r.Entry.EntryID,
		Quantity:          r.Quantity,
		UnitPrice:         r.UnitPrice,
		ExchangeRate:      r.ExchangeRate,
		InvestedAmount:    r.InvestedAmount,
		InvestedAmountUSD: r.InvestedAmountUSD,
		PaymentCurrency:   r.Holding.PaymentCurrency,
	}
}

// ToRefreshPriceResponse converts a domain.RefreshResult to its DTO
func ToRefreshPriceResponse(r *domain.RefreshResult) RefreshPriceResponse {
	return RefreshPriceResponse{
		Holding:    ToHoldingResponse(&r.Holding),
		OldPrice:   r.OldPrice,
		NewPrice:   r.NewPrice,
		Quantity:   r.Quantity,
		ProfitLoss: r.ProfitLoss,
	}
}
