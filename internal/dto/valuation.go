package dto

import (
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// NetWorthResponse defines the data returned for a net worth query.
type NetWorthResponse struct {
	Total             decimal.Decimal `json:"total"`
	TotalFormatted    string          `json:"totalFormatted"`
	TotalUSD          decimal.Decimal `json:"totalUSD"`
	ReferenceCurrency string          `json:"referenceCurrency"`
	RateUsed          decimal.Decimal `json:"rateUsed"`
	RateStale         bool            `json:"rateStale"`
	HoldingCount      int             `json:"holdingCount"`
	ComputedAt        time.Time       `json:"computedAt"`
}

// ToNetWorthResponse converts a domain.NetWorth to its DTO. Totals are shown to the cent.
func ToNetWorthResponse(n *domain.NetWorth) NetWorthResponse {
	total := accounting.RoundHalfDown(n.Total, domain.CashScale)
	return NetWorthResponse{
		Total:             total,
		TotalFormatted:    domain.FormatAmount(total, n.ReferenceCurrency),
		TotalUSD:          accounting.RoundHalfDown(n.TotalUSD, domain.CashScale),
		ReferenceCurrency: n.ReferenceCurrency,
		RateUsed:          n.RateUsed,
		RateStale:         n.RateStale,
		HoldingCount:      n.HoldingCount,
		ComputedAt:        n.ComputedAt,
	}
}
