package mapping

import (
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/models"
)

// ToModelHolding converts a domain Holding to a model Holding
func ToModelHolding(d domain.Holding) models.Holding {
	return models.Holding{
		HoldingID:                 d.HoldingID,
		OwnerRef:                  d.OwnerRef,
		Ticker:                    d.Ticker,
		Name:                      d.Name,
		InstrumentType:            string(d.InstrumentType),
		Quantity:                  d.Quantity,
		UnitPriceAtAcquisition:    d.UnitPriceAtAcquisition,
		ExchangeRateAtAcquisition: d.ExchangeRateAtAcquisition,
		PaymentCurrency:           d.PaymentCurrency,
		AcquiredAt:                d.AcquiredAt,
		UpdatedAt:                 d.UpdatedAt,
	}
}

// ToDomainHolding converts a model Holding to a domain Holding
func ToDomainHolding(m models.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:                 m.HoldingID,
		OwnerRef:                  m.OwnerRef,
		Ticker:                    m.Ticker,
		Name:                      m.Name,
		InstrumentType:            domain.InstrumentType(m.InstrumentType),
		Quantity:                  m.Quantity,
		UnitPriceAtAcquisition:    m.UnitPriceAtAcquisition,
		ExchangeRateAtAcquisition: m.ExchangeRateAtAcquisition,
		PaymentCurrency:           m.PaymentCurrency,
		AcquiredAt:                m.AcquiredAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// ToDomainHoldingSlice converts a slice of model Holdings to domain Holdings
func ToDomainHoldingSlice(ms []models.Holding) []domain.Holding {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Holding, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHolding(m)
	}
	return ds
}
