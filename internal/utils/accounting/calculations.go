package accounting

import (
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// DivRoundHalfDown returns a / b rounded to places using round-half-down:
// the result moves away from zero only when the discarded part is strictly greater than half a unit.
// The remainder is computed exactly, so no intermediate precision is lost.
// Example: 5000 / 18.50 at 2 places returns 270.27.
func DivRoundHalfDown(a, b decimal.Decimal, places int32) decimal.Decimal {
	if b.IsZero() {
		panic("accounting: division by zero")
	}
	q, r := a.QuoRem(b, places)
	if r.IsZero() {
		return q
	}
	// a = q*b + r with |r| < |b| * 10^-places. Compare 2|r| against |b| * 10^-places.
	unit := decimal.New(1, -places)
	if r.Abs().Mul(two).GreaterThan(b.Abs().Mul(unit)) {
		if a.Sign()*b.Sign() < 0 {
			return q.Sub(unit)
		}
		return q.Add(unit)
	}
	return q
}

// RoundHalfDown rounds d to places using round-half-down.
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	return DivRoundHalfDown(d, decimal.NewFromInt(1), places)
}

// ConvertToUSD turns an amount expressed in a currency into USD using a USD/currency rate
// (units of currency per one USD), rounded half-down to the cent.
func ConvertToUSD(amount, usdRate decimal.Decimal) decimal.Decimal {
	return DivRoundHalfDown(amount, usdRate, 2)
}

// ResolveQuantity returns investedUSD / unitPrice rounded half-down to 10 places.
func ResolveQuantity(investedUSD, unitPrice decimal.Decimal) decimal.Decimal {
	return DivRoundHalfDown(investedUSD, unitPrice, 10)
}
