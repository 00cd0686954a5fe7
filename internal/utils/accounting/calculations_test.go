package accounting_test

import (
	"testing"

	"github.com/SscSPs/asset_compass/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDivRoundHalfDown(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		places int32
		want   string
	}{
		{"exact division", "10", "4", 2, "2.5"},
		{"below half truncates", "5000", "18.50", 2, "270.27"},
		{"exact half goes down", "0.125", "1", 2, "0.12"},
		{"above half goes up", "0.1251", "1", 2, "0.13"},
		{"repeating below half", "1", "3", 10, "0.3333333333"},
		{"repeating above half", "2", "3", 10, "0.6666666667"},
		{"negative exact half goes toward zero", "-0.125", "1", 2, "-0.12"},
		{"negative above half", "-0.1251", "1", 2, "-0.13"},
		{"zero numerator", "0", "7", 4, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.DivRoundHalfDown(dec(tt.a), dec(tt.b), tt.places)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestRoundHalfDown(t *testing.T) {
	assert.True(t, dec("1.2345").Equal(accounting.RoundHalfDown(dec("1.23455"), 4)))
	assert.True(t, dec("1.2346").Equal(accounting.RoundHalfDown(dec("1.234551"), 4)))
	assert.True(t, dec("255").Equal(accounting.RoundHalfDown(dec("255.00"), 4)))
}

func TestConvertToUSDAndResolveQuantity(t *testing.T) {
	usd := accounting.ConvertToUSD(dec("5000"), dec("18.50"))
	assert.True(t, dec("270.27").Equal(usd), "got %s", usd)

	qty := accounting.ResolveQuantity(usd, dec("255.00"))
	// 270.27 / 255 = 1.059882352941176...
	assert.True(t, dec("1.0598823529").Equal(qty), "got %s", qty)
}

func TestResolveQuantity_NeverExceedsExactQuotient(t *testing.T) {
	// Half-down never imputes more than half a unit in the last place.
	pairs := [][2]string{{"100", "3"}, {"1", "7"}, {"999.99", "0.0001"}, {"12.34", "56.78"}}
	unit := decimal.New(5, -11)
	for _, p := range pairs {
		exact := dec(p[0]).DivRound(dec(p[1]), 30)
		got := accounting.ResolveQuantity(dec(p[0]), dec(p[1]))
		assert.True(t, got.Sub(exact).Abs().LessThanOrEqual(unit), "pair %v got %s", p, got)
		assert.True(t, got.IsPositive())
	}
}
