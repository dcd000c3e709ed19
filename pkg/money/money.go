// Package money converts between stored cents and display amounts.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// FromCents converts an amount stored in cents to its decimal value
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// ToCents converts a decimal amount to cents, rounding half away from zero
func ToCents(amount float64) int64 {
	return toDecimal(amount).Round(2).Shift(2).IntPart()
}

// Format renders an amount with exactly two decimals
func Format(amount float64) string {
	return toDecimal(amount).StringFixed(2)
}

// LineTotal returns quantity * unitPrice rounded to cents
func LineTotal(quantity int, unitPrice float64) float64 {
	return toDecimal(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

func toDecimal(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount)
}
