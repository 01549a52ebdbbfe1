package aigateway

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Model output is untrusted: every number the gateway returns passes
// through one of these.

var (
	half = decimal.NewFromFloat(0.5)
	two  = decimal.NewFromInt(2)
)

// RoundMoney rounds half up to two decimal places and clamps to zero.
// Quantities use the same rule.
func RoundMoney(v float64) float64 {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return 0
	}
	return d.Round(2).InexactFloat64()
}

// RoundHours rounds labour hours to the nearest half hour, never below
// half an hour.
func RoundHours(v float64) float64 {
	d := decimal.NewFromFloat(v).Mul(two).Round(0).Div(two)
	if d.LessThan(half) {
		return half.InexactFloat64()
	}
	return d.InexactFloat64()
}

// capAt returns v, or limit when v exceeds it.
func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

// cleanPostcode normalises a UK postcode to upper case with single spacing.
func cleanPostcode(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
