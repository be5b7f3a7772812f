package report

import (
	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimals printed for token amounts and percentages.
const AmountPlaces = 4

// fixed renders a float amount with AmountPlaces decimals, rounding half away from zero.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(AmountPlaces)
}

// fixedDec renders an SDK decimal without passing through float64.
func fixedDec(d sdkmath.LegacyDec) string {
	if d.IsNil() {
		return decimal.Zero.StringFixed(AmountPlaces)
	}
	v, err := decimal.NewFromString(d.String())
	if err != nil {
		return d.String()
	}
	return v.StringFixed(AmountPlaces)
}
