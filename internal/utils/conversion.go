/*
This file contains conversion helpers between float64 token amounts and SDK fixed-point
decimals, used wherever an amount must be split without floating point drift.
*/

package utils

import (
	"errors"
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// Error definitions for zero-tolerance error handling
var (
	ErrAmountNil        = errors.New("amount is nil")
	ErrAmountNegative   = errors.New("amount is negative")
	ErrNotFinite        = errors.New("value is not finite")
	ErrConversionFailed = errors.New("conversion failed")
)

// Float64ToDec converts a non-negative float64 amount to an 18-digit SDK decimal.
// The float is read as its shortest decimal form, so 0.7 becomes exactly 0.7 rather
// than the nearest binary value, then rounded to LegacyPrecision places.
func Float64ToDec(amount float64) (sdkmath.LegacyDec, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return sdkmath.LegacyZeroDec(), fmt.Errorf("%w: amount is %f", ErrNotFinite, amount)
	}
	if amount < 0 {
		return sdkmath.LegacyZeroDec(), ErrAmountNegative
	}
	if amount == 0 {
		return sdkmath.LegacyZeroDec(), nil
	}

	// Use string conversion to avoid binary-to-decimal rounding surprises
	amountStr := decimal.NewFromFloat(amount).StringFixed(sdkmath.LegacyPrecision)

	dec, err := sdkmath.LegacyNewDecFromStr(amountStr)
	if err != nil {
		return sdkmath.LegacyZeroDec(), fmt.Errorf("%w: failed to create decimal from string: %w", ErrConversionFailed, err)
	}
	return dec, nil
}

// FractionToDec converts a fraction in [0,1] to an SDK decimal.
func FractionToDec(fraction float64) (sdkmath.LegacyDec, error) {
	if fraction > 1 {
		return sdkmath.LegacyZeroDec(), fmt.Errorf("%w: fraction %f exceeds 1", ErrConversionFailed, fraction)
	}
	return Float64ToDec(fraction)
}

// DecToFloat64 converts an SDK decimal back to float64 for display and aggregation.
func DecToFloat64(dec sdkmath.LegacyDec) (float64, error) {
	if dec.IsNil() {
		return 0, ErrAmountNil
	}
	if dec.IsNegative() {
		return 0, ErrAmountNegative
	}

	resultFloat, err := dec.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	if math.IsNaN(resultFloat) || math.IsInf(resultFloat, 0) {
		return 0, fmt.Errorf("%w: result is %f", ErrNotFinite, resultFloat)
	}

	return resultFloat, nil
}
