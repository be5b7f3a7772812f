package utils

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64ToDec(t *testing.T) {
	d, err := Float64ToDec(0.7)
	require.NoError(t, err)
	assert.True(t, d.Equal(sdkmath.LegacyMustNewDecFromStr("0.7")), d.String())

	d, err = Float64ToDec(49.5)
	require.NoError(t, err)
	assert.True(t, d.Equal(sdkmath.LegacyMustNewDecFromStr("49.5")), d.String())

	d, err = Float64ToDec(0)
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestFloat64ToDecErrors(t *testing.T) {
	_, err := Float64ToDec(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = Float64ToDec(math.Inf(1))
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = Float64ToDec(-1)
	assert.ErrorIs(t, err, ErrAmountNegative)

	_, err = FractionToDec(1.5)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestDecToFloat64(t *testing.T) {
	f, err := DecToFloat64(sdkmath.LegacyMustNewDecFromStr("38.5"))
	require.NoError(t, err)
	assert.Equal(t, 38.5, f)

	_, err = DecToFloat64(sdkmath.LegacyDec{})
	assert.ErrorIs(t, err, ErrAmountNil)

	_, err = DecToFloat64(sdkmath.LegacyMustNewDecFromStr("-1"))
	assert.ErrorIs(t, err, ErrAmountNegative)
}
