package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRates() RateParameters {
	return RateParameters{
		DailyBaseRatePercent:        0.35,
		DepositTaxPercent:           10,
		ClaimTaxPercent:             10,
		DirectReferralRatePercent:   10,
		DownlineRatePercent:         1.35,
		ReinvestSplit:               ReinvestSplit{Wallet: 0.5, Reinvest: 0.5},
		TreasurySplit:               TreasurySplit{Treasury1: 0.7, Treasury2: 0.3},
		PlatformDailyRewardEstimate: 10000,
		ParticipantCountEstimate:    100,
		ReferralAccrualDays:         30,
	}
}

func TestRateParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *RateParameters)
		wantErr bool
	}{
		{name: "defaults", mutate: func(r *RateParameters) {}},
		{name: "zero taxes", mutate: func(r *RateParameters) { r.DepositTaxPercent, r.ClaimTaxPercent = 0, 0 }},
		{name: "full withdrawal", mutate: func(r *RateParameters) { r.ReinvestSplit = ReinvestSplit{Wallet: 1, Reinvest: 0} }},
		{name: "negative base rate", mutate: func(r *RateParameters) { r.DailyBaseRatePercent = -0.1 }, wantErr: true},
		{name: "claim tax above 100", mutate: func(r *RateParameters) { r.ClaimTaxPercent = 100.5 }, wantErr: true},
		{name: "NaN downline rate", mutate: func(r *RateParameters) { r.DownlineRatePercent = math.NaN() }, wantErr: true},
		{name: "reinvest split does not sum to 1", mutate: func(r *RateParameters) { r.ReinvestSplit = ReinvestSplit{Wallet: 0.6, Reinvest: 0.6} }, wantErr: true},
		{name: "treasury fraction negative", mutate: func(r *RateParameters) { r.TreasurySplit = TreasurySplit{Treasury1: 1.2, Treasury2: -0.2} }, wantErr: true},
		{name: "no participants", mutate: func(r *RateParameters) { r.ParticipantCountEstimate = 0 }, wantErr: true},
		{name: "negative pool estimate", mutate: func(r *RateParameters) { r.PlatformDailyRewardEstimate = -1 }, wantErr: true},
		{name: "zero accrual days", mutate: func(r *RateParameters) { r.ReferralAccrualDays = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRates()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidatePercentBounds(t *testing.T) {
	assert.NoError(t, ValidatePercent("x", 0))
	assert.NoError(t, ValidatePercent("x", 100))
	assert.ErrorIs(t, ValidatePercent("x", math.Inf(1)), ErrInvalidParameter)
	assert.ErrorIs(t, ValidatePercent("x", -0.0001), ErrInvalidParameter)
}
