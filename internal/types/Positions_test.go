package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestorPositionValidate(t *testing.T) {
	ok := InvestorPosition{Principal: 550, TierID: 1, DirectReferralCount: 1, DirectReferralDeposit: 550}
	require.NoError(t, ok.Validate())

	zero := InvestorPosition{}
	require.NoError(t, zero.Validate())

	bad := []InvestorPosition{
		{Principal: -1},
		{Principal: math.NaN()},
		{Principal: 100, DirectReferralDeposit: -5},
		{Principal: 100, DownlineDeposit: math.Inf(1)},
		{Principal: 100, DirectReferralCount: -1},
		{Principal: 100, DownlineSize: -3},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), ErrInvalidParameter, "%+v", p)
	}
}

func TestSimulationParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  SimulationParameters
		wantErr bool
	}{
		{"one cycle", SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 1}, false},
		{"cycle per day", SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 30}, false},
		{"fractional days", SimulationParameters{TimeframeDays: 45.5, ReinvestmentCycles: 2}, false},
		{"zero timeframe", SimulationParameters{TimeframeDays: 0, ReinvestmentCycles: 1}, true},
		{"negative timeframe", SimulationParameters{TimeframeDays: -30, ReinvestmentCycles: 1}, true},
		{"zero cycles", SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 0}, true},
		{"more cycles than days", SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 31}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDaysPerCycle(t *testing.T) {
	assert.Equal(t, 30.0, SimulationParameters{TimeframeDays: 90, ReinvestmentCycles: 3}.DaysPerCycle())
	assert.Equal(t, 22.75, SimulationParameters{TimeframeDays: 45.5, ReinvestmentCycles: 2}.DaysPerCycle())
}
