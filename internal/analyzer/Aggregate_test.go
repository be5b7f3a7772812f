package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

func TestAggregate(t *testing.T) {
	cycles := []types.CycleResult{
		{CycleIndex: 0, StartPrincipal: 100, ClaimTax: 1, NetReward: 9, ToWallet: 4.5, ToReinvest: 4.5, EndPrincipal: 104.5},
		{CycleIndex: 1, StartPrincipal: 104.5, ClaimTax: 2, NetReward: 18, ToWallet: 9, ToReinvest: 9, EndPrincipal: 113.5},
	}
	params := types.SimulationParameters{TimeframeDays: 60, ReinvestmentCycles: 2}

	agg, err := Aggregate(100, 11.11, cycles, params)
	require.NoError(t, err)

	assert.Equal(t, 100.0, agg.DepositAfterTax)
	assert.Equal(t, 11.11, agg.DepositTaxAmount)
	assert.Equal(t, 3.0, agg.TotalClaimTax)
	assert.Equal(t, 13.5, agg.TotalClaimed)
	assert.Equal(t, 13.5, agg.TotalReinvested)
	assert.Equal(t, 27.0, agg.TotalRewards)
	assert.Equal(t, 113.5, agg.FinalPrincipal)
	assert.InDelta(t, 27.0, agg.ROI, 1e-9)
	assert.InDelta(t, agg.DepositAfterTax+agg.TotalRewards, agg.FinalPrincipal+agg.TotalClaimed, 1e-9)

	apr, err := CalculateEffectiveAPR(113.5, 13.5, 100, 60)
	require.NoError(t, err)
	assert.Equal(t, apr, agg.EffectiveAPR)
}

func TestAggregateZeroDeposit(t *testing.T) {
	_, err := Aggregate(0, 0, nil, types.SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 1})
	assert.ErrorIs(t, err, types.ErrIndeterminate)
}
