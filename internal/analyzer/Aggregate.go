/*

This file contains the aggregator: a fold of cycle results into the projection summary.

*/

package analyzer

import (
	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

var aggregatorLogger = logger.Component("aggregator")

// Aggregate sums the cycles and derives ROI and effective APR. The tax distribution
// is left empty; the projection fills it from the totals returned here.
func Aggregate(depositAfterTax, depositTaxAmount float64, cycles []types.CycleResult, params types.SimulationParameters) (types.AggregateResult, error) {
	result := types.AggregateResult{
		DepositAfterTax:  depositAfterTax,
		DepositTaxAmount: depositTaxAmount,
		FinalPrincipal:   depositAfterTax,
	}

	for _, c := range cycles {
		result.TotalClaimed += c.ToWallet
		result.TotalReinvested += c.ToReinvest
		result.TotalClaimTax += c.ClaimTax
	}
	if n := len(cycles); n > 0 {
		result.FinalPrincipal = cycles[n-1].EndPrincipal
	}
	result.TotalRewards = result.TotalClaimed + result.TotalReinvested

	roi, err := CalculateROI(result.TotalRewards, depositAfterTax)
	if err != nil {
		return types.AggregateResult{}, err
	}
	result.ROI = roi

	apr, err := CalculateEffectiveAPR(result.FinalPrincipal, result.TotalClaimed, depositAfterTax, params.TimeframeDays)
	if err != nil {
		return types.AggregateResult{}, err
	}
	result.EffectiveAPR = apr

	aggregatorLogger.L().Debug().
		Float64("totalClaimed", result.TotalClaimed).
		Float64("totalReinvested", result.TotalReinvested).
		Float64("finalPrincipal", result.FinalPrincipal).
		Float64("roi", result.ROI).
		Float64("effectiveAPR", result.EffectiveAPR).
		Msg("Cycles aggregated")

	return result, nil
}
