// Package projection is the library surface of the reward engine: it validates the
// inputs, runs the cycle simulation, aggregates it and distributes the taxes.
package projection

import (
	"github.com/DanSteel1337/5PT-sub000/internal/analyzer"
	"github.com/DanSteel1337/5PT-sub000/internal/catalog"
	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/simulations"
	"github.com/DanSteel1337/5PT-sub000/internal/treasury"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

var projectionLogger = logger.Component("projection")

// ComputeProjection runs a full projection. It is pure: identical inputs give
// bit-identical output and nothing is retained between calls. Errors wrap
// types.ErrInvalidParameter or types.ErrIndeterminate.
func ComputeProjection(position types.InvestorPosition, tier types.PoolTier, rates types.RateParameters, params types.SimulationParameters) (types.Projection, error) {
	cycles, daily, err := simulations.RunCycles(position, tier, rates, params)
	if err != nil {
		return types.Projection{}, err
	}

	depositAfterTax := simulations.DepositAfterTax(position.Principal, rates)
	depositTax := position.Principal - depositAfterTax

	agg, err := analyzer.Aggregate(depositAfterTax, depositTax, cycles, params)
	if err != nil {
		return types.Projection{}, err
	}

	agg.TaxDistribution, err = treasury.DistributeAll(depositTax, agg.TotalClaimTax, rates.TreasurySplit)
	if err != nil {
		return types.Projection{}, err
	}

	projectionLogger.L().Info().
		Int("tierID", tier.ID).
		Float64("principal", position.Principal).
		Float64("timeframeDays", params.TimeframeDays).
		Int("cycles", params.ReinvestmentCycles).
		Float64("totalRewards", agg.TotalRewards).
		Float64("effectiveAPR", agg.EffectiveAPR).
		Msg("Projection computed")

	return types.Projection{
		Tier:      tier,
		Rates:     rates,
		Params:    params,
		Daily:     daily,
		Cycles:    cycles,
		Aggregate: agg,
	}, nil
}

// ComputeForTierID looks the tier up in the catalog, then runs ComputeProjection.
// Unknown ids fail with types.ErrTierNotFound before any computation.
func ComputeForTierID(position types.InvestorPosition, tierID int, rates types.RateParameters, params types.SimulationParameters) (types.Projection, error) {
	tier, err := catalog.GetTier(tierID)
	if err != nil {
		return types.Projection{}, err
	}
	return ComputeProjection(position, tier, rates, params)
}

// Schedule returns the day-by-day series of a computed projection.
func Schedule(p types.Projection) []types.DailyPoint {
	return simulations.DailySchedule(p.Cycles, p.Params)
}
