package treasury

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
	"github.com/DanSteel1337/5PT-sub000/internal/utils"
)

var distributorLogger = logger.Component("tax_distributor")

// Distribute splits a tax total between the two treasury sinks. Arithmetic is done in
// 18-digit fixed point: Treasury1 is Total times the first fraction (rounded by
// LegacyDec), Treasury2 is the remainder, so the pair always reconstructs Total.
func Distribute(total float64, split types.TreasurySplit) (types.TaxSplit, error) {
	totalDec, err := utils.Float64ToDec(total)
	if err != nil {
		return types.TaxSplit{}, errors.Join(types.ErrInvalidParameter, fmt.Errorf("tax total: %w", err))
	}
	ratio, err := utils.FractionToDec(split.Treasury1)
	if err != nil {
		return types.TaxSplit{}, errors.Join(types.ErrInvalidParameter, fmt.Errorf("treasury split: %w", err))
	}
	return DistributeDec(totalDec, ratio), nil
}

// DistributeDec splits an exact total with an exact first-sink ratio.
func DistributeDec(total, ratio sdkmath.LegacyDec) types.TaxSplit {
	first := total.Mul(ratio)
	second := total.Sub(first)

	distributorLogger.L().Debug().
		Str("total", total.String()).
		Str("treasury1", first.String()).
		Str("treasury2", second.String()).
		Msg("Tax distributed")

	return types.TaxSplit{
		Total:     total,
		Treasury1: first,
		Treasury2: second,
	}
}

// DistributeAll splits the deposit tax and the summed claim tax of a projection.
func DistributeAll(depositTax, claimTax float64, split types.TreasurySplit) (types.TaxDistribution, error) {
	deposit, err := Distribute(depositTax, split)
	if err != nil {
		return types.TaxDistribution{}, fmt.Errorf("deposit tax: %w", err)
	}
	claim, err := Distribute(claimTax, split)
	if err != nil {
		return types.TaxDistribution{}, fmt.Errorf("claim tax: %w", err)
	}
	return types.TaxDistribution{DepositTax: deposit, ClaimTax: claim}, nil
}
