/*

This file contains the static pool tier table and its lookups.

*/

package catalog

import (
	"errors"
	"fmt"

	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

var catalogLogger = logger.Component("tier_catalog")

// tiers is ordered by ID; IDs are contiguous from 1.
var tiers = []types.PoolTier{
	{ID: 1, Name: "Pool 1", PersonalInvestmentMin: 550, DirectReferralsRequired: 1, DirectReferralsDepositMin: 550, PoolSharePercent: 1.75},
	{ID: 2, Name: "Pool 2", PersonalInvestmentMin: 1100, DirectReferralsRequired: 3, DirectReferralsDepositMin: 2500, PoolSharePercent: 1.75},
	{ID: 3, Name: "Pool 3", PersonalInvestmentMin: 2250, DirectReferralsRequired: 5, DirectReferralsDepositMin: 6000, PoolSharePercent: 1.75},
	{ID: 4, Name: "Pool 4", PersonalInvestmentMin: 4500, DirectReferralsRequired: 10, DirectReferralsDepositMin: 15000, PoolSharePercent: 1.75},
	{ID: 5, Name: "Pool 5", PersonalInvestmentMin: 9000, DirectReferralsRequired: 15, DirectReferralsDepositMin: 30000, PoolSharePercent: 1.75},
	{ID: 6, Name: "Pool 6", PersonalInvestmentMin: 18000, DirectReferralsRequired: 20, DirectReferralsDepositMin: 60000, PoolSharePercent: 1.75},
	{ID: 7, Name: "Pool 7", PersonalInvestmentMin: 36000, DirectReferralsRequired: 25, DirectReferralsDepositMin: 120000, PoolSharePercent: 1.75},
	{ID: 8, Name: "Pool 8", PersonalInvestmentMin: 72000, DirectReferralsRequired: 30, DirectReferralsDepositMin: 240000, PoolSharePercent: 1.0},
	{ID: 9, Name: "Pool 9", PersonalInvestmentMin: 144000, DirectReferralsRequired: 35, DirectReferralsDepositMin: 480000, PoolSharePercent: 1.0},
}

// GetTier returns the tier with the given id or ErrTierNotFound.
func GetTier(id int) (types.PoolTier, error) {
	if id < 1 || id > len(tiers) {
		catalogLogger.L().Warn().Int("tierID", id).Msg("Unknown tier requested")
		return types.PoolTier{}, errors.Join(types.ErrTierNotFound, fmt.Errorf("tier id %d", id))
	}
	return tiers[id-1], nil
}

// AllTiers returns a copy of the table in ID order.
func AllTiers() []types.PoolTier {
	out := make([]types.PoolTier, len(tiers))
	copy(out, tiers)
	return out
}

// HighestQualifyingTier returns the highest tier whose requirements the position meets.
func HighestQualifyingTier(position types.InvestorPosition) (types.PoolTier, error) {
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].Qualifies(position) {
			catalogLogger.L().Debug().
				Int("tierID", tiers[i].ID).
				Float64("principal", position.Principal).
				Int("directReferrals", position.DirectReferralCount).
				Msg("Qualifying tier found")
			return tiers[i], nil
		}
	}
	return types.PoolTier{}, errors.Join(types.ErrTierNotFound, errors.New("position does not qualify for any tier"))
}
