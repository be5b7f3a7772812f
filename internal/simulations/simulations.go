package simulations

import (
	"errors"
	"fmt"
	"math"

	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

var engineLogger = logger.Component("simulation_engine")

// --- Validation ---

// Validate checks every input before a cycle runs. It returns ErrInvalidParameter for
// out-of-range input and ErrIndeterminate when the post-tax deposit is zero, since
// ROI and effective APR are undefined for it. Nothing is clamped.
func Validate(position types.InvestorPosition, tier types.PoolTier, rates types.RateParameters, params types.SimulationParameters) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if tier.ID < 1 {
		return errors.Join(types.ErrInvalidParameter, fmt.Errorf("tier id must be positive, got %d", tier.ID))
	}
	if err := types.ValidatePercent("tier pool share", tier.PoolSharePercent); err != nil {
		return err
	}
	if err := rates.Validate(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if DepositAfterTax(position.Principal, rates) == 0 {
		return errors.Join(types.ErrIndeterminate, errors.New("deposit after tax is zero"))
	}
	return nil
}

// --- Engine ---

// DepositAfterTax applies the one-time deposit tax to the principal.
func DepositAfterTax(principal float64, rates types.RateParameters) float64 {
	return principal * (1 - rates.DepositTaxPercent/100)
}

// ComputeDailyRewards derives the per-day value of each stream. Pool share, direct
// referral and downline depend only on the tier and network, so they are computed
// once per projection and never compound. Base is reported at depositAfterTax.
func ComputeDailyRewards(position types.InvestorPosition, tier types.PoolTier, rates types.RateParameters, depositAfterTax float64) types.DailyRewards {
	daily := types.DailyRewards{
		Base:           depositAfterTax * (rates.DailyBaseRatePercent / 100),
		PoolShare:      rates.PlatformDailyRewardEstimate * (tier.PoolSharePercent / 100) / float64(rates.ParticipantCountEstimate),
		DirectReferral: position.DirectReferralDeposit * (rates.DirectReferralRatePercent / 100) / rates.ReferralAccrualDays,
	}
	if tier.DownlineEligible() {
		daily.Downline = position.DownlineDeposit * (rates.DownlineRatePercent / 100) / rates.ReferralAccrualDays
	}
	return daily
}

// RunCycles simulates every reinvestment cycle in order. Each cycle's base reward is
// taken on the principal compounded by the previous cycles' reinvested share; the
// wallet share is withdrawn and never re-added.
func RunCycles(position types.InvestorPosition, tier types.PoolTier, rates types.RateParameters, params types.SimulationParameters) ([]types.CycleResult, types.DailyRewards, error) {
	if err := Validate(position, tier, rates, params); err != nil {
		engineLogger.L().Warn().Err(err).Msg("Simulation input rejected")
		return nil, types.DailyRewards{}, err
	}

	depositAfterTax := DepositAfterTax(position.Principal, rates)
	daily := ComputeDailyRewards(position, tier, rates, depositAfterTax)
	daysPerCycle := params.DaysPerCycle()

	engineLogger.L().Debug().
		Int("tierID", tier.ID).
		Float64("depositAfterTax", depositAfterTax).
		Float64("dailyPoolShare", daily.PoolShare).
		Float64("dailyDirectReferral", daily.DirectReferral).
		Float64("dailyDownline", daily.Downline).
		Float64("daysPerCycle", daysPerCycle).
		Int("cycles", params.ReinvestmentCycles).
		Msg("Starting cycle simulation")

	currentPrincipal := depositAfterTax
	cycles := make([]types.CycleResult, 0, params.ReinvestmentCycles)

	for c := 0; c < params.ReinvestmentCycles; c++ {
		cycle := runCycle(c, currentPrincipal, daily, rates, daysPerCycle)
		if err := checkCycleFinite(cycle); err != nil {
			engineLogger.L().Error().Int("cycle", c).Err(err).Msg("Cycle produced a non-finite value")
			return nil, types.DailyRewards{}, err
		}
		currentPrincipal = cycle.EndPrincipal
		cycles = append(cycles, cycle)
	}

	engineLogger.L().Debug().
		Float64("finalPrincipal", currentPrincipal).
		Msg("Cycle simulation completed")

	return cycles, daily, nil
}

// runCycle computes one cycle from the principal in effect at its start.
func runCycle(index int, principal float64, daily types.DailyRewards, rates types.RateParameters, daysPerCycle float64) types.CycleResult {
	baseReward := principal * (rates.DailyBaseRatePercent / 100) * daysPerCycle
	poolReward := daily.PoolShare * daysPerCycle
	directRefReward := daily.DirectReferral * daysPerCycle
	downlineReward := daily.Downline * daysPerCycle

	gross := baseReward + poolReward + directRefReward + downlineReward
	claimTax := gross * (rates.ClaimTaxPercent / 100)
	net := gross - claimTax

	toWallet := net * rates.ReinvestSplit.Wallet
	toReinvest := net * rates.ReinvestSplit.Reinvest

	return types.CycleResult{
		CycleIndex:           index,
		StartPrincipal:       principal,
		BaseReward:           baseReward,
		PoolReward:           poolReward,
		DirectReferralReward: directRefReward,
		DownlineReward:       downlineReward,
		GrossReward:          gross,
		ClaimTax:             claimTax,
		NetReward:            net,
		ToWallet:             toWallet,
		ToReinvest:           toReinvest,
		EndPrincipal:         principal + toReinvest,
	}
}

func checkCycleFinite(c types.CycleResult) error {
	values := []struct {
		value float64
		name  string
	}{
		{c.BaseReward, "base reward"},
		{c.GrossReward, "gross reward"},
		{c.NetReward, "net reward"},
		{c.EndPrincipal, "end principal"},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return errors.Join(types.ErrInvalidParameter, fmt.Errorf("cycle %d %s is not finite", c.CycleIndex, v.name))
		}
	}
	return nil
}
