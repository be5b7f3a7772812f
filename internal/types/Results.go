/*

This file contains the output types of a projection: per-cycle results, the daily
schedule, tax distribution and the aggregate summary.

*/

package types

import (
	sdkmath "cosmossdk.io/math"
)

// DailyRewards holds the per-day value of each income stream. Base is measured at
// the starting (post-deposit-tax) principal; the other three never compound.
type DailyRewards struct {
	Base           float64 `json:"base"`
	PoolShare      float64 `json:"pool_share"`
	DirectReferral float64 `json:"direct_referral"`
	Downline       float64 `json:"downline"`
}

// Total is the sum of all four streams.
func (d DailyRewards) Total() float64 {
	return d.Base + d.PoolShare + d.DirectReferral + d.Downline
}

// CycleResult is the outcome of one reinvestment cycle.
type CycleResult struct {
	CycleIndex           int     `json:"cycle_index"`
	StartPrincipal       float64 `json:"start_principal"`
	BaseReward           float64 `json:"base_reward"`
	PoolReward           float64 `json:"pool_reward"`
	DirectReferralReward float64 `json:"direct_referral_reward"`
	DownlineReward       float64 `json:"downline_reward"`
	GrossReward          float64 `json:"gross_reward"`
	ClaimTax             float64 `json:"claim_tax"`
	NetReward            float64 `json:"net_reward"`
	ToWallet             float64 `json:"to_wallet"`
	ToReinvest           float64 `json:"to_reinvest"`
	EndPrincipal         float64 `json:"end_principal"`
}

// DailyPoint is one day of the projected schedule.
type DailyPoint struct {
	Day                  int     `json:"day"`
	Cycle                int     `json:"cycle"`
	Principal            float64 `json:"principal"`
	CumulativeNet        float64 `json:"cumulative_net"`
	CumulativeClaimed    float64 `json:"cumulative_claimed"`
	CumulativeReinvested float64 `json:"cumulative_reinvested"`
}

// TaxSplit is one tax total and its two treasury shares. Treasury1 + Treasury2 == Total exactly.
type TaxSplit struct {
	Total     sdkmath.LegacyDec `json:"total"`
	Treasury1 sdkmath.LegacyDec `json:"treasury1"`
	Treasury2 sdkmath.LegacyDec `json:"treasury2"`
}

// TaxDistribution splits both the deposit tax and the summed claim tax.
type TaxDistribution struct {
	DepositTax TaxSplit `json:"deposit_tax"`
	ClaimTax   TaxSplit `json:"claim_tax"`
}

// AggregateResult summarises a full projection.
type AggregateResult struct {
	DepositAfterTax  float64         `json:"deposit_after_tax"`
	DepositTaxAmount float64         `json:"deposit_tax_amount"`
	TotalClaimTax    float64         `json:"total_claim_tax"`
	TotalClaimed     float64         `json:"total_claimed"`
	TotalReinvested  float64         `json:"total_reinvested"`
	FinalPrincipal   float64         `json:"final_principal"`
	TotalRewards     float64         `json:"total_rewards"`
	ROI              float64         `json:"roi"`           // Percent of DepositAfterTax
	EffectiveAPR     float64         `json:"effective_apr"` // Annualized percent
	TaxDistribution  TaxDistribution `json:"tax_distribution"`
}

// Projection bundles the inputs actually used with every output of one run.
type Projection struct {
	Tier      PoolTier             `json:"tier"`
	Rates     RateParameters       `json:"rates"`
	Params    SimulationParameters `json:"params"`
	Daily     DailyRewards         `json:"daily"`
	Cycles    []CycleResult        `json:"cycles"`
	Aggregate AggregateResult      `json:"aggregate"`
}
