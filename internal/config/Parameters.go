/*

This file contains the default rate policy for the projection engine.

The values mirror the platform's published schedule. Presentation calculators that
need different figures select a preset (see Presets.go) instead of editing these.

*/

package config

import (
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// DefaultPresetName is the preset used when none is requested.
const DefaultPresetName = "landing"

// TaxSliderMax is the upper bound of the deposit/claim tax sliders in the calculators.
// The engine accepts [0,100]; clamping to the slider range is the caller's job.
const TaxSliderMax = 10.0

// DefaultRateParameters provides the canonical rate policy.
var DefaultRateParameters = types.RateParameters{
	DailyBaseRatePercent: 0.35, // 0.35% of post-tax principal per day.
	// Rationale: The landing page calculator and the platform schedule use 0.35%.
	// The quick calculator historically used 0.3%; that figure lives in the "quick" preset.

	DepositTaxPercent: 10.0, // 10% taken once from the deposit.
	ClaimTaxPercent:   10.0, // 10% taken from every cycle's gross reward.

	DirectReferralRatePercent: 10.0, // 10% per month of first-level referral deposits.

	DownlineRatePercent: 1.35, // 1.35% per month of downline deposits, tier 3 and above.

	ReinvestSplit: types.ReinvestSplit{Wallet: 0.5, Reinvest: 0.5},
	// Rationale: Claims are split evenly; only the reinvested half compounds.

	TreasurySplit: types.TreasurySplit{Treasury1: 0.7, Treasury2: 0.3},

	PlatformDailyRewardEstimate: 10000, // Estimated platform-wide daily pool reward in tokens.

	ParticipantCountEstimate: 100, // Participants assumed to share each tier's pool.
	// Rationale: Pool share depends on how many holders split a tier's pool, which the
	// calculators cannot observe. 100 is the figure every calculator has assumed.

	ReferralAccrualDays: 30, // Monthly referral rates are spread over a 30-day month.
}

// DefaultSimulationParameters is the horizon used when a preset sets none: one
// 30-day cycle, as in the landing page calculator.
var DefaultSimulationParameters = types.SimulationParameters{
	TimeframeDays:      30,
	ReinvestmentCycles: 1,
}
