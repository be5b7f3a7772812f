/*

This file contains the rate policy types: every percentage, split and estimate the
simulation engine reads. Nothing in the engine uses an inline rate literal.

*/

package types

import (
	"errors"
	"fmt"
	"math"
)

// SplitTolerance is the allowed deviation of a split's fractions from 1.
const SplitTolerance = 1e-9

// ReinvestSplit divides a cycle's net reward between withdrawal and compounding.
type ReinvestSplit struct {
	Wallet   float64 `json:"wallet" yaml:"wallet"`     // Fraction paid out (0.0 to 1.0)
	Reinvest float64 `json:"reinvest" yaml:"reinvest"` // Fraction added to principal (0.0 to 1.0)
}

// TreasurySplit divides collected tax between the two treasury sinks.
type TreasurySplit struct {
	Treasury1 float64 `json:"treasury1" yaml:"treasury1"`
	Treasury2 float64 `json:"treasury2" yaml:"treasury2"`
}

// RateParameters holds the full rate policy for one projection.
type RateParameters struct {
	DailyBaseRatePercent      float64 `json:"daily_base_rate_percent" yaml:"daily_base_rate_percent"`           // Platform daily yield on principal (e.g., 0.35 for 0.35%)
	DepositTaxPercent         float64 `json:"deposit_tax_percent" yaml:"deposit_tax_percent"`                   // One-time tax on the deposit
	ClaimTaxPercent           float64 `json:"claim_tax_percent" yaml:"claim_tax_percent"`                       // Tax on every cycle's gross reward
	DirectReferralRatePercent float64 `json:"direct_referral_rate_percent" yaml:"direct_referral_rate_percent"` // Monthly rate on first-level referral deposits
	DownlineRatePercent       float64 `json:"downline_rate_percent" yaml:"downline_rate_percent"`               // Monthly rate on downline deposits, tier gated

	ReinvestSplit ReinvestSplit `json:"reinvest_split" yaml:"reinvest_split"`
	TreasurySplit TreasurySplit `json:"treasury_split" yaml:"treasury_split"`

	PlatformDailyRewardEstimate float64 `json:"platform_daily_reward_estimate" yaml:"platform_daily_reward_estimate"` // Estimated platform-wide daily pool reward in token units
	ParticipantCountEstimate    int     `json:"participant_count_estimate" yaml:"participant_count_estimate"`         // Estimated number of participants sharing a tier's pool
	ReferralAccrualDays         float64 `json:"referral_accrual_days" yaml:"referral_accrual_days"`                   // Days over which a monthly referral rate is spread
}

// Validate checks every rate is finite and in range. It never clamps.
func (r RateParameters) Validate() error {
	percents := []struct {
		name  string
		value float64
	}{
		{"daily base rate", r.DailyBaseRatePercent},
		{"deposit tax", r.DepositTaxPercent},
		{"claim tax", r.ClaimTaxPercent},
		{"direct referral rate", r.DirectReferralRatePercent},
		{"downline rate", r.DownlineRatePercent},
	}
	for _, p := range percents {
		if err := ValidatePercent(p.name, p.value); err != nil {
			return err
		}
	}

	if err := validateSplit("reinvest split", r.ReinvestSplit.Wallet, r.ReinvestSplit.Reinvest); err != nil {
		return err
	}
	if err := validateSplit("treasury split", r.TreasurySplit.Treasury1, r.TreasurySplit.Treasury2); err != nil {
		return err
	}

	if !isFinite(r.PlatformDailyRewardEstimate) || r.PlatformDailyRewardEstimate < 0 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("platform daily reward estimate must be finite and non-negative, got %v", r.PlatformDailyRewardEstimate))
	}
	if r.ParticipantCountEstimate < 1 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("participant count estimate must be at least 1, got %d", r.ParticipantCountEstimate))
	}
	if !isFinite(r.ReferralAccrualDays) || r.ReferralAccrualDays <= 0 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("referral accrual days must be positive, got %v", r.ReferralAccrualDays))
	}
	return nil
}

// ValidatePercent rejects non-finite values and values outside [0,100].
func ValidatePercent(name string, value float64) error {
	if !isFinite(value) {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("%s is not finite", name))
	}
	if value < 0 || value > 100 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("%s must be within [0,100], got %v", name, value))
	}
	return nil
}

func validateSplit(name string, a, b float64) error {
	if !isFinite(a) || !isFinite(b) {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("%s fractions must be finite", name))
	}
	if a < 0 || a > 1 || b < 0 || b > 1 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("%s fractions must be within [0,1], got %v/%v", name, a, b))
	}
	if math.Abs(a+b-1) > SplitTolerance {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("%s fractions must sum to 1, got %v", name, a+b))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
