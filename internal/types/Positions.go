/*

This file contains the investor position and simulation parameter types passed into the engine.

*/

package types

import (
	"errors"
	"fmt"
)

// InvestorPosition describes one investor's deposit and referral network.
type InvestorPosition struct {
	Principal             float64 `json:"principal" yaml:"principal"`                             // Deposit before deposit tax, in token units
	TierID                int     `json:"tier_id" yaml:"tier_id"`                                 // Pool tier the investor holds
	DirectReferralCount   int     `json:"direct_referral_count" yaml:"direct_referral_count"`     // First-level invitees
	DirectReferralDeposit float64 `json:"direct_referral_deposit" yaml:"direct_referral_deposit"` // Combined deposit of first-level invitees
	DownlineSize          int     `json:"downline_size" yaml:"downline_size"`                     // Invitees beyond the first level
	DownlineDeposit       float64 `json:"downline_deposit" yaml:"downline_deposit"`               // Combined deposit of the downline
}

// Validate rejects negative or non-finite amounts and counts.
func (p InvestorPosition) Validate() error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"principal", p.Principal},
		{"direct referral deposit", p.DirectReferralDeposit},
		{"downline deposit", p.DownlineDeposit},
	}
	for _, a := range amounts {
		if !isFinite(a.value) {
			return errors.Join(ErrInvalidParameter, fmt.Errorf("%s is not finite", a.name))
		}
		if a.value < 0 {
			return errors.Join(ErrInvalidParameter, fmt.Errorf("%s cannot be negative, got %v", a.name, a.value))
		}
	}
	if p.DirectReferralCount < 0 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("direct referral count cannot be negative, got %d", p.DirectReferralCount))
	}
	if p.DownlineSize < 0 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("downline size cannot be negative, got %d", p.DownlineSize))
	}
	return nil
}

// SimulationParameters controls the projection horizon and how often rewards are split.
type SimulationParameters struct {
	TimeframeDays      float64 `json:"timeframe_days" yaml:"timeframe_days"`
	ReinvestmentCycles int     `json:"reinvestment_cycles" yaml:"reinvestment_cycles"`
}

// DaysPerCycle is TimeframeDays / ReinvestmentCycles and may be fractional.
func (s SimulationParameters) DaysPerCycle() float64 {
	return s.TimeframeDays / float64(s.ReinvestmentCycles)
}

// Validate enforces TimeframeDays > 0 and 1 <= ReinvestmentCycles <= TimeframeDays.
func (s SimulationParameters) Validate() error {
	if !isFinite(s.TimeframeDays) || s.TimeframeDays <= 0 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("timeframe days must be positive, got %v", s.TimeframeDays))
	}
	if s.ReinvestmentCycles < 1 {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("reinvestment cycles must be at least 1, got %d", s.ReinvestmentCycles))
	}
	if float64(s.ReinvestmentCycles) > s.TimeframeDays {
		return errors.Join(ErrInvalidParameter, fmt.Errorf("reinvestment cycles (%d) cannot exceed timeframe days (%v)", s.ReinvestmentCycles, s.TimeframeDays))
	}
	return nil
}
