/*

This file contains the pool tier type used by the tier catalog and the simulation engine.

*/

package types

// DownlineEligibleFromTier is the lowest tier id that earns downline rewards.
const DownlineEligibleFromTier = 3

// PoolTier is a qualification bracket. Only PoolSharePercent and DownlineEligible
// feed the simulation engine; the requirement fields are informational.
type PoolTier struct {
	ID                        int     `json:"id" yaml:"id"`
	Name                      string  `json:"name" yaml:"name"`
	PersonalInvestmentMin     float64 `json:"personal_investment_min" yaml:"personal_investment_min"`         // Minimum own deposit in token units
	DirectReferralsRequired   int     `json:"direct_referrals_required" yaml:"direct_referrals_required"`     // Number of first-level invitees needed
	DirectReferralsDepositMin float64 `json:"direct_referrals_deposit_min" yaml:"direct_referrals_deposit_min"` // Combined deposit the invitees must hold
	PoolSharePercent          float64 `json:"pool_share_percent" yaml:"pool_share_percent"`                   // Share of the platform pool reward (e.g., 1.75 for 1.75%)
}

// DownlineEligible reports whether the tier earns downline rewards.
func (t PoolTier) DownlineEligible() bool {
	return t.ID >= DownlineEligibleFromTier
}

// Qualifies reports whether the position meets every requirement of the tier.
func (t PoolTier) Qualifies(p InvestorPosition) bool {
	return p.Principal >= t.PersonalInvestmentMin &&
		p.DirectReferralCount >= t.DirectReferralsRequired &&
		p.DirectReferralDeposit >= t.DirectReferralsDepositMin
}
