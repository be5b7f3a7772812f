package report

import (
	"fmt"
	"strings"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// RenderMarkdown renders a projection as a Markdown document. When schedule is
// non-empty a day-by-day table is appended.
func RenderMarkdown(p types.Projection, schedule []types.DailyPoint) string {
	var sb strings.Builder
	agg := p.Aggregate

	sb.WriteString("# Reward Projection\n\n")
	sb.WriteString(fmt.Sprintf("Tier: %s (id %d, pool share %s%%, downline %s)\n\n",
		p.Tier.Name, p.Tier.ID, fixed(p.Tier.PoolSharePercent), yesNo(p.Tier.DownlineEligible())))
	sb.WriteString(fmt.Sprintf("Timeframe: %s days | Cycles: %d | Days per cycle: %s\n\n",
		fixed(p.Params.TimeframeDays), p.Params.ReinvestmentCycles, fixed(p.Params.DaysPerCycle())))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	rows := []struct {
		name  string
		value string
	}{
		{"Deposit After Tax", fixed(agg.DepositAfterTax)},
		{"Deposit Tax", fixed(agg.DepositTaxAmount)},
		{"Total Claim Tax", fixed(agg.TotalClaimTax)},
		{"Total Claimed", fixed(agg.TotalClaimed)},
		{"Total Reinvested", fixed(agg.TotalReinvested)},
		{"Total Rewards", fixed(agg.TotalRewards)},
		{"Final Principal", fixed(agg.FinalPrincipal)},
		{"ROI (%)", fixed(agg.ROI)},
		{"Effective APR (%)", fixed(agg.EffectiveAPR)},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", r.name, r.value))
	}
	sb.WriteString("\n")

	// Daily streams
	sb.WriteString("## Daily Streams\n\n")
	sb.WriteString("| Base | Pool Share | Direct Referral | Downline | Total |\n")
	sb.WriteString("|------|------------|-----------------|----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n\n",
		fixed(p.Daily.Base), fixed(p.Daily.PoolShare), fixed(p.Daily.DirectReferral),
		fixed(p.Daily.Downline), fixed(p.Daily.Total())))

	// Cycles
	sb.WriteString("## Cycles\n\n")
	sb.WriteString("| Cycle | Start Principal | Base | Pool | Direct Ref | Downline | Gross | Claim Tax | Net | To Wallet | To Reinvest |\n")
	sb.WriteString("|-------|-----------------|------|------|------------|----------|-------|-----------|-----|-----------|-------------|\n")
	for _, c := range p.Cycles {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			c.CycleIndex+1, fixed(c.StartPrincipal), fixed(c.BaseReward), fixed(c.PoolReward),
			fixed(c.DirectReferralReward), fixed(c.DownlineReward), fixed(c.GrossReward),
			fixed(c.ClaimTax), fixed(c.NetReward), fixed(c.ToWallet), fixed(c.ToReinvest)))
	}
	sb.WriteString("\n")

	// Tax distribution
	tax := agg.TaxDistribution
	sb.WriteString("## Tax Distribution\n\n")
	sb.WriteString("| Source | Total | Treasury 1 | Treasury 2 |\n")
	sb.WriteString("|--------|-------|------------|------------|\n")
	sb.WriteString(fmt.Sprintf("| Deposit | %s | %s | %s |\n",
		fixedDec(tax.DepositTax.Total), fixedDec(tax.DepositTax.Treasury1), fixedDec(tax.DepositTax.Treasury2)))
	sb.WriteString(fmt.Sprintf("| Claim | %s | %s | %s |\n\n",
		fixedDec(tax.ClaimTax.Total), fixedDec(tax.ClaimTax.Treasury1), fixedDec(tax.ClaimTax.Treasury2)))

	if len(schedule) > 0 {
		sb.WriteString("## Daily Schedule\n\n")
		sb.WriteString("| Day | Cycle | Principal | Cumulative Net | Claimed | Reinvested |\n")
		sb.WriteString("|-----|-------|-----------|----------------|---------|------------|\n")
		for _, d := range schedule {
			sb.WriteString(fmt.Sprintf("| %d | %d | %s | %s | %s | %s |\n",
				d.Day, d.Cycle+1, fixed(d.Principal), fixed(d.CumulativeNet),
				fixed(d.CumulativeClaimed), fixed(d.CumulativeReinvested)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
