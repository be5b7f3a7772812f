package report

import (
	"fmt"
	"strings"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// RenderCSV renders the cycle results as CSV.
func RenderCSV(p types.Projection) string {
	var sb strings.Builder

	// Header
	sb.WriteString("cycle,start_principal,base_reward,pool_reward,direct_referral_reward,downline_reward,")
	sb.WriteString("gross_reward,claim_tax,net_reward,to_wallet,to_reinvest,end_principal\n")

	// Rows
	for _, c := range p.Cycles {
		sb.WriteString(fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			c.CycleIndex+1,
			fixed(c.StartPrincipal),
			fixed(c.BaseReward),
			fixed(c.PoolReward),
			fixed(c.DirectReferralReward),
			fixed(c.DownlineReward),
			fixed(c.GrossReward),
			fixed(c.ClaimTax),
			fixed(c.NetReward),
			fixed(c.ToWallet),
			fixed(c.ToReinvest),
			fixed(c.EndPrincipal),
		))
	}

	return sb.String()
}

// RenderScheduleCSV renders the day-by-day series as CSV.
func RenderScheduleCSV(schedule []types.DailyPoint) string {
	var sb strings.Builder
	sb.WriteString("day,cycle,principal,cumulative_net,cumulative_claimed,cumulative_reinvested\n")
	for _, d := range schedule {
		sb.WriteString(fmt.Sprintf("%d,%d,%s,%s,%s,%s\n",
			d.Day, d.Cycle+1, fixed(d.Principal), fixed(d.CumulativeNet),
			fixed(d.CumulativeClaimed), fixed(d.CumulativeReinvested)))
	}
	return sb.String()
}
