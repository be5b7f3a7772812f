package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DanSteel1337/5PT-sub000/internal/catalog"
)

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the pool tier table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tMIN INVEST\tDIRECT REFS\tDIRECT DEPOSIT\tPOOL SHARE %\tDOWNLINE")
			for _, t := range catalog.AllTiers() {
				fmt.Fprintf(tw, "%d\t%s\t%.0f\t%d\t%.0f\t%.2f\t%s\n",
					t.ID, t.Name, t.PersonalInvestmentMin, t.DirectReferralsRequired,
					t.DirectReferralsDepositMin, t.PoolSharePercent, yesNo(t.DownlineEligible()))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
