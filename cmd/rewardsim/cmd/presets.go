package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DanSteel1337/5PT-sub000/internal/config"
)

func newPresetsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available rate presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBASE %/DAY\tDEPOSIT TAX %\tCLAIM TAX %\tDAYS\tCYCLES\tDESCRIPTION")
			for _, name := range state.presets.Names() {
				rates, err := state.presets.Resolve(name)
				if err != nil {
					return err
				}
				p := state.presets.Presets[name]
				sim := p.Simulation(config.DefaultSimulationParameters)
				marker := ""
				if name == config.DefaultPreset {
					marker = " *"
				}
				fmt.Fprintf(tw, "%s%s\t%.2f\t%.1f\t%.1f\t%.0f\t%d\t%s\n",
					name, marker, rates.DailyBaseRatePercent, rates.DepositTaxPercent,
					rates.ClaimTaxPercent, sim.TimeframeDays, sim.ReinvestmentCycles, p.Description)
			}
			return tw.Flush()
		},
	}
}
