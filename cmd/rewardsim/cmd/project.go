package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DanSteel1337/5PT-sub000/internal/catalog"
	"github.com/DanSteel1337/5PT-sub000/internal/config"
	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/projection"
	"github.com/DanSteel1337/5PT-sub000/internal/report"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

var cliLogger = logger.Component("cli")

type projectFlags struct {
	principal       float64
	tierID          int
	directCount     int
	directDeposit   float64
	downlineSize    int
	downlineDeposit float64
	days            float64
	cycles          int
	preset          string
	depositTax      float64
	claimTax        float64
	baseRate        float64
	participants    int
	format          string
	daily           bool
}

func newProjectCmd(state *cliState) *cobra.Command {
	f := &projectFlags{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute a reward projection",
		Long: `Compute a reward projection for one deposit.

With --tier 0 the highest tier the position qualifies for is used. Rate values
come from the selected preset; --deposit-tax, --claim-tax, --base-rate and
--participants override it. Tax overrides are clamped to the calculator slider
range [0,10].`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd, state, f)
		},
	}

	cmd.Flags().Float64Var(&f.principal, "principal", 550, "Deposit before deposit tax")
	cmd.Flags().IntVar(&f.tierID, "tier", 0, "Pool tier id (0 selects the highest qualifying tier)")
	cmd.Flags().IntVar(&f.directCount, "direct-count", 0, "Number of direct referrals")
	cmd.Flags().Float64Var(&f.directDeposit, "direct-deposit", 0, "Combined deposit of direct referrals")
	cmd.Flags().IntVar(&f.downlineSize, "downline-size", 0, "Number of downline members")
	cmd.Flags().Float64Var(&f.downlineDeposit, "downline-deposit", 0, "Combined deposit of the downline")
	cmd.Flags().Float64Var(&f.days, "days", 0, "Timeframe in days (default from preset)")
	cmd.Flags().IntVar(&f.cycles, "cycles", 0, "Reinvestment cycles (default from preset)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Rate preset (default REWARDSIM_DEFAULT_PRESET)")
	cmd.Flags().Float64Var(&f.depositTax, "deposit-tax", 0, "Deposit tax percent override")
	cmd.Flags().Float64Var(&f.claimTax, "claim-tax", 0, "Claim tax percent override")
	cmd.Flags().Float64Var(&f.baseRate, "base-rate", 0, "Daily base rate percent override")
	cmd.Flags().IntVar(&f.participants, "participants", 0, "Participants sharing the tier pool")
	cmd.Flags().StringVar(&f.format, "format", "markdown", "Output format: markdown, csv or json")
	cmd.Flags().BoolVar(&f.daily, "daily", false, "Include the day-by-day schedule")

	return cmd
}

func runProject(cmd *cobra.Command, state *cliState, f *projectFlags) error {
	presetName := f.preset
	if presetName == "" {
		presetName = config.DefaultPreset
	}
	rates, err := state.presets.Resolve(presetName)
	if err != nil {
		return err
	}
	params := state.presets.Presets[presetName].Simulation(config.DefaultSimulationParameters)

	flags := cmd.Flags()
	if flags.Changed("deposit-tax") {
		rates.DepositTaxPercent = clampSlider("deposit tax", f.depositTax)
	}
	if flags.Changed("claim-tax") {
		rates.ClaimTaxPercent = clampSlider("claim tax", f.claimTax)
	}
	if flags.Changed("base-rate") {
		rates.DailyBaseRatePercent = f.baseRate
	}
	if config.ParticipantCountEstimate > 0 {
		rates.ParticipantCountEstimate = config.ParticipantCountEstimate
	}
	if flags.Changed("participants") {
		rates.ParticipantCountEstimate = f.participants
	}
	if flags.Changed("days") {
		params.TimeframeDays = f.days
	}
	if flags.Changed("cycles") {
		params.ReinvestmentCycles = f.cycles
	}

	position := types.InvestorPosition{
		Principal:             f.principal,
		TierID:                f.tierID,
		DirectReferralCount:   f.directCount,
		DirectReferralDeposit: f.directDeposit,
		DownlineSize:          f.downlineSize,
		DownlineDeposit:       f.downlineDeposit,
	}

	var tier types.PoolTier
	if f.tierID == 0 {
		tier, err = catalog.HighestQualifyingTier(position)
	} else {
		tier, err = catalog.GetTier(f.tierID)
	}
	if err != nil {
		return err
	}
	position.TierID = tier.ID

	cliLogger.L().Debug().
		Str("preset", presetName).
		Int("tierID", tier.ID).
		Str("format", f.format).
		Msg("Running projection")

	p, err := projection.ComputeProjection(position, tier, rates, params)
	if err != nil {
		return err
	}

	var schedule []types.DailyPoint
	if f.daily {
		schedule = projection.Schedule(p)
	}
	return writeProjection(cmd.OutOrStdout(), f.format, p, schedule)
}

func writeProjection(w io.Writer, format string, p types.Projection, schedule []types.DailyPoint) error {
	switch strings.ToLower(format) {
	case "markdown", "md":
		_, err := io.WriteString(w, report.RenderMarkdown(p, schedule))
		return err
	case "csv":
		if _, err := io.WriteString(w, report.RenderCSV(p)); err != nil {
			return err
		}
		if len(schedule) > 0 {
			if _, err := io.WriteString(w, "\n"+report.RenderScheduleCSV(schedule)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		data, err := report.RenderJSON(p, schedule)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q (want markdown, csv or json)", format)
	}
}

// clampSlider limits a tax override to the calculator slider range.
func clampSlider(name string, v float64) float64 {
	clamped := v
	if clamped < 0 {
		clamped = 0
	}
	if clamped > config.TaxSliderMax {
		clamped = config.TaxSliderMax
	}
	if clamped != v {
		cliLogger.L().Warn().
			Str("field", name).
			Float64("requested", v).
			Float64("applied", clamped).
			Msg("Tax override outside slider range, clamped")
	}
	return clamped
}
