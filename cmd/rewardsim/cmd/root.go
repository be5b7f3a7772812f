package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DanSteel1337/5PT-sub000/internal/config"
	"github.com/DanSteel1337/5PT-sub000/internal/logger"
)

// cliState is shared by every subcommand after the root pre-run.
type cliState struct {
	presets *config.Presets
	logFile string
	level   string
}

// NewRootCmd builds the rewardsim command tree.
func NewRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "rewardsim",
		Short: "Project pool rewards for a deposit, tier and referral network",
		Long: `rewardsim runs the reward projection engine from the command line.

It combines base yield, pool share, direct referral and downline rewards, applies
deposit and claim tax, splits each cycle's net reward between wallet and
reinvestment, and reports totals, ROI and effective APR.

Environment:
- LOG_LEVEL                       debug, info, warn or error
- REWARDSIM_PRESETS_FILE          extra YAML presets merged over the built-in ones
- REWARDSIM_DEFAULT_PRESET        preset used when --preset is not given
- REWARDSIM_PARTICIPANT_ESTIMATE  participants sharing a tier pool (overrides presets)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return state.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.logFile, "log-file", "", "Also append logs to this file")
	rootCmd.PersistentFlags().StringVar(&state.level, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(
		newProjectCmd(state),
		newTiersCmd(),
		newPresetsCmd(state),
	)
	return rootCmd
}

func (s *cliState) init() error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := config.LogLevel
	if s.level != "" {
		level = s.level
	}
	if s.logFile != "" {
		w, err := logger.FileWriter(s.logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logger.InitializeWithWriters(level, w)
	} else {
		logger.Initialize(level)
	}

	presets, err := config.LoadPresets(config.PresetsFile)
	if err != nil {
		return err
	}
	s.presets = presets
	return nil
}
