package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/DanSteel1337/5PT-sub000/internal/logger"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var embeddedPresets []byte

var presetLogger = logger.Component("presets")

// ErrPresetNotFound is returned by Resolve for an unknown preset name.
var ErrPresetNotFound = errors.New("preset not found")

// Preset overlays DefaultRateParameters. Nil fields keep the default.
type Preset struct {
	Description string `yaml:"description"`

	DailyBaseRatePercent      *float64 `yaml:"daily_base_rate_percent"`
	DepositTaxPercent         *float64 `yaml:"deposit_tax_percent"`
	ClaimTaxPercent           *float64 `yaml:"claim_tax_percent"`
	DirectReferralRatePercent *float64 `yaml:"direct_referral_rate_percent"`
	DownlineRatePercent       *float64 `yaml:"downline_rate_percent"`

	ReinvestSplit *types.ReinvestSplit `yaml:"reinvest_split"`
	TreasurySplit *types.TreasurySplit `yaml:"treasury_split"`

	PlatformDailyRewardEstimate *float64 `yaml:"platform_daily_reward_estimate"`
	ParticipantCountEstimate    *int     `yaml:"participant_count_estimate"`
	ReferralAccrualDays         *float64 `yaml:"referral_accrual_days"`

	TimeframeDays      *float64 `yaml:"timeframe_days"`
	ReinvestmentCycles *int     `yaml:"reinvestment_cycles"`
}

// Presets is the set of named presets available to the CLI.
type Presets struct {
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets parses the embedded presets, then merges presets from path when it is
// set. A missing file is not an error; a malformed one is.
func LoadPresets(path string) (*Presets, error) {
	ps, err := ParsePresets(embeddedPresets)
	if err != nil {
		return nil, fmt.Errorf("parse embedded presets: %w", err)
	}
	if path == "" {
		return ps, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			presetLogger.L().Warn().Str("path", path).Msg("Presets file not found, using embedded presets only")
			return ps, nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}

	extra, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	for name, p := range extra.Presets {
		ps.Presets[name] = p
	}

	presetLogger.L().Info().
		Str("path", path).
		Int("loaded", len(extra.Presets)).
		Int("total", len(ps.Presets)).
		Msg("Presets file merged")
	return ps, nil
}

// ParsePresets decodes a presets YAML document.
func ParsePresets(data []byte) (*Presets, error) {
	ps := &Presets{}
	if err := yaml.Unmarshal(data, ps); err != nil {
		return nil, err
	}
	if ps.Presets == nil {
		ps.Presets = map[string]Preset{}
	}
	return ps, nil
}

// Names returns the preset names in sorted order.
func (ps *Presets) Names() []string {
	names := make([]string, 0, len(ps.Presets))
	for name := range ps.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve applies the named preset over DefaultRateParameters and validates the result.
func (ps *Presets) Resolve(name string) (types.RateParameters, error) {
	p, ok := ps.Presets[name]
	if !ok {
		return types.RateParameters{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	rates := p.Apply(DefaultRateParameters)
	if err := rates.Validate(); err != nil {
		return types.RateParameters{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return rates, nil
}

// Apply returns base with every field the preset sets replaced.
func (p Preset) Apply(base types.RateParameters) types.RateParameters {
	out := base
	setFloat(&out.DailyBaseRatePercent, p.DailyBaseRatePercent)
	setFloat(&out.DepositTaxPercent, p.DepositTaxPercent)
	setFloat(&out.ClaimTaxPercent, p.ClaimTaxPercent)
	setFloat(&out.DirectReferralRatePercent, p.DirectReferralRatePercent)
	setFloat(&out.DownlineRatePercent, p.DownlineRatePercent)
	setFloat(&out.PlatformDailyRewardEstimate, p.PlatformDailyRewardEstimate)
	setFloat(&out.ReferralAccrualDays, p.ReferralAccrualDays)
	if p.ReinvestSplit != nil {
		out.ReinvestSplit = *p.ReinvestSplit
	}
	if p.TreasurySplit != nil {
		out.TreasurySplit = *p.TreasurySplit
	}
	if p.ParticipantCountEstimate != nil {
		out.ParticipantCountEstimate = *p.ParticipantCountEstimate
	}
	return out
}

// Simulation returns the preset's horizon, falling back to fallback for unset fields.
func (p Preset) Simulation(fallback types.SimulationParameters) types.SimulationParameters {
	out := fallback
	setFloat(&out.TimeframeDays, p.TimeframeDays)
	if p.ReinvestmentCycles != nil {
		out.ReinvestmentCycles = *p.ReinvestmentCycles
	}
	return out
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
