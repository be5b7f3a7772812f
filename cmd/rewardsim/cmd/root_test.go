package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanSteel1337/5PT-sub000/internal/config"
	"github.com/DanSteel1337/5PT-sub000/internal/report"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REWARDSIM_PRESETS_FILE", "")
	t.Setenv("REWARDSIM_DEFAULT_PRESET", "")
	t.Setenv("REWARDSIM_PARTICIPANT_ESTIMATE", "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProjectMarkdown(t *testing.T) {
	out, err := execute(t, "project", "--principal", "550", "--tier", "1", "--direct-count", "1", "--direct-deposit", "550")
	require.NoError(t, err)
	assert.Contains(t, out, "# Reward Projection")
	assert.Contains(t, out, "| Deposit After Tax | 495.0000 |")
}

func TestProjectAutoTierJSON(t *testing.T) {
	out, err := execute(t, "project", "--principal", "2250", "--direct-count", "5", "--direct-deposit", "6000",
		"--downline-deposit", "6000", "--format", "json", "--daily", "--days", "60", "--cycles", "2")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 3, doc.Projection.Tier.ID)
	assert.InDelta(t, 2.7, doc.Projection.Daily.Downline, 1e-9)
	assert.Len(t, doc.Projection.Cycles, 2)
	assert.Len(t, doc.Schedule, 60)
}

func TestProjectCSVWithPreset(t *testing.T) {
	out, err := execute(t, "project", "--tier", "1", "--preset", "yearly", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
}

func TestProjectErrors(t *testing.T) {
	_, err := execute(t, "project", "--tier", "1", "--days", "0")
	assert.Error(t, err)

	_, err = execute(t, "project", "--tier", "12")
	assert.Error(t, err)

	_, err = execute(t, "project", "--tier", "1", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "project", "--tier", "1", "--preset", "missing")
	assert.ErrorIs(t, err, config.ErrPresetNotFound)
}

func TestTiersAndPresets(t *testing.T) {
	out, err := execute(t, "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "Pool 9")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)

	out, err = execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "landing *")
	assert.Contains(t, out, "yearly")
}

func TestClampSlider(t *testing.T) {
	assert.Equal(t, 0.0, clampSlider("deposit tax", -3))
	assert.Equal(t, config.TaxSliderMax, clampSlider("deposit tax", 25))
	assert.Equal(t, 7.5, clampSlider("claim tax", 7.5))
}
