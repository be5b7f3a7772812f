package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REWARDSIM_PRESETS_FILE", "")
	t.Setenv("REWARDSIM_DEFAULT_PRESET", "")
	t.Setenv("REWARDSIM_PARTICIPANT_ESTIMATE", "")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "info", LogLevel)
	assert.Empty(t, PresetsFile)
	assert.Equal(t, DefaultPresetName, DefaultPreset)
	assert.Zero(t, ParticipantCountEstimate)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REWARDSIM_PRESETS_FILE", "~/presets.yaml")
	t.Setenv("REWARDSIM_DEFAULT_PRESET", "quick")
	t.Setenv("REWARDSIM_PARTICIPANT_ESTIMATE", "250")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, "quick", DefaultPreset)
	assert.Equal(t, 250, ParticipantCountEstimate)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "presets.yaml"), PresetsFile)
}

func TestLoadConfigRejectsBadParticipantEstimate(t *testing.T) {
	t.Setenv("REWARDSIM_PARTICIPANT_ESTIMATE", "many")
	assert.Error(t, LoadConfig())

	t.Setenv("REWARDSIM_PARTICIPANT_ESTIMATE", "-5")
	assert.Error(t, LoadConfig())
}
