package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// AppConfig holds the CLI configuration loaded from environment variables.
// These are populated at startup by the LoadConfig function. None are required;
// every variable has a default.
var (
	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string

	// PresetsFile is an optional YAML file whose presets extend or override the embedded ones.
	PresetsFile string

	// DefaultPreset is the preset applied when the caller does not name one.
	DefaultPreset string

	// ParticipantCountEstimate overrides the preset's participant estimate when non-zero.
	ParticipantCountEstimate int
)

// LoadConfig loads configuration from environment variables and sets the global config vars.
func LoadConfig() error {
	log.Debug().Msg("Loading application configuration from environment variables...")

	var err error

	LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	PresetsFile = getEnvOrDefault("REWARDSIM_PRESETS_FILE", "")
	DefaultPreset = getEnvOrDefault("REWARDSIM_DEFAULT_PRESET", DefaultPresetName)

	ParticipantCountEstimate, err = getEnvAsIntOrDefault("REWARDSIM_PARTICIPANT_ESTIMATE", 0)
	if err != nil {
		return err
	}
	if ParticipantCountEstimate < 0 {
		return errors.New("environment variable REWARDSIM_PARTICIPANT_ESTIMATE cannot be negative")
	}

	// Expand the tilde (~) in the presets path to the user's home directory.
	if strings.HasPrefix(PresetsFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		PresetsFile = filepath.Join(home, PresetsFile[2:])
	}

	log.Debug().
		Str("LogLevel", LogLevel).
		Str("PresetsFile", PresetsFile).
		Str("DefaultPreset", DefaultPreset).
		Int("ParticipantCountEstimate", ParticipantCountEstimate).
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnvOrDefault retrieves a string environment variable, falling back when unset or empty.
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault retrieves an environment variable as an int. Returns error if set but invalid.
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid integer, got: " + valueStr)
	}
	return value, nil
}
