package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load fills in the expected defaults
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8484, cfg.Server.Port, "Default server port should be 8484")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "---", cfg.Deck.QASeparator, "Default QA separator should be '---'")
	assert.Equal(t, "[...]", cfg.Deck.ClozePlaceholder, "Default cloze placeholder should be '[...]'")
}

// TestLoadFromEnv verifies that Load reads values from environment
// variables and that they beat the defaults.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCRY_DECK_SERVER_PORT", "9090")
	t.Setenv("SCRY_DECK_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SCRY_DECK_DECK_QA_SEPARATOR", "===")
	t.Setenv("SCRY_DECK_DECK_CLOZE_PLACEHOLDER", "____")

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "===", cfg.Deck.QASeparator)
	assert.Equal(t, "____", cfg.Deck.ClozePlaceholder)
}

// TestLoadValidationErrors verifies that Load rejects invalid settings.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Port out of range",
			envVars: map[string]string{"SCRY_DECK_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"SCRY_DECK_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Port zero",
			envVars: map[string]string{"SCRY_DECK_SERVER_PORT": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for name, value := range tc.envVars {
				t.Setenv(name, value)
			}

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), "validation failed")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
