package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load()

	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:       "INFO",
		DefaultMode:    "groups",
		DefaultFormat:  "json",
		RevealInterval: 0,
		Trials:         100,
	}, config)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEFAULT_MODE", "seats")
	t.Setenv("REVEAL_INTERVAL", "250ms")
	t.Setenv("TRIALS", "12")

	config, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "DEBUG", config.LogLevel)
	assert.Equal(t, "seats", config.DefaultMode)
	assert.Equal(t, 250*time.Millisecond, config.RevealInterval)
	assert.Equal(t, 12, config.Trials)
}

func TestLoadRejectsNonPositiveTrials(t *testing.T) {
	t.Setenv("TRIALS", "0")

	_, err := Load()

	assert.Error(t, err)
}
