package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/infrastructure/config"
)

func TestLoadConfig_ErrorsWhenExplicitPathMissing(t *testing.T) {
	// Arrange / Act: no config file on disk, no env vars set.
	cfg, err := config.LoadConfig("/nonexistent/path/config.yaml")

	// Assert
	require.Error(t, err) // explicit path that doesn't exist is a hard error
	_ = cfg
}

func TestLoadConfigOrDefault_NeverFails(t *testing.T) {
	// Act
	cfg := config.LoadConfigOrDefault("/nonexistent/path/config.yaml")

	// Assert
	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Runner.OutputFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig_RejectsUnknownOutputFormat(t *testing.T) {
	// Arrange
	cfg := &config.Config{
		Runner:  config.RunnerConfig{ScenarioDir: ".", OutputFormat: "xml"},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}

	// Act
	err := config.ValidateConfig(cfg)

	// Assert
	require.Error(t, err)
}
