package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/kbase/datacatalog/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig honors level", func(t *testing.T) {
		cfg := &logging.Config{
			Level:  "warn",
			Format: "json",
			Output: "discard",
		}
		logger := logging.NewLoggerFromConfig(cfg)
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("NewLoggerFromConfig nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("Configure replaces the default logger", func(t *testing.T) {
		logging.Configure(&logging.Config{Level: "error", Format: "json", Output: "discard"})
		assert.Equal(t, zerolog.ErrorLevel, logging.Default().GetLevel())
	})
}
