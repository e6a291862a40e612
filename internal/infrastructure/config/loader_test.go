package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults when no config file exists", func(t *testing.T) {
		// Act
		cfg, err := load(Development, []string{t.TempDir()})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Development, cfg.Environment)
		assert.Equal(t, "app", cfg.Logging.Subsystem)
		assert.Equal(t, time.Second, cfg.Logging.SinkTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 1000, cfg.Console.Capacity)
		assert.Equal(t, []string{"default"}, cfg.Console.AttachTo)

		severities, err := cfg.Logging.Severities(cfg.Environment)
		require.NoError(t, err)
		assert.Equal(t, entity.AllSeverities(), severities)
	})

	t.Run("should read the environment file", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Production, `
logging:
  subsystem: com.example.shop
  minSeverity: warning
  sinkTimeout: 250
  format:
    metadataStyle: pretty
    hiddenKeys: [password]
console:
  capacity: 50
  attachTo: [default, http]
`)

		// Act
		cfg, err := load(Production, []string{dir})

		// Assert
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "com.example.shop", cfg.Logging.Subsystem)
		assert.Equal(t, 250*time.Millisecond, cfg.Logging.SinkTimeout)
		assert.Equal(t, 50, cfg.Console.Capacity)
		assert.Equal(t, []string{"default", "http"}, cfg.Console.AttachTo)

		severities, err := cfg.Logging.Severities(cfg.Environment)
		require.NoError(t, err)
		assert.Equal(t, []entity.Severity{entity.SeverityWarning, entity.SeverityError, entity.SeverityFault}, severities)

		policy, err := cfg.Logging.Policy()
		require.NoError(t, err)
		assert.Equal(t, entity.MetadataPretty, policy.MetadataStyle)
		assert.Equal(t, entity.VisibilityExclude, policy.Visibility.Mode())
		assert.Equal(t, []string{"password"}, policy.Visibility.Keys())
		assert.False(t, policy.IncludeSourceLocation)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Development, `
server:
  port: 9000
console:
  capacity: 10
`)
		t.Setenv("LOL_SERVER_PORT", "9100")
		t.Setenv("LOL_CONSOLE_CAPACITY", "20")
		t.Setenv("LOL_SEVERITIES", "info, fault")
		t.Setenv("LOL_CONSOLE_ATTACH_TO", "default, db")

		// Act
		cfg, err := load(Development, []string{dir})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.Server.Port)
		assert.Equal(t, 20, cfg.Console.Capacity)
		assert.Equal(t, []string{"default", "db"}, cfg.Console.AttachTo)
		severities, err := cfg.Logging.Severities(cfg.Environment)
		require.NoError(t, err)
		assert.Equal(t, []entity.Severity{entity.SeverityInfo, entity.SeverityFault}, severities)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"bad severity", "logging:\n  severities: loud\n"},
			{"bad style", "logging:\n  format:\n    metadataStyle: fancy\n"},
			{"both key lists", "logging:\n  format:\n    visibleKeys: [a]\n    hiddenKeys: [b]\n"},
			{"zero capacity", "console:\n  capacity: -1\n"},
			{"bad diagnostics level", "diagnostics:\n  level: chatty\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				dir := writeConfig(t, Test, tt.body)

				cfg, err := load(Test, []string{dir})

				assert.Error(t, err)
				assert.Nil(t, cfg)
			})
		}
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("should default to development", func(t *testing.T) {
		t.Setenv("LOL_ENV", "")

		assert.Equal(t, Development, getEnvironment())
	})

	t.Run("should lowercase the configured environment", func(t *testing.T) {
		t.Setenv("LOL_ENV", "Production")

		assert.Equal(t, Production, getEnvironment())
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("LOL_TEST_INT", "12")
	t.Setenv("LOL_TEST_BAD", "twelve")

	assert.Equal(t, 12, getEnvInt("LOL_TEST_INT", 0))
	assert.Equal(t, 7, getEnvInt("LOL_TEST_BAD", 7))
	assert.Equal(t, 3, getEnvInt("LOL_TEST_MISSING", 3))
}
