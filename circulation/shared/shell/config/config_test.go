package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/config"
)

func Test_LoadFrom_UsesDefaults(t *testing.T) {
	// act
	cfg, err := config.LoadFrom(givenArgs(t, ""), givenEnv(nil))

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 1, cfg.FinePerDay)
	assert.False(t, cfg.ObservabilityEnabled())
}

func Test_LoadFrom_AppliesPrecedence(t *testing.T) {
	// arrange
	dotEnv := "CIRCULATION_FINE_PER_DAY=2\nCIRCULATION_LOG_FORMAT=json\nCIRCULATION_SERVICE_NAME=from-dotenv\n"
	env := map[string]string{"CIRCULATION_FINE_PER_DAY": "3", "CIRCULATION_LOG_LEVEL": "debug"}
	args := append(givenArgs(t, dotEnv), "-fine-per-day", "5")

	// act
	cfg, err := config.LoadFrom(args, givenEnv(env))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.FinePerDay, "flag wins over env and .env")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel, "env wins over default")
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat, ".env wins over default")
	assert.Equal(t, "from-dotenv", cfg.ServiceName)
}

func Test_LoadFrom_FailsForInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "fine per day not a number", env: map[string]string{"CIRCULATION_FINE_PER_DAY": "one"}},
		{name: "negative fine per day", env: map[string]string{"CIRCULATION_FINE_PER_DAY": "-1"}},
		{name: "unknown log level", env: map[string]string{"CIRCULATION_LOG_LEVEL": "loud"}},
		{name: "unknown log format", env: map[string]string{"CIRCULATION_LOG_FORMAT": "xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(givenArgs(t, ""), givenEnv(tc.env))

			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func Test_LoadFrom_FailsForUnknownFlags(t *testing.T) {
	_, err := config.LoadFrom([]string{"-unknown"}, givenEnv(nil))

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func Test_NewLogger_RespectsFormatAndLevel(t *testing.T) {
	// arrange
	buf := &bytes.Buffer{}
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogLevel = slog.LevelWarn
	logger := config.NewLogger(cfg, buf)

	// act
	logger.Info("hidden")
	logger.Warn("shown", "book_code", "B1")

	// assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"book_code":"B1"`)
}

func Test_NewContextualLogger_WritesToHandler_WhenObservabilityIsDisabled(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := config.NewContextualLogger(config.Default(), buf)
	logger.Slog().Info("checked out")

	assert.Contains(t, buf.String(), "checked out")
}

// givenArgs points -env-file to a temp file with the given content, or to a missing file if content is empty.
func givenArgs(t *testing.T, dotEnvContent string) []string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if dotEnvContent != "" {
		require.NoError(t, os.WriteFile(path, []byte(dotEnvContent), 0o600))
	}

	return []string{"-env-file", path}
}

func givenEnv(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}
