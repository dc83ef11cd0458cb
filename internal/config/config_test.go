package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every value set
		path := writeConfig(t, "log-level: debug\nconsole:\n  prompt: \"sixes> \"\n  hide-legal-moves: true\n"+
			"telemetry:\n  endpoint: http://localhost:4318\n  service-name: sixes-test\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "sixes> ", conf.Console.Prompt)
		assert.True(t, conf.Console.HideLegalMoves)
		assert.Equal(t, "http://localhost:4318", conf.Telemetry.Endpoint)
		assert.Equal(t, "sixes-test", conf.Telemetry.ServiceName)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "> ", conf.Console.Prompt)
		assert.False(t, conf.Console.HideLegalMoves)
		assert.Empty(t, conf.Telemetry.Endpoint)
		assert.Equal(t, "sixes", conf.Telemetry.ServiceName)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an overriding variable
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("LOG_LEVEL", "error")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
