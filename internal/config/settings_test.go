package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv keeps the surrounding environment out of a Load test.
func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "textops.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, Default(), settings)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "gone.hcl"))

	_, err := Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestLoad_ReadsSettingsFile(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `
log_level  = "debug"
log_format = "json"
log_file   = "textops.log"
color      = "never"
`)
	t.Setenv(EnvConfigPath, path)

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, "json", settings.LogFormat)
	require.Equal(t, "textops.log", settings.LogFile)
	require.Equal(t, "never", settings.Color)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `log_level = "warn"`)
	t.Setenv(EnvConfigPath, path)

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, "warn", settings.LogLevel)
	require.Equal(t, "text", settings.LogFormat)
	require.Empty(t, settings.LogFile)
	require.Equal(t, "auto", settings.Color)
}

func TestLoad_EnvInterpolation(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_LEVEL", "error")
	path := writeSettings(t, `log_level = env.MY_LEVEL`)
	t.Setenv(EnvConfigPath, path)

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, "error", settings.LogLevel)
}

func TestLoad_EnvOverridesBeatTheFile(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `
log_level  = "info"
log_format = "text"
`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, "json", settings.LogFormat)
}

func TestLoad_NormalizesCase(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `log_level = "DEBUG"`)
	t.Setenv(EnvConfigPath, path)

	settings, err := Load()

	require.NoError(t, err)
	require.Equal(t, "debug", settings.LogLevel)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "bad level", content: `log_level = "verbose"`},
		{name: "bad format", content: `log_format = "xml"`},
		{name: "bad color", content: `color = "sometimes"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvConfigPath, writeSettings(t, tc.content))

			_, err := Load()

			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid ")
		})
	}
}

func TestLoad_RejectsMalformedHCL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, writeSettings(t, `log_level = `))

	_, err := Load()

	require.Error(t, err)
}
