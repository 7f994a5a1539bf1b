package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/mwrona/textops/internal/fsutil"
)

const (
	// EnvConfigPath names an alternative settings file. When set, the file
	// must exist.
	EnvConfigPath = "TEXTOPS_CONFIG"

	// DefaultPath is the settings file picked up from the working directory.
	DefaultPath = "textops.hcl"

	EnvLogLevel  = "TEXTOPS_LOG_LEVEL"
	EnvLogFormat = "TEXTOPS_LOG_FORMAT"
)

// Settings hold the ambient tool configuration.
type Settings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Color     string `hcl:"color,optional"`
}

// Default returns the settings used when no file and no overrides are
// present: text logs at info level to stderr, report coloring decided by
// the terminal.
func Default() *Settings {
	return &Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     "auto",
	}
}

// Load resolves the settings file, decodes it over the defaults, and
// applies the environment overrides. A missing file at the default path is
// not an error; a missing file at an explicitly configured path is.
func Load() (*Settings, error) {
	settings := Default()

	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if !fsutil.Exists(path) {
		if explicit {
			return nil, fmt.Errorf("settings file %s does not exist", path)
		}

		slog.Debug("No settings file found, using defaults.", "path", path)
		applyEnvOverrides(settings)
		return settings, settings.validate()
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	if diags := gohcl.DecodeBody(file.Body, evalContext(), settings); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	slog.Debug("Settings file loaded.", "path", path)

	applyEnvOverrides(settings)

	return settings, settings.validate()
}

// evalContext exposes the process environment to the settings file as the
// env object, so values can be written as e.g. log_level = env.MY_LEVEL.
func evalContext() *hcl.EvalContext {
	envVars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envVars[pair[0]] = cty.StringVal(pair[1])
		}
	}

	vars := make(map[string]cty.Value)
	vars["env"] = cty.ObjectVal(envVars)

	return &hcl.EvalContext{Variables: vars}
}

func applyEnvOverrides(s *Settings) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		s.LogFormat = v
	}
}

func (s *Settings) validate() error {
	s.LogLevel = strings.ToLower(s.LogLevel)
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}

	s.LogFormat = strings.ToLower(s.LogFormat)
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", s.LogFormat)
	}

	s.Color = strings.ToLower(s.Color)
	switch s.Color {
	case "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("invalid color %q: must be 'auto', 'always', or 'never'", s.Color)
	}

	return nil
}
