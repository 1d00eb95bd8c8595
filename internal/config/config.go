// Package config loads the user configuration: default format,
// default time zone and named format presets. The file lives in the
// user config directory and is bootstrapped from an embedded template
// on first run. TEMPUS_* environment variables override file values.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tempus-cli/tempus/internal/errs"
	"github.com/tempus-cli/tempus/internal/pipeline"
)

const (
	appDir     = "tempus"
	configFile = "config.toml"
)

//go:embed template.toml
var template string

// Config is the in-memory user configuration.
type Config struct {
	// Format is the default output format or preset name.
	Format string
	// Timezone is an IANA identifier; empty means the system zone.
	Timezone string
	// Formats maps preset names to patterns.
	Formats map[string]string
}

// Load reads the effective configuration, creating the file from the
// embedded template if it does not exist yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errs.Systemf(errs.Config, "%v", err)
	}

	cfg := &Config{
		Format:   v.GetString("format"),
		Timezone: v.GetString("timezone"),
		Formats:  v.GetStringMapString("formats"),
	}

	// Environment overrides. Blank values are ignored so an empty
	// export does not wipe out a file setting.
	if s := strings.TrimSpace(os.Getenv("TEMPUS_FORMAT")); s != "" {
		cfg.Format = s
	}
	if s := strings.TrimSpace(os.Getenv("TEMPUS_TIMEZONE")); s != "" {
		cfg.Timezone = s
	}

	return cfg, nil
}

// Presets converts the [formats] table into pipeline presets.
func (c *Config) Presets() []pipeline.Preset {
	presets := make([]pipeline.Preset, 0, len(c.Formats))
	for name, format := range c.Formats {
		presets = append(presets, pipeline.Preset{Name: name, Format: format})
	}
	return presets
}

// Path resolves the absolute location of config.toml.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", errs.Systemf(errs.Config,
				"could not locate configuration directory: %v; set $XDG_CONFIG_HOME", err)
		}
		base = dir
	}
	return filepath.Join(base, appDir, configFile), nil
}

// ensureFile writes the template if path does not exist yet.
func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrapf(errs.IO, err, "create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return errs.Wrapf(errs.IO, err, "write default config: %v", err)
	}
	return nil
}
