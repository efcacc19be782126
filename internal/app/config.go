package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/utc/internal/config"
	"github.com/vk/utc/internal/zulu"
)

// Config holds everything an App needs for a single invocation. Nil
// Time and Meridian mean the user supplied no positional arguments and
// the host clock decides. Empty string fields mean "unset" and fall
// back to the defaults file, then to built-ins.
type Config struct {
	Time       *zulu.ClockTime
	Meridian   *zulu.Meridian
	TimeFormat string
	ConfigPath string
	LogFormat  string
	LogLevel   string
}

// NewConfig validates cfg and returns it. Empty log settings are
// allowed; non-empty ones must name a known level and format.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat != "" && cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}

// withDefaults fills unset fields from the defaults-file model. Flags
// always win over file values.
func (c *Config) withDefaults(m *config.Model) Config {
	merged := *c
	if merged.TimeFormat == "" {
		merged.TimeFormat = m.TimeFormat
	}
	if merged.LogLevel == "" {
		merged.LogLevel = m.LogLevel
	}
	if merged.LogFormat == "" {
		merged.LogFormat = m.LogFormat
	}
	return merged
}

// defaultConfigPath resolves the standard defaults-file location,
// honoring the platform config directory ($XDG_CONFIG_HOME on Linux).
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "utc", "utc.hcl")
}
