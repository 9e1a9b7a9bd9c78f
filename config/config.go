// Package config loads and persists the shim's JSON configuration file and
// supports hot-reloading it, so logging toggles can be flipped on a running
// process without a restart.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/petervdpas/rtcshim/internal/util"
	"github.com/petervdpas/rtcshim/logx"
)

type Config struct {
	Logging Logging `json:"logging"`
}

type Logging struct {
	// Subsystem is the go-log subsystem name the shim logger writes to.
	Subsystem string `json:"subsystem"`

	// EnableLog turns diagnostic logging on. Off by default.
	EnableLog bool `json:"enable_log"`

	// DisableWarnings turns deprecation warnings off. On by default.
	DisableWarnings bool `json:"disable_warnings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Subsystem: "rtcshim",
		},
	}
}

// Validate checks the config for values that cannot work.
func (c *Config) Validate() error {
	if c.Logging.Subsystem == "" {
		return fmt.Errorf("logging.subsystem must not be empty")
	}
	return nil
}

// Apply pushes the logging toggles into l through its setters.
func (lc Logging) Apply(l *logx.Logger) error {
	if _, err := l.SetDisableLog(!lc.EnableLog); err != nil {
		return err
	}
	if _, err := l.SetDisableWarnings(lc.DisableWarnings); err != nil {
		return err
	}
	return nil
}

// Load reads and validates the config at path. Missing JSON fields keep
// their defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	b = util.StripBOM(b)

	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save validates and writes cfg to path.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return util.WriteJSONFile(path, cfg)
}

// Ensure loads the config if the file exists; otherwise it creates one with
// defaults. Returns (cfg, createdNew, err).
func Ensure(path string) (Config, bool, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := Load(path)
		return cfg, false, err
	} else if !os.IsNotExist(err) {
		return Config{}, false, err
	}

	cfg := Default()
	if err := Save(path, cfg); err != nil {
		return Config{}, false, fmt.Errorf("create default config: %w", err)
	}
	return cfg, true, nil
}
