// Package config loads the app's runtime configuration from a TOML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/meridianbank/navkit/pkg/navkit/constants"
	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Scheme        string `toml:"scheme"`          // deep-link scheme, e.g. "bankapp"
	DefaultTab    string `toml:"default_tab"`     // tab shown after launch and logout
	Locale        string `toml:"locale"`          // display locale for screen titles
	LogPath       string `toml:"log_path"`        // full log file path; empty uses logs/bankapp.log
	LogLevel      string `toml:"log_level"`       // debug, info, warn, error
	KeychainDir   string `toml:"keychain_dir"`    // directory of the on-device token store
	NavDepthLimit int    `toml:"nav_depth_limit"` // max pushes on one feature stack
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scheme:        constants.DefaultScheme,
		DefaultTab:    route.TabHome.String(),
		Locale:        constants.DefaultLocale,
		LogLevel:      "info",
		NavDepthLimit: constants.DefaultNavDepthLimit,
	}
}

// Load reads a TOML config file and applies environment overrides on top.
// A missing file is not an error: defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.SchemeEnvVar); v != "" {
		c.Scheme = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(constants.KeychainDirEnvVar); v != "" {
		c.KeychainDir = v
	}
}

func (c *Config) validate() error {
	if _, ok := route.TabFromSegment(c.DefaultTab); !ok {
		return fmt.Errorf("config: unknown default_tab %q", c.DefaultTab)
	}
	if c.NavDepthLimit < 1 {
		return fmt.Errorf("config: nav_depth_limit must be positive, got %d", c.NavDepthLimit)
	}
	return nil
}

// Tab returns the configured default tab.
func (c Config) Tab() route.Tab {
	t, _ := route.TabFromSegment(c.DefaultTab)
	return t
}

// String renders the effective config for startup logging. No secrets live
// in the config, so the full value is loggable.
func (c Config) String() string {
	return "scheme=" + c.Scheme +
		" default_tab=" + c.DefaultTab +
		" locale=" + c.Locale +
		" log_level=" + c.LogLevel +
		" nav_depth_limit=" + strconv.Itoa(c.NavDepthLimit)
}
