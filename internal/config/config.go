// Package config handles configuration for the abook CLI, including
// defaults, an optional JSON overlay, and environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the address book.
//
// Fields:
//   - DataDir: directory holding the three CSV stores.
//   - SessionTTL: how long a saved login stays valid.
//   - KeyFile: HMAC key for signing session tokens (created on first use).
//   - TokenFile: where the signed session token is kept between runs.
type Config struct {
	DataDir    string
	SessionTTL time.Duration
	KeyFile    string
	TokenFile  string
}

// Store file names inside DataDir.
const (
	UsersFile   = "users.csv"
	AddressFile = "address_book.csv"
	RecycleFile = "recycle_bin.csv"
)

// Dir returns the CLI's own config directory ($XDG_CONFIG_HOME/abook or
// ~/.config/abook).
func Dir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "abook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "abook")
}

// LoadDefaults populates Config with defaults: data next to the working
// directory, a 12-hour login, key and token under the config dir.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.SessionTTL = 12 * time.Hour
	c.KeyFile = filepath.Join(Dir(), "session.key")
	c.TokenFile = filepath.Join(Dir(), "token.json")
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional JSON file and finally from environment variables.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv overlays ABOOK_DATA_DIR and ABOOK_SESSION_TTL (a Go duration,
// e.g. "24h").
func parseEnv(cfg *Config) {
	if v := os.Getenv("ABOOK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ABOOK_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}
}
