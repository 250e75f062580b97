package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// fileConfig mirrors Config for the JSON overlay; absent fields keep their
// current values.
type fileConfig struct {
	DataDir    string `json:"data_dir"`
	SessionTTL string `json:"session_ttl"`
	KeyFile    string `json:"key_file"`
	TokenFile  string `json:"token_file"`
}

// parseJSON overlays values from ABOOK_CONFIG if set, otherwise from
// config.json in the config dir. A missing or malformed file is ignored.
func parseJSON(cfg *Config) {
	path := os.Getenv("ABOOK_CONFIG")
	if path == "" {
		path = filepath.Join(Dir(), "config.json")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.SessionTTL != "" {
		if d, err := time.ParseDuration(fc.SessionTTL); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}
	if fc.KeyFile != "" {
		cfg.KeyFile = fc.KeyFile
	}
	if fc.TokenFile != "" {
		cfg.TokenFile = fc.TokenFile
	}
}
