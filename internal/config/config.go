// Package config loads the server configuration: the ClickUp API token, the
// workspace (team) the server is rooted at, and operational knobs. Values
// come from an optional JSON config file with environment variables taking
// precedence, so containerized deployments can run file-free.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable names. Env always wins over the config file.
const (
	EnvAPIToken = "CLICKUP_API_TOKEN"
	EnvTeamID   = "CLICKUP_TEAM_ID"
	EnvAPIURL   = "CLICKUP_API_URL"
	EnvLogLevel = "CLICKUP_LOG_LEVEL"
)

// Config holds everything the server needs at startup.
type Config struct {
	// APIToken is the ClickUp personal API token. Required.
	APIToken string `json:"api_token"`
	// TeamID is the workspace the hierarchy is rooted at. Required —
	// the root level resolves to this id without any lookup.
	TeamID string `json:"team_id"`
	// APIURL overrides the ClickUp API base URL (tests, proxies).
	APIURL string `json:"api_url,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the configuration defaults applied before file and env.
func Default() Config {
	return Config{LogLevel: "info"}
}

// DefaultPath returns the conventional config file location
// (e.g. ~/.config/clickup-mcp-server/config.json).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "clickup-mcp-server", "config.json"), nil
}

// Load reads the config file at path (missing file is not an error), then
// applies environment overrides. Call Validate before using the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
			// An empty file value means unset, same as the env overrides.
			if cfg.LogLevel == "" {
				cfg.LogLevel = Default().LogLevel
			}
		case os.IsNotExist(err):
			// No file — env-only configuration.
		default:
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.APIToken = v
	}
	if v := os.Getenv(EnvTeamID); v != "" {
		c.TeamID = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return errors.New("missing ClickUp API token: set " + EnvAPIToken + " or api_token in the config file")
	}
	if c.TeamID == "" {
		return errors.New("missing workspace id: set " + EnvTeamID + " or team_id in the config file")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
