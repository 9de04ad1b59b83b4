package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the portfolio admin CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - TokenFile: path of the file the session token is kept in between runs.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	TokenFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5001"
	c.RequestTimeout = 10 * time.Second

	c.TokenFile = ".portfolio_token.json"
	if home, err := os.UserHomeDir(); err == nil {
		c.TokenFile = filepath.Join(home, c.TokenFile)
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
