package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/common"
)

// Config holds runtime settings for the admin client.
//
// Fields:
//   - APIBaseURL: root of the admin HTTP API, e.g. http://localhost:5001/api.
//   - DatabasePath: SQLite file holding durable client state (the token).
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.DatabasePath = "adminclient.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
