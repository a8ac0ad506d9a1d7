package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig mirrors Config for environment variables. Pointer fields tell
// "unset" apart from an explicit zero.
type EnvConfig struct {
	APIBaseURL     string         `envconfig:"API_BASE_URL"`
	DatabasePath   string         `envconfig:"ADMIN_DB_PATH"`
	RequestTimeout *time.Duration `envconfig:"ADMIN_REQUEST_TIMEOUT"`
	LogLevel       string         `envconfig:"ADMIN_LOG_LEVEL"`
}

// parseEnv overlays cfg with whatever environment variables are set.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process("", &ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
