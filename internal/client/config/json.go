package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/adminclient/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. RequestTimeout is a
// Go duration string ("30s", "1m").
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	DatabasePath   string `json:"database_path"`
	RequestTimeout string `json:"request_timeout"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Only
// non-empty values are copied. It panics on read, unmarshal or duration
// errors, matching the behaviour of parseFlags.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
