package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5001/api", c.APIBaseURL)
	assert.Equal(t, "adminclient.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5001/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "http://json:1/api",
		"database_path":   "json.db",
		"request_timeout": "5s",
		"log_level":       "warn",
	})
	t.Setenv("API_BASE_URL", "http://env:2/api")
	t.Setenv("ADMIN_LOG_LEVEL", "error")

	os.Args = []string{"testbin", "-c", path, "-l", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "http://env:2/api", cfg.APIBaseURL, "env overrides json")
	assert.Equal(t, "json.db", cfg.DatabasePath, "json overrides defaults")
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel, "flags override env")
}
