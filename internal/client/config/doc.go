// Package config loads runtime configuration for the admin client CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (API_BASE_URL, ADMIN_DB_PATH, ADMIN_REQUEST_TIMEOUT,
//     ADMIN_LOG_LEVEL).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the admin API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds, 0 disables)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5001/api",
//	  "database_path": "adminclient.db",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
package config
