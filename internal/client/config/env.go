package config

import "os"

// parseEnv overlays Config fields from environment variables. Empty values
// leave the current value in place.
//
// Recognized variables:
//
//	POS_SERVER_URL  base URL of the backend (e.g., "http://localhost:5000")
//	POS_DB_PATH     path of the local session database
func parseEnv(config *Config) {
	if v := os.Getenv("POS_SERVER_URL"); v != "" {
		config.ServerURL = v
	}
	if v := os.Getenv("POS_DB_PATH"); v != "" {
		config.DatabasePath = v
	}
}
