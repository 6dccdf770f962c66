// Package config loads runtime settings for the Cantina POS terminal client.
package config

// Config holds runtime settings for the POS client.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - DatabasePath: path of the local sqlite file holding the session.
type Config struct {
	ServerURL    string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.DatabasePath = "pos.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
