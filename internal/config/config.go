// Package config handles configuration for the web component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the meeplelog web frontend.
//
// Fields:
//   - Env: deployment environment name ("development", "production").
//   - ListenAddr: bind address for the HTTP page/mutation endpoints.
//   - APIBaseURL: base URL of the collection backend.
//   - RequestTimeout: per-call timeout for backend requests.
//   - CacheTTL: staleness window for query-cache entries.
//   - RedisAddr: optional redis address; empty selects the in-memory store.
//   - Language: BCP 47 tag for localized formatting output.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	Env            string
	ListenAddr     string
	APIBaseURL     string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	RedisAddr      string
	Language       string
	LogLevel       string
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.Env = "development"
	c.ListenAddr = ":8080"
	c.APIBaseURL = "http://localhost:9000"
	c.RequestTimeout = 10 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.RedisAddr = ""
	c.Language = "en"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
