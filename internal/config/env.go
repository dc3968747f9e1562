package config

import (
	"os"
	"time"
)

// parseEnv overlays MEEPLELOG_* environment variables onto the Config.
// Unset variables leave the existing value in place; malformed durations
// are ignored rather than failing startup.
func parseEnv(config *Config) {
	if v := os.Getenv("MEEPLELOG_ENV"); v != "" {
		config.Env = v
	}
	if v := os.Getenv("MEEPLELOG_LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("MEEPLELOG_API_BASE_URL"); v != "" {
		config.APIBaseURL = v
	}
	if v := os.Getenv("MEEPLELOG_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
	if v := os.Getenv("MEEPLELOG_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.CacheTTL = d
		}
	}
	if v := os.Getenv("MEEPLELOG_REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("MEEPLELOG_LANGUAGE"); v != "" {
		config.Language = v
	}
	if v := os.Getenv("MEEPLELOG_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}
