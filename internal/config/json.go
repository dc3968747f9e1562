package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/meeplelog/meeplelog/internal/flagx"
	"github.com/meeplelog/meeplelog/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "5m" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	Env            string         `json:"env"`
	ListenAddr     string         `json:"listen_addr"`
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CacheTTL       timex.Duration `json:"cache_ttl"`
	RedisAddr      string         `json:"redis_addr"`
	Language       string         `json:"language"`
	LogLevel       string         `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable file or
// invalid JSON panics: a requested config file that cannot be applied is a
// startup error, not something to limp past.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.Env = c.Env
	config.ListenAddr = c.ListenAddr
	config.APIBaseURL = c.APIBaseURL
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	config.CacheTTL = time.Duration(c.CacheTTL.Duration)
	config.RedisAddr = c.RedisAddr
	config.Language = c.Language
	config.LogLevel = c.LogLevel
}
