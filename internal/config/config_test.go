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

	assert.Equal(t, c.Env, "development")
	assert.Equal(t, c.ListenAddr, ":8080")
	assert.Equal(t, c.APIBaseURL, "http://localhost:9000")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
	assert.Equal(t, c.CacheTTL, 5*time.Minute)
	assert.Equal(t, c.RedisAddr, "")
	assert.Equal(t, c.Language, "en")
	assert.Equal(t, c.LogLevel, "info")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, c.ListenAddr, ":8080")
	assert.Equal(t, c.APIBaseURL, "http://localhost:9000")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
	assert.Equal(t, c.CacheTTL, 5*time.Minute)
}

func TestParseEnv(t *testing.T) {
	t.Run("set variables overlay", func(t *testing.T) {
		t.Setenv("MEEPLELOG_LISTEN_ADDR", ":9999")
		t.Setenv("MEEPLELOG_CACHE_TTL", "90s")
		t.Setenv("MEEPLELOG_REDIS_ADDR", "localhost:6379")

		var c Config
		c.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, ":9999", c.ListenAddr)
		assert.Equal(t, 90*time.Second, c.CacheTTL)
		assert.Equal(t, "localhost:6379", c.RedisAddr)
		assert.Equal(t, "http://localhost:9000", c.APIBaseURL)
	})

	t.Run("malformed duration keeps default", func(t *testing.T) {
		t.Setenv("MEEPLELOG_CACHE_TTL", "not-a-duration")

		var c Config
		c.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, 5*time.Minute, c.CacheTTL)
	})
}
