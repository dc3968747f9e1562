package config

import (
	"flag"
	"os"
	"time"

	"github.com/meeplelog/meeplelog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-b string   backend base URL
//	-t int      backend request timeout, seconds
//	-l int      cache TTL, seconds
//	-r string   redis address (empty selects the in-memory store)
//	-g string   language tag (e.g., "en", "nl")
//	-v string   log level
//	-e string   environment name
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the config-file flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-t", "-l", "-r", "-g", "-v", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to serve pages on")
	fs.StringVar(&config.APIBaseURL, "b", config.APIBaseURL, "backend base URL")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	cacheTTL := fs.Int("l", int(config.CacheTTL.Seconds()), "cache TTL (in seconds)")

	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.Language, "g", config.Language, "language tag")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.Env, "e", config.Env, "environment name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	config.CacheTTL = time.Duration(*cacheTTL) * time.Second
}
