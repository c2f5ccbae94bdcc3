// Package config loads the server's runtime configuration.
//
// The server deliberately exposes a single knob: LOG_LEVEL. Everything
// else (tool behavior, clamp bounds, delay range) is fixed so that the
// harness behaves identically in every environment it is dropped into.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the resolved runtime settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error. Anything else
	// falls back to info at logger construction time.
	LogLevel string
}

// Load resolves configuration from the environment. A .env file in the
// working directory (or any parent up to the module root) is loaded
// first if present, then real environment variables take precedence.
func Load() *Config {
	loadEnvFile()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")

	return &Config{
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}
}

// loadEnvFile loads the first .env found walking up from cwd. Missing
// files are fine — containers normally configure via real env vars.
func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}
