package config

import (
	"os"
	"strconv"
)

// Config holds runtime configuration for the HTTP front end.
type Config struct {
	HTTPBind       string // address:port for the HTTP server
	DefaultCycles  int    // source cycles simulated when the request omits them
	DefaultSamples int    // time samples when the request omits them
	MaxSamples     int    // upper bound on requested samples
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		HTTPBind:       getEnv("HTTP_BIND", ":8080"),
		DefaultCycles:  getEnvInt("DEFAULT_CYCLES", 3),
		DefaultSamples: getEnvInt("DEFAULT_SAMPLES", 1500),
		MaxSamples:     getEnvInt("MAX_SAMPLES", 200000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
