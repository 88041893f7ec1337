package config

import (
	"os"
	"time"
)

// Config carries process-wide settings, sourced from the environment with
// development defaults. Entrypoints load .env first and may override
// individual fields from flags.
type Config struct {
	HTTPAddr       string
	StoreURI       string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// Load reads settings from the environment.
func Load() Config {
	return Config{
		HTTPAddr:       envOr("MCP_HTTP_ADDR", ":3333"),
		StoreURI:       envOr("DOCSTORE_URI", "mongodb://localhost:27017"),
		ConnectTimeout: durationOr("DOCSTORE_CONNECT_TIMEOUT", 10*time.Second),
		QueryTimeout:   durationOr("DOCSTORE_QUERY_TIMEOUT", 15*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
