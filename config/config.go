// Package config reads the service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string
	// Env selects logger mode and gin mode ("development" or "production").
	Env string
	// GeminiAPIKey may be empty; the service then runs on fallback responses.
	GeminiAPIKey string
	// Model is the generative model name.
	Model string
	// DatabasePath, when set, switches the store from memory to SQLite.
	DatabasePath string
	// BaseURL overrides the request host in generated integration snippets.
	BaseURL string
	// GenTimeout bounds each outbound generation call.
	GenTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Addr:         getenv("LUMA_ADDR", ":5000"),
		Env:          getenv("LUMA_ENV", "development"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        getenv("LUMA_MODEL", "gemini-2.5-flash"),
		DatabasePath: os.Getenv("LUMA_DB"),
		BaseURL:      os.Getenv("LUMA_BASE_URL"),
		GenTimeout:   15 * time.Second,
	}
	if secs, err := strconv.Atoi(os.Getenv("LUMA_GEN_TIMEOUT")); err == nil && secs > 0 {
		cfg.GenTimeout = time.Duration(secs) * time.Second
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
