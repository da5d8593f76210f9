// Package config loads and validates the golf trips server configuration from
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Round store backends selectable with ROUND_STORE.
const (
	RoundStorePostgres = "postgres"
	RoundStoreSQLite   = "sqlite"
	RoundStoreMemory   = "memory"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Always required: trips
	// and courses live in Postgres whatever ROUND_STORE says.
	DatabaseURL string

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel slog.Level

	// CORSOrigins defaults to the Vite dev server. CORS_ORIGINS takes a
	// comma-separated list.
	CORSOrigins []string

	// RoundStore picks the key-value backend under the round store.
	// Defaults to RoundStorePostgres.
	RoundStore string

	// SQLitePath is the database file used when RoundStore is RoundStoreSQLite.
	SQLitePath string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables.
// Every problem found is reported in one joined error.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RoundStore:  strings.ToLower(getEnv("ROUND_STORE", RoundStorePostgres)),
		SQLitePath:  getEnv("SQLITE_PATH", "rounds.db"),
	}

	var errs []error

	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("required environment variable not set: DATABASE_URL"))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch cfg.RoundStore {
	case RoundStorePostgres, RoundStoreSQLite, RoundStoreMemory:
	default:
		errs = append(errs, fmt.Errorf("ROUND_STORE must be one of %s, %s, %s; got %q",
			RoundStorePostgres, RoundStoreSQLite, RoundStoreMemory, cfg.RoundStore))
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be a positive integer"))
	}
	cfg.MaxBodyBytes = maxBody

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration"))
	}
	cfg.ShutdownTimeout = timeout

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
