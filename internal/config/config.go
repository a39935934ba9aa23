// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath  string
	OutputDir     string
	LookupTimeout time.Duration
	NameCacheSize int
	DisableLookup bool
	NotifyTitle   string
	EnvFileLoaded string
}

// Default values
const (
	defaultLookupTimeout = 5 * time.Second
	defaultNameCacheSize = 1024
	defaultNotifyTitle   = "Screen Time"
)

// Environment variable names.
const (
	EnvDatabasePath  = "SCREENTIME_DB_PATH"
	EnvOutputDir     = "SCREENTIME_OUTPUT_DIR"
	EnvLookupTimeout = "SCREENTIME_LOOKUP_TIMEOUT"
	EnvNameCacheSize = "SCREENTIME_NAME_CACHE_SIZE"
	EnvDisableLookup = "SCREENTIME_DISABLE_LOOKUP"
	EnvNotifyTitle   = "SCREENTIME_NOTIFY_TITLE"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Variables already set in the environment win over .env files.
	var loaded string
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			loaded = path
			break
		}
	}

	cfg := &Config{
		DatabasePath:  getEnvString(EnvDatabasePath, getDefaultDatabasePath()),
		OutputDir:     getEnvString(EnvOutputDir, ""),
		LookupTimeout: getEnvDuration(EnvLookupTimeout, defaultLookupTimeout),
		NameCacheSize: getEnvInt(EnvNameCacheSize, defaultNameCacheSize),
		DisableLookup: getEnvBool(EnvDisableLookup, false),
		NotifyTitle:   getEnvString(EnvNotifyTitle, defaultNotifyTitle),
		EnvFileLoaded: loaded,
	}

	if cfg.LookupTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", EnvLookupTimeout, cfg.LookupTimeout)
	}
	if cfg.NameCacheSize <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvNameCacheSize, cfg.NameCacheSize)
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "screentime", ".env"),
			filepath.Join(home, ".screentime", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the well-known location of the Knowledge store.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "knowledgeC.db"
	}
	return filepath.Join(home, "Library", "Application Support", "Knowledge", "knowledgeC.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
