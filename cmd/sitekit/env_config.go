package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-sitekit/internal/config"
	"github.com/alnah/go-sitekit/internal/logfields"
)

// envPrefix namespaces every variable the CLI reads.
const envPrefix = "SITEKIT_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // SITEKIT_CONFIG: config file name or path
	ContentDir string // SITEKIT_CONTENT_DIR: content directory
	OutputDir  string // SITEKIT_OUTPUT_DIR: built site directory
	Timezone   string // SITEKIT_TIMEZONE: IANA zone for dates
	BaseURL    string // SITEKIT_BASE_URL: absolute site URL
}

// knownEnvVars lists valid SITEKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEKIT_CONFIG":      true,
	"SITEKIT_CONTENT_DIR": true,
	"SITEKIT_OUTPUT_DIR":  true,
	"SITEKIT_TIMEZONE":    true,
	"SITEKIT_BASE_URL":    true,
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("SITEKIT_CONFIG"),
		ContentDir: os.Getenv("SITEKIT_CONTENT_DIR"),
		OutputDir:  os.Getenv("SITEKIT_OUTPUT_DIR"),
		Timezone:   os.Getenv("SITEKIT_TIMEZONE"),
		BaseURL:    os.Getenv("SITEKIT_BASE_URL"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized SITEKIT_* variables.
// Helps catch typos like SITEKIT_CONTENTDIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", slog.String("name", name))
		}
	}
}

// applyEnvConfig overwrites config values with the environment variables
// that are set. Flags are applied afterwards, so the resulting precedence is
// flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.ContentDir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.OutputDir = env.OutputDir
	}
	if env.Timezone != "" {
		cfg.Timezone = env.Timezone
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
}

// logEnvOverrides reports the recognized variables that are set, at debug level.
func logEnvOverrides(logger *slog.Logger, env *envConfig) {
	vars := []struct{ name, value string }{
		{"SITEKIT_CONFIG", env.ConfigPath},
		{"SITEKIT_CONTENT_DIR", env.ContentDir},
		{"SITEKIT_OUTPUT_DIR", env.OutputDir},
		{"SITEKIT_TIMEZONE", env.Timezone},
		{"SITEKIT_BASE_URL", env.BaseURL},
	}
	for _, v := range vars {
		if v.value != "" {
			logger.Debug("environment override", slog.String("name", v.name), logfields.Value(v.value))
		}
	}
}
