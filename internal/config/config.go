// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/pipeline"
	"github.com/alnah/go-sitekit/internal/textutil"
	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "sitekit"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length and range limits.
const (
	MaxPathLength       = 4096
	MaxURLLength        = 2048 // Browser limit
	MaxTimezoneLength   = 64   // "America/Argentina/ComodRivadavia"
	MaxTagLength        = 100
	MaxExcerptLength    = 10000
	MaxParagraphs       = 100
	MaxCaptionLookback  = 1 << 16
	MaxListEntries      = 100
	maxAssetDirNameSize = 255
)

// Config holds all site settings.
type Config struct {
	ContentDir      string   `yaml:"contentDir"`      // Markdown sources (default "content")
	OutputDir       string   `yaml:"outputDir"`       // Built site (default "_site")
	Extensions      []string `yaml:"extensions"`      // Content file extensions
	Timezone        string   `yaml:"timezone"`        // IANA name; zone-less dates are read in it
	DateFormat      string   `yaml:"dateFormat"`      // Token pattern or preset for formatDate
	ExcerptLength   int      `yaml:"excerptLength"`   // Characters, ellipsis excluded
	Paragraphs      int      `yaml:"paragraphs"`      // Teaser paragraph count
	AssetDirs       []string `yaml:"assetDirs"`       // Top-level dirs whose hrefs are rewritten
	CaptionLookback int      `yaml:"captionLookback"` // Bytes scanned for an open <figure>
	BaseURL         string   `yaml:"baseURL"`         // "https://example.com"
	PathPrefix      string   `yaml:"pathPrefix"`      // "/blog/" when served from a subpath
	IgnoredTags     []string `yaml:"ignoredTags"`     // Dropped by filterTagList
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:      "content",
		OutputDir:       "_site",
		Extensions:      append([]string(nil), fileutil.DefaultExtensions...),
		Timezone:        "UTC",
		DateFormat:      "readable",
		ExcerptLength:   textutil.DefaultExcerptLength,
		Paragraphs:      pipeline.DefaultParagraphCount,
		AssetDirs:       append([]string(nil), pipeline.DefaultAssetDirs...),
		CaptionLookback: pipeline.DefaultCaptionLookback,
		PathPrefix:      "/",
		IgnoredTags:     []string{"all", "nav", "post", "posts"},
	}
}

// Location resolves Timezone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidValue, c.Timezone, err)
	}
	return loc, nil
}

// Validate checks field lengths, ranges and formats.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., library users, CLI overrides).
func (c *Config) Validate() error {
	if err := validateFieldLength("contentDir", c.ContentDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("outputDir", c.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("timezone", c.Timezone, MaxTimezoneLength); err != nil {
		return err
	}
	if err := validateFieldLength("baseURL", c.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("pathPrefix", c.PathPrefix, MaxURLLength); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(dateutil.ResolvePattern(c.DateFormat)); err != nil {
			return fmt.Errorf("dateFormat: %w", err)
		}
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions: at least one extension is required", ErrInvalidValue)
	}
	if _, err := fileutil.NormalizeExtensions(c.Extensions); err != nil {
		return fmt.Errorf("extensions: %w", err)
	}

	if err := validateRange("excerptLength", c.ExcerptLength, 1, MaxExcerptLength); err != nil {
		return err
	}
	if err := validateRange("paragraphs", c.Paragraphs, 1, MaxParagraphs); err != nil {
		return err
	}
	if err := validateRange("captionLookback", c.CaptionLookback, 0, MaxCaptionLookback); err != nil {
		return err
	}

	if len(c.AssetDirs) > MaxListEntries {
		return fmt.Errorf("%w: assetDirs: %d entries (max %d)", ErrInvalidValue, len(c.AssetDirs), MaxListEntries)
	}
	for i, dir := range c.AssetDirs {
		name := strings.Trim(dir, "/")
		if name == "" || strings.ContainsAny(name, "/\\\x00") {
			return fmt.Errorf("%w: assetDirs[%d]: %q must be a single directory name", ErrInvalidValue, i, dir)
		}
		if err := validateFieldLength(fmt.Sprintf("assetDirs[%d]", i), name, maxAssetDirNameSize); err != nil {
			return err
		}
	}

	if len(c.IgnoredTags) > MaxListEntries {
		return fmt.Errorf("%w: ignoredTags: %d entries (max %d)", ErrInvalidValue, len(c.IgnoredTags), MaxListEntries)
	}
	for i, tag := range c.IgnoredTags {
		if err := validateFieldLength(fmt.Sprintf("ignoredTags[%d]", i), tag, MaxTagLength); err != nil {
			return err
		}
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: baseURL: %q must be an absolute URL", ErrInvalidValue, c.BaseURL)
		}
	}
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		return fmt.Errorf("%w: pathPrefix: %q must start with /", ErrInvalidValue, c.PathPrefix)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateRange(fieldName string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s: must be between %d and %d, got %d", ErrInvalidValue, fieldName, lo, hi, value)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/sitekit/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "sitekit", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
