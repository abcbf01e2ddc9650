package sitekit

import "github.com/alnah/go-sitekit/internal/config"

// Config holds site settings. See DefaultConfig for defaults.
type Config = config.Config

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}

// LoadConfig loads a config file by path, or by name from the current
// directory and the user config directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	return config.LoadConfig(nameOrPath)
}
