package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/config"
)

// dirTarget selects which config directory a positional argument overrides.
type dirTarget int

const (
	contentDirArg dirTarget = iota
	outputDirArg
)

// session is the resolved state shared by a single command run.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	opts   []sitekit.Option
}

// newLogger returns a text logger on w whose level follows --quiet and --verbose.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newSession loads .env, resolves the configuration and builds the library
// options for a command. At most one positional directory is accepted.
func newSession(f commonFlags, args []string, target dirTarget, env *Environment) (*session, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected at most one directory, got %d arguments", ErrUsage, len(args))
	}
	if err := loadDotEnv(env.DotEnv); err != nil {
		return nil, fmt.Errorf("loading %s: %w", env.DotEnv, err)
	}

	logger := newLogger(env.Stderr, f)
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(logger)
	logEnvOverrides(logger, envCfg)

	cfg, err := resolveConfig(f, envCfg)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		switch target {
		case contentDirArg:
			cfg.ContentDir = args[0]
		case outputDirArg:
			cfg.OutputDir = args[0]
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		opts: []sitekit.Option{
			sitekit.WithLogger(logger),
			sitekit.WithNow(env.Now),
			sitekit.WithLocation(loc),
			sitekit.WithExtensions(cfg.Extensions...),
		},
	}, nil
}

// resolveConfig loads the config file and applies env and flag overrides.
// An explicit --config or SITEKIT_CONFIG must exist; the default name is
// optional and falls back to built-in defaults.
func resolveConfig(f commonFlags, env *envConfig) (*config.Config, error) {
	name := f.config
	if name == "" {
		name = env.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
	} else {
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	applyEnvConfig(env, cfg)
	applyFlags(f, cfg)
	return cfg, nil
}

// applyFlags overwrites config values with the flags that were given.
func applyFlags(f commonFlags, cfg *config.Config) {
	if f.contentDir != "" {
		cfg.ContentDir = f.contentDir
	}
	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}
	if f.timezone != "" {
		cfg.Timezone = f.timezone
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
}
