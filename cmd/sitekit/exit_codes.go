package main

import (
	"errors"
	"os"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/config"
	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/fileutil"
)

// Exit codes for sitekit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, or some files failed
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Directory not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, sitekit.ErrNoContentDir) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
