package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/config"
	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrFilesFailed = errors.New("some files could not be processed")
)

// usageError wraps a flag parsing error so it maps to ExitUsage.
// flag.ErrHelp passes through untouched.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// hintFor returns actionable hints for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, sitekit.ErrNoContentDir):
		return hints.ForContentDir()
	case errors.Is(err, sitekit.ErrUnparseableDate):
		return hints.ForUnparseableDate()
	case errors.Is(err, os.ErrPermission):
		return hints.ForWritePermission()
	case errors.Is(err, config.ErrInvalidValue) && strings.Contains(err.Error(), "timezone"):
		return hints.ForTimezone()
	case errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForDateFormat(presetNames())
	}
	return ""
}

// presetNames returns the named date presets in sorted order.
func presetNames() []string {
	names := make([]string, 0, len(dateutil.DatePresets))
	for name := range dateutil.DatePresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
