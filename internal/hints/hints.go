// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForContentDir returns hints for a missing or unreadable content directory.
// Suggests SITEKIT_CONTENT_DIR only when it is not already set.
func ForContentDir() string {
	hints := []string{"pass the directory as an argument or use --content-dir"}
	if os.Getenv("SITEKIT_CONTENT_DIR") == "" {
		hints = append(hints, "set SITEKIT_CONTENT_DIR")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (under a sitekit directory) to suggest
	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == "sitekit" {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnparseableDate returns a hint listing date shapes that always parse.
func ForUnparseableDate() string {
	return format(`use a form like "2024-03-05", "2024-03-05 14:30 PST" or "March 5, 2024"`)
}

// ForTimezone returns a hint for an unknown timezone name.
func ForTimezone() string {
	return format(`use an IANA zone name such as "UTC" or "Europe/Paris"`)
}

// ForDateFormat returns hints listing the named date presets.
func ForDateFormat(presets []string) string {
	if len(presets) == 0 {
		return ""
	}
	return format("available presets: " + strings.Join(presets, ", ") + "; escape literal text with [brackets]")
}

// ForWritePermission returns hints for files that could not be replaced.
func ForWritePermission() string {
	return format("check the file and its directory are writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
