// Package dateutil normalizes loosely formatted date values and renders them
// with user-friendly format patterns.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no format is given.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"DDDD", "Monday"},
	{"MMM", "Jan"},
	{"DDD", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
	{"A", "PM"},
	{"Z", "Z07:00"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"readable": "MMM D, YYYY",
	"rfc3339":  "YYYY-MM-DD[T]HH:mm:ssZ",
	"time":     "HH:mm",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DDDD, DDD, DD, D, HH, hh, mm, ss, A, Z
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolvePattern returns the token pattern for a preset name (case-insensitive),
// or the pattern itself when it names no preset. Empty means DefaultDateFormat.
func ResolvePattern(pattern string) string {
	if pattern == "" {
		return DefaultDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(pattern)]; ok {
		return preset
	}
	return pattern
}

// Format renders t with a token pattern or preset name.
// If loc is non-nil, t is converted to loc first.
func Format(t time.Time, pattern string, loc *time.Location) (string, error) {
	goFmt, err := ParseDateFormat(ResolvePattern(pattern))
	if err != nil {
		return "", err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(goFmt), nil
}

// Canonical returns the representation written back into front matter:
// RFC 3339 in UTC, second precision.
func Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
