// Package logfields holds the canonical structured-log attribute keys.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFile       = "file"
	KeyField      = "field"
	KeyValue      = "value"
	KeyError      = "error"
	KeyTransform  = "transform"
	KeyFilter     = "filter"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyURL        = "url"
)

func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Field(name string) slog.Attr     { return slog.String(KeyField, name) }
func Value(v any) slog.Attr           { return slog.Any(KeyValue, v) }
func Transform(name string) slog.Attr { return slog.String(KeyTransform, name) }
func Filter(name string) slog.Attr    { return slog.String(KeyFilter, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Since(start time.Time) slog.Attr { return DurationMS(float64(time.Since(start).Microseconds()) / 1000) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
