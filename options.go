package sitekit

import (
	"context"
	"log/slog"
	"time"

	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/frontmatter"
	"github.com/alnah/go-sitekit/internal/pipeline"
)

// MarkdownRenderer renders a Markdown body to an HTML fragment.
type MarkdownRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// Option configures LoadContent, NormalizeDates and Setup.
type Option func(*options)

// options holds the settings shared by the package's entry points.
type options struct {
	logger     *slog.Logger
	now        func() time.Time
	location   *time.Location
	extensions []string
	dateField  string
	renderer   MarkdownRenderer
	dryRun     bool
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:     slog.Default(),
		now:        time.Now,
		extensions: fileutil.DefaultExtensions,
		dateField:  frontmatter.DefaultDateField,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.renderer == nil {
		o.renderer = pipeline.NewGoldmarkRenderer(pipeline.WithRawHTML())
	}
	return o
}

// defaultLocation returns the configured location, or UTC.
func (o *options) defaultLocation() *time.Location {
	if o.location != nil {
		return o.location
	}
	return time.UTC
}

// WithLogger sets the logger for warnings and progress. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNow sets the clock used when a date cannot be determined.
// Panics if fn is nil (programmer error).
func WithNow(fn func() time.Time) Option {
	if fn == nil {
		panic("sitekit: WithNow clock must not be nil")
	}
	return func(o *options) {
		o.now = fn
	}
}

// WithLocation sets the location for dates without an explicit zone and for
// date display. It overrides the config's timezone in Setup.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithExtensions sets the content file extensions ("md", ".markdown").
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		if len(exts) > 0 {
			o.extensions = exts
		}
	}
}

// WithDateField sets the front matter key holding the date. Default "date".
func WithDateField(name string) Option {
	return func(o *options) {
		if name != "" {
			o.dateField = name
		}
	}
}

// WithRenderer replaces the goldmark renderer used by LoadContent.
func WithRenderer(r MarkdownRenderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithDryRun makes NormalizeDates report the files it would rewrite
// without writing them.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}
