package sitekit

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/logfields"
	"github.com/alnah/go-sitekit/internal/pipeline"
)

// DefaultBaseURL resolves absolute URLs when the config has no baseURL.
const DefaultBaseURL = "http://localhost:8080"

// Transform names, in execution order.
const (
	TransformCaptions      = "captions"
	TransformRelativePaths = "relativePaths"
)

// longDateLayout renders the "date" filter: "March 5, 2024, 2:30 PM".
const longDateLayout = "January 2, 2006, 3:04 PM"

// site carries the resolved settings the registered functions close over.
type site struct {
	cfg        *Config
	loc        *time.Location
	normalizer *dateutil.Normalizer
	now        func() time.Time
	logger     *slog.Logger
	captioner  *pipeline.Captioner
	rewriter   *pipeline.PathRewriter
	ignored    map[string]bool
}

// Setup registers the site's filters, collections and transforms into reg.
// A nil cfg means DefaultConfig. Registration stops at the first error,
// typically ErrDuplicateName when reg already holds one of the names.
func Setup(reg *Registry, cfg *Config, opts ...Option) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o := newOptions(opts)

	loc := o.location
	if loc == nil {
		var err error
		if loc, err = cfg.Location(); err != nil {
			return err
		}
	}

	s := &site{
		cfg:        cfg,
		loc:        loc,
		normalizer: dateutil.NewNormalizer(loc),
		now:        o.now,
		logger:     o.logger,
		captioner:  &pipeline.Captioner{Lookback: cfg.CaptionLookback},
		rewriter:   &pipeline.PathRewriter{AssetDirs: trimSlashes(cfg.AssetDirs)},
		ignored:    make(map[string]bool, len(cfg.IgnoredTags)),
	}
	for _, tag := range cfg.IgnoredTags {
		s.ignored[strings.ToLower(tag)] = true
	}

	filters := []struct {
		name string
		fn   FilterFunc
	}{
		{"readableDate", s.readableDate},
		{"htmlDateString", s.htmlDateString},
		{"formatDate", s.formatDate},
		{"date", s.longDate},
		{"excerpt", s.excerpt},
		{"firstParagraphs", s.firstParagraphs},
		{"needsExpand", s.needsExpand},
		{"videoPlatform", videoPlatform},
		{"videoID", videoID},
		{"videoEmbed", videoEmbed},
		{"videoPoster", videoPoster},
		{"url", s.url},
		{"absoluteURL", s.absoluteURL},
		{"slugify", slugify},
		{"titleCase", titleCase},
		{"filterTagList", s.filterTagList},
		{"head", head},
		{"firstImage", firstImage},
		{"toc", toc},
	}
	for _, f := range filters {
		if err := reg.AddFilter(f.name, f.fn); err != nil {
			return err
		}
	}

	if err := reg.AddCollection("posts", Posts); err != nil {
		return err
	}
	if err := reg.AddCollection("all", func(items []*ContentItem) []*ContentItem { return items }); err != nil {
		return err
	}

	if err := reg.AddTransform(TransformCaptions, s.captions); err != nil {
		return err
	}
	return reg.AddTransform(TransformRelativePaths, s.relativePaths)
}

// ---------------------------------------------------------------------------
// Dates
// ---------------------------------------------------------------------------

// date normalizes v, substituting the current time when it is unparseable.
func (s *site) date(filter string, v any) time.Time {
	t, err := s.normalizer.Normalize(v)
	if err != nil {
		s.logger.Warn("unparseable date, using current time",
			logfields.Filter(filter), logfields.Value(v), logfields.Error(err))
		return s.now()
	}
	return t
}

func (s *site) readableDate(v any, args ...any) (any, error) {
	return dateutil.Format(s.date("readableDate", v), s.cfg.DateFormat, s.loc)
}

func (s *site) htmlDateString(v any, args ...any) (any, error) {
	return dateutil.Format(s.date("htmlDateString", v), "iso", s.loc)
}

func (s *site) formatDate(v any, args ...any) (any, error) {
	pattern := s.cfg.DateFormat
	if len(args) > 0 {
		pattern = toString(args[0])
	}
	return dateutil.Format(s.date("formatDate", v), pattern, s.loc)
}

func (s *site) longDate(v any, args ...any) (any, error) {
	return s.date("date", v).In(s.loc).Format(longDateLayout), nil
}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

func (s *site) captions(content, outputPath string) (string, error) {
	if !isHTMLOutput(outputPath) {
		return content, nil
	}
	return s.captioner.CaptionImages(content), nil
}

func (s *site) relativePaths(content, outputPath string) (string, error) {
	if !isHTMLOutput(outputPath) {
		return content, nil
	}
	return s.rewriter.RewriteRootRelative(content, s.siteRelative(outputPath)), nil
}

// siteRelative strips the output directory so depth counts from the site root.
func (s *site) siteRelative(outputPath string) string {
	out := strings.Trim(path.Clean(strings.ReplaceAll(s.cfg.OutputDir, `\`, "/")), "/")
	p := strings.TrimPrefix(outputPath, "./")
	if out != "" && out != "." {
		if p == out {
			return ""
		}
		p = strings.TrimPrefix(p, out+"/")
		p = strings.TrimPrefix(p, "/"+out+"/")
	}
	return p
}

func isHTMLOutput(outputPath string) bool {
	ext := strings.ToLower(path.Ext(outputPath))
	return ext == ".html" || ext == ".htm"
}

func trimSlashes(dirs []string) []string {
	out := make([]string, len(dirs))
	for i, d := range dirs {
		out[i] = strings.Trim(d, "/")
	}
	return out
}

// ---------------------------------------------------------------------------
// Argument helpers
// ---------------------------------------------------------------------------

// toString renders a filter value as text. Nil is "".
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// intArg returns args[i] as an int, or def when absent.
func intArg(args []any, i, def int) (int, error) {
	if i >= len(args) || args[i] == nil {
		return def, nil
	}
	switch n := args[i].(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		var v int
		if _, err := fmt.Sscan(n, &v); err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, n)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidArgument, args[i])
	}
}
