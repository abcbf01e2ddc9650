package sitekit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/logfields"
	"github.com/alnah/go-sitekit/internal/textutil"
)

// ContentItem is one source file with its metadata and rendered body.
type ContentItem struct {
	Path       string         // Source file path
	RelPath    string         // Slash-separated, relative to the content directory
	Slug       string         // "" for index files
	OutputPath string         // "posts/hello/index.html", relative to the output directory
	URL        string         // "/posts/hello/"
	Title      string         // Front matter title, else derived from the file name
	Tags       []string       // Front matter tags
	Date       time.Time      // Normalized date
	RawDate    any            // Front matter date as written; nil when absent
	Data       map[string]any // Full front matter
	Raw        string         // Markdown body without front matter
	HTML       string         // Rendered body
}

// HasTag reports whether the item carries tag (case-insensitive).
func (c *ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// LoadContent reads every content file under dir, parses its front matter
// (YAML, TOML or JSON), renders its body and resolves its date.
//
// A date that is missing or unparseable falls back to the file's
// modification time, then to the current time, with a warning. Files that
// cannot be read or rendered are logged and skipped. Items are returned in
// lexical path order.
func LoadContent(ctx context.Context, dir string, opts ...Option) ([]*ContentItem, error) {
	o := newOptions(opts)

	files, err := discover(dir, o.extensions)
	if err != nil {
		return nil, err
	}

	normalizer := dateutil.NewNormalizer(o.defaultLocation())
	items := make([]*ContentItem, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return items, err
		}
		item, err := loadItem(ctx, dir, file, normalizer, o)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return items, ctxErr
			}
			o.logger.Warn("skipping content file", logfields.File(file), logfields.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// discover maps a missing content directory to ErrNoContentDir.
func discover(dir string, extensions []string) ([]string, error) {
	files, err := fileutil.Discover(dir, extensions)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fileutil.ErrNotDirectory) {
			return nil, fmt.Errorf("%w: %s", ErrNoContentDir, dir)
		}
		return nil, err
	}
	return files, nil
}

func loadItem(ctx context.Context, dir, file string, normalizer *dateutil.Normalizer, o *options) (*ContentItem, error) {
	data, err := os.ReadFile(file) // #nosec G304 -- path comes from walking the content directory
	if err != nil {
		return nil, err
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		o.logger.Warn("could not parse front matter, treating as plain markdown",
			logfields.File(file), logfields.Error(err))
		body = data
		meta = map[string]any{}
	}

	rendered, err := o.renderer.Render(ctx, string(body))
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(dir, file)
	if err != nil {
		rel = filepath.Base(file)
	}
	rel = filepath.ToSlash(rel)

	item := &ContentItem{
		Path:    file,
		RelPath: rel,
		Data:    meta,
		Raw:     string(body),
		HTML:    rendered,
		RawDate: meta[o.dateField],
		Tags:    stringList(meta["tags"]),
	}
	item.Slug = itemSlug(rel, meta)
	item.OutputPath, item.URL = outputLocation(rel, item.Slug)
	item.Title = itemTitle(rel, meta)
	item.Date = resolveDate(file, item.RawDate, normalizer, o)
	return item, nil
}

// resolveDate applies the front matter date, modification time, now chain.
func resolveDate(file string, raw any, normalizer *dateutil.Normalizer, o *options) time.Time {
	if raw != nil {
		t, err := normalizer.Normalize(raw)
		if err == nil {
			return t
		}
		o.logger.Warn("unparseable date, using file modification time",
			logfields.File(file), logfields.Field(o.dateField), logfields.Value(raw), logfields.Error(err))
	}

	info, err := os.Stat(file)
	if err == nil {
		return info.ModTime()
	}
	o.logger.Warn("cannot stat file, using current time", logfields.File(file), logfields.Error(err))
	return o.now()
}

func itemSlug(rel string, meta map[string]any) string {
	if s, ok := meta["slug"].(string); ok && strings.TrimSpace(s) != "" {
		return textutil.Slugify(s)
	}
	base := path.Base(rel)
	base = strings.TrimSuffix(base, path.Ext(base))
	if strings.EqualFold(base, "index") {
		return ""
	}
	return textutil.Slugify(base)
}

// outputLocation derives "<reldir>/<slug>/index.html" and its URL.
func outputLocation(rel, slug string) (outputPath, url string) {
	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	page := path.Join(dir, slug)
	if page == "" {
		return "index.html", "/"
	}
	return path.Join(page, "index.html"), "/" + page + "/"
}

func itemTitle(rel string, meta map[string]any) string {
	if t, ok := meta["title"]; ok && t != nil {
		if s := strings.TrimSpace(fmt.Sprint(t)); s != "" {
			return s
		}
	}
	base := path.Base(rel)
	base = strings.TrimSuffix(base, path.Ext(base))
	return textutil.TitleCase(strings.NewReplacer("-", " ", "_", " ").Replace(base))
}

// stringList accepts a single string or a list of scalars.
func stringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			if e == nil {
				continue
			}
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}

