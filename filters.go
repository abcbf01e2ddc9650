package sitekit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/alnah/go-sitekit/internal/logfields"
	"github.com/alnah/go-sitekit/internal/pipeline"
	"github.com/alnah/go-sitekit/internal/textutil"
	"github.com/alnah/go-sitekit/internal/urlutil"
	"github.com/alnah/go-sitekit/internal/video"
)

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

func (s *site) excerpt(v any, args ...any) (any, error) {
	n, err := intArg(args, 0, s.cfg.ExcerptLength)
	if err != nil {
		return nil, err
	}
	return textutil.Excerpt(toString(v), n), nil
}

func (s *site) firstParagraphs(v any, args ...any) (any, error) {
	n, err := intArg(args, 0, s.cfg.Paragraphs)
	if err != nil {
		return nil, err
	}
	return pipeline.FirstParagraphs(toString(v), n), nil
}

func (s *site) needsExpand(v any, args ...any) (any, error) {
	n, err := intArg(args, 0, s.cfg.Paragraphs)
	if err != nil {
		return nil, err
	}
	return pipeline.NeedsExpand(toString(v), n), nil
}

func slugify(v any, _ ...any) (any, error) {
	return textutil.Slugify(toString(v)), nil
}

func titleCase(v any, _ ...any) (any, error) {
	return textutil.TitleCase(toString(v)), nil
}

func firstImage(v any, _ ...any) (any, error) {
	return pipeline.FirstImage(toString(v)), nil
}

// toc renders a table of contents of the headings in v. Optional arguments
// are the minimum and maximum heading levels (default 2 and 3).
func toc(v any, args ...any) (any, error) {
	minDepth, err := intArg(args, 0, pipeline.DefaultTOCMinDepth)
	if err != nil {
		return nil, err
	}
	maxDepth, err := intArg(args, 1, pipeline.DefaultTOCMaxDepth)
	if err != nil {
		return nil, err
	}
	return pipeline.TableOfContents(toString(v), minDepth, maxDepth), nil
}

// ---------------------------------------------------------------------------
// Video
// ---------------------------------------------------------------------------

func videoPlatform(v any, _ ...any) (any, error) {
	return string(video.DetectPlatform(toString(v))), nil
}

func videoID(v any, _ ...any) (any, error) {
	id, _ := video.ExtractID(toString(v))
	return id, nil
}

// videoEmbed returns the iframe URL for hosted videos and the URL itself for
// direct files.
func videoEmbed(v any, _ ...any) (any, error) {
	raw := toString(v)
	p, id := video.Resolve(raw)
	if p == video.PlatformFile {
		return raw, nil
	}
	return video.EmbedURL(p, id), nil
}

func videoPoster(v any, args ...any) (any, error) {
	explicit := ""
	if len(args) > 0 {
		explicit = toString(args[0])
	}
	return video.Poster(toString(v), explicit), nil
}

// ---------------------------------------------------------------------------
// URLs
// ---------------------------------------------------------------------------

// url prefixes root-relative paths with the site's path prefix.
func (s *site) url(v any, _ ...any) (any, error) {
	raw := toString(v)
	out, err := urlutil.WithPrefix(raw, s.cfg.PathPrefix)
	if err != nil {
		s.logger.Warn("malformed URL left unchanged", logfields.Filter("url"), logfields.URL(raw), logfields.Error(err))
		return raw, nil
	}
	return out, nil
}

// absoluteURL resolves v against the base given as argument, the configured
// base URL, or DefaultBaseURL.
func (s *site) absoluteURL(v any, args ...any) (any, error) {
	raw := toString(v)
	base := s.cfg.BaseURL
	if len(args) > 0 {
		if b := toString(args[0]); b != "" {
			base = b
		}
	}
	if base == "" {
		base = DefaultBaseURL
	}

	out, err := urlutil.Absolute(raw, base)
	if err != nil {
		s.logger.Warn("malformed URL left unchanged", logfields.Filter("absoluteURL"), logfields.URL(raw), logfields.Error(err))
		return raw, nil
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// filterTagList drops the configured structural tags ("all", "posts", ...).
func (s *site) filterTagList(v any, _ ...any) (any, error) {
	tags := stringList(v)
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !s.ignored[strings.ToLower(tag)] {
			out = append(out, tag)
		}
	}
	return out, nil
}

// head returns the first n elements of a list, or the last -n when n is
// negative. Non-list values are returned unchanged.
func head(v any, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: head needs a count", ErrInvalidArgument)
	}
	n, err := intArg(args, 0, 0)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return v, nil
	}

	length := rv.Len()
	switch {
	case n >= 0:
		return rv.Slice(0, min(n, length)).Interface(), nil
	default:
		return rv.Slice(max(length+n, 0), length).Interface(), nil
	}
}
