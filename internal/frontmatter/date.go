package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// DefaultDateField is the front matter key holding a content item's date.
const DefaultDateField = "date"

var (
	ErrNoFrontMatter = errors.New("no front matter")
	ErrNoDateField   = errors.New("no date field")
)

// NormalizeFunc maps a raw front matter value to an instant.
type NormalizeFunc func(v any) (time.Time, error)

// DateRewrite describes the outcome of RewriteDate.
type DateRewrite struct {
	Old     any
	New     string
	Changed bool
}

// RewriteDate normalizes the field of content's front matter and writes it
// back in canonical form (RFC 3339, UTC). The body is returned untouched.
// Key order is kept; YAML comments are not.
//
// Content that is already canonical is returned as-is with Changed false.
// Errors wrap ErrNoFrontMatter, ErrNoDateField, dateutil.ErrUnparseableDate
// or the YAML error.
func RewriteDate(content []byte, field string, normalize NormalizeFunc) ([]byte, DateRewrite, error) {
	front, body, had, style, err := Split(content)
	if err != nil {
		return nil, DateRewrite{}, err
	}
	if !had || len(bytes.TrimSpace(front)) == 0 {
		return nil, DateRewrite{}, ErrNoFrontMatter
	}

	fields, err := yamlutil.UnmarshalOrdered(front)
	if err != nil {
		return nil, DateRewrite{}, err
	}

	idx := -1
	for i, item := range fields {
		if fmt.Sprint(item.Key) == field {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, DateRewrite{}, fmt.Errorf("%w: %q", ErrNoDateField, field)
	}

	old := fields[idx].Value
	t, err := normalize(old)
	if err != nil {
		return nil, DateRewrite{Old: old}, err
	}

	canonical := dateutil.Canonical(t)
	rewrite := DateRewrite{Old: old, New: canonical}
	if hasRawValue(front, field, canonical) {
		return content, rewrite, nil
	}

	fields[idx].Value = canonical
	encoded, err := yamlutil.Marshal(fields)
	if err != nil {
		return nil, rewrite, err
	}
	if style.Newline != "\n" {
		encoded = bytes.ReplaceAll(encoded, []byte("\n"), []byte(style.Newline))
	}

	rewrite.Changed = true
	return Join(encoded, body, true, style), rewrite, nil
}

// hasRawValue reports whether the raw front matter already spells field as
// value, optionally quoted. The text is compared, not the decoded value.
func hasRawValue(front []byte, field, value string) bool {
	pattern := `(?m)^` + regexp.QuoteMeta(field) + `:[ \t]*(["']?)` + regexp.QuoteMeta(value) + `(["']?)[ \t]*\r?$`
	m := regexp.MustCompile(pattern).FindSubmatch(front)
	return m != nil && string(m[1]) == string(m[2])
}
