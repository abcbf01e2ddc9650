// Package urlutil rewrites site URLs for templates: path prefixing and
// absolute URL resolution.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedURL indicates a URL that could not be parsed.
var ErrMalformedURL = errors.New("malformed URL")

// WithPrefix prepends a site path prefix to a root-relative path.
// "/blog/", "/docs" -> "/docs/blog/". Relative paths, URLs with a scheme,
// protocol-relative URLs and fragments are returned unchanged, as is
// everything when prefix is empty or "/".
func WithPrefix(p, prefix string) (string, error) {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p, nil
	}
	if _, err := url.Parse(p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if p == "/"+prefix || strings.HasPrefix(p, "/"+prefix+"/") {
		return p, nil
	}
	return "/" + prefix + p, nil
}

// Absolute resolves ref against base. On any parse failure ref is returned
// unchanged together with an ErrMalformedURL error so callers can log and
// carry on.
func Absolute(ref, base string) (string, error) {
	if base == "" {
		return ref, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref, fmt.Errorf("%w: base %q: %v", ErrMalformedURL, base, err)
	}
	if !baseURL.IsAbs() {
		return ref, fmt.Errorf("%w: base %q has no scheme", ErrMalformedURL, base)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref, fmt.Errorf("%w: %q: %v", ErrMalformedURL, ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
