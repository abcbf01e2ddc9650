package urlutil

import (
	"errors"
	"testing"
)

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr error
	}{
		{name: "adds prefix", path: "/blog/", prefix: "/docs/", want: "/docs/blog/"},
		{name: "bare prefix", path: "/blog/", prefix: "docs", want: "/docs/blog/"},
		{name: "root path", path: "/", prefix: "docs", want: "/docs/"},
		{name: "empty prefix", path: "/blog/", prefix: "", want: "/blog/"},
		{name: "slash prefix", path: "/blog/", prefix: "/", want: "/blog/"},
		{name: "already prefixed", path: "/docs/blog/", prefix: "docs", want: "/docs/blog/"},
		{name: "relative untouched", path: "blog/", prefix: "docs", want: "blog/"},
		{name: "absolute url untouched", path: "https://x.dev/a", prefix: "docs", want: "https://x.dev/a"},
		{name: "protocol-relative untouched", path: "//cdn.x.dev/a", prefix: "docs", want: "//cdn.x.dev/a"},
		{name: "malformed returned unchanged", path: "/bad%zz", prefix: "docs", want: "/bad%zz", wantErr: ErrMalformedURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := WithPrefix(tt.path, tt.prefix)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WithPrefix() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("WithPrefix(%q, %q) = %q, want %q", tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     string
		base    string
		want    string
		wantErr error
	}{
		{name: "root-relative", ref: "/blog/post/", base: "https://example.com", want: "https://example.com/blog/post/"},
		{name: "relative to base path", ref: "post/", base: "https://example.com/blog/", want: "https://example.com/blog/post/"},
		{name: "already absolute", ref: "https://other.dev/x", base: "https://example.com", want: "https://other.dev/x"},
		{name: "empty base", ref: "/x", base: "", want: "/x"},
		{name: "base without scheme", ref: "/x", base: "example.com", want: "/x", wantErr: ErrMalformedURL},
		{name: "malformed base", ref: "/x", base: "http://[::1", want: "/x", wantErr: ErrMalformedURL},
		{name: "malformed ref", ref: "/bad%zz", base: "https://example.com", want: "/bad%zz", wantErr: ErrMalformedURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Absolute(tt.ref, tt.base)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Absolute() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Absolute(%q, %q) = %q, want %q", tt.ref, tt.base, got, tt.want)
			}
		})
	}
}
