package frontmatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-sitekit/internal/dateutil"
)

func TestRewriteDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantChanged bool
		wantNew     string
		wantErr     error
		check       func(t *testing.T, out string)
	}{
		{
			name:        "rewrites zone abbreviation to canonical UTC",
			input:       "---\ntitle: Hello\ndate: 2025-06-01 14:30 PST\ntags: [post]\n---\n# Body\n\nText.\n",
			wantChanged: true,
			wantNew:     "2025-06-01T21:30:00Z",
			check: func(t *testing.T, out string) {
				if !strings.HasSuffix(out, "---\n# Body\n\nText.\n") {
					t.Errorf("body changed:\n%s", out)
				}
				if !strings.Contains(out, "2025-06-01T21:30:00Z") {
					t.Errorf("canonical date missing:\n%s", out)
				}
				if strings.Index(out, "title:") > strings.Index(out, "date:") ||
					strings.Index(out, "date:") > strings.Index(out, "tags:") {
					t.Errorf("key order changed:\n%s", out)
				}
			},
		},
		{
			name:        "long form date",
			input:       "---\ndate: \"March 5, 2024\"\n---\nBody",
			wantChanged: true,
			wantNew:     "2024-03-05T00:00:00Z",
		},
		{
			name:        "already canonical is untouched",
			input:       "---\ntitle: Hi\ndate: 2024-03-05T00:00:00Z\n---\nBody",
			wantChanged: false,
			wantNew:     "2024-03-05T00:00:00Z",
			check: func(t *testing.T, out string) {
				if out != "---\ntitle: Hi\ndate: 2024-03-05T00:00:00Z\n---\nBody" {
					t.Errorf("content modified:\n%s", out)
				}
			},
		},
		{
			name:        "quoted canonical is untouched",
			input:       "---\ndate: '2024-03-05T00:00:00Z'\n---\n",
			wantChanged: false,
			wantNew:     "2024-03-05T00:00:00Z",
		},
		{
			name:        "crlf file keeps crlf",
			input:       "---\r\ndate: 2024-03-05\r\n---\r\nBody\r\n",
			wantChanged: true,
			wantNew:     "2024-03-05T00:00:00Z",
			check: func(t *testing.T, out string) {
				if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
					t.Errorf("bare LF in CRLF file: %q", out)
				}
			},
		},
		{
			name:    "no front matter",
			input:   "# Body",
			wantErr: ErrNoFrontMatter,
		},
		{
			name:    "empty front matter",
			input:   "---\n---\nBody",
			wantErr: ErrNoFrontMatter,
		},
		{
			name:    "no date field",
			input:   "---\ntitle: Hi\n---\nBody",
			wantErr: ErrNoDateField,
		},
		{
			name:    "unparseable date",
			input:   "---\ndate: sometime soon\n---\nBody",
			wantErr: dateutil.ErrUnparseableDate,
		},
		{
			name:    "unclosed front matter",
			input:   "---\ndate: 2024-01-01\nBody",
			wantErr: ErrMissingClosingDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, rw, err := RewriteDate([]byte(tt.input), DefaultDateField, dateutil.Normalize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RewriteDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RewriteDate() unexpected error: %v", err)
			}
			if rw.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", rw.Changed, tt.wantChanged)
			}
			if rw.New != tt.wantNew {
				t.Errorf("New = %q, want %q", rw.New, tt.wantNew)
			}
			if tt.check != nil {
				tt.check(t, string(out))
			}
		})
	}
}

func TestRewriteDate_Idempotent(t *testing.T) {
	t.Parallel()

	in := []byte("---\ntitle: Hello\ndate: 2025-06-01 14:30 PST\n---\nBody\n")

	once, rw, err := RewriteDate(in, DefaultDateField, dateutil.Normalize)
	if err != nil || !rw.Changed {
		t.Fatalf("first rewrite: changed=%v err=%v", rw.Changed, err)
	}
	twice, rw, err := RewriteDate(once, DefaultDateField, dateutil.Normalize)
	if err != nil {
		t.Fatalf("second rewrite: %v", err)
	}
	if rw.Changed || string(once) != string(twice) {
		t.Errorf("second rewrite changed content:\n%s\n---\n%s", once, twice)
	}
}

func TestRewriteDate_CustomField(t *testing.T) {
	t.Parallel()

	in := []byte("---\npublished: 2024-01-02\n---\n")
	_, rw, err := RewriteDate(in, "published", dateutil.Normalize)
	if err != nil {
		t.Fatalf("RewriteDate() error: %v", err)
	}
	if !rw.Changed || rw.New != "2024-01-02T00:00:00Z" {
		t.Errorf("RewriteDate() = %+v", rw)
	}
}
