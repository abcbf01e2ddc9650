package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short input returned unchanged",
			input:  "A short post.",
			maxLen: 50,
			want:   "A short post.",
		},
		{
			name:   "exact length is not truncated",
			input:  "abcde",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "backs up to last space",
			input:  "The quick brown fox jumps",
			maxLen: 12,
			want:   "The quick…",
		},
		{
			name:   "no space cuts at max length",
			input:  "Supercalifragilistic",
			maxLen: 5,
			want:   "Super…",
		},
		{
			name:   "markup is cleaned before measuring",
			input:  "<p>The <em>quick</em> brown</p>\n\n<p>fox</p>",
			maxLen: 100,
			want:   "The quick brown fox",
		},
		{
			name:   "counts runes not bytes",
			input:  "héllo wörld",
			maxLen: 11,
			want:   "héllo wörld",
		},
		{
			name:   "zero uses default length",
			input:  strings.Repeat("word ", 10),
			maxLen: 0,
			want:   strings.TrimSpace(strings.Repeat("word ", 10)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Excerpt(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestExcerpt_Properties(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("lorem ipsum dolor sit amet ", 40)

	for _, maxLen := range []int{1, 7, 50, DefaultExcerptLength} {
		got := Excerpt(long, maxLen)
		if n := utf8.RuneCountInString(got); n > maxLen+1 {
			t.Errorf("Excerpt(maxLen=%d) has %d runes, want <= %d", maxLen, n, maxLen+1)
		}
		if !strings.HasSuffix(got, Ellipsis) {
			t.Errorf("Excerpt(maxLen=%d) = %q, want ellipsis suffix", maxLen, got)
		}

		// Every word kept must be a whole word of the source, except when
		// no space existed inside the window.
		body := strings.TrimSuffix(got, Ellipsis)
		if strings.Contains(body, " ") {
			words := strings.Fields(body)
			last := words[len(words)-1]
			switch last {
			case "lorem", "ipsum", "dolor", "sit", "amet":
			default:
				t.Errorf("Excerpt(maxLen=%d) split a word: %q", maxLen, last)
			}
		}
	}
}

func TestExcerpt_IdempotentOnShortInput(t *testing.T) {
	t.Parallel()

	in := "Already short and clean."
	once := Excerpt(in, 100)
	twice := Excerpt(once, 100)
	if once != twice || once != in {
		t.Errorf("Excerpt not idempotent: %q -> %q -> %q", in, once, twice)
	}
}
