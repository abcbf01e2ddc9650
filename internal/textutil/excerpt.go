package textutil

import "strings"

// DefaultExcerptLength is the maximum excerpt length in runes.
const DefaultExcerptLength = 250

// Ellipsis marks a truncated excerpt.
const Ellipsis = "…"

// Excerpt cleans content and truncates it to maxLen runes without splitting a
// word, appending Ellipsis when truncated. maxLen <= 0 means DefaultExcerptLength.
//
// When no space precedes the cut point the text is cut at exactly maxLen.
func Excerpt(content string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultExcerptLength
	}

	text := Clean(content)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := string(runes[:maxLen])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ") + Ellipsis
}
