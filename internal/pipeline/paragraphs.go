package pipeline

import (
	"regexp"
	"strings"
)

// DefaultParagraphCount is the number of paragraphs shown in a preview.
const DefaultParagraphCount = 2

const paragraphClose = "</p>"

// paragraphOpen matches <p> and <p ...> but not <pre> or <param>.
var paragraphOpen = regexp.MustCompile(`(?i)<p(?:\s[^>]*)?>`)

// FirstParagraphs returns the first n paragraph blocks of htmlContent.
// n <= 0 means DefaultParagraphCount. Content is split on </p> and each
// segment holding a <p> opener gets its closing tag back; segments without
// one (a trailing heading, say) are kept as written.
func FirstParagraphs(htmlContent string, n int) string {
	if n <= 0 {
		n = DefaultParagraphCount
	}

	segments := strings.Split(htmlContent, paragraphClose)
	if len(segments) > n {
		segments = segments[:n]
	}

	var b strings.Builder
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		b.WriteString(seg)
		if paragraphOpen.MatchString(seg) {
			b.WriteString(paragraphClose)
		}
	}
	return strings.TrimSpace(b.String())
}

// NeedsExpand reports whether htmlContent holds more than n paragraphs,
// i.e. whether a preview of FirstParagraphs(htmlContent, n) hides content.
// n <= 0 means DefaultParagraphCount.
func NeedsExpand(htmlContent string, n int) bool {
	if n <= 0 {
		n = DefaultParagraphCount
	}
	return len(paragraphOpen.FindAllStringIndex(htmlContent, n+1)) > n
}
