package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters so they
// pass through Goldmark unchanged without enabling raw HTML.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// PreprocessMarkdown prepares a content body for rendering: line endings are
// normalized, ==text== becomes highlight placeholders and blank line runs
// are compressed.
func PreprocessMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags after
// rendering.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
