package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Default heading range for TableOfContents: h2 and h3, the page title
// being the h1.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// Heading is a heading found in rendered HTML.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // text content, tags stripped, entities decoded
}

// headingPattern matches h1-h6 tags with an id attribute, as produced by
// Goldmark's auto heading IDs. Captures: 1=level, 2=id, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Headings returns the headings of htmlContent whose level lies in
// [minDepth, maxDepth]. Headings without an id cannot be linked and are
// skipped.
func Headings(htmlContent string, minDepth, maxDepth int) []Heading {
	var headings []Heading
	for _, m := range headingPattern.FindAllStringSubmatch(htmlContent, -1) {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		text := strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(m[3], "")))
		headings = append(headings, Heading{Level: level, ID: m[2], Text: text})
	}
	return headings
}

// TableOfContents renders the headings of htmlContent as nested ordered
// lists inside <nav class="toc">. Out-of-range depths fall back to
// DefaultTOCMinDepth and DefaultTOCMaxDepth. Returns "" when there is
// nothing to list.
//
// The shallowest heading found becomes the top level, and a jump of more
// than one level (h2 then h4) nests only one level deeper.
func TableOfContents(htmlContent string, minDepth, maxDepth int) string {
	if minDepth < 1 || minDepth > 6 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth < minDepth || maxDepth > 6 {
		maxDepth = max(minDepth, DefaultTOCMaxDepth)
	}

	headings := Headings(htmlContent, minDepth, maxDepth)
	if len(headings) == 0 {
		return ""
	}

	top := headings[0].Level
	for _, h := range headings {
		top = min(top, h.Level)
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc"><ol>`)
	depth := 1
	for i, h := range headings {
		want := h.Level - top + 1
		if want > depth+1 {
			want = depth + 1
		}
		switch {
		case i == 0:
			for ; depth < want; depth++ {
				buf.WriteString(`<li><ol>`)
			}
		case want > depth:
			buf.WriteString(`<ol>`)
			depth++
		default:
			buf.WriteString(`</li>`)
			for ; depth > want; depth-- {
				buf.WriteString(`</ol></li>`)
			}
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a>`)
	}
	buf.WriteString(`</li>`)
	for ; depth > 1; depth-- {
		buf.WriteString(`</ol></li>`)
	}
	buf.WriteString(`</ol></nav>`)
	return buf.String()
}
