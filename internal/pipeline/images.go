package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstImage returns the src of the first img element in htmlContent,
// or "" when there is none or the content cannot be parsed.
func FirstImage(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}
