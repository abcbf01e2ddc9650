package textutil

import (
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify returns a lowercase, hyphen-separated, ASCII form of s for use in URLs.
func Slugify(s string) string {
	return slug.Make(s)
}

// TitleCase capitalizes the first letter of each word.
func TitleCase(s string) string {
	// Casers keep state between calls and cannot be shared.
	return cases.Title(language.English).String(s)
}
