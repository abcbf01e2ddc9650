// Package textutil turns markup into plain display text: cleaning, excerpts,
// slugs and title casing.
package textutil

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockTags end a run of text; a space is emitted at their boundaries so
// adjacent blocks do not run words together.
var blockTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Div: true, atom.Li: true,
	atom.Ul: true, atom.Ol: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Td: true,
	atom.Th: true, atom.Figure: true, atom.Figcaption: true, atom.Hr: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
}

// skippedTags have content that is never display text.
var skippedTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Template: true, atom.Noscript: true,
}

// Clean strips markup tags, decodes entities and collapses whitespace.
// Malformed markup degrades to whatever text the tokenizer recovers.
func Clean(content string) string {
	if content == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(content))

	z := html.NewTokenizer(strings.NewReader(content))
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapse(b.String())
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skippedTags[a] && tt == html.StartTagToken {
				skipDepth++
			}
			if blockTags[a] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skippedTags[a] && skipDepth > 0 {
				skipDepth--
			}
			if blockTags[a] {
				b.WriteByte(' ')
			}
		}
	}
}

// collapse replaces whitespace runs with a single space and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
