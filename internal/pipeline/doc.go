// Package pipeline implements the HTML stages of a site build.
//
// Every stage is a pure string-to-string function:
//   - Markdown to HTML rendering via Goldmark (with line normalization and
//     ==highlight== syntax handled around it)
//   - Paragraph extraction for post previews
//   - Image captioning (img with alt text becomes figure + figcaption)
//   - Root-relative asset paths rewritten relative to the page's output depth
//   - First image lookup for social cards
//
// Stages never fail on malformed HTML: input that does not match is passed
// through unchanged.
package pipeline
