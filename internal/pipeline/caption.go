package pipeline

import (
	"regexp"
	"strings"
)

// DefaultCaptionLookback is how many bytes before an image are scanned for
// unclosed <figure> tags.
const DefaultCaptionLookback = 500

var (
	// <p> whose only content is one img element.
	soleImageParagraph = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>\s*(<img\b[^>]*>)\s*</p>`)

	imageTag = regexp.MustCompile(`(?is)<img\b[^>]*>`)

	// Groups: 1 double-quoted alt, 2 single-quoted alt.
	altAttr = regexp.MustCompile(`(?is)\salt\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	figureOpen  = regexp.MustCompile(`(?i)<figure\b`)
	figureClose = regexp.MustCompile(`(?i)</figure\s*>`)
)

// Captioner wraps images carrying alt text in figure/figcaption markup.
type Captioner struct {
	// Lookback bounds the nesting scan. Zero means DefaultCaptionLookback.
	Lookback int
}

// CaptionImages replaces every image with non-blank alt text by
// <figure>IMG<figcaption>ALT</figcaption></figure>.
//
// A paragraph holding only the image is replaced as a whole. Any other image
// is wrapped in place unless the preceding Lookback bytes contain more
// <figure> openings than closings. The scan is a heuristic: a figure opened
// further back than the window is not seen.
//
// Running CaptionImages on its own output changes nothing.
func (c *Captioner) CaptionImages(htmlContent string) string {
	if !imageTag.MatchString(htmlContent) {
		return htmlContent
	}

	lookback := c.Lookback
	if lookback <= 0 {
		lookback = DefaultCaptionLookback
	}

	return wrapLooseImages(wrapSoleImages(htmlContent, lookback), lookback)
}

// wrapSoleImages replaces image-only paragraphs not already inside a figure.
func wrapSoleImages(content string, lookback int) string {
	locs := soleImageParagraph.FindAllStringSubmatchIndex(content, -1)
	if len(locs) == 0 {
		return content
	}

	var out strings.Builder
	out.Grow(len(content) + len(locs)*48)

	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		img := content[loc[2]:loc[3]]

		alt := altText(img)
		if alt == "" || insideFigure(content, start, lookback) {
			continue
		}

		out.WriteString(content[last:start])
		out.WriteString(figure(img, alt))
		last = end
	}
	out.WriteString(content[last:])
	return out.String()
}

// wrapLooseImages wraps images not already inside a figure.
func wrapLooseImages(content string, lookback int) string {
	locs := imageTag.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content
	}

	var out strings.Builder
	out.Grow(len(content) + len(locs)*48)

	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		img := content[start:end]

		alt := altText(img)
		if alt == "" || insideFigure(content, start, lookback) {
			continue
		}

		out.WriteString(content[last:start])
		out.WriteString(figure(img, alt))
		last = end
	}
	out.WriteString(content[last:])
	return out.String()
}

// insideFigure reports whether the window before pos has unclosed figures.
func insideFigure(content string, pos, lookback int) bool {
	from := pos - lookback
	if from < 0 {
		from = 0
	}
	window := content[from:pos]
	opens := len(figureOpen.FindAllStringIndex(window, -1))
	closes := len(figureClose.FindAllStringIndex(window, -1))
	return opens > closes
}

// altText returns the trimmed alt attribute of an img tag, or "".
func altText(img string) string {
	m := altAttr.FindStringSubmatch(img)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[2])
}

func figure(img, alt string) string {
	return "<figure>" + img + "<figcaption>" + alt + "</figcaption></figure>"
}
