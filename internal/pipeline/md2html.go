package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates Markdown rendering failed.
var ErrRender = errors.New("markdown rendering failed")

// MarkdownRenderer abstracts Markdown to HTML rendering.
type MarkdownRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// GoldmarkRenderer renders Markdown to an HTML fragment using goldmark.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// RendererOption configures a GoldmarkRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	rawHTML bool
}

// WithRawHTML passes HTML embedded in Markdown through to the output.
// Only use it for trusted content.
func WithRawHTML() RendererOption {
	return func(c *rendererConfig) { c.rawHTML = true }
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions,
// footnotes and class-based syntax highlighting.
func NewGoldmarkRenderer(opts ...RendererOption) *GoldmarkRenderer {
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if cfg.rawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and the
// call returns early on cancellation.
func (r *GoldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(PreprocessMarkdown(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
