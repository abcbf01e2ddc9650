package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/dateutil"
)

// postSummary is one entry of the posts listing.
type postSummary struct {
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Display string   `json:"displayDate"`
	URL     string   `json:"url"`
	Tags    []string `json:"tags,omitempty"`
	Excerpt string   `json:"excerpt"`
	Path    string   `json:"path"`
}

// runPosts lists the posts collection, newest first.
func runPosts(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePostsFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	s, err := newSession(flags.common, positional, contentDirArg, env)
	if err != nil {
		return err
	}

	reg := sitekit.NewRegistry()
	if err := sitekit.Setup(reg, s.cfg, s.opts...); err != nil {
		return err
	}

	items, err := sitekit.LoadContent(ctx, s.cfg.ContentDir, s.opts...)
	if err != nil {
		return err
	}
	posts, err := reg.Collection("posts", items)
	if err != nil {
		return err
	}

	summaries, err := summarizePosts(reg, posts)
	if err != nil {
		return err
	}
	if flags.json {
		return writePostsJSON(env.Stdout, summaries)
	}
	return writePostsText(env.Stdout, summaries)
}

// summarizePosts runs each post through the registered filters.
func summarizePosts(reg *sitekit.Registry, posts []*sitekit.ContentItem) ([]postSummary, error) {
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		display, err := reg.ApplyFilter("readableDate", p.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.RelPath, err)
		}
		url, err := reg.ApplyFilter("url", p.URL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.RelPath, err)
		}
		tags, err := reg.ApplyFilter("filterTagList", p.Tags)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.RelPath, err)
		}
		excerpt, err := reg.ApplyFilter("excerpt", p.HTML)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.RelPath, err)
		}

		out = append(out, postSummary{
			Title:   p.Title,
			Date:    dateutil.Canonical(p.Date),
			Display: display.(string),
			URL:     url.(string),
			Tags:    tags.([]string),
			Excerpt: excerpt.(string),
			Path:    p.RelPath,
		})
	}
	return out, nil
}

func writePostsJSON(w io.Writer, posts []postSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(posts)
}

// writePostsText writes one aligned line per post: date, title, excerpt.
func writePostsText(w io.Writer, posts []postSummary) error {
	if len(posts) == 0 {
		_, err := fmt.Fprintln(w, "No posts found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Display, p.Title, p.Excerpt)
	}
	return tw.Flush()
}
