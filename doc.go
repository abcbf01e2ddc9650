// Package sitekit provides the filters, collections and output transforms of
// a static blog, plus a preprocessor that normalizes front matter dates.
//
// # Quick Start
//
// Register everything into a Registry and use it from the build:
//
//	reg := sitekit.NewRegistry()
//	if err := sitekit.Setup(reg, sitekit.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
//
//	items, err := sitekit.LoadContent(ctx, "content")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	posts, _ := reg.Collection("posts", items)
//	date, _ := reg.ApplyFilter("readableDate", posts[0].Date)
//
//	html, err := reg.Transform(page, "posts/hello/index.html")
//
// # Filters
//
// Setup registers these filters:
//
//   - readableDate, htmlDateString, formatDate, date: date display
//   - excerpt, firstParagraphs, needsExpand: teasers
//   - videoPlatform, videoID, videoEmbed, videoPoster: video embeds
//   - url, absoluteURL: path prefix and absolute URLs
//   - slugify, titleCase, filterTagList, head, firstImage: helpers
//   - toc: nested table of contents from heading ids
//
// Date filters accept instants, epoch milliseconds and loosely formatted
// strings such as "2025-06-01 14:30 PST" or "March 5, 2024". A value that
// cannot be parsed is logged and replaced by the current time.
//
// # Transforms
//
// Transforms run in order on every .html output:
//
//  1. captions: images with alt text become <figure> with <figcaption>
//  2. relativePaths: root-relative asset paths become page-relative
//
// # Date Normalization
//
// NormalizeDates rewrites each content file's date field to RFC 3339 in UTC
// so the build sees unambiguous instants:
//
//	report, err := sitekit.NormalizeDates(ctx, "content",
//	    sitekit.WithLocation(paris),
//	    sitekit.WithLogger(logger),
//	)
//
// Files are handled sequentially and written atomically. A failing file is
// logged and recorded in the report; the others proceed.
package sitekit
