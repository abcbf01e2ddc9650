package sitekit

import (
	"slices"
	"strings"
)

// SortByDate returns items ordered by date, newest first. Items with equal
// dates keep their relative order. The input slice is not modified.
func SortByDate(items []*ContentItem) []*ContentItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b *ContentItem) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// IsPost reports whether an item belongs to the posts collection: tagged
// "post" or "posts", or stored under a top-level posts/ directory.
func IsPost(item *ContentItem) bool {
	return item.HasTag("post") || item.HasTag("posts") || strings.HasPrefix(item.RelPath, "posts/")
}

// Posts returns the posts among items, newest first.
func Posts(items []*ContentItem) []*ContentItem {
	var posts []*ContentItem
	for _, item := range items {
		if IsPost(item) {
			posts = append(posts, item)
		}
	}
	return SortByDate(posts)
}
