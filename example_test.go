package sitekit_test

import (
	"fmt"
	"time"

	"github.com/alnah/go-sitekit"
)

// Example registers the site extensions and applies a filter.
func Example() {
	reg := sitekit.NewRegistry()
	if err := sitekit.Setup(reg, sitekit.DefaultConfig()); err != nil {
		fmt.Println("error:", err)
		return
	}

	date, err := reg.ApplyFilter("readableDate", "2025-06-01 14:30 PST")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(date)
	// Output: Jun 1, 2025
}

// ExampleRegistry_Transform rewrites a built page: captions first, then
// root-relative asset paths.
func ExampleRegistry_Transform() {
	reg := sitekit.NewRegistry()
	if err := sitekit.Setup(reg, nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	page := `<p><img src="/images/cat.jpg" alt="A cat"></p>`
	out, err := reg.Transform(page, "_site/posts/cats/index.html")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: <figure><img src="../../images/cat.jpg" alt="A cat"><figcaption>A cat</figcaption></figure>
}

// ExampleSortByDate orders items newest first.
func ExampleSortByDate() {
	items := []*sitekit.ContentItem{
		{Title: "January", Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "March", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, item := range sitekit.SortByDate(items) {
		fmt.Println(item.Title)
	}
	// Output:
	// March
	// January
}

// Example_videoEmbed resolves a hosted video URL for an iframe.
func Example_videoEmbed() {
	reg := sitekit.NewRegistry()
	if err := sitekit.Setup(reg, nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	embed, _ := reg.ApplyFilter("videoEmbed", "https://youtu.be/dQw4w9WgXcQ")
	fmt.Println(embed)
	// Output: https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ
}
