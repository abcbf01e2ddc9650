// Package video classifies video URLs by hosting platform and derives the
// identifiers, embed URLs and poster images templates need.
package video

import (
	"path"
	"regexp"
	"strings"
)

// Platform identifies where a video is hosted.
type Platform string

// Recognized platforms. PlatformNone means the URL is not a video.
const (
	PlatformYouTube Platform = "youtube"
	PlatformVimeo   Platform = "vimeo"
	PlatformFile    Platform = "file"
	PlatformNone    Platform = "none"
)

// classifier is one step of the ordered platform check.
type classifier struct {
	platform Platform
	pattern  *regexp.Regexp
}

// classifiers run in order; a URL matching several is classified by the first.
var classifiers = []classifier{
	{PlatformYouTube, regexp.MustCompile(`(?i)(?:^|[/.])(?:youtube\.com|youtube-nocookie\.com|youtu\.be)(?:[/:?#]|$)`)},
	{PlatformVimeo, regexp.MustCompile(`(?i)(?:^|[/.])vimeo\.com(?:[/:?#]|$)`)},
	{PlatformFile, regexp.MustCompile(`(?i)\.(?:mp4|webm|ogg|ogv|mov|m4v)(?:[?#].*)?$`)},
}

// idPatterns lists, per platform, the sub-patterns tried in order to extract
// the video identifier. The first capture found wins.
var idPatterns = map[Platform][]*regexp.Regexp{
	PlatformYouTube: {
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`/embed/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`/shorts/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`/live/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`/v/([A-Za-z0-9_-]{11})`),
	},
	PlatformVimeo: {
		regexp.MustCompile(`player\.vimeo\.com/video/(\d+)`),
		regexp.MustCompile(`vimeo\.com/channels/[^/]+/(\d+)`),
		regexp.MustCompile(`vimeo\.com/groups/[^/]+/videos/(\d+)`),
		regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`),
	},
}

// DetectPlatform classifies rawURL. Blank input is PlatformNone.
func DetectPlatform(rawURL string) Platform {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return PlatformNone
	}
	for _, c := range classifiers {
		if c.pattern.MatchString(u) {
			return c.platform
		}
	}
	return PlatformNone
}

// ExtractID returns the platform identifier in rawURL: an 11-character token
// for YouTube, a numeric token for Vimeo. ok is false when the URL belongs to
// neither platform or no sub-pattern matches.
func ExtractID(rawURL string) (id string, ok bool) {
	patterns := idPatterns[DetectPlatform(rawURL)]
	for _, p := range patterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Resolve classifies rawURL and extracts its identifier in one call.
func Resolve(rawURL string) (Platform, string) {
	id, _ := ExtractID(rawURL)
	return DetectPlatform(rawURL), id
}

// EmbedURL returns the iframe URL for a hosted video, or "" for other
// platforms or an empty id.
func EmbedURL(p Platform, id string) string {
	if id == "" {
		return ""
	}
	switch p {
	case PlatformYouTube:
		return "https://www.youtube-nocookie.com/embed/" + id
	case PlatformVimeo:
		return "https://player.vimeo.com/video/" + id
	default:
		return ""
	}
}

// PosterExtension replaces the video extension when deriving a poster.
const PosterExtension = ".jpg"

// Poster returns the poster image for a video. An explicit poster is used
// verbatim. Otherwise a direct file gets its extension swapped for
// PosterExtension and a YouTube video gets its hosted thumbnail. Derived
// paths are not checked for existence. Returns "" when nothing applies.
func Poster(rawURL, explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return explicit
	}

	switch DetectPlatform(rawURL) {
	case PlatformFile:
		base := rawURL
		suffix := ""
		if i := strings.IndexAny(base, "?#"); i >= 0 {
			base, suffix = base[:i], base[i:]
		}
		ext := path.Ext(base)
		return strings.TrimSuffix(base, ext) + PosterExtension + suffix
	case PlatformYouTube:
		if id, ok := ExtractID(rawURL); ok {
			return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
		}
	}
	return ""
}
