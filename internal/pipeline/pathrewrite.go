package pipeline

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultAssetDirs lists the root directories whose links are rewritten on
// a and link elements. Other root-relative hrefs are navigation and stay put.
var DefaultAssetDirs = []string{"images", "img", "css", "js", "assets", "fonts", "media", "video"}

// rewrittenAttrs lists, per element, the attributes carrying asset paths.
// href is additionally restricted to the asset directory allowlist.
var rewrittenAttrs = map[string]map[string]bool{
	"img":    {"src": true, "srcset": true},
	"video":  {"src": true, "poster": true},
	"audio":  {"src": true},
	"track":  {"src": true},
	"source": {"src": true, "srcset": true},
	"a":      {"href": true},
	"link":   {"href": true},
}

// attrPattern matches one attribute assignment inside a raw start tag.
// Groups: 1 leading space, 2 name, 3 separator, 4 double-quoted value,
// 5 single-quoted value, 6 unquoted value.
var attrPattern = regexp.MustCompile(`(?is)(\s)([a-z][a-z0-9-]*)(\s*=\s*)(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+))`)

// OutputDepth returns the number of directory levels between a page and the
// site root. outputPath is relative to the site root; a trailing document
// name (index.html, about.html) does not count as a level.
//
// Examples:
//   - "index.html" -> 0
//   - "blog/index.html" -> 1
//   - "blog/2024/post/" -> 3
func OutputDepth(outputPath string) int {
	var segments []string
	for _, seg := range strings.Split(strings.ReplaceAll(outputPath, `\`, "/"), "/") {
		if seg == "" || seg == "." {
			continue
		}
		segments = append(segments, seg)
	}
	if n := len(segments); n > 0 {
		switch strings.ToLower(path.Ext(segments[n-1])) {
		case ".html", ".htm":
			segments = segments[:n-1]
		}
	}
	return len(segments)
}

// RelativePrefix returns the parent-directory prefix reaching the site root
// from the given depth: "" for 0, "../" for 1, "../../" for 2.
func RelativePrefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("../", depth)
}

// PathRewriter rewrites root-relative asset paths to page-relative ones.
type PathRewriter struct {
	// AssetDirs restricts href rewriting. Nil means DefaultAssetDirs.
	AssetDirs []string
}

// RewriteRootRelative rewrites root-relative asset paths in htmlContent so
// they resolve from outputPath.
//
// Rewrites:
//   - img/source src and srcset, video src and poster, audio/track src
//   - a/link href, only under an allowed asset directory
//
// Does NOT rewrite:
//   - relative paths, URLs, protocol-relative "//" paths
//   - navigation links outside the asset directories
//
// Bytes outside rewritten attribute values are copied verbatim.
func (r *PathRewriter) RewriteRootRelative(htmlContent, outputPath string) string {
	if !strings.Contains(htmlContent, "/") {
		return htmlContent
	}

	prefix := RelativePrefix(OutputDepth(outputPath))
	dirs := r.AssetDirs
	if dirs == nil {
		dirs = DefaultAssetDirs
	}

	var out strings.Builder
	out.Grow(len(htmlContent) + 64)

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// EOF or unrecoverable input: keep whatever the tokenizer still holds.
			out.Write(z.Raw())
			return out.String()
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.WriteString(raw)
			continue
		}

		name, _ := z.TagName()
		attrs, ok := rewrittenAttrs[string(name)]
		if !ok {
			out.WriteString(raw)
			continue
		}
		out.WriteString(rewriteTag(raw, attrs, prefix, dirs))
	}
}

// rewriteTag rewrites the allowed attributes of one raw start tag.
func rewriteTag(raw string, attrs map[string]bool, prefix string, dirs []string) string {
	return attrPattern.ReplaceAllStringFunc(raw, func(match string) string {
		idx := attrPattern.FindStringSubmatchIndex(match)
		group := func(n int) string {
			if idx[2*n] < 0 {
				return ""
			}
			return match[idx[2*n]:idx[2*n+1]]
		}

		key := strings.ToLower(group(2))
		if !attrs[key] {
			return match
		}

		var value, quote string
		switch {
		case idx[8] >= 0:
			value, quote = group(4), `"`
		case idx[10] >= 0:
			value, quote = group(5), `'`
		default:
			value = group(6)
		}

		var rewritten string
		switch key {
		case "srcset":
			rewritten = rewriteSrcset(value, prefix)
		case "href":
			if !underAssetDir(value, dirs) {
				return match
			}
			rewritten = rewritePath(value, prefix)
		default:
			rewritten = rewritePath(value, prefix)
		}
		if rewritten == value {
			return match
		}
		return group(1) + group(2) + group(3) + quote + rewritten + quote
	})
}

// rewritePath replaces the leading root slash with prefix.
// Anything that is not root-relative is returned unchanged.
func rewritePath(p, prefix string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p
	}
	rel := prefix + p[1:]
	if rel == "" {
		return "./"
	}
	return rel
}

// rewriteSrcset rewrites every candidate URL of a srcset value.
// The value is returned as-is when no candidate is root-relative.
func rewriteSrcset(value, prefix string) string {
	candidates := strings.Split(value, ",")
	changed := false
	for i, c := range candidates {
		fields := strings.Fields(c)
		if len(fields) == 0 {
			continue
		}
		if rel := rewritePath(fields[0], prefix); rel != fields[0] {
			fields[0] = rel
			changed = true
		}
		candidates[i] = strings.Join(fields, " ")
	}
	if !changed {
		return value
	}
	return strings.Join(candidates, ", ")
}

// underAssetDir reports whether p is a root-relative path below one of dirs.
func underAssetDir(p string, dirs []string) bool {
	for _, dir := range dirs {
		dir = strings.Trim(dir, "/")
		if dir != "" && strings.HasPrefix(p, "/"+dir+"/") {
			return true
		}
	}
	return false
}
