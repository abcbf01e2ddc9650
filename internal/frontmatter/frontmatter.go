// Package frontmatter splits YAML front matter from Markdown bodies and
// writes it back with a normalized date field.
package frontmatter

import (
	"bytes"
	"errors"
)

// ErrMissingClosingDelimiter indicates the document opened a front matter
// block but never closed it.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

// Style captures the newline shape needed to rewrite a file faithfully.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Split separates `---` delimited front matter from the body.
// If the document does not start with a delimiter, had is false and body is
// the whole input.
func Split(content []byte) (front, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	delim := []byte("---" + nl)
	if !bytes.HasPrefix(content, delim) {
		return nil, content, false, style, nil
	}

	start := len(delim)
	if bytes.HasPrefix(content[start:], delim) {
		return []byte{}, content[start+len(delim):], true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line has no trailing newline.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			end := len(content) - len(tail)
			return content[start : end+len(nl)], []byte{}, true, style, nil
		}
		return nil, nil, false, style, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, style, nil
}

// Join reassembles a document from raw front matter and body.
// If had is false, Join returns body as-is.
func Join(front, body []byte, had bool, style Style) []byte {
	if !had {
		return body
	}

	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}
	delim := []byte("---" + nl)

	out := make([]byte, 0, 2*len(delim)+len(front)+len(nl)+len(body))
	out = append(out, delim...)
	out = append(out, front...)
	if len(front) > 0 && !bytes.HasSuffix(front, []byte(nl)) {
		out = append(out, nl...)
	}
	out = append(out, delim...)
	out = append(out, body...)
	return out
}

func detectStyle(content []byte) Style {
	newline := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		newline = "\r\n"
	}
	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
