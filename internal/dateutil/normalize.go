package dateutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata" // zone abbreviations must resolve on hosts without zoneinfo

	"github.com/araddon/dateparse"
)

// ErrUnparseableDate indicates every parse attempt failed.
var ErrUnparseableDate = errors.New("unparseable date")

// explicitLayouts are tried in order; the first successful parse wins.
var explicitLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006/01/02",
}

// lastResortLayouts cover the textual forms emitted by mail, HTTP and RSS.
var lastResortLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"Mon, 02 Jan 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04:05",
}

// Matcher is one step of the parse chain.
type Matcher struct {
	Name  string
	Parse func(s string, loc *time.Location) (time.Time, error)
}

func layoutMatcher(layout string) Matcher {
	return Matcher{
		Name: layout,
		Parse: func(s string, loc *time.Location) (time.Time, error) {
			return time.ParseInLocation(layout, s, loc)
		},
	}
}

// DefaultMatchers returns the ordered parse chain: explicit layouts, then the
// flexible parser, then the last-resort layouts.
func DefaultMatchers() []Matcher {
	matchers := make([]Matcher, 0, len(explicitLayouts)+1+len(lastResortLayouts))
	for _, layout := range explicitLayouts {
		matchers = append(matchers, layoutMatcher(layout))
	}
	matchers = append(matchers, Matcher{Name: "flexible", Parse: flexibleParse})
	for _, layout := range lastResortLayouts {
		matchers = append(matchers, layoutMatcher(layout))
	}
	return matchers
}

// flexibleParse wraps dateparse, which can panic on some malformed inputs.
func flexibleParse(s string, loc *time.Location) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("flexible parse: %v", r)
		}
	}()
	return dateparse.ParseIn(s, loc)
}

// Normalizer maps date values to instants.
type Normalizer struct {
	// Location is used for strings that carry no zone. Nil means UTC.
	Location *time.Location
	Matchers []Matcher
}

// NewNormalizer creates a Normalizer with the default parse chain.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{Location: loc, Matchers: DefaultMatchers()}
}

var defaultNormalizer = NewNormalizer(time.UTC)

// Normalize maps v to an instant using UTC as the default location.
func Normalize(v any) (time.Time, error) {
	return defaultNormalizer.Normalize(v)
}

// Normalize maps v to an instant.
//
// time.Time values are returned unchanged. Numbers are epoch milliseconds.
// Strings may end with a US zone abbreviation (PST, EDT, ...), which is
// stripped and resolved to its geographic zone before parsing.
func (n *Normalizer) Normalize(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrUnparseableDate)
		}
		return *val, nil
	case int:
		return time.UnixMilli(int64(val)).UTC(), nil
	case int32:
		return time.UnixMilli(int64(val)).UTC(), nil
	case int64:
		return time.UnixMilli(val).UTC(), nil
	case uint64:
		if val > math.MaxInt64 {
			return time.Time{}, fmt.Errorf("%w: %d out of range", ErrUnparseableDate, val)
		}
		return time.UnixMilli(int64(val)).UTC(), nil
	case float64:
		micros := val * 1000
		if math.IsNaN(micros) || micros >= math.MaxInt64 || micros <= math.MinInt64 {
			return time.Time{}, fmt.Errorf("%w: %v out of range", ErrUnparseableDate, val)
		}
		return time.UnixMicro(int64(micros)).UTC(), nil
	case string:
		return n.parseString(val)
	case nil:
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseableDate)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrUnparseableDate, v)
	}
}

// NormalizeOr returns the normalized instant, or def when v is unparseable.
func (n *Normalizer) NormalizeOr(v any, def time.Time) time.Time {
	t, err := n.Normalize(v)
	if err != nil {
		return def
	}
	return t
}

func (n *Normalizer) parseString(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnparseableDate)
	}

	loc := n.Location
	if loc == nil {
		loc = time.UTC
	}
	stripped, zone := splitZone(s)
	if zone != nil {
		loc = zone
	}

	matchers := n.Matchers
	if matchers == nil {
		matchers = DefaultMatchers()
	}
	for _, m := range matchers {
		if t, err := m.Parse(stripped, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, raw)
}
