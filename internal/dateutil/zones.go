package dateutil

import (
	"regexp"
	"strings"
	"time"
)

// zoneNames maps US abbreviations to the geographic zone they denote.
// Daylight and standard variants share a zone so the offset follows the date.
var zoneNames = map[string]string{
	"EST": "America/New_York",
	"EDT": "America/New_York",
	"CST": "America/Chicago",
	"CDT": "America/Chicago",
	"MST": "America/Denver",
	"MDT": "America/Denver",
	"PST": "America/Los_Angeles",
	"PDT": "America/Los_Angeles",
	"UTC": "UTC",
	"GMT": "UTC",
}

var trailingZone = regexp.MustCompile(`(?i)^(.*\S)\s+(EST|EDT|CST|CDT|MST|MDT|PST|PDT|UTC|GMT)$`)

// splitZone strips a trailing zone abbreviation from s.
// Returns the stripped string and the zone, or s and nil when none is present.
func splitZone(s string) (string, *time.Location) {
	m := trailingZone.FindStringSubmatch(s)
	if m == nil {
		return s, nil
	}
	loc, err := time.LoadLocation(zoneNames[strings.ToUpper(m[2])])
	if err != nil {
		return s, nil
	}
	return m[1], loc
}
