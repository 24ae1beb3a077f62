package datefmt

import (
	"time"
)

// Layout is the fixed form every user-facing date is rendered in:
// three-letter weekday, three-letter month, two-digit day, four-digit year.
const Layout = "Mon Jan 02 2006"

const invalid = "Invalid Date"

var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	Layout,
}

// Format renders t in the fixed layout. The zero time stands in for an
// unparseable input and renders as "Invalid Date".
func Format(t time.Time) string {
	if t.IsZero() {
		return invalid
	}
	return t.Format(Layout)
}

// Parse interprets a date string permissively: it tries a small set of
// layouts and returns the zero time when none match. Callers treat the zero
// time as an absent or invalid date, never as an error.
func Parse(s string) time.Time {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
