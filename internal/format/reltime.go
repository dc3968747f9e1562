package format

import (
	"time"

	"golang.org/x/text/language"
)

// RelativeTime phrases how long ago t was relative to now, in the given
// language. The zero time renders as "", a missing date is simply not
// shown. Timestamps in the future clamp to "today".
func RelativeTime(t time.Time, now time.Time, lang language.Tag) string {
	if t.IsZero() {
		return ""
	}
	p := printer(lang)

	// Compare calendar days, not raw 24h windows, so 23:30 yesterday is
	// still "yesterday".
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)

	switch {
	case days <= 0:
		return p.Sprintf("today")
	case days == 1:
		return p.Sprintf("yesterday")
	case days < 7:
		return p.Sprintf("%d days ago", days)
	case days < 30:
		return p.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return p.Sprintf("%d months ago", days/30)
	default:
		return p.Sprintf("%d years ago", days/365)
	}
}

// RelativeTimeString parses a lenient ISO input first; malformed input
// renders as "" rather than failing.
func RelativeTimeString(s string, now time.Time, lang language.Tag) string {
	if s == "" {
		return ""
	}
	t, err := parseISO(s)
	if err != nil {
		return ""
	}
	return RelativeTime(t, now, lang)
}
