package format

import (
	"strings"

	"golang.org/x/text/language"
)

// Duration is a minutes value broken down into calendar-ish units.
type Duration struct {
	Weeks   int `json:"weeks"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Unit names one component of a Duration for the formatting allowlist.
type Unit string

const (
	UnitWeeks   Unit = "weeks"
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
)

// AllUnits is the full allowlist, largest first.
var AllUnits = []Unit{UnitWeeks, UnitDays, UnitHours, UnitMinutes}

// MinutesToDuration splits a minute count into weeks/days/hours/minutes.
// Negative input is treated as zero.
//
//	MinutesToDuration(90)    → {0,0,1,30}
//	MinutesToDuration(10080) → {1,0,0,0}
func MinutesToDuration(minutes int) Duration {
	if minutes < 0 {
		minutes = 0
	}
	const (
		minutesPerHour = 60
		minutesPerDay  = 24 * minutesPerHour
		minutesPerWeek = 7 * minutesPerDay
	)
	d := Duration{}
	d.Weeks = minutes / minutesPerWeek
	minutes %= minutesPerWeek
	d.Days = minutes / minutesPerDay
	minutes %= minutesPerDay
	d.Hours = minutes / minutesPerHour
	d.Minutes = minutes % minutesPerHour
	return d
}

// FormatDuration renders d as a locale-aware phrase, including only the
// units on the allowlist and skipping zero components. A duration with no
// printable component renders as the localized zero-minutes phrase.
func FormatDuration(d Duration, units []Unit, lang language.Tag) string {
	p := printer(lang)

	allowed := make(map[Unit]struct{}, len(units))
	for _, u := range units {
		allowed[u] = struct{}{}
	}

	parts := make([]string, 0, 4)
	appendPart := func(u Unit, key string, n int) {
		if n == 0 {
			return
		}
		if _, ok := allowed[u]; !ok {
			return
		}
		parts = append(parts, p.Sprintf(key, n))
	}
	appendPart(UnitWeeks, "%d weeks", d.Weeks)
	appendPart(UnitDays, "%d days", d.Days)
	appendPart(UnitHours, "%d hours", d.Hours)
	appendPart(UnitMinutes, "%d minutes", d.Minutes)

	if len(parts) == 0 {
		return p.Sprintf("%d minutes", 0)
	}
	return strings.Join(parts, " ")
}

// FormatMinutes is the common breakdown-then-phrase path.
func FormatMinutes(minutes int, units []Unit, lang language.Tag) string {
	return FormatDuration(MinutesToDuration(minutes), units, lang)
}
