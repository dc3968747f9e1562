package format

import (
	"strings"
	"time"

	"github.com/meeplelog/meeplelog/internal/timex"
)

// inputDateLayout is the fixed layout of HTML date inputs.
const inputDateLayout = "2006-01-02"

// nowFn is a test seam for the current time.
var nowFn = time.Now

func parseISO(s string) (time.Time, error) {
	return timex.ParseISO(s)
}

// patternReplacer translates the settings date/time patterns (yyyy-MM-dd,
// HH:mm, ...) into Go reference layouts. Longest tokens first so yyyy wins
// over yy.
var patternReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// LayoutFromPattern converts a settings display pattern to a Go layout.
func LayoutFromPattern(pattern string) string {
	return patternReplacer.Replace(pattern)
}

// ToInputDate renders t as yyyy-MM-dd for a date input field. A nil or zero
// t yields the current date when fallbackNow is set, otherwise "".
func ToInputDate(t *time.Time, fallbackNow bool) string {
	if t == nil || t.IsZero() {
		if fallbackNow {
			return nowFn().Format(inputDateLayout)
		}
		return ""
	}
	return t.Format(inputDateLayout)
}

// ToDisplayDate parses a lenient ISO input and renders it with the
// settings-provided display pattern. Empty or malformed input renders as "";
// display formatting never fails.
func ToDisplayDate(s string, pattern string) string {
	if s == "" || pattern == "" {
		return ""
	}
	t, err := parseISO(s)
	if err != nil || t.IsZero() {
		return ""
	}
	return t.Format(LayoutFromPattern(pattern))
}

// FormatDate renders an already-parsed timestamp with a display pattern.
// The zero time renders as "".
func FormatDate(t time.Time, pattern string) string {
	if t.IsZero() || pattern == "" {
		return ""
	}
	return t.Format(LayoutFromPattern(pattern))
}
