package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var relNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestRelativeTime_Phrases(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", relNow.Add(-2 * time.Hour), "today"},
		{"late yesterday", time.Date(2024, 6, 14, 23, 30, 0, 0, time.UTC), "yesterday"},
		{"three days", relNow.AddDate(0, 0, -3), "3 days ago"},
		{"two weeks", relNow.AddDate(0, 0, -14), "2 weeks ago"},
		{"two months", relNow.AddDate(0, 0, -61), "2 months ago"},
		{"two years", relNow.AddDate(-2, 0, -5), "2 years ago"},
		{"future clamps", relNow.AddDate(0, 0, 3), "today"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RelativeTime(tc.t, relNow, language.English))
		})
	}
}

func TestRelativeTime_ZeroTimeIsEmpty(t *testing.T) {
	require.Equal(t, "", RelativeTime(time.Time{}, relNow, language.English))
}

func TestRelativeTime_Dutch(t *testing.T) {
	require.Equal(t, "gisteren", RelativeTime(relNow.AddDate(0, 0, -1), relNow, language.Dutch))
	require.Equal(t, "3 dagen geleden", RelativeTime(relNow.AddDate(0, 0, -3), relNow, language.Dutch))
}

func TestRelativeTimeString(t *testing.T) {
	require.Equal(t, "yesterday", RelativeTimeString("2024-06-14T20:00:00Z", relNow, language.English))
	require.Equal(t, "", RelativeTimeString("not-a-date", relNow, language.English))
	require.Equal(t, "", RelativeTimeString("", relNow, language.English))
}
