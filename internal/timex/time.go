package timex

import (
	"encoding/json"
	"strings"
	"time"
)

// isoLayouts are the timestamp shapes the backend has been observed to emit,
// most specific first. Every accessor relies on this lenient decoding; it is
// the one global convention of the API boundary.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time decodes ISO-8601 timestamps with or without zone, fraction, or time
// part. null and "" decode to the zero value. It marshals back as RFC 3339.
type Time struct {
	time.Time
}

// ParseISO parses s against the known ISO layouts. Zoneless layouts are
// interpreted as UTC.
func ParseISO(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseISO(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time { return Time{Time: t} }
