// Package timex holds JSON-friendly wrappers around time types: durations
// that accept "90s"-style strings, and timestamps that tolerate the ISO-8601
// variants different backends emit.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration is a DTO for JSON unmarshalling. JSON may specify the value
// either as a string like "3s" or as integer nanoseconds. After parsing,
// copy the value into a plain time.Duration.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}
