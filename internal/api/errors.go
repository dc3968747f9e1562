package api

import "fmt"

// ServerError is a structured 4xx/5xx response from the backend. Reason is
// the machine-readable code the notification layer maps to a user-facing
// message.
type ServerError struct {
	StatusCode int    `json:"-"`
	Reason     string `json:"reason"`
	Message    string `json:"message,omitempty"`
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("backend error %d (%s)", e.StatusCode, e.Reason)
}
