// Package common defines shared constants and sentinel errors used across
// the MeepleLog layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotFound is returned when the backend reports that an entity does
	// not (or no longer does) exist. Pages render a guard state for it
	// instead of treating it as a hard failure.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers transport-level failures: connection refused,
	// request timeout, cancelled context. No automatic retry is attempted.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrInvalid marks input rejected by client-side validation before any
	// network call is made.
	ErrInvalid = errors.New("validation failed")

	// ErrInternal is the generic internal flow-control error.
	ErrInternal = errors.New("internal error")
)

// RequestIDHeaderName is the HTTP header carrying the per-request id on
// outbound backend calls.
const RequestIDHeaderName = "X-Request-Id"
