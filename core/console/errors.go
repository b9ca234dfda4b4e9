package console

import "errors"

var (
	// ErrStaleResponse is returned for responses older than the last applied one.
	ErrStaleResponse = errors.New("stale response")

	// ErrSessionNotFound is returned for unknown session ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRowNotFound is returned when the adapter cannot resolve a row.
	ErrRowNotFound = errors.New("row not found")
)
