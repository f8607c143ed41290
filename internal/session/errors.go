package session

import "errors"

// Error taxonomy of the session operations. Every error returned by
// Service wraps at most one of these.
var (
	// ErrInvalidRequest covers missing or malformed fields, oversized
	// attempt batches, metadata mismatches and attempts that reference a
	// question outside the session.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned for unknown sessions and for categories with
	// no corpus items.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the session was already completed.
	ErrConflict = errors.New("session already completed")

	// ErrGone is returned when the session expired before completion.
	ErrGone = errors.New("session expired")
)
