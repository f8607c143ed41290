package session

import (
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

// Status is the lifecycle state of an active session.
type Status string

const (
	StatusCreated   Status = "created"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

// StatusOf derives the state of s at now. Completion wins over expiry.
func StatusOf(s *store.ActiveSession, now time.Time) Status {
	switch {
	case s.Completed:
		return StatusCompleted
	case now.After(s.ExpiresAt):
		return StatusExpired
	default:
		return StatusCreated
	}
}

// Scoreable reports whether a session in this state can still be completed.
func (s Status) Scoreable() bool {
	return s == StatusCreated
}
