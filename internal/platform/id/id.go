package id

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Sequence returns prefix-1, prefix-2, ... for tests.
type Sequence struct {
	Prefix string
	n      int
}

func (s *Sequence) New() string {
	s.n++
	return s.Prefix + "-" + strconv.Itoa(s.n)
}
