package clock

import "time"

// Clock abstracts time to keep services deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f).UTC()
}

// Manual is a test clock that only moves when advanced.
type Manual struct {
	T time.Time
}

func (m *Manual) Now() time.Time {
	return m.T.UTC()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.T = m.T.Add(d)
}
