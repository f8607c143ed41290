package corpus

import "fmt"

// Level is a CEFR-style difficulty band.
type Level string

const (
	LevelA1 Level = "a1"
	LevelA2 Level = "a2"
	LevelB1 Level = "b1"
	LevelB2 Level = "b2"
)

// Levels lists all bands in ascending difficulty.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2}

// Rank returns the 0-based position of the level in Levels, or -1 if the
// level is unknown.
func (l Level) Rank() int {
	switch l {
	case LevelA1:
		return 0
	case LevelA2:
		return 1
	case LevelB1:
		return 2
	case LevelB2:
		return 3
	default:
		return -1
	}
}

// Valid reports whether l is one of the known bands.
func (l Level) Valid() bool {
	return l.Rank() >= 0
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// ClampRank limits rank to the valid range of Levels.
func ClampRank(rank int) int {
	if rank < 0 {
		return 0
	}
	if rank > len(Levels)-1 {
		return len(Levels) - 1
	}
	return rank
}

// LevelFromRank returns the level at rank, clamped to the valid range.
func LevelFromRank(rank int) Level {
	return Levels[ClampRank(rank)]
}

// ParseLevel parses a level string such as "b1".
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}
