package rewards

import (
	"time"

	"github.com/abhisek/lingoflow/internal/spacedrep"
)

const (
	// MistakesPerHeart is how many mistakes cost one heart.
	MistakesPerHeart = 3
	// XPPerLearnerLevel is the XP needed per learner level.
	XPPerLearnerLevel = 150
)

// NextStreak returns the day streak after completing a session today.
// A session on the day after the last completion extends the streak, a
// later one restarts it, and a second session on the same day keeps it.
func NextStreak(current int, lastCompleted *time.Time, today time.Time) int {
	if lastCompleted == nil {
		return 1
	}
	diff := spacedrep.DaysBetween(*lastCompleted, today)
	switch {
	case diff == 1:
		return current + 1
	case diff > 1:
		return 1
	default:
		return current
	}
}

// HeartsAfter returns the hearts left after a session with the given
// mistakes. Hearts never drop below zero.
func HeartsAfter(hearts, mistakes int) int {
	lost := max(0, mistakes) / MistakesPerHeart
	return max(0, hearts-lost)
}

// LearnerLevel returns the learner level for a lifetime XP total.
func LearnerLevel(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return max(1, 1+totalXP/XPPerLearnerLevel)
}
