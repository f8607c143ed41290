// Package mastery tracks the 0-100 category mastery score and the level
// band it unlocks.
package mastery

import (
	"math"

	"github.com/abhisek/lingoflow/internal/corpus"
)

const (
	Min = 0.0
	Max = 100.0

	// Pivot is the session accuracy at which mastery stays flat before
	// the difficulty bonus.
	Pivot = 0.6
	// Gain scales the accuracy deviation from Pivot.
	Gain = 28.0

	// MasteredThreshold marks a category as mastered in stats.
	MasteredThreshold = 75.0
)

// unlock thresholds, highest first.
var unlocks = []struct {
	min   float64
	level corpus.Level
}{
	{75, corpus.LevelB2},
	{50, corpus.LevelB1},
	{25, corpus.LevelA2},
}

// DifficultyBonus is the extra mastery awarded for practicing at a harder
// level.
func DifficultyBonus(difficulty corpus.Level) float64 {
	switch difficulty {
	case corpus.LevelB2:
		return 4
	case corpus.LevelB1:
		return 2
	default:
		return 0
	}
}

// Delta returns the mastery change for a session at the given accuracy
// (0.0-1.0) and difficulty.
func Delta(accuracy float64, difficulty corpus.Level) float64 {
	return (accuracy-Pivot)*Gain + DifficultyBonus(difficulty)
}

// Apply adds delta to old and clamps the result to [Min, Max].
func Apply(old, delta float64) float64 {
	return Clamp(old + delta)
}

// Clamp bounds m to [Min, Max]. NaN collapses to Min.
func Clamp(m float64) float64 {
	if math.IsNaN(m) {
		return Min
	}
	return math.Max(Min, math.Min(Max, m))
}

// LevelUnlocked returns the highest level band unlocked at mastery m.
func LevelUnlocked(m float64) corpus.Level {
	for _, u := range unlocks {
		if m >= u.min {
			return u.level
		}
	}
	return corpus.LevelA1
}

// Round1 rounds m to one decimal place for display.
func Round1(m float64) float64 {
	return math.Round(m*10) / 10
}
