package spacedrep

import (
	"math"
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

// Ease bounds and steps of the per-item schedule.
const (
	DefaultEase = 1.8
	MinEase     = 1.3
	MaxEase     = 2.5
	EaseGain    = 0.05
	EaseLoss    = 0.2
)

// UnknownErrorType is recorded on a miss whose error type is empty.
const UnknownErrorType = "unknown"

// ItemKey identifies one item of one learner.
type ItemKey struct {
	LearnerID string
	Language  string
	Category  string
	ItemID    string
}

// Review is the outcome of a single attempt at an item.
type Review struct {
	Correct   bool
	ErrorType string
	Objective string
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole UTC days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// IsDue reports whether the item is due on today. Items that were never
// scheduled are always due.
func IsDue(p store.ItemProgress, today time.Time) bool {
	if p.NextDue == nil {
		return true
	}
	return !Day(*p.NextDue).After(Day(today))
}

// Accuracy returns correct/attempts, or 0 for an item with no attempts.
func Accuracy(p store.ItemProgress) float64 {
	if p.Attempts <= 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Attempts)
}

// IntervalDays returns the review interval after an attempt.
func IntervalDays(correct bool, streak int, ease float64) int {
	if !correct {
		return 1
	}
	n := int(math.Round(float64(streak) * ease))
	if n < 1 {
		return 1
	}
	return n
}

// NextEase returns the ease after an attempt, rounded to two decimals and
// kept within [MinEase, MaxEase].
func NextEase(ease float64, correct bool) float64 {
	if correct {
		return math.Min(MaxEase, round2(ease+EaseGain))
	}
	return math.Max(MinEase, round2(ease-EaseLoss))
}

// Apply returns the item state after one reviewed attempt. prev is nil on
// the first encounter of the item.
func Apply(prev *store.ItemProgress, key ItemKey, r Review, today time.Time) store.ItemProgress {
	today = Day(today)

	next := store.ItemProgress{
		LearnerID: key.LearnerID,
		Language:  key.Language,
		Category:  key.Category,
		ItemID:    key.ItemID,
		Ease:      DefaultEase,
	}
	if prev != nil {
		next = *prev
		if next.Ease == 0 {
			next.Ease = DefaultEase
		}
	}

	next.Objective = r.Objective
	next.Ease = NextEase(next.Ease, r.Correct)
	next.Attempts++
	if r.Correct {
		next.Streak++
		next.Correct++
		next.LastErrorType = ""
	} else {
		next.Streak = 0
		next.ErrorCount++
		next.LastErrorType = r.ErrorType
		if next.LastErrorType == "" {
			next.LastErrorType = UnknownErrorType
		}
	}

	due := today.AddDate(0, 0, IntervalDays(r.Correct, next.Streak, next.Ease))
	seen := today
	next.LastSeen = &seen
	next.NextDue = &due
	return next
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
