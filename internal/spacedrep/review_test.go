package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

var testKey = ItemKey{LearnerID: "u1", Language: "spanish", Category: "travel", ItemID: "sp-tr-1"}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay(t *testing.T) {
	in := time.Date(2025, 3, 9, 23, 59, 0, 0, time.FixedZone("x", -3*3600))
	got := Day(in)
	want := day(2025, 3, 10)
	if !got.Equal(want) {
		t.Errorf("Day() = %v, want %v", got, want)
	}
}

func TestApply_FirstCorrect(t *testing.T) {
	today := day(2025, 1, 1)
	got := Apply(nil, testKey, Review{Correct: true, Objective: "travel-a1-communication"}, today)

	if got.Ease != 1.85 {
		t.Errorf("ease = %v, want 1.85", got.Ease)
	}
	if got.Streak != 1 || got.Attempts != 1 || got.Correct != 1 || got.ErrorCount != 0 {
		t.Errorf("counters = %+v", got)
	}
	// round(1 * 1.85) = 2
	if want := day(2025, 1, 3); !got.NextDue.Equal(want) {
		t.Errorf("next due = %v, want %v", got.NextDue, want)
	}
	if got.LastErrorType != "" {
		t.Errorf("last error = %q, want empty", got.LastErrorType)
	}
	if got.ItemID != testKey.ItemID || got.LearnerID != testKey.LearnerID {
		t.Errorf("key not copied: %+v", got)
	}
}

func TestApply_FirstIncorrect(t *testing.T) {
	today := day(2025, 1, 1)
	got := Apply(nil, testKey, Review{Correct: false}, today)

	if got.Ease != 1.6 {
		t.Errorf("ease = %v, want 1.6", got.Ease)
	}
	if got.Streak != 0 || got.ErrorCount != 1 || got.Correct != 0 {
		t.Errorf("counters = %+v", got)
	}
	if got.LastErrorType != UnknownErrorType {
		t.Errorf("last error = %q, want %q", got.LastErrorType, UnknownErrorType)
	}
	if want := day(2025, 1, 2); !got.NextDue.Equal(want) {
		t.Errorf("next due = %v, want %v", got.NextDue, want)
	}
}

func TestApply_StreakGrowsInterval(t *testing.T) {
	today := day(2025, 1, 1)
	prev := &store.ItemProgress{
		LearnerID: "u1", ItemID: "sp-tr-1",
		Ease: 2.0, Streak: 3, Attempts: 5, Correct: 4, ErrorCount: 1,
		LastErrorType: "word_order",
	}
	got := Apply(prev, testKey, Review{Correct: true}, today)

	if got.Streak != 4 {
		t.Errorf("streak = %d, want 4", got.Streak)
	}
	if got.Ease != 2.05 {
		t.Errorf("ease = %v, want 2.05", got.Ease)
	}
	// round(4 * 2.05) = 8
	if want := day(2025, 1, 9); !got.NextDue.Equal(want) {
		t.Errorf("next due = %v, want %v", got.NextDue, want)
	}
	if got.Attempts != 6 || got.Correct != 5 || got.ErrorCount != 1 {
		t.Errorf("counters = %+v", got)
	}
	if got.LastErrorType != "" {
		t.Errorf("last error = %q, want cleared", got.LastErrorType)
	}
	if prev.Streak != 3 {
		t.Error("Apply mutated prev")
	}
}

func TestApply_MissResetsStreak(t *testing.T) {
	prev := &store.ItemProgress{Ease: 2.2, Streak: 6, Attempts: 6, Correct: 6}
	got := Apply(prev, testKey, Review{Correct: false, ErrorType: "missing_word"}, day(2025, 2, 1))
	if got.Streak != 0 {
		t.Errorf("streak = %d, want 0", got.Streak)
	}
	if got.Ease != 2.0 {
		t.Errorf("ease = %v, want 2.0", got.Ease)
	}
	if got.LastErrorType != "missing_word" {
		t.Errorf("last error = %q, want missing_word", got.LastErrorType)
	}
}

func TestApply_EaseStaysInBounds(t *testing.T) {
	today := day(2025, 1, 1)
	var p *store.ItemProgress
	for i := 0; i < 50; i++ {
		next := Apply(p, testKey, Review{Correct: true}, today)
		p = &next
		if p.Ease < MinEase || p.Ease > MaxEase {
			t.Fatalf("ease %v out of bounds after %d hits", p.Ease, i+1)
		}
	}
	if p.Ease != MaxEase {
		t.Errorf("ease = %v, want %v", p.Ease, MaxEase)
	}
	for i := 0; i < 50; i++ {
		next := Apply(p, testKey, Review{Correct: false}, today)
		p = &next
		if p.Ease < MinEase || p.Ease > MaxEase {
			t.Fatalf("ease %v out of bounds after %d misses", p.Ease, i+1)
		}
	}
	if p.Ease != MinEase {
		t.Errorf("ease = %v, want %v", p.Ease, MinEase)
	}
}

func TestApply_NextDueNeverBeforeToday(t *testing.T) {
	today := day(2025, 6, 15)
	for _, correct := range []bool{true, false} {
		got := Apply(&store.ItemProgress{Ease: MinEase}, testKey, Review{Correct: correct}, today.Add(15*time.Hour))
		if got.NextDue.Before(today) || got.NextDue.Equal(today) {
			t.Errorf("correct=%v: next due %v not after %v", correct, got.NextDue, today)
		}
	}
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		correct bool
		streak  int
		ease    float64
		want    int
	}{
		{false, 5, 2.5, 1},
		{true, 0, 2.5, 1},
		{true, 1, 1.3, 1},
		{true, 2, 1.3, 3},
		{true, 3, 2.5, 8},
	}
	for _, tt := range tests {
		got := IntervalDays(tt.correct, tt.streak, tt.ease)
		if got != tt.want {
			t.Errorf("IntervalDays(%v, %d, %v) = %d, want %d", tt.correct, tt.streak, tt.ease, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween() = %d, want 1", got)
	}
	if got := DaysBetween(b, b); got != 0 {
		t.Errorf("DaysBetween(same) = %d, want 0", got)
	}
}
