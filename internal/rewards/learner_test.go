package rewards

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(d int) *time.Time {
		v := time.Date(2026, 3, d, 23, 59, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first session", 0, nil, 1},
		{"same day", 4, day(10), 4},
		{"next day", 4, day(9), 5},
		{"gap", 4, day(7), 1},
		{"clock skew", 4, day(11), 4},
	}
	for _, tt := range tests {
		if got := NextStreak(tt.current, tt.last, today); got != tt.want {
			t.Errorf("%s: NextStreak = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestHeartsAfter(t *testing.T) {
	tests := []struct {
		hearts, mistakes, want int
	}{
		{5, 0, 5},
		{5, 2, 5},
		{5, 3, 4},
		{5, 8, 3},
		{1, 9, 0},
		{0, 3, 0},
		{5, -6, 5},
	}
	for _, tt := range tests {
		if got := HeartsAfter(tt.hearts, tt.mistakes); got != tt.want {
			t.Errorf("HeartsAfter(%d, %d) = %d, want %d", tt.hearts, tt.mistakes, got, tt.want)
		}
	}
}

func TestLearnerLevel(t *testing.T) {
	tests := []struct {
		xp, want int
	}{
		{0, 1},
		{149, 1},
		{150, 2},
		{299, 2},
		{450, 4},
		{-10, 1},
	}
	for _, tt := range tests {
		if got := LearnerLevel(tt.xp); got != tt.want {
			t.Errorf("LearnerLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}
