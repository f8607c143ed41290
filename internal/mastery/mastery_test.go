package mastery

import (
	"math"
	"testing"

	"github.com/abhisek/lingoflow/internal/corpus"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		accuracy   float64
		difficulty corpus.Level
		want       float64
	}{
		{0.6, corpus.LevelA1, 0},
		{1.0, corpus.LevelA1, 11.2},
		{0.0, corpus.LevelA2, -16.8},
		{1.0, corpus.LevelB1, 13.2},
		{1.0, corpus.LevelB2, 15.2},
		{0.5, corpus.LevelB2, 1.2},
	}
	for _, tt := range tests {
		got := Delta(tt.accuracy, tt.difficulty)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Delta(%v, %s) = %v, want %v", tt.accuracy, tt.difficulty, got, tt.want)
		}
	}
}

func TestApply_Clamps(t *testing.T) {
	m := 0.0
	for i := 0; i < 50; i++ {
		m = Apply(m, Delta(1, corpus.LevelB2))
		if m < Min || m > Max {
			t.Fatalf("mastery %v out of range after %d hits", m, i+1)
		}
	}
	if m != Max {
		t.Errorf("mastery = %v, want %v", m, Max)
	}

	for i := 0; i < 50; i++ {
		m = Apply(m, Delta(0, corpus.LevelA1))
		if m < Min || m > Max {
			t.Fatalf("mastery %v out of range after %d misses", m, i+1)
		}
	}
	if m != Min {
		t.Errorf("mastery = %v, want %v", m, Min)
	}

	if got := Clamp(math.NaN()); got != Min {
		t.Errorf("Clamp(NaN) = %v, want %v", got, Min)
	}
}

func TestLevelUnlocked(t *testing.T) {
	tests := []struct {
		mastery float64
		want    corpus.Level
	}{
		{0, corpus.LevelA1},
		{24.9, corpus.LevelA1},
		{25, corpus.LevelA2},
		{49.99, corpus.LevelA2},
		{50, corpus.LevelB1},
		{74.9, corpus.LevelB1},
		{75, corpus.LevelB2},
		{100, corpus.LevelB2},
	}
	for _, tt := range tests {
		if got := LevelUnlocked(tt.mastery); got != tt.want {
			t.Errorf("LevelUnlocked(%v) = %s, want %s", tt.mastery, got, tt.want)
		}
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(11.2000001); got != 11.2 {
		t.Errorf("Round1 = %v, want 11.2", got)
	}
	if got := Round1(-0.04); got != 0 {
		t.Errorf("Round1(-0.04) = %v, want 0", got)
	}
}
