package rewards

import (
	"testing"

	"github.com/abhisek/lingoflow/internal/corpus"
)

func TestXP(t *testing.T) {
	tests := []struct {
		name string
		in   XPInput
		want int
	}{
		{
			name: "perfect a1",
			in:   XPInput{Score: 10, MaxScore: 10, Difficulty: corpus.LevelA1},
			want: 36 + 8,
		},
		{
			name: "perfect b2",
			in:   XPInput{Score: 10, MaxScore: 10, Difficulty: corpus.LevelB2},
			want: 72 + 8,
		},
		{
			name: "solid a2 with a hint",
			in:   XPInput{Score: 8, MaxScore: 10, Mistakes: 2, HintsUsed: 1, Difficulty: corpus.LevelA2},
			// 36*1.25 + 4 - (4 + 1)
			want: 44,
		},
		{
			name: "weak b1",
			in:   XPInput{Score: 4, MaxScore: 10, Mistakes: 6, RevealedAnswers: 1, Difficulty: corpus.LevelB1},
			// 36*1.6 - (6 + 12 + 3) = 36.6
			want: 37,
		},
		{
			name: "floor",
			in:   XPInput{Score: 0, MaxScore: 10, Mistakes: 10, HintsUsed: 10, RevealedAnswers: 10, Difficulty: corpus.LevelA1},
			want: MinXP,
		},
		{
			name: "unknown level scales by one",
			in:   XPInput{Score: 6, MaxScore: 6, Difficulty: "c1"},
			want: 28 + 8,
		},
		{
			name: "negative counters ignored",
			in:   XPInput{Score: 10, MaxScore: 10, Mistakes: -4, HintsUsed: -2, Difficulty: corpus.LevelA1},
			want: 44,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XP(tt.in).XPGained
			if got != tt.want {
				t.Errorf("XP() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestXP_BetterSessionsEarnMore(t *testing.T) {
	for _, level := range corpus.Levels {
		for total := 6; total <= 15; total++ {
			for score := 1; score <= total; score++ {
				better := XP(XPInput{Score: score, MaxScore: total, Mistakes: total - score, Difficulty: level})
				worse := XP(XPInput{Score: score - 1, MaxScore: total, Mistakes: total - score + 1, HintsUsed: 1, RevealedAnswers: 1, Difficulty: level})
				if better.XPGained < worse.XPGained {
					t.Errorf("%s %d/%d: better=%d < worse=%d", level, score, total, better.XPGained, worse.XPGained)
				}
				if worse.XPGained > MinXP && better.XPGained <= worse.XPGained {
					t.Errorf("%s %d/%d: better=%d not above worse=%d", level, score, total, better.XPGained, worse.XPGained)
				}
			}
		}
	}
}

func TestChallengeFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Challenge
		bonus    int
	}{
		{0, ChallengeNone, 0},
		{0.749, ChallengeNone, 0},
		{0.75, ChallengeSolid, 4},
		{0.899, ChallengeSolid, 4},
		{0.9, ChallengeExcellent, 8},
		{1, ChallengeExcellent, 8},
	}
	for _, tt := range tests {
		got := ChallengeFor(tt.accuracy)
		if got != tt.want || got.Bonus() != tt.bonus {
			t.Errorf("ChallengeFor(%v) = %s (+%d), want %s (+%d)", tt.accuracy, got, got.Bonus(), tt.want, tt.bonus)
		}
	}
}

func TestLevelMultiplier(t *testing.T) {
	want := map[corpus.Level]float64{
		corpus.LevelA1: 1.0,
		corpus.LevelA2: 1.25,
		corpus.LevelB1: 1.6,
		corpus.LevelB2: 2.0,
	}
	for l, m := range want {
		if got := LevelMultiplier(l); got != m {
			t.Errorf("LevelMultiplier(%s) = %v, want %v", l, got, m)
		}
	}
}
