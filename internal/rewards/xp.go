// Package rewards computes the XP, streak, hearts and learner level earned
// by completing a practice session.
package rewards

import (
	"math"

	"github.com/abhisek/lingoflow/internal/corpus"
)

const (
	// BaseXP is awarded for any completed session before scaling.
	BaseXP = 16
	// XPPerQuestion is added per question in the effective max score.
	XPPerQuestion = 2
	// MinXP is the floor for a single session.
	MinXP = 4

	LowAccuracy        = 0.5
	LowAccuracyPenalty = 6
	MistakePenalty     = 2
	HintPenalty        = 1
	RevealPenalty      = 3
)

// LevelMultiplier returns the XP multiplier of a session difficulty.
// Unknown levels scale by 1.
func LevelMultiplier(l corpus.Level) float64 {
	switch l {
	case corpus.LevelA1:
		return 1.0
	case corpus.LevelA2:
		return 1.25
	case corpus.LevelB1:
		return 1.6
	case corpus.LevelB2:
		return 2.0
	default:
		return 1
	}
}

// Challenge is the accuracy tier of a finished session.
type Challenge string

const (
	ChallengeNone      Challenge = "none"
	ChallengeSolid     Challenge = "solid"
	ChallengeExcellent Challenge = "excellent"
)

// ChallengeFor returns the tier reached at accuracy (0.0-1.0).
func ChallengeFor(accuracy float64) Challenge {
	switch {
	case accuracy >= 0.9:
		return ChallengeExcellent
	case accuracy >= 0.75:
		return ChallengeSolid
	default:
		return ChallengeNone
	}
}

// Bonus returns the flat XP bonus of the tier.
func (c Challenge) Bonus() int {
	switch c {
	case ChallengeExcellent:
		return 8
	case ChallengeSolid:
		return 4
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the tier.
func (c Challenge) DisplayName() string {
	switch c {
	case ChallengeExcellent:
		return "Excellent"
	case ChallengeSolid:
		return "Solid"
	default:
		return "Keep going"
	}
}

// XPInput is the session outcome XP is computed from.
type XPInput struct {
	Score           int
	MaxScore        int // effective max score
	Mistakes        int
	HintsUsed       int
	RevealedAnswers int
	Difficulty      corpus.Level
}

// XPResult is the XP award with its components.
type XPResult struct {
	Accuracy   float64
	Challenge  Challenge
	Multiplier float64
	Penalty    int
	XPGained   int
}

// XP computes the award for a completed session. Negative mistake, hint
// and reveal counts are treated as zero.
func XP(in XPInput) XPResult {
	var accuracy float64
	if in.MaxScore > 0 {
		accuracy = float64(in.Score) / float64(in.MaxScore)
	}

	penalty := max(0, in.Mistakes)*MistakePenalty +
		max(0, in.HintsUsed)*HintPenalty +
		max(0, in.RevealedAnswers)*RevealPenalty
	if accuracy < LowAccuracy {
		penalty += LowAccuracyPenalty
	}

	challenge := ChallengeFor(accuracy)
	mult := LevelMultiplier(in.Difficulty)
	base := float64(BaseXP + max(0, in.MaxScore)*XPPerQuestion)
	xp := int(math.Round(base*mult + float64(challenge.Bonus()-penalty)))

	return XPResult{
		Accuracy:   accuracy,
		Challenge:  challenge,
		Multiplier: mult,
		Penalty:    penalty,
		XPGained:   max(MinXP, xp),
	}
}
