package exercise

import "github.com/abhisek/lingoflow/internal/corpus"

// Recent-accuracy thresholds that move the recommended level.
const (
	RaiseAccuracy = 0.88
	LowerAccuracy = 0.55
)

// BaselineLevel maps category mastery to a level band.
func BaselineLevel(mastery float64) corpus.Level {
	switch {
	case mastery < 20:
		return corpus.LevelA1
	case mastery < 45:
		return corpus.LevelA2
	case mastery < 70:
		return corpus.LevelB1
	default:
		return corpus.LevelB2
	}
}

// ResolveLevel picks the recommended level of a session. Recent accuracy
// (nil when the learner has no sessions in the category) moves the baseline
// by one band; the result never drops more than one band below selfRated.
func ResolveLevel(mastery float64, recentAccuracy *float64, selfRated corpus.Level) corpus.Level {
	rank := BaselineLevel(mastery).Rank()

	if recentAccuracy != nil {
		if *recentAccuracy >= RaiseAccuracy {
			rank++
		}
		if *recentAccuracy <= LowerAccuracy {
			rank--
		}
	}

	if sr := selfRated.Rank(); sr >= 0 && rank < sr-1 {
		rank = sr - 1
	}

	return corpus.LevelFromRank(rank)
}
