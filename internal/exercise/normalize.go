package exercise

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/lingoflow/internal/corpus"
)

// stripped is the punctuation removed before comparing answers.
var stripped = strings.NewReplacer(
	".", "", ",", "", "!", "", "?", "",
	";", "", ":", "", "¿", "", "¡", "",
)

// Normalize lowercases s, removes comparison punctuation, collapses runs of
// whitespace and trims the result. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = stripped.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizedTokens splits the normalized form of s into words.
func NormalizedTokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// AcceptedAnswers returns the target without trailing terminal punctuation,
// or an empty list when stripping changes nothing.
func AcceptedAnswers(target string) []string {
	compact := strings.TrimSpace(target)
	if compact == "" {
		return []string{}
	}
	bare := strings.TrimRight(compact, ".!?")
	if bare != compact {
		return []string{bare}
	}
	return []string{}
}

// Objective returns the learning objective tag for an item.
func Objective(category string, level corpus.Level) string {
	if category == "grammar" {
		switch level {
		case corpus.LevelA1:
			return "present-and-past-basics"
		case corpus.LevelA2:
			return "future-and-conditionals"
		case corpus.LevelB1:
			return "perfect-and-hypothetical"
		default:
			return "advanced-complex-tenses"
		}
	}
	return category + "-" + string(level) + "-communication"
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
