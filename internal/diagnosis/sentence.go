package diagnosis

import (
	"slices"

	"github.com/abhisek/lingoflow/internal/exercise"
)

// sentenceTokens returns the normalized expected and submitted tokens of a
// sentence-build question, or ok=false for any other variant.
func sentenceTokens(input *ClassifyInput) (expected, actual []string, ok bool) {
	q, ok := input.Question.(*exercise.SentenceBuild)
	if !ok {
		return nil, nil, false
	}
	return exercise.NormalizedTokens(q.Answer), exercise.NormalizedTokens(input.Submitted), true
}

// MissingAnswerClassifier flags a sentence build with no tokens submitted.
type MissingAnswerClassifier struct{}

func (c *MissingAnswerClassifier) Name() string { return "missing-answer" }

func (c *MissingAnswerClassifier) Classify(input *ClassifyInput) ErrorType {
	_, actual, ok := sentenceTokens(input)
	if ok && len(actual) == 0 {
		return ErrorMissingAnswer
	}
	return ""
}

// WordOrderClassifier flags a sentence build that uses exactly the expected
// words in a different order.
type WordOrderClassifier struct{}

func (c *WordOrderClassifier) Name() string { return "word-order" }

func (c *WordOrderClassifier) Classify(input *ClassifyInput) ErrorType {
	expected, actual, ok := sentenceTokens(input)
	if !ok || slices.Equal(expected, actual) {
		return ""
	}
	a := slices.Clone(expected)
	b := slices.Clone(actual)
	slices.Sort(a)
	slices.Sort(b)
	if slices.Equal(a, b) {
		return ErrorWordOrder
	}
	return ""
}

// MissingWordClassifier flags a sentence build shorter than the answer.
// Anything else wrong with a sentence build is a grammar or vocabulary slip.
type MissingWordClassifier struct{}

func (c *MissingWordClassifier) Name() string { return "missing-word" }

func (c *MissingWordClassifier) Classify(input *ClassifyInput) ErrorType {
	expected, actual, ok := sentenceTokens(input)
	if !ok {
		return ""
	}
	if len(actual) < len(expected) {
		return ErrorMissingWord
	}
	return ErrorGrammarOrVocab
}
