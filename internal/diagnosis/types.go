package diagnosis

import "github.com/abhisek/lingoflow/internal/exercise"

// ErrorType classifies a wrong answer.
type ErrorType string

const (
	ErrorNone              ErrorType = "none"
	ErrorMissingAnswer     ErrorType = "missing_answer"
	ErrorWordOrder         ErrorType = "word_order"
	ErrorMissingWord       ErrorType = "missing_word"
	ErrorGrammarOrVocab    ErrorType = "grammar_or_vocab"
	ErrorDictationMismatch ErrorType = "dictation_mismatch"
	ErrorClozeChoice       ErrorType = "cloze_choice"
	ErrorWrongOption       ErrorType = "wrong_option"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Question  exercise.Question
	Submitted string
}

// DiagnosisResult is the output of classifying an answer.
type DiagnosisResult struct {
	ErrorType      ErrorType
	ClassifierName string // which rule produced the result
}
