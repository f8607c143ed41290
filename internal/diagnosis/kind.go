package diagnosis

import "github.com/abhisek/lingoflow/internal/exercise"

// KindClassifier assigns the fixed error type of each non-sentence variant.
type KindClassifier struct{}

func (c *KindClassifier) Name() string { return "kind" }

func (c *KindClassifier) Classify(input *ClassifyInput) ErrorType {
	switch input.Question.(type) {
	case *exercise.Dictation:
		return ErrorDictationMismatch
	case *exercise.Cloze:
		return ErrorClozeChoice
	case *exercise.MultipleChoice, *exercise.Dialogue:
		return ErrorWrongOption
	case *exercise.SentenceBuild:
		return ErrorGrammarOrVocab
	default:
		return ""
	}
}
