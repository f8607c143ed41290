package diagnosis

import "github.com/abhisek/lingoflow/internal/exercise"

// Service classifies answers with a rule chain.
type Service struct {
	classifiers []Classifier
}

// NewService creates a diagnosis service using DefaultClassifiers.
func NewService() *Service {
	return &Service{classifiers: DefaultClassifiers()}
}

// NewServiceWithClassifiers creates a service with a custom rule chain.
func NewServiceWithClassifiers(classifiers []Classifier) *Service {
	return &Service{classifiers: classifiers}
}

// Diagnose classifies a submitted answer. Correct answers yield ErrorNone.
// A wrong answer no rule recognizes is reported as grammar_or_vocab.
func (s *Service) Diagnose(q exercise.Question, submitted string) *DiagnosisResult {
	if q.IsCorrect(submitted) {
		return &DiagnosisResult{ErrorType: ErrorNone, ClassifierName: "none"}
	}

	et, name := RunClassifiers(s.classifiers, &ClassifyInput{Question: q, Submitted: submitted})
	if et == "" {
		return &DiagnosisResult{ErrorType: ErrorGrammarOrVocab, ClassifierName: "fallback"}
	}
	return &DiagnosisResult{ErrorType: et, ClassifierName: name}
}

// Classify is Diagnose with the default rule chain.
func Classify(q exercise.Question, submitted string) ErrorType {
	return defaultService.Diagnose(q, submitted).ErrorType
}

var defaultService = NewService()
