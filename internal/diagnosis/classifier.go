package diagnosis

// Classifier is a rule-based error classifier.
// Returns an error type, or "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) ErrorType
}

// DefaultClassifiers returns classifiers in priority order. The sentence
// rules only fire for sentence-build questions; the kind rule closes the
// chain for every other variant.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&MissingAnswerClassifier{},
		&WordOrderClassifier{},
		&MissingWordClassifier{},
		&KindClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorType, string) {
	for _, c := range classifiers {
		if et := c.Classify(input); et != "" {
			return et, c.Name()
		}
	}
	return "", ""
}
