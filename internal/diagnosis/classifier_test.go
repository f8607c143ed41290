package diagnosis

import (
	"testing"

	"github.com/abhisek/lingoflow/internal/exercise"
)

func buildQuestion(answer string) *exercise.SentenceBuild {
	return &exercise.SentenceBuild{Base: exercise.Base{ID: "b", Answer: answer, AcceptedAnswers: exercise.AcceptedAnswers(answer)}}
}

func TestClassify_SentenceBuild(t *testing.T) {
	q := buildQuestion("Hola amigo")

	tests := []struct {
		submitted string
		want      ErrorType
	}{
		{"Hola amigo", ErrorNone},
		{"hola, amigo!", ErrorNone},
		{"amigo Hola", ErrorWordOrder},
		{"", ErrorMissingAnswer},
		{" ?! ", ErrorMissingAnswer},
		{"Hola", ErrorMissingWord},
		{"Hola amiga", ErrorGrammarOrVocab},
		{"Hola amigo amigo", ErrorGrammarOrVocab},
	}
	for _, tt := range tests {
		got := Classify(q, tt.submitted)
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.submitted, got, tt.want)
		}
	}
}

func TestClassify_WordOrderCountsDuplicates(t *testing.T) {
	q := buildQuestion("Yo sé que yo puedo")
	if got := Classify(q, "yo yo sé que puedo"); got != ErrorWordOrder {
		t.Errorf("got %q, want %q", got, ErrorWordOrder)
	}
	if got := Classify(q, "yo sé que sé puedo"); got != ErrorGrammarOrVocab {
		t.Errorf("got %q, want %q", got, ErrorGrammarOrVocab)
	}
}

func TestClassify_OtherKinds(t *testing.T) {
	base := exercise.Base{ID: "x", Answer: "Hola amigo"}
	tests := []struct {
		name string
		q    exercise.Question
		want ErrorType
	}{
		{"dictation", &exercise.Dictation{Base: base}, ErrorDictationMismatch},
		{"cloze", &exercise.Cloze{Base: base, ClozeAnswer: "amigo"}, ErrorClozeChoice},
		{"multiple choice", &exercise.MultipleChoice{Base: base}, ErrorWrongOption},
		{"dialogue", &exercise.Dialogue{Base: base}, ErrorWrongOption},
	}
	for _, tt := range tests {
		// Word-order mistakes only matter for sentence builds.
		if got := Classify(tt.q, "amigo Hola"); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRunClassifiers_FirstMatchWins(t *testing.T) {
	in := &ClassifyInput{Question: buildQuestion("uno dos"), Submitted: ""}
	et, name := RunClassifiers(DefaultClassifiers(), in)
	if et != ErrorMissingAnswer || name != "missing-answer" {
		t.Errorf("got (%q, %q), want (missing_answer, missing-answer)", et, name)
	}

	et, name = RunClassifiers(nil, in)
	if et != "" || name != "" {
		t.Errorf("empty chain got (%q, %q)", et, name)
	}
}

func TestService_FallbackWithoutRules(t *testing.T) {
	svc := NewServiceWithClassifiers(nil)
	res := svc.Diagnose(&exercise.MultipleChoice{Base: exercise.Base{Answer: "a"}}, "b")
	if res.ErrorType != ErrorGrammarOrVocab || res.ClassifierName != "fallback" {
		t.Errorf("got %+v", res)
	}

	res = svc.Diagnose(&exercise.MultipleChoice{Base: exercise.Base{Answer: "a"}}, "A.")
	if res.ErrorType != ErrorNone {
		t.Errorf("correct answer got %q", res.ErrorType)
	}
}
