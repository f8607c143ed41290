package grading

import (
	"errors"
	"testing"

	"github.com/abhisek/lingoflow/internal/diagnosis"
	"github.com/abhisek/lingoflow/internal/exercise"
)

func sampleSet() []exercise.Question {
	return []exercise.Question{
		&exercise.MultipleChoice{
			Base:    exercise.Base{ID: "q1", Answer: "¿Dónde está la estación?", AcceptedAnswers: []string{"¿Dónde está la estación"}},
			Options: []string{"¿Dónde está la estación?", "Tengo hambre."},
		},
		&exercise.SentenceBuild{
			Base:   exercise.Base{ID: "q2", Answer: "Hola amigo", AcceptedAnswers: []string{}},
			Tokens: []string{"amigo", "Hola"},
		},
		&exercise.Cloze{
			Base:        exercise.Base{ID: "q3", Answer: "Necesito una habitación."},
			ClozeText:   "____ una habitación.",
			ClozeAnswer: "Necesito",
		},
		&exercise.Dictation{
			Base:      exercise.Base{ID: "q4", Answer: "Me llamo Alex."},
			AudioText: "Me llamo Alex.",
		},
	}
}

func TestGrade(t *testing.T) {
	qs := sampleSet()
	r, err := Grade(qs, []exercise.Attempt{
		{QuestionID: "q1", SelectedOption: "¿Dónde está la estación?"},
		{QuestionID: "q2", BuiltSentence: "amigo Hola"},
		{QuestionID: "q3", SelectedOption: "necesito"},
		{QuestionID: "q4", TextAnswer: "me llamo alex"},
	})
	if err != nil {
		t.Fatalf("Grade() error: %v", err)
	}

	if r.Score != 3 || r.Mistakes != 1 {
		t.Errorf("score/mistakes = %d/%d, want 3/1", r.Score, r.Mistakes)
	}
	if r.MaxScore() != 4 {
		t.Errorf("MaxScore() = %d, want 4", r.MaxScore())
	}
	if r.AccuracyPercent() != 75 {
		t.Errorf("AccuracyPercent() = %v, want 75", r.AccuracyPercent())
	}
	if got := r.Outcomes[1].ErrorType; got != diagnosis.ErrorWordOrder {
		t.Errorf("q2 error = %q, want word_order", got)
	}
	for _, i := range []int{0, 2, 3} {
		if r.Outcomes[i].ErrorType != diagnosis.ErrorNone {
			t.Errorf("outcome %d error = %q, want none", i, r.Outcomes[i].ErrorType)
		}
	}
}

func TestGrade_UnknownQuestionRejectsBatch(t *testing.T) {
	_, err := Grade(sampleSet(), []exercise.Attempt{
		{QuestionID: "q1", SelectedOption: "x"},
		{QuestionID: "nope"},
	})
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("error = %v, want ErrUnknownQuestion", err)
	}
}

func TestGrade_RepeatedAttemptsWidenMaxScore(t *testing.T) {
	qs := sampleSet()[:2]
	var attempts []exercise.Attempt
	for i := 0; i < 3; i++ {
		attempts = append(attempts,
			exercise.Attempt{QuestionID: "q1", SelectedOption: "Tengo hambre."},
			exercise.Attempt{QuestionID: "q2", BuiltSentence: "Hola amigo"},
		)
	}
	r, err := Grade(qs, attempts)
	if err != nil {
		t.Fatal(err)
	}
	if r.MaxScore() != 6 {
		t.Errorf("MaxScore() = %d, want 6", r.MaxScore())
	}
	if r.Accuracy() != 0.5 {
		t.Errorf("Accuracy() = %v, want 0.5", r.Accuracy())
	}
}

func TestGrade_PartialBatchUsesQuestionCount(t *testing.T) {
	r, err := Grade(sampleSet(), []exercise.Attempt{{QuestionID: "q2", BuiltSentence: "Hola amigo"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.MaxScore() != 4 {
		t.Errorf("MaxScore() = %d, want 4", r.MaxScore())
	}
	if r.AccuracyPercent() != 25 {
		t.Errorf("AccuracyPercent() = %v, want 25", r.AccuracyPercent())
	}
}

func TestGrade_DoesNotMutateQuestions(t *testing.T) {
	qs := sampleSet()
	before, err := exercise.EncodeSet(qs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Grade(qs, []exercise.Attempt{{QuestionID: "q1", SelectedOption: "x"}}); err != nil {
		t.Fatal(err)
	}
	after, _ := exercise.EncodeSet(qs)
	if string(before) != string(after) {
		t.Error("Grade mutated the question set")
	}
}
