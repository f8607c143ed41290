package exercise

import (
	"github.com/abhisek/lingoflow/internal/corpus"
)

// Kind tags a question variant on the wire.
type Kind string

const (
	KindMultipleChoice Kind = "mc_sentence"
	KindSentenceBuild  Kind = "build_sentence"
	KindCloze          Kind = "cloze_sentence"
	KindDictation      Kind = "dictation_sentence"
	KindDialogue       Kind = "dialogue_turn"
)

// Rotation is the order in which question kinds are assigned to the
// selected items of a session.
var Rotation = []Kind{
	KindMultipleChoice,
	KindSentenceBuild,
	KindCloze,
	KindDictation,
	KindDialogue,
}

// Question is one generated exercise. The set of implementations is closed:
// *MultipleChoice, *SentenceBuild, *Cloze, *Dictation and *Dialogue.
type Question interface {
	Kind() Kind

	// Common returns the fields shared by every variant.
	Common() *Base

	// Submitted extracts the learner's answer from an attempt.
	Submitted(a Attempt) string

	// IsCorrect reports whether a submitted answer is accepted.
	IsCorrect(submitted string) bool

	isQuestion()
}

// Base holds the fields common to all question variants.
type Base struct {
	ID              string       `json:"id"`
	Level           corpus.Level `json:"level"`
	Prompt          string       `json:"prompt"`
	Answer          string       `json:"answer"`
	AcceptedAnswers []string     `json:"acceptedAnswers"`
	Objective       string       `json:"objective"`
}

func (b *Base) Common() *Base { return b }

func (b *Base) isQuestion() {}

// IsCorrect matches the normalized submission against the answer and every
// accepted variant.
func (b *Base) IsCorrect(submitted string) bool {
	got := Normalize(submitted)
	for _, v := range append([]string{b.Answer}, b.AcceptedAnswers...) {
		want := Normalize(v)
		if want != "" && want == got {
			return true
		}
	}
	return false
}

// MultipleChoice asks the learner to pick the target sentence.
type MultipleChoice struct {
	Base
	Options []string
}

func (*MultipleChoice) Kind() Kind { return KindMultipleChoice }

func (*MultipleChoice) Submitted(a Attempt) string { return a.SelectedOption }

// Dialogue asks the learner to pick the best conversational response.
type Dialogue struct {
	Base
	Options []string
}

func (*Dialogue) Kind() Kind { return KindDialogue }

func (*Dialogue) Submitted(a Attempt) string { return a.SelectedOption }

// Cloze asks the learner to fill one masked token.
type Cloze struct {
	Base
	ClozeText    string
	ClozeAnswer  string
	ClozeOptions []string
}

func (*Cloze) Kind() Kind { return KindCloze }

func (*Cloze) Submitted(a Attempt) string { return a.SelectedOption }

// IsCorrect compares against the masked token only.
func (q *Cloze) IsCorrect(submitted string) bool {
	return Normalize(submitted) == Normalize(q.ClozeAnswer)
}

// SentenceBuild asks the learner to arrange tokens into the target sentence.
type SentenceBuild struct {
	Base
	Tokens []string
}

func (*SentenceBuild) Kind() Kind { return KindSentenceBuild }

func (*SentenceBuild) Submitted(a Attempt) string { return a.BuiltSentence }

// Dictation is a sentence build driven by audio of the target sentence.
type Dictation struct {
	Base
	Tokens    []string
	AudioText string
}

func (*Dictation) Kind() Kind { return KindDictation }

// Submitted prefers the built sentence and falls back to a typed answer.
func (*Dictation) Submitted(a Attempt) string {
	if a.BuiltSentence != "" {
		return a.BuiltSentence
	}
	return a.TextAnswer
}

// Attempt is a learner's answer to one question.
type Attempt struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption,omitempty"`
	BuiltSentence  string `json:"builtSentence,omitempty"`
	TextAnswer     string `json:"textAnswer,omitempty"`
}
