package exercise

import (
	"reflect"
	"testing"

	"github.com/abhisek/lingoflow/internal/corpus"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hola,  ¿Cómo estás? ", "hola cómo estás"},
		{"¡Buenos días!", "buenos días"},
		{"  Привет,   как дела? ", "привет как дела"},
		{"a;b:c.d", "abcd"},
		{"Tab\tand\nnewline", "tab and newline"},
		{"", ""},
		{"?!.", ""},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

func TestAcceptedAnswers(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hola amigo.", []string{"Hola amigo"}},
		{"¿Dónde está?!", []string{"¿Dónde está"}},
		{"Hola amigo", []string{}},
		{"   ", []string{}},
	}
	for _, tt := range tests {
		got := AcceptedAnswers(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AcceptedAnswers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestObjective(t *testing.T) {
	tests := []struct {
		category string
		level    corpus.Level
		want     string
	}{
		{"grammar", corpus.LevelA1, "present-and-past-basics"},
		{"grammar", corpus.LevelA2, "future-and-conditionals"},
		{"grammar", corpus.LevelB1, "perfect-and-hypothetical"},
		{"grammar", corpus.LevelB2, "advanced-complex-tenses"},
		{"travel", corpus.LevelB1, "travel-b1-communication"},
	}
	for _, tt := range tests {
		if got := Objective(tt.category, tt.level); got != tt.want {
			t.Errorf("Objective(%q, %q) = %q, want %q", tt.category, tt.level, got, tt.want)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	build := &SentenceBuild{Base: Base{Answer: "Hola amigo", AcceptedAnswers: []string{}}}
	mc := &MultipleChoice{Base: Base{Answer: "¿Cómo te llamas?", AcceptedAnswers: AcceptedAnswers("¿Cómo te llamas?")}}
	cloze := &Cloze{Base: Base{Answer: "Mañana practicaré con mi amigo."}, ClozeAnswer: "Mañana"}

	tests := []struct {
		name      string
		q         Question
		submitted string
		want      bool
	}{
		{"build exact", build, "Hola amigo", true},
		{"build case and punctuation", build, "hola, AMIGO!", true},
		{"build swapped", build, "amigo Hola", false},
		{"build empty", build, "", false},
		{"mc accepted variant", mc, "¿Cómo te llamas", true},
		{"mc normalized", mc, "como te llamas", false},
		{"cloze token", cloze, "mañana", true},
		{"cloze full sentence", cloze, "Mañana practicaré con mi amigo.", false},
	}
	for _, tt := range tests {
		if got := tt.q.IsCorrect(tt.submitted); got != tt.want {
			t.Errorf("%s: IsCorrect(%q) = %v, want %v", tt.name, tt.submitted, got, tt.want)
		}
	}
}

func TestSubmitted(t *testing.T) {
	a := Attempt{SelectedOption: "opt", BuiltSentence: "built", TextAnswer: "typed"}
	tests := []struct {
		q    Question
		a    Attempt
		want string
	}{
		{&MultipleChoice{}, a, "opt"},
		{&Dialogue{}, a, "opt"},
		{&Cloze{}, a, "opt"},
		{&SentenceBuild{}, a, "built"},
		{&Dictation{}, a, "built"},
		{&Dictation{}, Attempt{TextAnswer: "typed"}, "typed"},
		{&SentenceBuild{}, Attempt{TextAnswer: "typed"}, ""},
	}
	for _, tt := range tests {
		if got := tt.q.Submitted(tt.a); got != tt.want {
			t.Errorf("%T.Submitted(%+v) = %q, want %q", tt.q, tt.a, got, tt.want)
		}
	}
}
