package exercise

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeSet(t *testing.T) {
	g := NewGenerator(seeded(21))
	out, err := g.Generate(GenerateInput{Items: mixedItems(10), Category: "grammar", Count: 10})
	if err != nil {
		t.Fatal(err)
	}

	b, err := EncodeSet(out.Questions)
	if err != nil {
		t.Fatalf("EncodeSet() error: %v", err)
	}
	got, err := DecodeSet(b)
	if err != nil {
		t.Fatalf("DecodeSet() error: %v", err)
	}
	if !reflect.DeepEqual(got, out.Questions) {
		t.Error("decoded set differs from the generated set")
	}
}

func TestDecodeSet_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"unknown version", `{"version":2,"questions":[]}`, "version"},
		{"unknown type", `{"version":1,"questions":[{"id":"a","type":"essay"}]}`, "unknown question type"},
		{"missing id", `{"version":1,"questions":[{"type":"mc_sentence"}]}`, "no id"},
		{"not json", `{`, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSet([]byte(tt.payload))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestQuestionJSONShape(t *testing.T) {
	q := &Cloze{
		Base: Base{
			ID: "sp-gr-3", Level: "a2", Prompt: "Say it",
			Answer: "Mañana practicaré.", AcceptedAnswers: []string{"Mañana practicaré"},
			Objective: "future-and-conditionals",
		},
		ClozeText:    "____ practicaré.",
		ClozeAnswer:  "Mañana",
		ClozeOptions: []string{"Mañana", "Ayer"},
	}
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["type"] != "cloze_sentence" {
		t.Errorf("type = %v, want cloze_sentence", m["type"])
	}
	for _, key := range []string{"id", "level", "prompt", "answer", "acceptedAnswers", "objective", "clozeText", "clozeAnswer", "clozeOptions"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
	if _, ok := m["options"]; ok {
		t.Error("cloze should not carry options")
	}
}
