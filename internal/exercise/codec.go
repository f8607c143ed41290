package exercise

import (
	"encoding/json"
	"fmt"
)

// SetVersion is the version of the encoded question set.
const SetVersion = 1

type setEnvelope struct {
	Version   int            `json:"version"`
	Questions []wireQuestion `json:"questions"`
}

// wireQuestion is the flat, type-tagged JSON form of a Question.
type wireQuestion struct {
	Base
	Type         Kind     `json:"type"`
	Options      []string `json:"options,omitempty"`
	ClozeText    string   `json:"clozeText,omitempty"`
	ClozeAnswer  string   `json:"clozeAnswer,omitempty"`
	ClozeOptions []string `json:"clozeOptions,omitempty"`
	Tokens       []string `json:"tokens,omitempty"`
	AudioText    string   `json:"audioText,omitempty"`
}

// EncodeSet serializes an ordered question set with its version tag.
func EncodeSet(qs []Question) ([]byte, error) {
	env := setEnvelope{Version: SetVersion, Questions: make([]wireQuestion, 0, len(qs))}
	for i, q := range qs {
		w, err := toWire(q)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		env.Questions = append(env.Questions, w)
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode question set: %w", err)
	}
	return b, nil
}

// DecodeSet parses a set produced by EncodeSet. Unknown versions and
// unknown question types are errors.
func DecodeSet(b []byte) ([]Question, error) {
	var env setEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}
	if env.Version != SetVersion {
		return nil, fmt.Errorf("unsupported question set version %d", env.Version)
	}
	qs := make([]Question, 0, len(env.Questions))
	for i, w := range env.Questions {
		q, err := fromWire(w)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func toWire(q Question) (wireQuestion, error) {
	w := wireQuestion{Base: *q.Common(), Type: q.Kind()}
	if w.AcceptedAnswers == nil {
		w.AcceptedAnswers = []string{}
	}
	switch v := q.(type) {
	case *MultipleChoice:
		w.Options = v.Options
	case *Dialogue:
		w.Options = v.Options
	case *Cloze:
		w.ClozeText = v.ClozeText
		w.ClozeAnswer = v.ClozeAnswer
		w.ClozeOptions = v.ClozeOptions
	case *SentenceBuild:
		w.Tokens = v.Tokens
	case *Dictation:
		w.Tokens = v.Tokens
		w.AudioText = v.AudioText
	default:
		return wireQuestion{}, fmt.Errorf("unknown question variant %T", q)
	}
	return w, nil
}

func fromWire(w wireQuestion) (Question, error) {
	if w.ID == "" {
		return nil, fmt.Errorf("question has no id")
	}
	switch w.Type {
	case KindMultipleChoice:
		return &MultipleChoice{Base: w.Base, Options: w.Options}, nil
	case KindDialogue:
		return &Dialogue{Base: w.Base, Options: w.Options}, nil
	case KindCloze:
		return &Cloze{Base: w.Base, ClozeText: w.ClozeText, ClozeAnswer: w.ClozeAnswer, ClozeOptions: w.ClozeOptions}, nil
	case KindSentenceBuild:
		return &SentenceBuild{Base: w.Base, Tokens: w.Tokens}, nil
	case KindDictation:
		return &Dictation{Base: w.Base, Tokens: w.Tokens, AudioText: w.AudioText}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", w.Type)
	}
}

func marshalQuestion(q Question) ([]byte, error) {
	w, err := toWire(q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (q *MultipleChoice) MarshalJSON() ([]byte, error) { return marshalQuestion(q) }
func (q *Dialogue) MarshalJSON() ([]byte, error)       { return marshalQuestion(q) }
func (q *Cloze) MarshalJSON() ([]byte, error)          { return marshalQuestion(q) }
func (q *SentenceBuild) MarshalJSON() ([]byte, error)  { return marshalQuestion(q) }
func (q *Dictation) MarshalJSON() ([]byte, error)      { return marshalQuestion(q) }
