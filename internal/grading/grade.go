package grading

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/lingoflow/internal/diagnosis"
	"github.com/abhisek/lingoflow/internal/exercise"
)

// ErrUnknownQuestion is returned when an attempt references a question id
// that is not part of the graded set.
var ErrUnknownQuestion = errors.New("unknown question")

// Outcome is the evaluation of one attempt.
type Outcome struct {
	Question  exercise.Question
	Submitted string
	Correct   bool
	ErrorType diagnosis.ErrorType
}

// Report summarizes a graded batch of attempts.
type Report struct {
	Outcomes      []Outcome
	Score         int
	Mistakes      int
	QuestionCount int
}

// MaxScore is the larger of the question count and the number of graded
// attempts, so batches with repeated questions still score within [0,1].
func (r *Report) MaxScore() int {
	return max(r.QuestionCount, r.Score+r.Mistakes)
}

// Accuracy returns Score / MaxScore, or 0 for an empty report.
func (r *Report) Accuracy() float64 {
	m := r.MaxScore()
	if m <= 0 {
		return 0
	}
	return float64(r.Score) / float64(m)
}

// AccuracyPercent returns the accuracy in percent rounded to one decimal.
func (r *Report) AccuracyPercent() float64 {
	return math.Round(r.Accuracy()*1000) / 10
}

// Grader evaluates attempts with a diagnosis service.
type Grader struct {
	diag *diagnosis.Service
}

// NewGrader returns a Grader. A nil service uses the default rule chain.
func NewGrader(diag *diagnosis.Service) *Grader {
	if diag == nil {
		diag = diagnosis.NewService()
	}
	return &Grader{diag: diag}
}

// Grade evaluates every attempt against questions. It does not modify its
// inputs. Any attempt referencing an unknown question id rejects the whole
// batch with ErrUnknownQuestion.
func (g *Grader) Grade(questions []exercise.Question, attempts []exercise.Attempt) (*Report, error) {
	byID := make(map[string]exercise.Question, len(questions))
	for _, q := range questions {
		byID[q.Common().ID] = q
	}

	r := &Report{
		Outcomes:      make([]Outcome, 0, len(attempts)),
		QuestionCount: len(questions),
	}
	for _, a := range attempts {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, a.QuestionID)
		}
		submitted := q.Submitted(a)
		res := g.diag.Diagnose(q, submitted)
		correct := res.ErrorType == diagnosis.ErrorNone
		if correct {
			r.Score++
		} else {
			r.Mistakes++
		}
		r.Outcomes = append(r.Outcomes, Outcome{
			Question:  q,
			Submitted: submitted,
			Correct:   correct,
			ErrorType: res.ErrorType,
		})
	}
	return r, nil
}

// Grade evaluates attempts with the default rule chain.
func Grade(questions []exercise.Question, attempts []exercise.Attempt) (*Report, error) {
	return defaultGrader.Grade(questions, attempts)
}

var defaultGrader = NewGrader(nil)
