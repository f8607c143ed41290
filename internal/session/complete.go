package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/grading"
	"github.com/abhisek/lingoflow/internal/progression"
	"github.com/abhisek/lingoflow/internal/rewards"
	"github.com/abhisek/lingoflow/internal/store"
)

// CompleteRequest submits the attempts of a session.
type CompleteRequest struct {
	LearnerID       string
	SessionID       string
	Language        string
	Category        string
	Attempts        []exercise.Attempt
	HintsUsed       int
	RevealedAnswers int
}

// Evaluated summarizes the graded attempts.
type Evaluated struct {
	Score           int     `json:"score"`
	MaxScore        int     `json:"maxScore"`
	Mistakes        int     `json:"mistakes"`
	AccuracyPercent float64 `json:"accuracy"`
}

// CompleteResult is the outcome of a completed session.
type CompleteResult struct {
	SessionID     string            `json:"sessionId"`
	Evaluated     Evaluated         `json:"evaluated"`
	XPGained      int               `json:"xpGained"`
	Challenge     rewards.Challenge `json:"challenge"`
	StreakDays    int               `json:"streak"`
	Hearts        int               `json:"hearts"`
	LearnerLevel  int               `json:"learnerLevel"`
	TotalXP       int               `json:"totalXp"`
	TodayXP       int               `json:"todayXp"`
	Mastery       float64           `json:"mastery"`
	LevelUnlocked corpus.Level      `json:"levelUnlocked"`
}

// Complete grades the attempts and applies the result exactly once. A
// rejected request leaves every piece of learner state untouched.
func (s *Service) Complete(ctx context.Context, req CompleteRequest) (*CompleteResult, error) {
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if err := s.validateComplete(req); err != nil {
		return nil, err
	}
	log := s.log.With("session", req.SessionID, "learner", req.LearnerID)
	now := s.clock.Now()

	as, err := s.repo.GetActiveSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, s.missingSession(ctx, req)
		}
		return nil, err
	}
	// Sessions of other learners are reported as missing.
	if as.LearnerID != req.LearnerID {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, req.SessionID)
	}
	if as.Completed {
		log.Warn("session already completed")
		return nil, fmt.Errorf("%w: %s", ErrConflict, req.SessionID)
	}
	if as.Language != req.Language || as.Category != req.Category {
		return nil, fmt.Errorf("%w: session metadata mismatch", ErrInvalidRequest)
	}
	if !StatusOf(as, now).Scoreable() {
		log.Warn("session expired", "expires_at", as.ExpiresAt)
		return nil, fmt.Errorf("%w: %s expired at %s", ErrGone, req.SessionID, as.ExpiresAt.Format("2006-01-02T15:04:05Z"))
	}

	questions, err := exercise.DecodeSet(as.Payload)
	if err != nil {
		log.Error("stored session is unreadable", "error", err)
		return nil, fmt.Errorf("decode session %s: %w", req.SessionID, err)
	}

	report, err := s.grader.Grade(questions, req.Attempts)
	if err != nil {
		if errors.Is(err, grading.ErrUnknownQuestion) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return nil, err
	}

	var snap *progression.Snapshot
	err = s.repo.InTx(ctx, func(w store.Writer) error {
		if err := w.MarkSessionCompleted(ctx, req.SessionID, now); err != nil {
			return err
		}
		var err error
		snap, err = s.engine.Apply(ctx, w, progression.Input{
			LearnerID:       req.LearnerID,
			SessionID:       req.SessionID,
			Language:        as.Language,
			Category:        as.Category,
			Difficulty:      corpus.Level(as.DifficultyLevel),
			Report:          report,
			HintsUsed:       req.HintsUsed,
			RevealedAnswers: req.RevealedAnswers,
			Now:             now,
		})
		return err
	})
	switch {
	case errors.Is(err, store.ErrAlreadyCompleted):
		log.Warn("concurrent completion lost")
		return nil, fmt.Errorf("%w: %s", ErrConflict, req.SessionID)
	case errors.Is(err, store.ErrNotFound):
		return nil, s.missingSession(ctx, req)
	case err != nil:
		log.Error("complete session failed", "error", err)
		return nil, fmt.Errorf("complete session %s: %w", req.SessionID, err)
	}

	log.Info("session completed",
		"score", snap.Score,
		"max_score", snap.MaxScore,
		"xp", snap.XPGained,
		"mastery", snap.Mastery,
	)

	return &CompleteResult{
		SessionID: req.SessionID,
		Evaluated: Evaluated{
			Score:           snap.Score,
			MaxScore:        snap.MaxScore,
			Mistakes:        snap.Mistakes,
			AccuracyPercent: snap.AccuracyPercent,
		},
		XPGained:      snap.XPGained,
		Challenge:     snap.Challenge,
		StreakDays:    snap.StreakDays,
		Hearts:        snap.Hearts,
		LearnerLevel:  snap.LearnerLevel,
		TotalXP:       snap.TotalXP,
		TodayXP:       snap.TodayXP,
		Mastery:       snap.Mastery,
		LevelUnlocked: snap.LevelUnlocked,
	}, nil
}

// missingSession explains a session that has no active row. Completed
// sessions are pruned by the next Start, so the history decides between a
// retried completion and an unknown id.
func (s *Service) missingSession(ctx context.Context, req CompleteRequest) error {
	done, err := s.repo.SessionRecorded(ctx, req.LearnerID, req.SessionID)
	if err != nil {
		return err
	}
	if done {
		s.log.Warn("session already completed", "session", req.SessionID, "learner", req.LearnerID)
		return fmt.Errorf("%w: %s", ErrConflict, req.SessionID)
	}
	return fmt.Errorf("%w: session %s", ErrNotFound, req.SessionID)
}

func (s *Service) validateComplete(req CompleteRequest) error {
	switch {
	case req.LearnerID == "":
		return fmt.Errorf("%w: learner is required", ErrInvalidRequest)
	case req.SessionID == "" || req.Language == "" || req.Category == "":
		return fmt.Errorf("%w: session, language and category are required", ErrInvalidRequest)
	case len(req.Attempts) == 0:
		return fmt.Errorf("%w: no attempts", ErrInvalidRequest)
	case len(req.Attempts) > s.opts.MaxAttempts:
		return fmt.Errorf("%w: %d attempts exceeds the limit of %d", ErrInvalidRequest, len(req.Attempts), s.opts.MaxAttempts)
	}
	return nil
}
