package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingoflow/ent"
	"github.com/abhisek/lingoflow/ent/activesession"
)

func (r *entRepo) CreateActiveSession(ctx context.Context, s *ActiveSession) error {
	_, err := r.client.ActiveSession.Create().
		SetSessionID(s.SessionID).
		SetLearnerID(s.LearnerID).
		SetLanguage(s.Language).
		SetCategory(s.Category).
		SetDifficultyLevel(s.DifficultyLevel).
		SetPayload(s.Payload).
		SetQuestionCount(s.QuestionCount).
		SetExpiresAt(s.ExpiresAt).
		SetCompleted(s.Completed).
		SetCreatedAt(s.CreatedAt).
		SetNillableCompletedAt(s.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save active session: %w", err)
	}
	return nil
}

func (r *entRepo) GetActiveSession(ctx context.Context, sessionID string) (*ActiveSession, error) {
	s, err := r.client.ActiveSession.Query().
		Where(activesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active session: %w", err)
	}
	return entActiveSession(s), nil
}

func (r *entRepo) MarkSessionCompleted(ctx context.Context, sessionID string, at time.Time) error {
	n, err := r.client.ActiveSession.Update().
		Where(
			activesession.SessionID(sessionID),
			activesession.Completed(false),
		).
		SetCompleted(true).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session completed: %w", err)
	}
	if n > 0 {
		return nil
	}

	exists, err := r.client.ActiveSession.Query().
		Where(activesession.SessionID(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query active session: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrAlreadyCompleted
}

func (r *entRepo) PruneActiveSessions(ctx context.Context, learnerID string, cutoff time.Time) (int, error) {
	n, err := r.client.ActiveSession.Delete().
		Where(
			activesession.LearnerID(learnerID),
			activesession.Or(
				activesession.Completed(true),
				activesession.ExpiresAtLT(cutoff),
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune active sessions: %w", err)
	}
	return n, nil
}

func entActiveSession(s *ent.ActiveSession) *ActiveSession {
	return &ActiveSession{
		SessionID:       s.SessionID,
		LearnerID:       s.LearnerID,
		Language:        s.Language,
		Category:        s.Category,
		DifficultyLevel: s.DifficultyLevel,
		Payload:         s.Payload,
		QuestionCount:   s.QuestionCount,
		ExpiresAt:       s.ExpiresAt.UTC(),
		Completed:       s.Completed,
		CreatedAt:       s.CreatedAt.UTC(),
		CompletedAt:     utcPtr(s.CompletedAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
