package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingoflow/ent"
	"github.com/abhisek/lingoflow/ent/attemptevent"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

func (r *entRepo) AppendSession(ctx context.Context, rec SessionRecord) error {
	_, err := r.client.SessionEvent.Create().
		SetTimestamp(rec.CompletedAt).
		SetSessionID(rec.SessionID).
		SetLearnerID(rec.LearnerID).
		SetLanguage(rec.Language).
		SetCategory(rec.Category).
		SetDifficultyLevel(rec.DifficultyLevel).
		SetScore(rec.Score).
		SetMaxScore(rec.MaxScore).
		SetMistakes(rec.Mistakes).
		SetHintsUsed(rec.HintsUsed).
		SetRevealedAnswers(rec.RevealedAnswers).
		SetAccuracy(rec.Accuracy).
		SetXpGained(rec.XPGained).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *entRepo) AppendAttempts(ctx context.Context, recs []AttemptRecord) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.AttemptEventCreate, 0, len(recs))
	for _, rec := range recs {
		builders = append(builders, r.client.AttemptEvent.Create().
			SetTimestamp(rec.CreatedAt).
			SetSessionID(rec.SessionID).
			SetLearnerID(rec.LearnerID).
			SetLanguage(rec.Language).
			SetCategory(rec.Category).
			SetItemID(rec.ItemID).
			SetObjective(rec.Objective).
			SetQuestionType(rec.QuestionType).
			SetCorrect(rec.Correct).
			SetErrorType(rec.ErrorType))
	}
	if _, err := r.client.AttemptEvent.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save attempt events: %w", err)
	}
	return nil
}

func (r *entRepo) ListSessions(ctx context.Context, q HistoryQuery) ([]SessionRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.LearnerID(q.LearnerID))
	if q.Language != "" {
		query = query.Where(sessionevent.Language(q.Language))
	}
	if q.Category != "" {
		query = query.Where(sessionevent.Category(q.Category))
	}
	if !q.Since.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(q.Since))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.
		Order(ent.Desc(sessionevent.FieldTimestamp), ent.Desc(sessionevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	out := make([]SessionRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, SessionRecord{
			SessionID:       e.SessionID,
			LearnerID:       e.LearnerID,
			Language:        e.Language,
			Category:        e.Category,
			DifficultyLevel: e.DifficultyLevel,
			Score:           e.Score,
			MaxScore:        e.MaxScore,
			Mistakes:        e.Mistakes,
			HintsUsed:       e.HintsUsed,
			RevealedAnswers: e.RevealedAnswers,
			Accuracy:        e.Accuracy,
			XPGained:        e.XpGained,
			CompletedAt:     e.Timestamp.UTC(),
		})
	}
	return out, nil
}

func (r *entRepo) SessionRecorded(ctx context.Context, learnerID, sessionID string) (bool, error) {
	ok, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID), sessionevent.LearnerID(learnerID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query session event: %w", err)
	}
	return ok, nil
}

func (r *entRepo) ListAttempts(ctx context.Context, q HistoryQuery) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(q.LearnerID))
	if q.Language != "" {
		query = query.Where(attemptevent.Language(q.Language))
	}
	if q.Category != "" {
		query = query.Where(attemptevent.Category(q.Category))
	}
	if !q.Since.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(q.Since))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.
		Order(ent.Desc(attemptevent.FieldTimestamp), ent.Desc(attemptevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	out := make([]AttemptRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, AttemptRecord{
			SessionID:    e.SessionID,
			LearnerID:    e.LearnerID,
			Language:     e.Language,
			Category:     e.Category,
			ItemID:       e.ItemID,
			Objective:    e.Objective,
			QuestionType: e.QuestionType,
			Correct:      e.Correct,
			ErrorType:    e.ErrorType,
			CreatedAt:    e.Timestamp.UTC(),
		})
	}
	return out, nil
}
