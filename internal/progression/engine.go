// Package progression applies a graded session to a learner's stored
// progress: item schedules, category mastery, history, daily XP and the
// learner profile.
package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/grading"
	"github.com/abhisek/lingoflow/internal/logging"
	"github.com/abhisek/lingoflow/internal/mastery"
	"github.com/abhisek/lingoflow/internal/rewards"
	"github.com/abhisek/lingoflow/internal/spacedrep"
	"github.com/abhisek/lingoflow/internal/store"
)

// Input is one graded session to apply.
type Input struct {
	LearnerID       string
	SessionID       string
	Language        string
	Category        string
	Difficulty      corpus.Level
	Report          *grading.Report
	HintsUsed       int
	RevealedAnswers int
	Now             time.Time
}

// Snapshot is the learner state after applying a session.
type Snapshot struct {
	Score           int
	MaxScore        int
	Mistakes        int
	AccuracyPercent float64
	XPGained        int
	Challenge       rewards.Challenge
	TotalXP         int
	TodayXP         int
	StreakDays      int
	Hearts          int
	LearnerLevel    int
	Mastery         float64 // rounded to one decimal
	LevelUnlocked   corpus.Level
	ItemsUpdated    int
}

// Engine applies graded sessions.
type Engine struct {
	log *logging.Logger
}

// NewEngine returns an Engine. A nil logger discards output.
func NewEngine(log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{log: log}
}

// Apply writes every progression update of a session through w. Callers run
// it inside store.Repo.InTx so a failure leaves no partial update behind.
func (e *Engine) Apply(ctx context.Context, w store.Writer, in Input) (*Snapshot, error) {
	if in.Report == nil {
		return nil, fmt.Errorf("apply session %s: nil report", in.SessionID)
	}
	now := in.Now.UTC()
	today := spacedrep.Day(now)
	r := in.Report

	items, err := e.applyItems(ctx, w, in, today)
	if err != nil {
		return nil, err
	}

	xp := rewards.XP(rewards.XPInput{
		Score:           r.Score,
		MaxScore:        r.MaxScore(),
		Mistakes:        r.Mistakes,
		HintsUsed:       max(0, in.HintsUsed),
		RevealedAnswers: max(0, in.RevealedAnswers),
		Difficulty:      in.Difficulty,
	})

	cat, err := e.applyCategory(ctx, w, in, now)
	if err != nil {
		return nil, err
	}

	if err := e.appendHistory(ctx, w, in, xp, now); err != nil {
		return nil, err
	}

	todayXP, err := w.AddDailyXP(ctx, in.LearnerID, in.Language, today, xp.XPGained)
	if err != nil {
		return nil, fmt.Errorf("add daily xp: %w", err)
	}

	profile, err := e.applyProfile(ctx, w, in, xp.XPGained, today)
	if err != nil {
		return nil, err
	}

	e.log.Debug("session applied",
		"session", in.SessionID,
		"learner", in.LearnerID,
		"xp", xp.XPGained,
		"mastery", cat.Mastery,
		"items", items,
	)

	return &Snapshot{
		Score:           r.Score,
		MaxScore:        r.MaxScore(),
		Mistakes:        r.Mistakes,
		AccuracyPercent: r.AccuracyPercent(),
		XPGained:        xp.XPGained,
		Challenge:       xp.Challenge,
		TotalXP:         profile.TotalXP,
		TodayXP:         todayXP,
		StreakDays:      profile.StreakDays,
		Hearts:          profile.Hearts,
		LearnerLevel:    profile.LearnerLevel,
		Mastery:         mastery.Round1(cat.Mastery),
		LevelUnlocked:   corpus.Level(cat.LevelUnlocked),
		ItemsUpdated:    items,
	}, nil
}

// applyItems folds every outcome into its item schedule in attempt order.
// Repeated attempts at the same item build on each other.
func (e *Engine) applyItems(ctx context.Context, w store.Writer, in Input, today time.Time) (int, error) {
	rows, err := w.ListItemProgress(ctx, in.LearnerID, in.Language, in.Category)
	if err != nil {
		return 0, fmt.Errorf("list item progress: %w", err)
	}
	byID := make(map[string]store.ItemProgress, len(rows))
	for _, p := range rows {
		byID[p.ItemID] = p
	}

	var order []string
	touched := make(map[string]bool)
	for _, o := range in.Report.Outcomes {
		b := o.Question.Common()
		key := spacedrep.ItemKey{
			LearnerID: in.LearnerID,
			Language:  in.Language,
			Category:  in.Category,
			ItemID:    b.ID,
		}
		var prev *store.ItemProgress
		if p, ok := byID[b.ID]; ok {
			prev = &p
		}
		byID[b.ID] = spacedrep.Apply(prev, key, spacedrep.Review{
			Correct:   o.Correct,
			ErrorType: string(o.ErrorType),
			Objective: b.Objective,
		}, today)
		if !touched[b.ID] {
			touched[b.ID] = true
			order = append(order, b.ID)
		}
	}

	for _, id := range order {
		if err := w.UpsertItemProgress(ctx, byID[id]); err != nil {
			return 0, fmt.Errorf("upsert item progress %s: %w", id, err)
		}
	}
	return len(order), nil
}

func (e *Engine) applyCategory(ctx context.Context, w store.Writer, in Input, now time.Time) (store.CategoryProgress, error) {
	prev, err := w.GetCategoryProgress(ctx, in.LearnerID, in.Language, in.Category)
	if err != nil {
		return store.CategoryProgress{}, fmt.Errorf("get category progress: %w", err)
	}
	cp := store.CategoryProgress{
		LearnerID: in.LearnerID,
		Language:  in.Language,
		Category:  in.Category,
	}
	if prev != nil {
		cp = *prev
	}

	r := in.Report
	cp.Mastery = mastery.Apply(cp.Mastery, mastery.Delta(r.Accuracy(), in.Difficulty))
	cp.LevelUnlocked = string(mastery.LevelUnlocked(cp.Mastery))
	cp.Attempts++
	cp.TotalAnswers += r.MaxScore()
	cp.CorrectAnswers += r.Score
	cp.LastPracticedAt = &now

	if err := w.UpsertCategoryProgress(ctx, cp); err != nil {
		return store.CategoryProgress{}, fmt.Errorf("upsert category progress: %w", err)
	}
	return cp, nil
}

func (e *Engine) appendHistory(ctx context.Context, w store.Writer, in Input, xp rewards.XPResult, now time.Time) error {
	r := in.Report
	if err := w.AppendSession(ctx, store.SessionRecord{
		SessionID:       in.SessionID,
		LearnerID:       in.LearnerID,
		Language:        in.Language,
		Category:        in.Category,
		DifficultyLevel: string(in.Difficulty),
		Score:           r.Score,
		MaxScore:        r.MaxScore(),
		Mistakes:        r.Mistakes,
		HintsUsed:       max(0, in.HintsUsed),
		RevealedAnswers: max(0, in.RevealedAnswers),
		Accuracy:        r.Accuracy(),
		XPGained:        xp.XPGained,
		CompletedAt:     now,
	}); err != nil {
		return fmt.Errorf("append session: %w", err)
	}

	attempts := make([]store.AttemptRecord, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		b := o.Question.Common()
		attempts = append(attempts, store.AttemptRecord{
			SessionID:    in.SessionID,
			LearnerID:    in.LearnerID,
			Language:     in.Language,
			Category:     in.Category,
			ItemID:       b.ID,
			Objective:    b.Objective,
			QuestionType: string(o.Question.Kind()),
			Correct:      o.Correct,
			ErrorType:    string(o.ErrorType),
			CreatedAt:    now,
		})
	}
	if err := w.AppendAttempts(ctx, attempts); err != nil {
		return fmt.Errorf("append attempts: %w", err)
	}
	return nil
}

func (e *Engine) applyProfile(ctx context.Context, w store.Writer, in Input, xpGained int, today time.Time) (store.LearnerProfile, error) {
	prev, err := w.GetLearnerProfile(ctx, in.LearnerID)
	if err != nil {
		return store.LearnerProfile{}, fmt.Errorf("get learner profile: %w", err)
	}
	p := store.NewLearnerProfile(in.LearnerID)
	if prev != nil {
		p = *prev
	}

	p.StreakDays = rewards.NextStreak(p.StreakDays, p.LastCompleted, today)
	p.Hearts = rewards.HeartsAfter(p.Hearts, in.Report.Mistakes)
	p.TotalXP += xpGained
	p.LearnerLevel = rewards.LearnerLevel(p.TotalXP)
	p.LastCompleted = &today

	if err := w.SaveLearnerProfile(ctx, p); err != nil {
		return store.LearnerProfile{}, fmt.Errorf("save learner profile: %w", err)
	}
	return p, nil
}
