// Package storetest holds the behavior checks every store.Repo
// implementation must pass.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingoflow/internal/store"
)

// Base is the fixed instant the checks are written against.
var Base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// Run executes every check against repos returned by newRepo. Each check
// gets a fresh, empty repo.
func Run(t *testing.T, newRepo func(t *testing.T) store.Repo) {
	t.Run("ActiveSessionLifecycle", func(t *testing.T) { testActiveSessionLifecycle(t, newRepo(t)) })
	t.Run("ConcurrentCompletion", func(t *testing.T) { testConcurrentCompletion(t, newRepo(t)) })
	t.Run("Prune", func(t *testing.T) { testPrune(t, newRepo(t)) })
	t.Run("ItemProgress", func(t *testing.T) { testItemProgress(t, newRepo(t)) })
	t.Run("CategoryProgress", func(t *testing.T) { testCategoryProgress(t, newRepo(t)) })
	t.Run("LearnerProfileAndSettings", func(t *testing.T) { testProfileAndSettings(t, newRepo(t)) })
	t.Run("History", func(t *testing.T) { testHistory(t, newRepo(t)) })
	t.Run("DailyXP", func(t *testing.T) { testDailyXP(t, newRepo(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newRepo(t)) })
}

func session(id, learner string, expires time.Time) *store.ActiveSession {
	return &store.ActiveSession{
		SessionID:       id,
		LearnerID:       learner,
		Language:        "spanish",
		Category:        "travel",
		DifficultyLevel: "a2",
		Payload:         []byte(`{"version":1,"questions":[]}`),
		QuestionCount:   10,
		ExpiresAt:       expires,
		CreatedAt:       Base,
	}
}

func testActiveSessionLifecycle(t *testing.T, r store.Repo) {
	ctx := context.Background()

	_, err := r.GetActiveSession(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, r.CreateActiveSession(ctx, session("s1", "ana", Base.Add(48*time.Hour))))

	got, err := r.GetActiveSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "ana", got.LearnerID)
	assert.Equal(t, "a2", got.DifficultyLevel)
	assert.Equal(t, 10, got.QuestionCount)
	assert.JSONEq(t, `{"version":1,"questions":[]}`, string(got.Payload))
	assert.True(t, got.ExpiresAt.Equal(Base.Add(48*time.Hour)))
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)

	at := Base.Add(time.Hour)
	require.NoError(t, r.MarkSessionCompleted(ctx, "s1", at))
	assert.ErrorIs(t, r.MarkSessionCompleted(ctx, "s1", at), store.ErrAlreadyCompleted)
	assert.ErrorIs(t, r.MarkSessionCompleted(ctx, "nope", at), store.ErrNotFound)

	got, err = r.GetActiveSession(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(at))
}

func testConcurrentCompletion(t *testing.T, r store.Repo) {
	ctx := context.Background()
	require.NoError(t, r.CreateActiveSession(ctx, session("race", "ana", Base.Add(time.Hour))))

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		won, lost int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.InTx(ctx, func(w store.Writer) error {
				return w.MarkSessionCompleted(ctx, "race", Base)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, store.ErrAlreadyCompleted):
				lost++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)
}

func testPrune(t *testing.T, r store.Repo) {
	ctx := context.Background()
	require.NoError(t, r.CreateActiveSession(ctx, session("live", "ana", Base.Add(time.Hour))))
	require.NoError(t, r.CreateActiveSession(ctx, session("stale", "ana", Base.Add(-time.Hour))))
	require.NoError(t, r.CreateActiveSession(ctx, session("done", "ana", Base.Add(time.Hour))))
	require.NoError(t, r.CreateActiveSession(ctx, session("other", "ben", Base.Add(-time.Hour))))
	require.NoError(t, r.MarkSessionCompleted(ctx, "done", Base))

	n, err := r.PruneActiveSessions(ctx, "ana", Base)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = r.GetActiveSession(ctx, "live")
	assert.NoError(t, err)
	_, err = r.GetActiveSession(ctx, "stale")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = r.GetActiveSession(ctx, "other")
	assert.NoError(t, err, "other learners are untouched")
}

func testItemProgress(t *testing.T, r store.Repo) {
	ctx := context.Background()
	due := Base.AddDate(0, 0, 2)

	p := store.ItemProgress{
		LearnerID: "ana", Language: "spanish", Category: "travel", ItemID: "es-tr-1",
		Objective: "travel-core", Ease: 1.85, Streak: 1, Attempts: 1, Correct: 1,
		LastSeen: &Base, NextDue: &due,
	}
	require.NoError(t, r.UpsertItemProgress(ctx, p))

	p.Attempts, p.ErrorCount, p.Streak, p.LastErrorType = 2, 1, 0, "word_order"
	require.NoError(t, r.UpsertItemProgress(ctx, p))
	require.NoError(t, r.UpsertItemProgress(ctx, store.ItemProgress{
		LearnerID: "ana", Language: "spanish", Category: "travel", ItemID: "es-tr-0", Ease: 1.8,
	}))
	require.NoError(t, r.UpsertItemProgress(ctx, store.ItemProgress{
		LearnerID: "ben", Language: "spanish", Category: "travel", ItemID: "es-tr-1", Ease: 1.8,
	}))

	rows, err := r.ListItemProgress(ctx, "ana", "spanish", "travel")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "es-tr-0", rows[0].ItemID)
	assert.Nil(t, rows[0].NextDue)

	got := rows[1]
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, 1, got.ErrorCount)
	assert.Equal(t, "word_order", got.LastErrorType)
	assert.InDelta(t, 1.85, got.Ease, 1e-9)
	require.NotNil(t, got.NextDue)
	assert.True(t, got.NextDue.Equal(due))
}

func testCategoryProgress(t *testing.T, r store.Repo) {
	ctx := context.Background()

	got, err := r.GetCategoryProgress(ctx, "ana", "spanish", "travel")
	require.NoError(t, err)
	assert.Nil(t, got)

	cp := store.CategoryProgress{
		LearnerID: "ana", Language: "spanish", Category: "travel",
		Mastery: 11.2, Attempts: 1, TotalAnswers: 10, CorrectAnswers: 10, LevelUnlocked: "a1",
		LastPracticedAt: &Base,
	}
	require.NoError(t, r.UpsertCategoryProgress(ctx, cp))
	cp.Mastery, cp.Attempts, cp.LevelUnlocked = 30, 2, "a2"
	require.NoError(t, r.UpsertCategoryProgress(ctx, cp))
	require.NoError(t, r.UpsertCategoryProgress(ctx, store.CategoryProgress{
		LearnerID: "ana", Language: "spanish", Category: "basics", LevelUnlocked: "a1",
	}))
	require.NoError(t, r.UpsertCategoryProgress(ctx, store.CategoryProgress{
		LearnerID: "ana", Language: "french", Category: "travel", LevelUnlocked: "a1",
	}))

	got, err = r.GetCategoryProgress(ctx, "ana", "spanish", "travel")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 30, got.Mastery, 1e-9)
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, "a2", got.LevelUnlocked)

	all, err := r.ListCategoryProgress(ctx, "ana", "spanish")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "basics", all[0].Category)
	assert.Equal(t, "travel", all[1].Category)
}

func testProfileAndSettings(t *testing.T, r store.Repo) {
	ctx := context.Background()

	p, err := r.GetLearnerProfile(ctx, "ana")
	require.NoError(t, err)
	assert.Nil(t, p)

	prof := store.NewLearnerProfile("ana")
	prof.TotalXP, prof.StreakDays, prof.LastCompleted = 44, 1, &Base
	require.NoError(t, r.SaveLearnerProfile(ctx, prof))
	prof.TotalXP = 160
	prof.LearnerLevel = 2
	require.NoError(t, r.SaveLearnerProfile(ctx, prof))

	p, err = r.GetLearnerProfile(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 160, p.TotalXP)
	assert.Equal(t, 2, p.LearnerLevel)
	assert.Equal(t, store.DefaultHearts, p.Hearts)

	s, err := r.GetSettings(ctx, "ana")
	require.NoError(t, err)
	assert.Nil(t, s)

	settings := store.LearnerSettings{
		LearnerID: "ana", NativeLanguage: "english", TargetLanguage: "french",
		DailyGoal: 30, DailyMinutes: 20, WeeklyGoalSessions: 5, SelfRatedLevel: "b1",
		LearnerName: "Ana", UpdatedAt: Base,
	}
	require.NoError(t, r.SaveSettings(ctx, settings))
	settings.DailyMinutes = 45
	require.NoError(t, r.SaveSettings(ctx, settings))

	s, err = r.GetSettings(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "french", s.TargetLanguage)
	assert.Equal(t, "b1", s.SelfRatedLevel)
	assert.Equal(t, 45, s.DailyMinutes)
}

func testHistory(t *testing.T, r store.Repo) {
	ctx := context.Background()

	for i, cat := range []string{"travel", "basics", "travel"} {
		require.NoError(t, r.AppendSession(ctx, store.SessionRecord{
			SessionID: "s" + string(rune('1'+i)), LearnerID: "ana", Language: "spanish", Category: cat,
			DifficultyLevel: "a1", Score: 5 + i, MaxScore: 10, Accuracy: float64(5+i) / 10,
			XPGained: 20, CompletedAt: Base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, r.AppendSession(ctx, store.SessionRecord{
		SessionID: "x1", LearnerID: "ben", Language: "spanish", Category: "travel", CompletedAt: Base,
	}))

	all, err := r.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s3", all[0].SessionID, "newest first")

	travel, err := r.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana", Category: "travel", Limit: 1})
	require.NoError(t, err)
	require.Len(t, travel, 1)
	assert.Equal(t, "s3", travel[0].SessionID)

	recent, err := r.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana", Since: Base.Add(30 * time.Minute)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	for _, tc := range []struct {
		learner, session string
		want             bool
	}{
		{"ana", "s2", true},
		{"ben", "x1", true},
		{"ben", "s2", false},
		{"ana", "missing", false},
	} {
		got, err := r.SessionRecorded(ctx, tc.learner, tc.session)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "SessionRecorded(%s, %s)", tc.learner, tc.session)
	}

	require.NoError(t, r.AppendAttempts(ctx, nil))
	require.NoError(t, r.AppendAttempts(ctx, []store.AttemptRecord{
		{SessionID: "s1", LearnerID: "ana", Language: "spanish", Category: "travel", ItemID: "a", QuestionType: "mc_sentence", Correct: true, ErrorType: "none", CreatedAt: Base},
		{SessionID: "s1", LearnerID: "ana", Language: "spanish", Category: "travel", ItemID: "b", QuestionType: "build_sentence", ErrorType: "word_order", CreatedAt: Base},
	}))
	attempts, err := r.ListAttempts(ctx, store.HistoryQuery{LearnerID: "ana", Language: "spanish"})
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "b", attempts[0].ItemID, "ties broken by insertion order, newest first")
	assert.Equal(t, "word_order", attempts[0].ErrorType)
}

func testDailyXP(t *testing.T, r store.Repo) {
	ctx := context.Background()

	total, err := r.AddDailyXP(ctx, "ana", "spanish", Base, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, total)

	total, err = r.AddDailyXP(ctx, "ana", "spanish", Base.Add(3*time.Hour), 12)
	require.NoError(t, err)
	assert.Equal(t, 52, total, "same UTC day accumulates")

	total, err = r.AddDailyXP(ctx, "ana", "spanish", Base, -100)
	require.NoError(t, err)
	assert.Equal(t, 0, total, "floored at zero")

	_, err = r.AddDailyXP(ctx, "ana", "french", Base, 7)
	require.NoError(t, err)

	got, err := r.DailyXP(ctx, "ana", "french", Base)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = r.DailyXP(ctx, "ana", "spanish", Base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func testTxRollback(t *testing.T, r store.Repo) {
	ctx := context.Background()
	require.NoError(t, r.CreateActiveSession(ctx, session("s1", "ana", Base.Add(time.Hour))))

	boom := errors.New("boom")
	err := r.InTx(ctx, func(w store.Writer) error {
		if err := w.MarkSessionCompleted(ctx, "s1", Base); err != nil {
			return err
		}
		if _, err := w.AddDailyXP(ctx, "ana", "spanish", Base, 50); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	s, err := r.GetActiveSession(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, s.Completed, "completion rolled back")

	xp, err := r.DailyXP(ctx, "ana", "spanish", Base)
	require.NoError(t, err)
	assert.Equal(t, 0, xp, "ledger rolled back")
}
