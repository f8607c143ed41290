package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
)

func (f *fixture) play(t *testing.T, learner, category string, wrong int) *CompleteResult {
	t.Helper()
	res := f.start(t, learner, category)
	out, err := f.svc.Complete(context.Background(), completeReq(learner, res, answers(res.Questions, wrong)))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	return out
}

func TestProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Progress(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.TotalXP != 0 || p.Hearts != 5 || p.LearnerLevel != 1 || p.LastCompleted != nil {
		t.Errorf("fresh progress = %+v", p)
	}
	if p.Categories == nil || len(p.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", p.Categories)
	}

	f.play(t, "ana", "travel", 6)
	p, err = f.svc.Progress(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if len(p.Categories) != 1 {
		t.Fatalf("len(Categories) = %d, want 1", len(p.Categories))
	}
	c := p.Categories[0]
	if c.Category != "travel" || c.Attempts != 1 || c.TotalAnswers != 8 || c.CorrectAnswers != 2 {
		t.Errorf("travel = %+v", c)
	}
	if c.Accuracy != 25 {
		t.Errorf("Accuracy = %v, want 25", c.Accuracy)
	}
	if c.LevelUnlocked != corpus.LevelA1 {
		t.Errorf("LevelUnlocked = %s, want a1", c.LevelUnlocked)
	}
	if p.TodayXP != p.TotalXP || p.TotalXP == 0 {
		t.Errorf("today/total = %d/%d, want equal and positive", p.TodayXP, p.TotalXP)
	}

	noLang, err := f.svc.Progress(ctx, "ana", "")
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if noLang.TodayXP != 0 || len(noLang.Categories) != 0 || noLang.TotalXP != p.TotalXP {
		t.Errorf("progress without language = %+v", noLang)
	}

	f.clock.Advance(24 * time.Hour)
	next, _ := f.svc.Progress(ctx, "ana", "spanish")
	if next.TodayXP != 0 {
		t.Errorf("TodayXP next day = %d, want 0", next.TodayXP)
	}
}

func TestCourse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	steps, err := f.svc.Course(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Course() error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	if !steps[0].Unlocked || steps[0].LockReason != "" {
		t.Errorf("first step = %+v, want unlocked", steps[0])
	}
	if steps[1].Unlocked {
		t.Error("travel unlocked before any practice")
	}
	if want := "Practice Essentials a bit more to unlock this step."; steps[1].LockReason != want {
		t.Errorf("LockReason = %q, want %q", steps[1].LockReason, want)
	}
	if steps[2].TotalPhrases != 0 || steps[2].LevelUnlocked != corpus.LevelA1 {
		t.Errorf("work step = %+v", steps[2])
	}

	f.play(t, "ana", "essentials", 0)
	steps, _ = f.svc.Course(ctx, "ana", "spanish")
	if steps[1].Unlocked {
		t.Errorf("travel unlocked after one session with mastery %v", steps[0].Mastery)
	}

	f.play(t, "ana", "essentials", 0)
	steps, _ = f.svc.Course(ctx, "ana", "spanish")
	if !steps[1].Unlocked || steps[1].LockReason != "" {
		t.Errorf("travel = %+v, want unlocked after two sessions", steps[1])
	}
	if steps[0].Attempts != 2 {
		t.Errorf("essentials attempts = %d, want 2", steps[0].Attempts)
	}
	if steps[2].Unlocked {
		t.Error("work unlocked without travel practice")
	}

	if _, err := f.svc.Course(ctx, "ana", ""); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Course() without language error = %v, want ErrInvalidRequest", err)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.svc.Stats(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if empty.SessionsCompleted != 0 || empty.WeeklyGoalSessions != 5 || len(empty.WeakestCategories) != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	a := f.play(t, "ana", "travel", 0)
	b := f.play(t, "ana", "travel", 6)
	c := f.play(t, "ana", "essentials", 0)

	st, err := f.svc.Stats(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if st.SessionsCompleted != 3 || st.SessionsLast7Days != 3 {
		t.Errorf("sessions total/last7 = %d/%d, want 3/3", st.SessionsCompleted, st.SessionsLast7Days)
	}
	if st.AvgSessionAccuracy != 75 {
		t.Errorf("AvgSessionAccuracy = %v, want 75", st.AvgSessionAccuracy)
	}
	if want := a.XPGained + b.XPGained + c.XPGained; st.TotalXPFromSessions != want {
		t.Errorf("TotalXPFromSessions = %d, want %d", st.TotalXPFromSessions, want)
	}
	if st.WeeklyGoalProgress != 60 {
		t.Errorf("WeeklyGoalProgress = %d, want 60", st.WeeklyGoalProgress)
	}
	if st.CategoryCount != 2 || st.StreakDays != 1 {
		t.Errorf("categories/streak = %d/%d, want 2/1", st.CategoryCount, st.StreakDays)
	}

	if len(st.CategoryStats) != 2 {
		t.Fatalf("len(CategoryStats) = %d, want 2", len(st.CategoryStats))
	}
	if cs := st.CategoryStats[0]; cs.Category != "travel" || cs.Sessions != 2 || cs.Accuracy != 62.5 {
		t.Errorf("CategoryStats[0] = %+v, want travel 2 sessions 62.5%%", cs)
	}
	if cs := st.CategoryStats[1]; cs.Category != "essentials" || cs.Accuracy != 100 {
		t.Errorf("CategoryStats[1] = %+v, want essentials 100%%", cs)
	}

	var mistakes int
	for _, e := range st.ErrorTypeTrend {
		mistakes += e.Count
	}
	if mistakes != 6 {
		t.Errorf("error trend total = %d, want 6", mistakes)
	}

	if len(st.ObjectiveStats) == 0 {
		t.Fatal("ObjectiveStats empty")
	}
	for i := 1; i < len(st.ObjectiveStats); i++ {
		if st.ObjectiveStats[i].Accuracy < st.ObjectiveStats[i-1].Accuracy {
			t.Errorf("ObjectiveStats not ascending by accuracy: %+v", st.ObjectiveStats)
		}
	}

	if len(st.WeakestCategories) != 2 || st.WeakestCategories[0] != "travel" {
		t.Errorf("WeakestCategories = %v, want travel first", st.WeakestCategories)
	}

	f.clock.Advance(15 * 24 * time.Hour)
	later, err := f.svc.Stats(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if later.SessionsLast7Days != 0 || later.WeeklyGoalProgress != 0 || len(later.ErrorTypeTrend) != 0 {
		t.Errorf("stats after two weeks = last7 %d, goal %d, trend %v", later.SessionsLast7Days, later.WeeklyGoalProgress, later.ErrorTypeTrend)
	}
	if later.SessionsCompleted != 3 {
		t.Errorf("SessionsCompleted = %d, want 3", later.SessionsCompleted)
	}
}

func TestSettingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want func(Settings) bool
	}{
		{"empty takes defaults", Settings{}, func(s Settings) bool { return s == DefaultSettings() }},
		{"minutes floor", Settings{DailyMinutes: 1}, func(s Settings) bool { return s.DailyMinutes == 5 }},
		{"minutes ceiling", Settings{DailyMinutes: 999}, func(s Settings) bool { return s.DailyMinutes == 240 }},
		{"weekly floor", Settings{WeeklyGoalSessions: -4}, func(s Settings) bool { return s.WeeklyGoalSessions == 1 }},
		{"weekly ceiling", Settings{WeeklyGoalSessions: 50}, func(s Settings) bool { return s.WeeklyGoalSessions == 21 }},
		{"unknown level", Settings{SelfRatedLevel: "c2"}, func(s Settings) bool { return s.SelfRatedLevel == "a1" }},
		{"known level kept", Settings{SelfRatedLevel: "b1"}, func(s Settings) bool { return s.SelfRatedLevel == "b1" }},
		{"name trimmed", Settings{LearnerName: "  Sam "}, func(s Settings) bool { return s.LearnerName == "Sam" }},
		{"blank name", Settings{LearnerName: "   "}, func(s Settings) bool { return s.LearnerName == "Learner" }},
		{"languages lowered", Settings{TargetLanguage: " Russian"}, func(s Settings) bool { return s.TargetLanguage == "russian" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !tt.want(got) {
				t.Errorf("Normalize() = %+v", got)
			}
		})
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.Settings(ctx, "ana")
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", got)
	}

	saved, err := f.svc.SaveSettings(ctx, "ana", Settings{WeeklyGoalSessions: 2, SelfRatedLevel: "b1", LearnerName: "Ana"})
	if err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	if !saved.UpdatedAt.Equal(t0) {
		t.Errorf("UpdatedAt = %v, want %v", saved.UpdatedAt, t0)
	}
	got, _ = f.svc.Settings(ctx, "ana")
	if got.WeeklyGoalSessions != 2 || got.SelfRatedLevel != "b1" || got.LearnerName != "Ana" || got.DailyMinutes != 20 {
		t.Errorf("Settings() after save = %+v", got)
	}

	other, _ := f.svc.Settings(ctx, "ben")
	if other.LearnerName != "Learner" {
		t.Errorf("ben settings = %+v, want defaults", other)
	}

	if _, err := f.svc.SaveSettings(ctx, "", Settings{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("SaveSettings(\"\") error = %v, want ErrInvalidRequest", err)
	}
}

func TestStats_WeeklyGoalFromSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.SaveSettings(ctx, "ana", Settings{WeeklyGoalSessions: 2}); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		f.play(t, "ana", "travel", 0)
	}
	st, err := f.svc.Stats(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if st.WeeklyGoalProgress != 100 {
		t.Errorf("WeeklyGoalProgress = %d, want capped at 100", st.WeeklyGoalProgress)
	}
}

func TestStatusOf(t *testing.T) {
	f := newFixture(t)
	res := f.start(t, "ana", "travel")
	as, _ := f.repo.GetActiveSession(context.Background(), res.SessionID)

	if got := StatusOf(as, t0); got != StatusCreated || !got.Scoreable() {
		t.Errorf("StatusOf(now) = %s", got)
	}
	if got := StatusOf(as, t0.Add(49*time.Hour)); got != StatusExpired || got.Scoreable() {
		t.Errorf("StatusOf(after ttl) = %s", got)
	}
	as.Completed = true
	if got := StatusOf(as, t0.Add(49*time.Hour)); got != StatusCompleted {
		t.Errorf("StatusOf(completed, expired) = %s, want completed", got)
	}
}
