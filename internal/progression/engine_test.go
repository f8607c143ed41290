package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/grading"
	"github.com/abhisek/lingoflow/internal/store"
	"github.com/abhisek/lingoflow/internal/store/memstore"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func questions() []exercise.Question {
	return []exercise.Question{
		&exercise.MultipleChoice{Base: exercise.Base{ID: "it-1", Answer: "Hola", Objective: "travel-core"}, Options: []string{"Hola", "Adiós"}},
		&exercise.SentenceBuild{Base: exercise.Base{ID: "it-2", Answer: "Hola amigo", Objective: "travel-core"}},
		&exercise.Dictation{Base: exercise.Base{ID: "it-3", Answer: "Buenos días", Objective: "travel-core"}},
	}
}

func grade(t *testing.T, attempts ...exercise.Attempt) *grading.Report {
	t.Helper()
	r, err := grading.Grade(questions(), attempts)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	return r
}

func apply(t *testing.T, repo store.Repo, in Input) *Snapshot {
	t.Helper()
	var snap *Snapshot
	err := repo.InTx(context.Background(), func(w store.Writer) error {
		var err error
		snap, err = NewEngine(nil).Apply(context.Background(), w, in)
		return err
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return snap
}

func input(learner, sessionID string, r *grading.Report, at time.Time) Input {
	return Input{
		LearnerID:  learner,
		SessionID:  sessionID,
		Language:   "spanish",
		Category:   "travel",
		Difficulty: corpus.LevelA1,
		Report:     r,
		Now:        at,
	}
}

func TestApply_PerfectFirstSession(t *testing.T) {
	repo := memstore.New()
	r := grade(t,
		exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"},
		exercise.Attempt{QuestionID: "it-2", BuiltSentence: "Hola amigo"},
		exercise.Attempt{QuestionID: "it-3", BuiltSentence: "buenos días"},
	)
	snap := apply(t, repo, input("ana", "s1", r, now))

	// base 16+3*2 = 22, +8 challenge bonus
	if snap.XPGained != 30 {
		t.Errorf("XPGained = %d, want 30", snap.XPGained)
	}
	if snap.StreakDays != 1 || snap.Hearts != store.DefaultHearts || snap.LearnerLevel != 1 {
		t.Errorf("streak/hearts/level = %d/%d/%d, want 1/5/1", snap.StreakDays, snap.Hearts, snap.LearnerLevel)
	}
	if snap.Mastery != 11.2 {
		t.Errorf("Mastery = %v, want 11.2", snap.Mastery)
	}
	if snap.LevelUnlocked != corpus.LevelA1 {
		t.Errorf("LevelUnlocked = %s, want a1", snap.LevelUnlocked)
	}
	if snap.TodayXP != 30 || snap.TotalXP != 30 {
		t.Errorf("today/total = %d/%d, want 30/30", snap.TodayXP, snap.TotalXP)
	}
	if snap.ItemsUpdated != 3 {
		t.Errorf("ItemsUpdated = %d, want 3", snap.ItemsUpdated)
	}

	ctx := context.Background()
	items, _ := repo.ListItemProgress(ctx, "ana", "spanish", "travel")
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for _, it := range items {
		if it.Ease != 1.85 || it.Streak != 1 || it.Attempts != 1 || it.Correct != 1 {
			t.Errorf("item %s = %+v", it.ItemID, it)
		}
		if it.NextDue == nil || !it.NextDue.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("item %s next due = %v, want 2026-03-12", it.ItemID, it.NextDue)
		}
	}

	cp, _ := repo.GetCategoryProgress(ctx, "ana", "spanish", "travel")
	if cp == nil || cp.Attempts != 1 || cp.TotalAnswers != 3 || cp.CorrectAnswers != 3 {
		t.Errorf("category progress = %+v", cp)
	}

	sessions, _ := repo.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana"})
	if len(sessions) != 1 || sessions[0].XPGained != 30 || sessions[0].Accuracy != 1 {
		t.Errorf("sessions = %+v", sessions)
	}
	attempts, _ := repo.ListAttempts(ctx, store.HistoryQuery{LearnerID: "ana"})
	if len(attempts) != 3 {
		t.Errorf("attempts = %d, want 3", len(attempts))
	}
}

func TestApply_MistakesAndRepeats(t *testing.T) {
	repo := memstore.New()
	r := grade(t,
		exercise.Attempt{QuestionID: "it-1", SelectedOption: "Adiós"},
		exercise.Attempt{QuestionID: "it-2", BuiltSentence: "amigo Hola"},
		exercise.Attempt{QuestionID: "it-3", BuiltSentence: "buenas"},
		exercise.Attempt{QuestionID: "it-2", BuiltSentence: "Hola amigo"},
	)
	snap := apply(t, repo, input("ana", "s1", r, now))

	if snap.MaxScore != 4 || snap.Score != 1 || snap.Mistakes != 3 {
		t.Errorf("score = %d/%d (%d mistakes)", snap.Score, snap.MaxScore, snap.Mistakes)
	}
	if snap.Hearts != store.DefaultHearts-1 {
		t.Errorf("Hearts = %d, want %d", snap.Hearts, store.DefaultHearts-1)
	}
	if snap.Mastery != 0 {
		t.Errorf("Mastery = %v, want 0 (clamped)", snap.Mastery)
	}
	if snap.ItemsUpdated != 3 {
		t.Errorf("ItemsUpdated = %d, want 3", snap.ItemsUpdated)
	}

	items, _ := memItems(repo)
	it2 := items["it-2"]
	// miss then hit: 1.8 -> 1.6 -> 1.65
	if it2.Attempts != 2 || it2.Correct != 1 || it2.ErrorCount != 1 || it2.Streak != 1 || it2.Ease != 1.65 {
		t.Errorf("it-2 = %+v", it2)
	}
	if it2.LastErrorType != "" {
		t.Errorf("it-2 last error = %q, want cleared", it2.LastErrorType)
	}
	if items["it-1"].LastErrorType != "wrong_option" {
		t.Errorf("it-1 last error = %q", items["it-1"].LastErrorType)
	}
	if items["it-3"].LastErrorType != "dictation_mismatch" {
		t.Errorf("it-3 last error = %q", items["it-3"].LastErrorType)
	}
}

func memItems(repo store.Reader) (map[string]store.ItemProgress, error) {
	rows, err := repo.ListItemProgress(context.Background(), "ana", "spanish", "travel")
	out := make(map[string]store.ItemProgress, len(rows))
	for _, r := range rows {
		out[r.ItemID] = r
	}
	return out, err
}

func TestApply_StreakAcrossDays(t *testing.T) {
	repo := memstore.New()
	perfect := func() *grading.Report {
		return grade(t, exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"})
	}

	tests := []struct {
		at   time.Time
		want int
	}{
		{now, 1},
		{now.Add(3 * time.Hour), 1},
		{now.AddDate(0, 0, 1), 2},
		{now.AddDate(0, 0, 2), 3},
		{now.AddDate(0, 0, 5), 1},
	}
	for i, tt := range tests {
		snap := apply(t, repo, input("ana", "s"+string(rune('a'+i)), perfect(), tt.at))
		if snap.StreakDays != tt.want {
			t.Errorf("session %d: StreakDays = %d, want %d", i, snap.StreakDays, tt.want)
		}
	}
}

func TestApply_LearnersAreIndependent(t *testing.T) {
	repo := memstore.New()
	r := grade(t, exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"})

	a := apply(t, repo, input("ana", "s1", r, now))
	apply(t, repo, input("ana", "s2", r, now))
	b := apply(t, repo, input("ben", "s3", r, now))

	if b.TotalXP != a.XPGained || b.TodayXP != a.XPGained {
		t.Errorf("ben total/today = %d/%d, want %d", b.TotalXP, b.TodayXP, a.XPGained)
	}
	if b.Mastery != a.Mastery {
		t.Errorf("ben mastery = %v, want %v", b.Mastery, a.Mastery)
	}

	ctx := context.Background()
	ana, _ := repo.ListItemProgress(ctx, "ana", "spanish", "travel")
	ben, _ := repo.ListItemProgress(ctx, "ben", "spanish", "travel")
	if len(ana) != 1 || len(ben) != 1 || ana[0].Attempts != 2 || ben[0].Attempts != 1 {
		t.Errorf("ana=%+v ben=%+v", ana, ben)
	}
}

func TestApply_DailyXPAccumulates(t *testing.T) {
	repo := memstore.New()
	r := grade(t, exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"})

	first := apply(t, repo, input("ana", "s1", r, now))
	second := apply(t, repo, input("ana", "s2", r, now.Add(time.Hour)))
	if second.TodayXP != first.XPGained+second.XPGained {
		t.Errorf("TodayXP = %d, want %d", second.TodayXP, first.XPGained+second.XPGained)
	}
	next := apply(t, repo, input("ana", "s3", r, now.AddDate(0, 0, 1)))
	if next.TodayXP != next.XPGained {
		t.Errorf("next day TodayXP = %d, want %d", next.TodayXP, next.XPGained)
	}
}

func TestApply_DifficultyBonus(t *testing.T) {
	repo := memstore.New()
	r := grade(t, exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"})
	in := input("ana", "s1", r, now)
	in.Difficulty = corpus.LevelB2

	snap := apply(t, repo, in)
	// (1/3 - 0.6) * 28 + 4 = -3.47, clamped
	if snap.Mastery != 0 {
		t.Errorf("Mastery = %v, want 0", snap.Mastery)
	}
}

type failingWriter struct {
	store.Writer
}

func (failingWriter) AppendSession(context.Context, store.SessionRecord) error {
	return errors.New("disk full")
}

func TestApply_FailureRollsBack(t *testing.T) {
	repo := memstore.New()
	r := grade(t, exercise.Attempt{QuestionID: "it-1", SelectedOption: "Hola"})
	ctx := context.Background()

	err := repo.InTx(ctx, func(w store.Writer) error {
		_, err := NewEngine(nil).Apply(ctx, failingWriter{w}, input("ana", "s1", r, now))
		return err
	})
	if err == nil {
		t.Fatal("expected error")
	}

	items, _ := repo.ListItemProgress(ctx, "ana", "spanish", "travel")
	cp, _ := repo.GetCategoryProgress(ctx, "ana", "spanish", "travel")
	if len(items) != 0 || cp != nil {
		t.Errorf("partial state left behind: items=%v category=%v", items, cp)
	}
}

func TestApply_NilReport(t *testing.T) {
	_, err := NewEngine(nil).Apply(context.Background(), memstore.New(), Input{SessionID: "x"})
	if err == nil {
		t.Error("expected error for nil report")
	}
}
