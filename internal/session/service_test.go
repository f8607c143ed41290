package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/platform/clock"
	"github.com/abhisek/lingoflow/internal/platform/id"
	"github.com/abhisek/lingoflow/internal/store"
	"github.com/abhisek/lingoflow/internal/store/memstore"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	repo  *memstore.Store
	clock *clock.Manual
}

func testCatalog(t *testing.T) *corpus.Catalog {
	t.Helper()
	items := map[string]map[string][]corpus.Item{"spanish": {}}
	for _, cat := range []string{"essentials", "travel"} {
		for i := 0; i < 8; i++ {
			items["spanish"][cat] = append(items["spanish"][cat], corpus.Item{
				ID:     fmt.Sprintf("%s-%d", cat, i),
				Level:  corpus.LevelA1,
				Prompt: fmt.Sprintf("Say phrase %d", i),
				Target: fmt.Sprintf("Frase%d sobre %s número %d.", i, cat, i),
			})
		}
	}
	cats := []corpus.Category{
		{ID: "essentials", Label: "Essentials"},
		{ID: "travel", Label: "Travel"},
		{ID: "work", Label: "Work"},
	}
	c, err := corpus.New([]corpus.Language{{ID: "spanish", Label: "Spanish"}}, cats, items)
	if err != nil {
		t.Fatalf("corpus.New: %v", err)
	}
	return c
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := memstore.New()
	clk := &clock.Manual{T: t0}
	svc := NewService(Deps{
		Repo:   repo,
		Corpus: testCatalog(t),
		Clock:  clk,
		IDs:    &id.Sequence{Prefix: "s"},
		Rand:   rand.New(rand.NewPCG(1, 2)),
	}, Options{})
	return &fixture{svc: svc, repo: repo, clock: clk}
}

func (f *fixture) start(t *testing.T, learner, category string) *StartResult {
	t.Helper()
	res, err := f.svc.Start(context.Background(), StartRequest{LearnerID: learner, Language: "spanish", Category: category})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return res
}

func answer(q exercise.Question, correct bool) exercise.Attempt {
	a := exercise.Attempt{QuestionID: q.Common().ID}
	text := q.Common().Answer
	if c, ok := q.(*exercise.Cloze); ok {
		text = c.ClozeAnswer
	}
	if !correct {
		text = "zzz"
	}
	switch q.Kind() {
	case exercise.KindSentenceBuild, exercise.KindDictation:
		a.BuiltSentence = text
	default:
		a.SelectedOption = text
	}
	return a
}

func answers(qs []exercise.Question, wrong int) []exercise.Attempt {
	out := make([]exercise.Attempt, 0, len(qs))
	for i, q := range qs {
		out = append(out, answer(q, i >= wrong))
	}
	return out
}

func completeReq(learner string, res *StartResult, attempts []exercise.Attempt) CompleteRequest {
	return CompleteRequest{
		LearnerID: learner,
		SessionID: res.SessionID,
		Language:  res.Language,
		Category:  res.Category,
		Attempts:  attempts,
	}
}

func TestStart(t *testing.T) {
	f := newFixture(t)
	res := f.start(t, "ana", " Travel ")

	if res.SessionID != "s-1" {
		t.Errorf("SessionID = %q, want s-1", res.SessionID)
	}
	if res.Category != "travel" || res.Language != "spanish" {
		t.Errorf("language/category = %s/%s, want spanish/travel", res.Language, res.Category)
	}
	if res.RecommendedLevel != corpus.LevelA1 || res.DifficultyMultiplier != 1 {
		t.Errorf("level/multiplier = %s/%v, want a1/1", res.RecommendedLevel, res.DifficultyMultiplier)
	}
	if len(res.Questions) != 8 {
		t.Errorf("len(Questions) = %d, want 8", len(res.Questions))
	}
	if want := t0.Add(48 * time.Hour); !res.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", res.ExpiresAt, want)
	}

	as, err := f.repo.GetActiveSession(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("GetActiveSession() error: %v", err)
	}
	if as.Completed || as.QuestionCount != 8 || as.DifficultyLevel != "a1" {
		t.Errorf("stored session = %+v", as)
	}
	stored, err := exercise.DecodeSet(as.Payload)
	if err != nil {
		t.Fatalf("DecodeSet() error: %v", err)
	}
	for i, q := range stored {
		if q.Common().ID != res.Questions[i].Common().ID {
			t.Errorf("stored question %d = %s, want %s", i, q.Common().ID, res.Questions[i].Common().ID)
		}
	}
}

func TestStart_Validation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		req  StartRequest
		want error
	}{
		{"missing learner", StartRequest{Language: "spanish", Category: "travel"}, ErrInvalidRequest},
		{"missing language", StartRequest{LearnerID: "ana", Category: "travel"}, ErrInvalidRequest},
		{"missing category", StartRequest{LearnerID: "ana", Language: "spanish"}, ErrInvalidRequest},
		{"empty category", StartRequest{LearnerID: "ana", Language: "spanish", Category: "work"}, ErrNotFound},
		{"unknown language", StartRequest{LearnerID: "ana", Language: "klingon", Category: "travel"}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Start(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Start() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	f := newFixture(t)
	tests := []struct{ in, want int }{
		{0, 10},
		{1, 6},
		{6, 6},
		{12, 12},
		{15, 15},
		{99, 15},
		{-3, 6},
	}
	for _, tt := range tests {
		if got := f.svc.clampCount(tt.in); got != tt.want {
			t.Errorf("clampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComplete_PerfectSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")

	out, err := f.svc.Complete(ctx, completeReq("ana", res, answers(res.Questions, 0)))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	if out.Evaluated.Score != 8 || out.Evaluated.MaxScore != 8 || out.Evaluated.Mistakes != 0 {
		t.Errorf("Evaluated = %+v, want 8/8 with no mistakes", out.Evaluated)
	}
	if out.Evaluated.AccuracyPercent != 100 {
		t.Errorf("AccuracyPercent = %v, want 100", out.Evaluated.AccuracyPercent)
	}
	// 16 + 8*2 + 8 bonus
	if out.XPGained != 40 || out.TotalXP != 40 || out.TodayXP != 40 {
		t.Errorf("xp gained/total/today = %d/%d/%d, want 40/40/40", out.XPGained, out.TotalXP, out.TodayXP)
	}
	if out.StreakDays != 1 || out.Hearts != store.DefaultHearts || out.LearnerLevel != 1 {
		t.Errorf("streak/hearts/level = %d/%d/%d, want 1/5/1", out.StreakDays, out.Hearts, out.LearnerLevel)
	}
	if out.Mastery <= 0 {
		t.Errorf("Mastery = %v, want > 0", out.Mastery)
	}

	as, err := f.repo.GetActiveSession(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("GetActiveSession() error: %v", err)
	}
	if StatusOf(as, f.clock.Now()) != StatusCompleted {
		t.Errorf("status = %s, want completed", StatusOf(as, f.clock.Now()))
	}

	rows, _ := f.repo.ListItemProgress(ctx, "ana", "spanish", "travel")
	if len(rows) != 8 {
		t.Errorf("item progress rows = %d, want 8", len(rows))
	}
	hist, _ := f.repo.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana"})
	if len(hist) != 1 || hist[0].SessionID != res.SessionID {
		t.Errorf("session history = %+v, want one record for %s", hist, res.SessionID)
	}
	atts, _ := f.repo.ListAttempts(ctx, store.HistoryQuery{LearnerID: "ana"})
	if len(atts) != 8 {
		t.Errorf("attempt history = %d, want 8", len(atts))
	}
}

func TestComplete_MistakesCostHearts(t *testing.T) {
	f := newFixture(t)
	res := f.start(t, "ana", "travel")

	out, err := f.svc.Complete(context.Background(), completeReq("ana", res, answers(res.Questions, 6)))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if out.Evaluated.Score != 2 || out.Evaluated.Mistakes != 6 {
		t.Errorf("score/mistakes = %d/%d, want 2/6", out.Evaluated.Score, out.Evaluated.Mistakes)
	}
	if out.Hearts != store.DefaultHearts-2 {
		t.Errorf("Hearts = %d, want %d", out.Hearts, store.DefaultHearts-2)
	}
	if out.Evaluated.AccuracyPercent != 25 {
		t.Errorf("AccuracyPercent = %v, want 25", out.Evaluated.AccuracyPercent)
	}
}

func TestComplete_ExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")
	req := completeReq("ana", res, answers(res.Questions, 0))

	first, err := f.svc.Complete(ctx, req)
	if err != nil {
		t.Fatalf("first Complete() error: %v", err)
	}
	_, err = f.svc.Complete(ctx, req)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second Complete() error = %v, want ErrConflict", err)
	}

	p, err := f.svc.Progress(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.TotalXP != first.TotalXP {
		t.Errorf("TotalXP after replay = %d, want %d", p.TotalXP, first.TotalXP)
	}
	hist, _ := f.repo.ListSessions(ctx, store.HistoryQuery{LearnerID: "ana"})
	if len(hist) != 1 {
		t.Errorf("session history = %d records, want 1", len(hist))
	}
}

func TestComplete_RetryAfterPruneIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")
	req := completeReq("ana", res, answers(res.Questions, 0))

	first, err := f.svc.Complete(ctx, req)
	if err != nil {
		t.Fatalf("first Complete() error: %v", err)
	}
	// Starting again prunes the completed session.
	f.start(t, "ana", "essentials")
	if _, err := f.repo.GetActiveSession(ctx, res.SessionID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetActiveSession() after Start error = %v, want store.ErrNotFound", err)
	}

	_, err = f.svc.Complete(ctx, req)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("retried Complete() error = %v, want ErrConflict", err)
	}
	other := req
	other.LearnerID = "ben"
	if _, err := f.svc.Complete(ctx, other); !errors.Is(err, ErrNotFound) {
		t.Errorf("Complete() by another learner error = %v, want ErrNotFound", err)
	}

	p, err := f.svc.Progress(ctx, "ana", "spanish")
	if err != nil {
		t.Fatalf("Progress() error: %v", err)
	}
	if p.TotalXP != first.TotalXP {
		t.Errorf("TotalXP after retry = %d, want %d", p.TotalXP, first.TotalXP)
	}
}

func TestComplete_UnknownQuestionLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")

	attempts := answers(res.Questions, 0)
	attempts = append(attempts, exercise.Attempt{QuestionID: "not-in-session", SelectedOption: "x"})
	_, err := f.svc.Complete(ctx, completeReq("ana", res, attempts))
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Complete() error = %v, want ErrInvalidRequest", err)
	}

	as, _ := f.repo.GetActiveSession(ctx, res.SessionID)
	if as.Completed {
		t.Error("session marked completed after rejected batch")
	}
	prof, _ := f.repo.GetLearnerProfile(ctx, "ana")
	if prof != nil {
		t.Errorf("profile = %+v, want none", prof)
	}
	rows, _ := f.repo.ListItemProgress(ctx, "ana", "spanish", "travel")
	if len(rows) != 0 {
		t.Errorf("item progress rows = %d, want 0", len(rows))
	}

	// The session is still scoreable with a valid batch.
	if _, err := f.svc.Complete(ctx, completeReq("ana", res, answers(res.Questions, 0))); err != nil {
		t.Errorf("Complete() after rejection error: %v", err)
	}
}

func TestComplete_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")
	good := answers(res.Questions, 0)

	tooMany := make([]exercise.Attempt, 401)
	for i := range tooMany {
		tooMany[i] = good[i%len(good)]
	}

	tests := []struct {
		name string
		mut  func(r *CompleteRequest)
		want error
	}{
		{"no attempts", func(r *CompleteRequest) { r.Attempts = nil }, ErrInvalidRequest},
		{"too many attempts", func(r *CompleteRequest) { r.Attempts = tooMany }, ErrInvalidRequest},
		{"missing session id", func(r *CompleteRequest) { r.SessionID = "" }, ErrInvalidRequest},
		{"unknown session", func(r *CompleteRequest) { r.SessionID = "s-404" }, ErrNotFound},
		{"other learner", func(r *CompleteRequest) { r.LearnerID = "ben" }, ErrNotFound},
		{"category mismatch", func(r *CompleteRequest) { r.Category = "essentials" }, ErrInvalidRequest},
		{"language mismatch", func(r *CompleteRequest) { r.Language = "english" }, ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := completeReq("ana", res, good)
			tt.mut(&req)
			_, err := f.svc.Complete(ctx, req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Complete() error = %v, want %v", err, tt.want)
			}
		})
	}

	as, _ := f.repo.GetActiveSession(ctx, res.SessionID)
	if as.Completed {
		t.Error("session completed by a rejected request")
	}
}

func TestComplete_Expired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.start(t, "ana", "travel")

	f.clock.Advance(48*time.Hour + time.Second)
	_, err := f.svc.Complete(ctx, completeReq("ana", res, answers(res.Questions, 0)))
	if !errors.Is(err, ErrGone) {
		t.Fatalf("Complete() error = %v, want ErrGone", err)
	}
	prof, _ := f.repo.GetLearnerProfile(ctx, "ana")
	if prof != nil {
		t.Errorf("profile = %+v, want none", prof)
	}
}

func TestComplete_AtExpiryInstantStillScores(t *testing.T) {
	f := newFixture(t)
	res := f.start(t, "ana", "travel")

	f.clock.Advance(48 * time.Hour)
	if _, err := f.svc.Complete(context.Background(), completeReq("ana", res, answers(res.Questions, 0))); err != nil {
		t.Errorf("Complete() error: %v", err)
	}
}

func TestStart_PrunesStaleSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	done := f.start(t, "ana", "travel")
	if _, err := f.svc.Complete(ctx, completeReq("ana", done, answers(done.Questions, 0))); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	stale := f.start(t, "ana", "travel")
	other := f.start(t, "ben", "travel")

	f.clock.Advance(72 * time.Hour)
	f.start(t, "ana", "essentials")

	for _, sid := range []string{done.SessionID, stale.SessionID} {
		if _, err := f.repo.GetActiveSession(ctx, sid); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("session %s error = %v, want pruned", sid, err)
		}
	}
	if _, err := f.repo.GetActiveSession(ctx, other.SessionID); err != nil {
		t.Errorf("other learner's session pruned: %v", err)
	}
}

func TestPrune(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.start(t, "ana", "travel")
	f.start(t, "ana", "essentials")

	n, err := f.svc.Prune(ctx, "ana")
	if err != nil || n != 0 {
		t.Fatalf("Prune() = %d, %v, want 0 before expiry", n, err)
	}
	f.clock.Advance(49 * time.Hour)
	n, err = f.svc.Prune(ctx, "ana")
	if err != nil || n != 2 {
		t.Errorf("Prune() = %d, %v, want 2", n, err)
	}
	if _, err := f.svc.Prune(ctx, ""); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Prune(\"\") error = %v, want ErrInvalidRequest", err)
	}
}

func TestComplete_LearnersAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.start(t, "ana", "travel")
	b := f.start(t, "ben", "travel")

	if _, err := f.svc.Complete(ctx, completeReq("ana", a, answers(a.Questions, 0))); err != nil {
		t.Fatalf("Complete(ana) error: %v", err)
	}

	pb, err := f.svc.Progress(ctx, "ben", "spanish")
	if err != nil {
		t.Fatalf("Progress(ben) error: %v", err)
	}
	if pb.TotalXP != 0 || len(pb.Categories) != 0 {
		t.Errorf("ben progress = %+v, want untouched", pb)
	}

	outB, err := f.svc.Complete(ctx, completeReq("ben", b, answers(b.Questions, 8)))
	if err != nil {
		t.Fatalf("Complete(ben) error: %v", err)
	}
	pa, _ := f.svc.Progress(ctx, "ana", "spanish")
	if pa.TotalXP != 40 {
		t.Errorf("ana TotalXP = %d, want 40", pa.TotalXP)
	}
	if outB.TotalXP == pa.TotalXP {
		t.Errorf("ben TotalXP = %d, want different from ana", outB.TotalXP)
	}
}

func TestComplete_StreakAcrossDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var streak int
	for day := 0; day < 3; day++ {
		res := f.start(t, "ana", "travel")
		out, err := f.svc.Complete(ctx, completeReq("ana", res, answers(res.Questions, 0)))
		if err != nil {
			t.Fatalf("day %d Complete() error: %v", day, err)
		}
		streak = out.StreakDays
		f.clock.Advance(24 * time.Hour)
	}
	if streak != 3 {
		t.Errorf("streak after three days = %d, want 3", streak)
	}

	f.clock.Advance(48 * time.Hour)
	res := f.start(t, "ana", "travel")
	out, err := f.svc.Complete(ctx, completeReq("ana", res, answers(res.Questions, 0)))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if out.StreakDays != 1 {
		t.Errorf("streak after gap = %d, want 1", out.StreakDays)
	}
}

func TestStart_AdvancesLevelWithMastery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	err := f.repo.UpsertCategoryProgress(ctx, store.CategoryProgress{
		LearnerID: "ana", Language: "spanish", Category: "travel",
		Mastery: 70, Attempts: 10, LevelUnlocked: "b2",
	})
	if err != nil {
		t.Fatalf("UpsertCategoryProgress() error: %v", err)
	}
	res := f.start(t, "ana", "travel")
	if res.RecommendedLevel != corpus.LevelB2 || res.DifficultyMultiplier != 2 {
		t.Errorf("level/multiplier = %s/%v, want b2/2", res.RecommendedLevel, res.DifficultyMultiplier)
	}
}
