package session

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/mastery"
	"github.com/abhisek/lingoflow/internal/spacedrep"
	"github.com/abhisek/lingoflow/internal/store"
)

// Course unlock rule: a category opens once the previous one reaches
// UnlockMastery or has been practiced UnlockSessions times.
const (
	UnlockMastery  = 35.0
	UnlockSessions = 2
)

// Stats windows and list sizes.
const (
	WeekDays          = 7
	ErrorTrendDays    = 14
	ErrorTrendLimit   = 6
	ObjectiveLimit    = 8
	WeakestCategories = 2
)

// CategoryProgress is the display form of a category aggregate.
type CategoryProgress struct {
	Category        string       `json:"category"`
	Mastery         float64      `json:"mastery"`
	Attempts        int          `json:"attempts"`
	TotalAnswers    int          `json:"totalAnswers"`
	CorrectAnswers  int          `json:"correctAnswers"`
	Accuracy        float64      `json:"accuracy"`
	LevelUnlocked   corpus.Level `json:"levelUnlocked"`
	LastPracticedAt *time.Time   `json:"lastPracticedAt"`
}

// Progress is the learner overview for one language.
type Progress struct {
	TotalXP       int                `json:"totalXp"`
	TodayXP       int                `json:"todayXp"`
	StreakDays    int                `json:"streak"`
	Hearts        int                `json:"hearts"`
	LearnerLevel  int                `json:"learnerLevel"`
	LastCompleted *time.Time         `json:"lastCompletedDate"`
	Categories    []CategoryProgress `json:"categories"`
}

// Progress returns the learner's totals and, when language is set, the
// language's daily XP and category aggregates.
func (s *Service) Progress(ctx context.Context, learnerID, language string) (*Progress, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("%w: learner is required", ErrInvalidRequest)
	}
	language = strings.ToLower(strings.TrimSpace(language))

	prof, err := s.repo.GetLearnerProfile(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load learner profile: %w", err)
	}
	p := store.NewLearnerProfile(learnerID)
	if prof != nil {
		p = *prof
	}

	out := &Progress{
		TotalXP:       p.TotalXP,
		StreakDays:    p.StreakDays,
		Hearts:        p.Hearts,
		LearnerLevel:  p.LearnerLevel,
		LastCompleted: p.LastCompleted,
		Categories:    []CategoryProgress{},
	}
	if language == "" {
		return out, nil
	}

	out.TodayXP, err = s.repo.DailyXP(ctx, learnerID, language, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("load daily xp: %w", err)
	}
	out.Categories, err = s.categoryProgress(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) categoryProgress(ctx context.Context, learnerID, language string) ([]CategoryProgress, error) {
	rows, err := s.repo.ListCategoryProgress(ctx, learnerID, language)
	if err != nil {
		return nil, fmt.Errorf("load category progress: %w", err)
	}
	out := make([]CategoryProgress, 0, len(rows))
	for _, r := range rows {
		out = append(out, displayCategory(r))
	}
	return out, nil
}

func displayCategory(r store.CategoryProgress) CategoryProgress {
	var acc float64
	if r.TotalAnswers > 0 {
		acc = round1(float64(r.CorrectAnswers) / float64(r.TotalAnswers) * 100)
	}
	level := corpus.Level(r.LevelUnlocked)
	if !level.Valid() {
		level = corpus.LevelA1
	}
	return CategoryProgress{
		Category:        r.Category,
		Mastery:         mastery.Round1(r.Mastery),
		Attempts:        r.Attempts,
		TotalAnswers:    r.TotalAnswers,
		CorrectAnswers:  r.CorrectAnswers,
		Accuracy:        acc,
		LevelUnlocked:   level,
		LastPracticedAt: r.LastPracticedAt,
	}
}

// CourseStep is one category of the course path.
type CourseStep struct {
	corpus.CategoryOverview
	Mastery       float64      `json:"mastery"`
	Attempts      int          `json:"attempts"`
	Accuracy      float64      `json:"accuracy"`
	LevelUnlocked corpus.Level `json:"levelUnlocked"`
	Unlocked      bool         `json:"unlocked"`
	LockReason    string       `json:"lockReason"`
}

// Course lists the categories of a language in order with the learner's
// progress and unlock state. The first category is always open.
func (s *Service) Course(ctx context.Context, learnerID, language string) ([]CourseStep, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if learnerID == "" || language == "" {
		return nil, fmt.Errorf("%w: learner and language are required", ErrInvalidRequest)
	}

	cats, err := s.categoryProgress(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]CategoryProgress, len(cats))
	for _, c := range cats {
		byID[c.Category] = c
	}

	overview := s.corpus.Overview(language)
	out := make([]CourseStep, 0, len(overview))
	for i, ov := range overview {
		step := CourseStep{CategoryOverview: ov, LevelUnlocked: corpus.LevelA1, Unlocked: i == 0}
		if p, ok := byID[ov.ID]; ok {
			step.Mastery = p.Mastery
			step.Attempts = p.Attempts
			step.Accuracy = p.Accuracy
			step.LevelUnlocked = p.LevelUnlocked
		}
		if i > 0 {
			prevCat := overview[i-1]
			if prev, ok := byID[prevCat.ID]; ok {
				step.Unlocked = prev.Mastery >= UnlockMastery || prev.Attempts >= UnlockSessions
			}
			if !step.Unlocked {
				step.LockReason = fmt.Sprintf("Practice %s a bit more to unlock this step.", prevCat.Label)
			}
		}
		out = append(out, step)
	}
	return out, nil
}

// CategoryStat summarizes session history in one category.
type CategoryStat struct {
	Category        string    `json:"category"`
	Sessions        int       `json:"sessions"`
	Accuracy        float64   `json:"accuracy"`
	LastCompletedAt time.Time `json:"lastCompletedAt"`
}

// ErrorTypeCount is one entry of the recent error trend.
type ErrorTypeCount struct {
	ErrorType string `json:"errorType"`
	Count     int    `json:"count"`
}

// ObjectiveStat is the accuracy on one learning objective.
type ObjectiveStat struct {
	Objective string  `json:"objective"`
	Attempts  int     `json:"attempts"`
	Accuracy  float64 `json:"accuracy"`
}

// Stats is the learner's practice report for one language.
type Stats struct {
	SessionsCompleted   int              `json:"sessionsCompleted"`
	SessionsLast7Days   int              `json:"sessionsLast7Days"`
	AvgSessionAccuracy  float64          `json:"avgSessionAccuracy"`
	TotalXPFromSessions int              `json:"totalXpFromSessions"`
	CompletionPercent   int              `json:"completionPercent"`
	AccuracyPercent     int              `json:"accuracyPercent"`
	MasteredCount       int              `json:"masteredCount"`
	CategoryCount       int              `json:"categoryCount"`
	StreakDays          int              `json:"streak"`
	WeeklyGoalProgress  int              `json:"weeklyGoalProgress"`
	WeeklyGoalSessions  int              `json:"weeklyGoalSessions"`
	WeakestCategories   []string         `json:"weakestCategories"`
	CategoryStats       []CategoryStat   `json:"categoryStats"`
	ErrorTypeTrend      []ErrorTypeCount `json:"errorTypeTrend"`
	ObjectiveStats      []ObjectiveStat  `json:"objectiveStats"`
}

// Stats aggregates session and attempt history for a language.
func (s *Service) Stats(ctx context.Context, learnerID, language string) (*Stats, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if learnerID == "" || language == "" {
		return nil, fmt.Errorf("%w: learner and language are required", ErrInvalidRequest)
	}
	today := spacedrep.Day(s.clock.Now())

	settings, err := s.Settings(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	progress, err := s.Progress(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repo.ListSessions(ctx, store.HistoryQuery{LearnerID: learnerID, Language: language})
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}
	attempts, err := s.repo.ListAttempts(ctx, store.HistoryQuery{LearnerID: learnerID, Language: language})
	if err != nil {
		return nil, fmt.Errorf("load attempt history: %w", err)
	}

	st := &Stats{
		SessionsCompleted:  len(sessions),
		CategoryCount:      len(progress.Categories),
		StreakDays:         progress.StreakDays,
		WeeklyGoalSessions: settings.WeeklyGoalSessions,
	}

	weekStart := today.AddDate(0, 0, -(WeekDays - 1))
	var accSum float64
	for _, r := range sessions {
		accSum += r.Accuracy
		st.TotalXPFromSessions += r.XPGained
		if !r.CompletedAt.Before(weekStart) {
			st.SessionsLast7Days++
		}
	}
	if len(sessions) > 0 {
		st.AvgSessionAccuracy = round1(accSum / float64(len(sessions)) * 100)
	}
	if settings.WeeklyGoalSessions > 0 {
		st.WeeklyGoalProgress = min(100, int(math.Round(float64(st.SessionsLast7Days)/float64(settings.WeeklyGoalSessions)*100)))
	}

	st.CategoryStats = categoryStats(sessions)
	st.ErrorTypeTrend = errorTrend(attempts, today.AddDate(0, 0, -(ErrorTrendDays-1)))
	st.ObjectiveStats = objectiveStats(attempts)

	var masterySum, accuracySum float64
	for _, c := range progress.Categories {
		masterySum += c.Mastery
		accuracySum += c.Accuracy
		if c.Mastery >= mastery.MasteredThreshold {
			st.MasteredCount++
		}
	}
	if n := len(progress.Categories); n > 0 {
		st.CompletionPercent = int(math.Round(masterySum / float64(n)))
		st.AccuracyPercent = int(math.Round(accuracySum / float64(n)))
	}
	st.WeakestCategories = weakestCategories(progress.Categories)

	return st, nil
}

func categoryStats(sessions []store.SessionRecord) []CategoryStat {
	type agg struct {
		n    int
		sum  float64
		last time.Time
	}
	byCat := make(map[string]*agg)
	for _, r := range sessions {
		a := byCat[r.Category]
		if a == nil {
			a = &agg{}
			byCat[r.Category] = a
		}
		a.n++
		a.sum += r.Accuracy
		if r.CompletedAt.After(a.last) {
			a.last = r.CompletedAt
		}
	}

	out := make([]CategoryStat, 0, len(byCat))
	for cat, a := range byCat {
		out = append(out, CategoryStat{
			Category:        cat,
			Sessions:        a.n,
			Accuracy:        round1(a.sum / float64(a.n) * 100),
			LastCompletedAt: a.last,
		})
	}
	slices.SortFunc(out, func(a, b CategoryStat) int {
		return cmp.Or(
			cmp.Compare(b.Sessions, a.Sessions),
			cmp.Compare(b.Accuracy, a.Accuracy),
			cmp.Compare(a.Category, b.Category),
		)
	})
	return out
}

func errorTrend(attempts []store.AttemptRecord, since time.Time) []ErrorTypeCount {
	counts := make(map[string]int)
	for _, a := range attempts {
		if a.Correct || a.CreatedAt.Before(since) {
			continue
		}
		counts[a.ErrorType]++
	}
	out := make([]ErrorTypeCount, 0, len(counts))
	for et, n := range counts {
		out = append(out, ErrorTypeCount{ErrorType: et, Count: n})
	}
	slices.SortFunc(out, func(a, b ErrorTypeCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.ErrorType, b.ErrorType))
	})
	if len(out) > ErrorTrendLimit {
		out = out[:ErrorTrendLimit]
	}
	return out
}

func objectiveStats(attempts []store.AttemptRecord) []ObjectiveStat {
	type agg struct{ n, correct int }
	byObj := make(map[string]*agg)
	for _, a := range attempts {
		if a.Objective == "" {
			continue
		}
		g := byObj[a.Objective]
		if g == nil {
			g = &agg{}
			byObj[a.Objective] = g
		}
		g.n++
		if a.Correct {
			g.correct++
		}
	}

	type row struct {
		ObjectiveStat
		ratio float64
	}
	rows := make([]row, 0, len(byObj))
	for obj, g := range byObj {
		ratio := float64(g.correct) / float64(g.n)
		rows = append(rows, row{
			ObjectiveStat: ObjectiveStat{Objective: obj, Attempts: g.n, Accuracy: round1(ratio * 100)},
			ratio:         ratio,
		})
	}
	slices.SortFunc(rows, func(a, b row) int {
		return cmp.Or(
			cmp.Compare(a.ratio, b.ratio),
			cmp.Compare(b.Attempts, a.Attempts),
			cmp.Compare(a.Objective, b.Objective),
		)
	})

	out := make([]ObjectiveStat, 0, min(len(rows), ObjectiveLimit))
	for i := 0; i < len(rows) && i < ObjectiveLimit; i++ {
		out = append(out, rows[i].ObjectiveStat)
	}
	return out
}

func weakestCategories(cats []CategoryProgress) []string {
	practiced := slices.DeleteFunc(slices.Clone(cats), func(c CategoryProgress) bool {
		return c.Attempts <= 0
	})
	slices.SortStableFunc(practiced, func(a, b CategoryProgress) int {
		return cmp.Or(cmp.Compare(a.Accuracy, b.Accuracy), cmp.Compare(a.Mastery, b.Mastery))
	})
	out := []string{}
	for i := 0; i < len(practiced) && i < WeakestCategories; i++ {
		out = append(out, practiced[i].Category)
	}
	return out
}

// Prune deletes the learner's completed and expired sessions.
func (s *Service) Prune(ctx context.Context, learnerID string) (int, error) {
	if learnerID == "" {
		return 0, fmt.Errorf("%w: learner is required", ErrInvalidRequest)
	}
	n, err := s.repo.PruneActiveSessions(ctx, learnerID, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	if n > 0 {
		s.log.Info("pruned sessions", "learner", learnerID, "count", n)
	}
	return n, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
