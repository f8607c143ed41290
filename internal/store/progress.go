package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingoflow/ent"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
	"github.com/abhisek/lingoflow/ent/dailyxp"
	"github.com/abhisek/lingoflow/ent/itemprogress"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
	"github.com/abhisek/lingoflow/ent/learnersettings"
)

func (r *entRepo) ListItemProgress(ctx context.Context, learnerID, language, category string) ([]ItemProgress, error) {
	rows, err := r.client.ItemProgress.Query().
		Where(
			itemprogress.LearnerID(learnerID),
			itemprogress.Language(language),
			itemprogress.Category(category),
		).
		Order(ent.Asc(itemprogress.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item progress: %w", err)
	}
	out := make([]ItemProgress, 0, len(rows))
	for _, p := range rows {
		out = append(out, ItemProgress{
			LearnerID:     p.LearnerID,
			Language:      p.Language,
			Category:      p.Category,
			ItemID:        p.ItemID,
			Objective:     p.Objective,
			Ease:          p.Ease,
			Streak:        p.Streak,
			Attempts:      p.Attempts,
			Correct:       p.Correct,
			ErrorCount:    p.ErrorCount,
			LastErrorType: p.LastErrorType,
			LastSeen:      utcPtr(p.LastSeen),
			NextDue:       utcPtr(p.NextDue),
		})
	}
	return out, nil
}

func (r *entRepo) UpsertItemProgress(ctx context.Context, p ItemProgress) error {
	existing, err := r.client.ItemProgress.Query().
		Where(
			itemprogress.LearnerID(p.LearnerID),
			itemprogress.Language(p.Language),
			itemprogress.Category(p.Category),
			itemprogress.ItemID(p.ItemID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query item progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.ItemProgress.Create().
			SetLearnerID(p.LearnerID).
			SetLanguage(p.Language).
			SetCategory(p.Category).
			SetItemID(p.ItemID).
			SetObjective(p.Objective).
			SetEase(p.Ease).
			SetStreak(p.Streak).
			SetAttempts(p.Attempts).
			SetCorrect(p.Correct).
			SetErrorCount(p.ErrorCount).
			SetLastErrorType(p.LastErrorType).
			SetNillableLastSeen(p.LastSeen).
			SetNillableNextDue(p.NextDue).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetObjective(p.Objective).
			SetEase(p.Ease).
			SetStreak(p.Streak).
			SetAttempts(p.Attempts).
			SetCorrect(p.Correct).
			SetErrorCount(p.ErrorCount).
			SetLastErrorType(p.LastErrorType).
			SetNillableLastSeen(p.LastSeen).
			SetNillableNextDue(p.NextDue).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save item progress %s: %w", p.ItemID, err)
	}
	return nil
}

func (r *entRepo) GetCategoryProgress(ctx context.Context, learnerID, language, category string) (*CategoryProgress, error) {
	c, err := r.client.CategoryProgress.Query().
		Where(
			categoryprogress.LearnerID(learnerID),
			categoryprogress.Language(language),
			categoryprogress.Category(category),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category progress: %w", err)
	}
	cp := entCategoryProgress(c)
	return &cp, nil
}

func (r *entRepo) ListCategoryProgress(ctx context.Context, learnerID, language string) ([]CategoryProgress, error) {
	rows, err := r.client.CategoryProgress.Query().
		Where(
			categoryprogress.LearnerID(learnerID),
			categoryprogress.Language(language),
		).
		Order(ent.Asc(categoryprogress.FieldCategory)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query category progress: %w", err)
	}
	out := make([]CategoryProgress, 0, len(rows))
	for _, c := range rows {
		out = append(out, entCategoryProgress(c))
	}
	return out, nil
}

func (r *entRepo) UpsertCategoryProgress(ctx context.Context, p CategoryProgress) error {
	existing, err := r.client.CategoryProgress.Query().
		Where(
			categoryprogress.LearnerID(p.LearnerID),
			categoryprogress.Language(p.Language),
			categoryprogress.Category(p.Category),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query category progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.CategoryProgress.Create().
			SetLearnerID(p.LearnerID).
			SetLanguage(p.Language).
			SetCategory(p.Category).
			SetMastery(p.Mastery).
			SetAttempts(p.Attempts).
			SetTotalAnswers(p.TotalAnswers).
			SetCorrectAnswers(p.CorrectAnswers).
			SetLevelUnlocked(p.LevelUnlocked).
			SetNillableLastPracticedAt(p.LastPracticedAt).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetMastery(p.Mastery).
			SetAttempts(p.Attempts).
			SetTotalAnswers(p.TotalAnswers).
			SetCorrectAnswers(p.CorrectAnswers).
			SetLevelUnlocked(p.LevelUnlocked).
			SetNillableLastPracticedAt(p.LastPracticedAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save category progress %s: %w", p.Category, err)
	}
	return nil
}

func entCategoryProgress(c *ent.CategoryProgress) CategoryProgress {
	return CategoryProgress{
		LearnerID:       c.LearnerID,
		Language:        c.Language,
		Category:        c.Category,
		Mastery:         c.Mastery,
		Attempts:        c.Attempts,
		TotalAnswers:    c.TotalAnswers,
		CorrectAnswers:  c.CorrectAnswers,
		LevelUnlocked:   c.LevelUnlocked,
		LastPracticedAt: utcPtr(c.LastPracticedAt),
	}
}

func (r *entRepo) GetLearnerProfile(ctx context.Context, learnerID string) (*LearnerProfile, error) {
	p, err := r.client.LearnerProgress.Query().
		Where(learnerprogress.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner progress: %w", err)
	}
	return &LearnerProfile{
		LearnerID:     p.LearnerID,
		TotalXP:       p.TotalXp,
		StreakDays:    p.StreakDays,
		Hearts:        p.Hearts,
		LearnerLevel:  p.LearnerLevel,
		LastCompleted: utcPtr(p.LastCompleted),
	}, nil
}

func (r *entRepo) SaveLearnerProfile(ctx context.Context, p LearnerProfile) error {
	existing, err := r.client.LearnerProgress.Query().
		Where(learnerprogress.LearnerID(p.LearnerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query learner progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearnerProgress.Create().
			SetLearnerID(p.LearnerID).
			SetTotalXp(p.TotalXP).
			SetStreakDays(p.StreakDays).
			SetHearts(p.Hearts).
			SetLearnerLevel(p.LearnerLevel).
			SetNillableLastCompleted(p.LastCompleted).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetTotalXp(p.TotalXP).
			SetStreakDays(p.StreakDays).
			SetHearts(p.Hearts).
			SetLearnerLevel(p.LearnerLevel).
			SetNillableLastCompleted(p.LastCompleted).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save learner progress: %w", err)
	}
	return nil
}

func (r *entRepo) GetSettings(ctx context.Context, learnerID string) (*LearnerSettings, error) {
	s, err := r.client.LearnerSettings.Query().
		Where(learnersettings.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner settings: %w", err)
	}
	return &LearnerSettings{
		LearnerID:          s.LearnerID,
		NativeLanguage:     s.NativeLanguage,
		TargetLanguage:     s.TargetLanguage,
		DailyGoal:          s.DailyGoal,
		DailyMinutes:       s.DailyMinutes,
		WeeklyGoalSessions: s.WeeklyGoalSessions,
		SelfRatedLevel:     s.SelfRatedLevel,
		LearnerName:        s.LearnerName,
		LearnerBio:         s.LearnerBio,
		FocusArea:          s.FocusArea,
		UpdatedAt:          s.UpdatedAt.UTC(),
	}, nil
}

func (r *entRepo) SaveSettings(ctx context.Context, s LearnerSettings) error {
	existing, err := r.client.LearnerSettings.Query().
		Where(learnersettings.LearnerID(s.LearnerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query learner settings: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearnerSettings.Create().
			SetLearnerID(s.LearnerID).
			SetNativeLanguage(s.NativeLanguage).
			SetTargetLanguage(s.TargetLanguage).
			SetDailyGoal(s.DailyGoal).
			SetDailyMinutes(s.DailyMinutes).
			SetWeeklyGoalSessions(s.WeeklyGoalSessions).
			SetSelfRatedLevel(s.SelfRatedLevel).
			SetLearnerName(s.LearnerName).
			SetLearnerBio(s.LearnerBio).
			SetFocusArea(s.FocusArea).
			SetUpdatedAt(s.UpdatedAt).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetNativeLanguage(s.NativeLanguage).
			SetTargetLanguage(s.TargetLanguage).
			SetDailyGoal(s.DailyGoal).
			SetDailyMinutes(s.DailyMinutes).
			SetWeeklyGoalSessions(s.WeeklyGoalSessions).
			SetSelfRatedLevel(s.SelfRatedLevel).
			SetLearnerName(s.LearnerName).
			SetLearnerBio(s.LearnerBio).
			SetFocusArea(s.FocusArea).
			SetUpdatedAt(s.UpdatedAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save learner settings: %w", err)
	}
	return nil
}

func (r *entRepo) DailyXP(ctx context.Context, learnerID, language string, day time.Time) (int, error) {
	row, err := r.client.DailyXP.Query().
		Where(
			dailyxp.LearnerID(learnerID),
			dailyxp.Language(language),
			dailyxp.Day(utcDay(day)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query daily xp: %w", err)
	}
	return row.Xp, nil
}

func (r *entRepo) AddDailyXP(ctx context.Context, learnerID, language string, day time.Time, xp int) (int, error) {
	day = utcDay(day)
	row, err := r.client.DailyXP.Query().
		Where(
			dailyxp.LearnerID(learnerID),
			dailyxp.Language(language),
			dailyxp.Day(day),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query daily xp: %w", err)
	}

	if row == nil {
		total := max(0, xp)
		_, err = r.client.DailyXP.Create().
			SetLearnerID(learnerID).
			SetLanguage(language).
			SetDay(day).
			SetXp(total).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("save daily xp: %w", err)
		}
		return total, nil
	}

	total := max(0, row.Xp+xp)
	if _, err := row.Update().SetXp(total).Save(ctx); err != nil {
		return 0, fmt.Errorf("save daily xp: %w", err)
	}
	return total, nil
}

// utcDay truncates t to midnight UTC.
func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
