package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/store"
)

// Settings are the learner preferences.
type Settings struct {
	NativeLanguage     string    `json:"nativeLanguage"`
	TargetLanguage     string    `json:"targetLanguage"`
	DailyGoal          int       `json:"dailyGoal"`
	DailyMinutes       int       `json:"dailyMinutes"`
	WeeklyGoalSessions int       `json:"weeklyGoalSessions"`
	SelfRatedLevel     string    `json:"selfRatedLevel"`
	LearnerName        string    `json:"learnerName"`
	LearnerBio         string    `json:"learnerBio"`
	FocusArea          string    `json:"focusArea"`
	UpdatedAt          time.Time `json:"updatedAt,omitzero"`
}

// DefaultSettings returns the preferences of a learner who never saved any.
func DefaultSettings() Settings {
	return Settings{
		NativeLanguage:     "english",
		TargetLanguage:     "spanish",
		DailyGoal:          30,
		DailyMinutes:       20,
		WeeklyGoalSessions: 5,
		SelfRatedLevel:     string(corpus.LevelA1),
		LearnerName:        "Learner",
	}
}

// Normalize fills defaults and clamps out-of-range values.
func (st Settings) Normalize() Settings {
	def := DefaultSettings()
	out := st

	out.NativeLanguage = strings.ToLower(strings.TrimSpace(st.NativeLanguage))
	if out.NativeLanguage == "" {
		out.NativeLanguage = def.NativeLanguage
	}
	out.TargetLanguage = strings.ToLower(strings.TrimSpace(st.TargetLanguage))
	if out.TargetLanguage == "" {
		out.TargetLanguage = def.TargetLanguage
	}
	if out.DailyGoal <= 0 {
		out.DailyGoal = def.DailyGoal
	}
	if out.DailyMinutes == 0 {
		out.DailyMinutes = def.DailyMinutes
	}
	out.DailyMinutes = max(5, min(240, out.DailyMinutes))
	if out.WeeklyGoalSessions == 0 {
		out.WeeklyGoalSessions = def.WeeklyGoalSessions
	}
	out.WeeklyGoalSessions = max(1, min(21, out.WeeklyGoalSessions))
	if !corpus.Level(st.SelfRatedLevel).Valid() {
		out.SelfRatedLevel = def.SelfRatedLevel
	}
	out.LearnerName = strings.TrimSpace(st.LearnerName)
	if out.LearnerName == "" {
		out.LearnerName = def.LearnerName
	}
	out.LearnerBio = strings.TrimSpace(st.LearnerBio)
	out.FocusArea = strings.TrimSpace(st.FocusArea)
	return out
}

// Settings returns the learner's preferences, or DefaultSettings.
func (s *Service) Settings(ctx context.Context, learnerID string) (Settings, error) {
	row, err := s.repo.GetSettings(ctx, learnerID)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if row == nil {
		return DefaultSettings(), nil
	}
	return Settings{
		NativeLanguage:     row.NativeLanguage,
		TargetLanguage:     row.TargetLanguage,
		DailyGoal:          row.DailyGoal,
		DailyMinutes:       row.DailyMinutes,
		WeeklyGoalSessions: row.WeeklyGoalSessions,
		SelfRatedLevel:     row.SelfRatedLevel,
		LearnerName:        row.LearnerName,
		LearnerBio:         row.LearnerBio,
		FocusArea:          row.FocusArea,
		UpdatedAt:          row.UpdatedAt,
	}.Normalize(), nil
}

// SaveSettings normalizes and stores the learner's preferences.
func (s *Service) SaveSettings(ctx context.Context, learnerID string, st Settings) (Settings, error) {
	if learnerID == "" {
		return Settings{}, fmt.Errorf("%w: learner is required", ErrInvalidRequest)
	}
	st = st.Normalize()
	st.UpdatedAt = s.clock.Now()

	err := s.repo.SaveSettings(ctx, store.LearnerSettings{
		LearnerID:          learnerID,
		NativeLanguage:     st.NativeLanguage,
		TargetLanguage:     st.TargetLanguage,
		DailyGoal:          st.DailyGoal,
		DailyMinutes:       st.DailyMinutes,
		WeeklyGoalSessions: st.WeeklyGoalSessions,
		SelfRatedLevel:     st.SelfRatedLevel,
		LearnerName:        st.LearnerName,
		LearnerBio:         st.LearnerBio,
		FocusArea:          st.FocusArea,
		UpdatedAt:          st.UpdatedAt,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("save settings: %w", err)
	}
	s.log.Info("settings saved", "learner", learnerID, "target", st.TargetLanguage, "level", st.SelfRatedLevel)
	return st, nil
}
