package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/rewards"
	"github.com/abhisek/lingoflow/internal/spacedrep"
	"github.com/abhisek/lingoflow/internal/store"
)

// StartRequest asks for a new practice session. Count 0 means the default.
type StartRequest struct {
	LearnerID string
	Language  string
	Category  string
	Count     int
}

// StartResult is a freshly generated session.
type StartResult struct {
	SessionID            string              `json:"sessionId"`
	Language             string              `json:"language"`
	Category             string              `json:"category"`
	RecommendedLevel     corpus.Level        `json:"recommendedLevel"`
	DifficultyMultiplier float64             `json:"difficultyMultiplier"`
	ExpiresAt            time.Time           `json:"expiresAt"`
	Questions            []exercise.Question `json:"questions"`
}

// Start prunes the learner's stale sessions, generates a question set
// tuned to their progress and stores it as a new active session.
func (s *Service) Start(ctx context.Context, req StartRequest) (*StartResult, error) {
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.LearnerID == "" || req.Language == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: learner, language and category are required", ErrInvalidRequest)
	}
	count := s.clampCount(req.Count)
	now := s.clock.Now()

	if _, err := s.repo.PruneActiveSessions(ctx, req.LearnerID, now); err != nil {
		return nil, err
	}

	items := s.corpus.Items(req.Language, req.Category)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no exercises for %s/%s", ErrNotFound, req.Language, req.Category)
	}

	in, err := s.generateInput(ctx, req, items, count, now)
	if err != nil {
		return nil, err
	}
	gen, err := s.gen.Generate(in)
	if err != nil {
		if errors.Is(err, exercise.ErrEmptyCorpus) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("generate session: %w", err)
	}

	payload, err := exercise.EncodeSet(gen.Questions)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	as := &store.ActiveSession{
		SessionID:       s.ids.New(),
		LearnerID:       req.LearnerID,
		Language:        req.Language,
		Category:        req.Category,
		DifficultyLevel: string(gen.RecommendedLevel),
		Payload:         payload,
		QuestionCount:   len(gen.Questions),
		ExpiresAt:       now.Add(s.opts.TTL),
		CreatedAt:       now,
	}
	if err := s.repo.CreateActiveSession(ctx, as); err != nil {
		s.log.Error("create session failed", "learner", req.LearnerID, "error", err)
		return nil, err
	}

	s.log.Info("session started",
		"session", as.SessionID,
		"learner", req.LearnerID,
		"language", req.Language,
		"category", req.Category,
		"level", gen.RecommendedLevel,
		"questions", len(gen.Questions),
	)

	return &StartResult{
		SessionID:            as.SessionID,
		Language:             req.Language,
		Category:             req.Category,
		RecommendedLevel:     gen.RecommendedLevel,
		DifficultyMultiplier: rewards.LevelMultiplier(gen.RecommendedLevel),
		ExpiresAt:            as.ExpiresAt,
		Questions:            gen.Questions,
	}, nil
}

func (s *Service) generateInput(ctx context.Context, req StartRequest, items []corpus.Item, count int, now time.Time) (exercise.GenerateInput, error) {
	var in exercise.GenerateInput

	cp, err := s.repo.GetCategoryProgress(ctx, req.LearnerID, req.Language, req.Category)
	if err != nil {
		return in, err
	}
	var m float64
	if cp != nil {
		m = cp.Mastery
	}

	settings, err := s.Settings(ctx, req.LearnerID)
	if err != nil {
		return in, err
	}

	recent, err := s.recentAccuracy(ctx, req)
	if err != nil {
		return in, err
	}

	rows, err := s.repo.ListItemProgress(ctx, req.LearnerID, req.Language, req.Category)
	if err != nil {
		return in, err
	}
	hints := spacedrep.Hints(rows, now)

	return exercise.GenerateInput{
		Items:          items,
		Category:       req.Category,
		Count:          count,
		Mastery:        m,
		RecentAccuracy: recent,
		SelfRated:      corpus.Level(settings.SelfRatedLevel),
		DueIDs:         hints.Due,
		WeakIDs:        hints.Weak,
	}, nil
}

// recentAccuracy averages the last RecentWindow sessions in the category,
// rounded to four decimals. It is nil when there are none.
func (s *Service) recentAccuracy(ctx context.Context, req StartRequest) (*float64, error) {
	recs, err := s.repo.ListSessions(ctx, store.HistoryQuery{
		LearnerID: req.LearnerID,
		Language:  req.Language,
		Category:  req.Category,
		Limit:     s.opts.RecentWindow,
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	var sum float64
	for _, r := range recs {
		sum += r.Accuracy
	}
	avg := math.Round(sum/float64(len(recs))*10000) / 10000
	return &avg, nil
}
