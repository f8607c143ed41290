package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted is returned when marking a session completed that
	// another caller already completed.
	ErrAlreadyCompleted = errors.New("session already completed")
)

// DefaultHearts is the heart count of a learner with no history.
const DefaultHearts = 5

// ItemProgress is the scheduling state of one corpus item for one learner.
type ItemProgress struct {
	LearnerID     string
	Language      string
	Category      string
	ItemID        string
	Objective     string
	Ease          float64
	Streak        int
	Attempts      int
	Correct       int
	ErrorCount    int
	LastErrorType string
	LastSeen      *time.Time
	NextDue       *time.Time
}

// CategoryProgress is the per-category mastery aggregate of a learner.
type CategoryProgress struct {
	LearnerID       string
	Language        string
	Category        string
	Mastery         float64
	Attempts        int // completed sessions
	TotalAnswers    int
	CorrectAnswers  int
	LevelUnlocked   string
	LastPracticedAt *time.Time
}

// ActiveSession is a generated question set awaiting completion. Payload is
// written once at creation and never updated.
type ActiveSession struct {
	SessionID       string
	LearnerID       string
	Language        string
	Category        string
	DifficultyLevel string
	Payload         []byte
	QuestionCount   int
	ExpiresAt       time.Time
	Completed       bool
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// LearnerProfile is the cross-category aggregate of a learner.
type LearnerProfile struct {
	LearnerID     string
	TotalXP       int
	StreakDays    int
	Hearts        int
	LearnerLevel  int
	LastCompleted *time.Time
}

// NewLearnerProfile returns the profile of a learner with no history.
func NewLearnerProfile(learnerID string) LearnerProfile {
	return LearnerProfile{
		LearnerID:    learnerID,
		Hearts:       DefaultHearts,
		LearnerLevel: 1,
	}
}

// LearnerSettings holds learner preferences.
type LearnerSettings struct {
	LearnerID          string
	NativeLanguage     string
	TargetLanguage     string
	DailyGoal          int
	DailyMinutes       int
	WeeklyGoalSessions int
	SelfRatedLevel     string
	LearnerName        string
	LearnerBio         string
	FocusArea          string
	UpdatedAt          time.Time
}

// SessionRecord is the append-only history entry of a completed session.
type SessionRecord struct {
	SessionID       string
	LearnerID       string
	Language        string
	Category        string
	DifficultyLevel string
	Score           int
	MaxScore        int
	Mistakes        int
	HintsUsed       int
	RevealedAnswers int
	Accuracy        float64
	XPGained        int
	CompletedAt     time.Time
}

// AttemptRecord is the append-only history entry of one evaluated attempt.
type AttemptRecord struct {
	SessionID    string
	LearnerID    string
	Language     string
	Category     string
	ItemID       string
	Objective    string
	QuestionType string
	Correct      bool
	ErrorType    string
	CreatedAt    time.Time
}

// HistoryQuery filters history reads. Zero values disable a filter.
type HistoryQuery struct {
	LearnerID string
	Language  string
	Category  string
	Since     time.Time
	Limit     int
}

// Reader provides the read operations of the repository.
type Reader interface {
	// GetActiveSession returns ErrNotFound when no session has the id.
	GetActiveSession(ctx context.Context, sessionID string) (*ActiveSession, error)

	// ListItemProgress returns every item state of a learner in a category.
	ListItemProgress(ctx context.Context, learnerID, language, category string) ([]ItemProgress, error)

	// GetCategoryProgress returns nil when the learner never completed a
	// session in the category.
	GetCategoryProgress(ctx context.Context, learnerID, language, category string) (*CategoryProgress, error)

	// ListCategoryProgress returns all category aggregates for a language.
	ListCategoryProgress(ctx context.Context, learnerID, language string) ([]CategoryProgress, error)

	// GetLearnerProfile returns nil when the learner has no profile yet.
	GetLearnerProfile(ctx context.Context, learnerID string) (*LearnerProfile, error)

	// GetSettings returns nil when the learner never saved settings.
	GetSettings(ctx context.Context, learnerID string) (*LearnerSettings, error)

	// ListSessions returns session history, newest first.
	ListSessions(ctx context.Context, q HistoryQuery) ([]SessionRecord, error)

	// SessionRecorded reports whether the learner's session history holds
	// sessionID. It outlives pruning of the active session.
	SessionRecorded(ctx context.Context, learnerID, sessionID string) (bool, error)

	// ListAttempts returns attempt history, newest first.
	ListAttempts(ctx context.Context, q HistoryQuery) ([]AttemptRecord, error)

	// DailyXP returns the XP earned on day (UTC) in a language.
	DailyXP(ctx context.Context, learnerID, language string, day time.Time) (int, error)
}

// Writer provides the write operations of the repository. A Writer obtained
// inside InTx also reads through the same transaction.
type Writer interface {
	Reader

	CreateActiveSession(ctx context.Context, s *ActiveSession) error

	// MarkSessionCompleted flips completed from false to true. It returns
	// ErrAlreadyCompleted when the flag was already set and ErrNotFound when
	// the session does not exist.
	MarkSessionCompleted(ctx context.Context, sessionID string, at time.Time) error

	// PruneActiveSessions deletes the learner's sessions that are completed
	// or expired before cutoff. Returns the number of deleted sessions.
	PruneActiveSessions(ctx context.Context, learnerID string, cutoff time.Time) (int, error)

	UpsertItemProgress(ctx context.Context, p ItemProgress) error
	UpsertCategoryProgress(ctx context.Context, p CategoryProgress) error
	SaveLearnerProfile(ctx context.Context, p LearnerProfile) error
	SaveSettings(ctx context.Context, s LearnerSettings) error

	AppendSession(ctx context.Context, r SessionRecord) error
	AppendAttempts(ctx context.Context, rs []AttemptRecord) error

	// AddDailyXP increments the ledger row for day (UTC) and returns the new
	// total for that day.
	AddDailyXP(ctx context.Context, learnerID, language string, day time.Time, xp int) (int, error)
}

// Repo is a Writer that can run a function atomically.
type Repo interface {
	Writer

	// InTx runs fn inside a transaction. Any error returned by fn rolls the
	// transaction back and is returned unchanged.
	InTx(ctx context.Context, fn func(w Writer) error) error
}
