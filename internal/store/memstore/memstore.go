// Package memstore is an in-memory store.Repo for tests and ephemeral runs.
package memstore

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

type itemKey struct {
	learner, language, category, item string
}

type categoryKey struct {
	learner, language, category string
}

type dayKey struct {
	learner, language string
	day               time.Time
}

// data is one consistent view of the store. Records are stored by value and
// their time pointers are never written through, so a shallow copy of each
// map is an independent snapshot.
type data struct {
	sessions   map[string]store.ActiveSession
	items      map[itemKey]store.ItemProgress
	categories map[categoryKey]store.CategoryProgress
	profiles   map[string]store.LearnerProfile
	settings   map[string]store.LearnerSettings
	history    []store.SessionRecord
	attempts   []store.AttemptRecord
	dailyXP    map[dayKey]int
}

func newData() *data {
	return &data{
		sessions:   make(map[string]store.ActiveSession),
		items:      make(map[itemKey]store.ItemProgress),
		categories: make(map[categoryKey]store.CategoryProgress),
		profiles:   make(map[string]store.LearnerProfile),
		settings:   make(map[string]store.LearnerSettings),
		dailyXP:    make(map[dayKey]int),
	}
}

func (d *data) clone() *data {
	return &data{
		sessions:   maps.Clone(d.sessions),
		items:      maps.Clone(d.items),
		categories: maps.Clone(d.categories),
		profiles:   maps.Clone(d.profiles),
		settings:   maps.Clone(d.settings),
		history:    slices.Clone(d.history),
		attempts:   slices.Clone(d.attempts),
		dailyXP:    maps.Clone(d.dailyXP),
	}
}

// Store is a store.Repo held in memory. It is safe for concurrent use;
// transactions are serialized.
type Store struct {
	mu sync.Mutex
	d  *data
}

// New returns an empty Store.
func New() *Store {
	return &Store{d: newData()}
}

var _ store.Repo = (*Store)(nil)

// InTx runs fn against a staged copy and publishes it only when fn
// succeeds.
func (s *Store) InTx(ctx context.Context, fn func(w store.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.d.clone()
	if err := fn(staged); err != nil {
		return err
	}
	s.d = staged
	return nil
}

func (s *Store) GetActiveSession(ctx context.Context, sessionID string) (*store.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetActiveSession(ctx, sessionID)
}

func (s *Store) ListItemProgress(ctx context.Context, learnerID, language, category string) ([]store.ItemProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.ListItemProgress(ctx, learnerID, language, category)
}

func (s *Store) GetCategoryProgress(ctx context.Context, learnerID, language, category string) (*store.CategoryProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetCategoryProgress(ctx, learnerID, language, category)
}

func (s *Store) ListCategoryProgress(ctx context.Context, learnerID, language string) ([]store.CategoryProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.ListCategoryProgress(ctx, learnerID, language)
}

func (s *Store) GetLearnerProfile(ctx context.Context, learnerID string) (*store.LearnerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetLearnerProfile(ctx, learnerID)
}

func (s *Store) GetSettings(ctx context.Context, learnerID string) (*store.LearnerSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetSettings(ctx, learnerID)
}

func (s *Store) ListSessions(ctx context.Context, q store.HistoryQuery) ([]store.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.ListSessions(ctx, q)
}

func (s *Store) SessionRecorded(ctx context.Context, learnerID, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SessionRecorded(ctx, learnerID, sessionID)
}

func (s *Store) ListAttempts(ctx context.Context, q store.HistoryQuery) ([]store.AttemptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.ListAttempts(ctx, q)
}

func (s *Store) DailyXP(ctx context.Context, learnerID, language string, day time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.DailyXP(ctx, learnerID, language, day)
}

func (s *Store) CreateActiveSession(ctx context.Context, as *store.ActiveSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.CreateActiveSession(ctx, as)
}

func (s *Store) MarkSessionCompleted(ctx context.Context, sessionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.MarkSessionCompleted(ctx, sessionID, at)
}

func (s *Store) PruneActiveSessions(ctx context.Context, learnerID string, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PruneActiveSessions(ctx, learnerID, cutoff)
}

func (s *Store) UpsertItemProgress(ctx context.Context, p store.ItemProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.UpsertItemProgress(ctx, p)
}

func (s *Store) UpsertCategoryProgress(ctx context.Context, p store.CategoryProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.UpsertCategoryProgress(ctx, p)
}

func (s *Store) SaveLearnerProfile(ctx context.Context, p store.LearnerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SaveLearnerProfile(ctx, p)
}

func (s *Store) SaveSettings(ctx context.Context, ls store.LearnerSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SaveSettings(ctx, ls)
}

func (s *Store) AppendSession(ctx context.Context, r store.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.AppendSession(ctx, r)
}

func (s *Store) AppendAttempts(ctx context.Context, rs []store.AttemptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.AppendAttempts(ctx, rs)
}

func (s *Store) AddDailyXP(ctx context.Context, learnerID, language string, day time.Time, xp int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.AddDailyXP(ctx, learnerID, language, day, xp)
}

// data implements store.Writer without locking; Store holds the lock.

func (d *data) GetActiveSession(_ context.Context, sessionID string) (*store.ActiveSession, error) {
	as, ok := d.sessions[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	as.Payload = slices.Clone(as.Payload)
	return &as, nil
}

func (d *data) CreateActiveSession(_ context.Context, as *store.ActiveSession) error {
	v := *as
	v.Payload = slices.Clone(as.Payload)
	d.sessions[as.SessionID] = v
	return nil
}

func (d *data) MarkSessionCompleted(_ context.Context, sessionID string, at time.Time) error {
	as, ok := d.sessions[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	if as.Completed {
		return store.ErrAlreadyCompleted
	}
	as.Completed = true
	as.CompletedAt = &at
	d.sessions[sessionID] = as
	return nil
}

func (d *data) PruneActiveSessions(_ context.Context, learnerID string, cutoff time.Time) (int, error) {
	n := 0
	for id, as := range d.sessions {
		if as.LearnerID != learnerID {
			continue
		}
		if as.Completed || as.ExpiresAt.Before(cutoff) {
			delete(d.sessions, id)
			n++
		}
	}
	return n, nil
}

func (d *data) ListItemProgress(_ context.Context, learnerID, language, category string) ([]store.ItemProgress, error) {
	var out []store.ItemProgress
	for k, p := range d.items {
		if k.learner == learnerID && k.language == language && k.category == category {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b store.ItemProgress) int {
		return strings.Compare(a.ItemID, b.ItemID)
	})
	return out, nil
}

func (d *data) UpsertItemProgress(_ context.Context, p store.ItemProgress) error {
	d.items[itemKey{p.LearnerID, p.Language, p.Category, p.ItemID}] = p
	return nil
}

func (d *data) GetCategoryProgress(_ context.Context, learnerID, language, category string) (*store.CategoryProgress, error) {
	cp, ok := d.categories[categoryKey{learnerID, language, category}]
	if !ok {
		return nil, nil
	}
	return &cp, nil
}

func (d *data) ListCategoryProgress(_ context.Context, learnerID, language string) ([]store.CategoryProgress, error) {
	var out []store.CategoryProgress
	for k, cp := range d.categories {
		if k.learner == learnerID && k.language == language {
			out = append(out, cp)
		}
	}
	slices.SortFunc(out, func(a, b store.CategoryProgress) int {
		return strings.Compare(a.Category, b.Category)
	})
	return out, nil
}

func (d *data) UpsertCategoryProgress(_ context.Context, p store.CategoryProgress) error {
	d.categories[categoryKey{p.LearnerID, p.Language, p.Category}] = p
	return nil
}

func (d *data) GetLearnerProfile(_ context.Context, learnerID string) (*store.LearnerProfile, error) {
	p, ok := d.profiles[learnerID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (d *data) SaveLearnerProfile(_ context.Context, p store.LearnerProfile) error {
	d.profiles[p.LearnerID] = p
	return nil
}

func (d *data) GetSettings(_ context.Context, learnerID string) (*store.LearnerSettings, error) {
	s, ok := d.settings[learnerID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (d *data) SaveSettings(_ context.Context, s store.LearnerSettings) error {
	d.settings[s.LearnerID] = s
	return nil
}

func (d *data) AppendSession(_ context.Context, r store.SessionRecord) error {
	d.history = append(d.history, r)
	return nil
}

func (d *data) AppendAttempts(_ context.Context, rs []store.AttemptRecord) error {
	d.attempts = append(d.attempts, rs...)
	return nil
}

func (d *data) ListSessions(_ context.Context, q store.HistoryQuery) ([]store.SessionRecord, error) {
	return newestFirst(d.history, q, func(r store.SessionRecord) (string, string, string, time.Time) {
		return r.LearnerID, r.Language, r.Category, r.CompletedAt
	}), nil
}

func (d *data) SessionRecorded(_ context.Context, learnerID, sessionID string) (bool, error) {
	for _, r := range d.history {
		if r.SessionID == sessionID && r.LearnerID == learnerID {
			return true, nil
		}
	}
	return false, nil
}

func (d *data) ListAttempts(_ context.Context, q store.HistoryQuery) ([]store.AttemptRecord, error) {
	return newestFirst(d.attempts, q, func(r store.AttemptRecord) (string, string, string, time.Time) {
		return r.LearnerID, r.Language, r.Category, r.CreatedAt
	}), nil
}

// newestFirst filters rows by q and orders them by time descending, later
// insertions first on ties.
func newestFirst[T any](rows []T, q store.HistoryQuery, keys func(T) (string, string, string, time.Time)) []T {
	var out []T
	for i := len(rows) - 1; i >= 0; i-- {
		learner, language, category, at := keys(rows[i])
		if learner != q.LearnerID ||
			(q.Language != "" && language != q.Language) ||
			(q.Category != "" && category != q.Category) ||
			(!q.Since.IsZero() && at.Before(q.Since)) {
			continue
		}
		out = append(out, rows[i])
	}
	slices.SortStableFunc(out, func(a, b T) int {
		_, _, _, ta := keys(a)
		_, _, _, tb := keys(b)
		return cmp.Compare(tb.UnixNano(), ta.UnixNano())
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func (d *data) DailyXP(_ context.Context, learnerID, language string, day time.Time) (int, error) {
	return d.dailyXP[dayKey{learnerID, language, utcDay(day)}], nil
}

func (d *data) AddDailyXP(_ context.Context, learnerID, language string, day time.Time, xp int) (int, error) {
	k := dayKey{learnerID, language, utcDay(day)}
	total := max(0, d.dailyXP[k]+xp)
	d.dailyXP[k] = total
	return total, nil
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
