// Package session runs the practice-session lifecycle: start a generated
// session, complete it exactly once, and read the resulting progress.
package session

import (
	"time"

	"github.com/abhisek/lingoflow/internal/corpus"
	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/grading"
	"github.com/abhisek/lingoflow/internal/logging"
	"github.com/abhisek/lingoflow/internal/platform/clock"
	"github.com/abhisek/lingoflow/internal/platform/id"
	"github.com/abhisek/lingoflow/internal/progression"
	"github.com/abhisek/lingoflow/internal/store"
)

// Corpus is the read-only item source of the service.
type Corpus interface {
	corpus.Provider
	Overview(language string) []corpus.CategoryOverview
}

// Options tunes session limits.
type Options struct {
	TTL          time.Duration
	DefaultCount int
	MinCount     int
	MaxCount     int
	MaxAttempts  int
	RecentWindow int // sessions averaged for recent accuracy
}

// DefaultOptions returns the standard session limits.
func DefaultOptions() Options {
	return Options{
		TTL:          48 * time.Hour,
		DefaultCount: 10,
		MinCount:     6,
		MaxCount:     15,
		MaxAttempts:  400,
		RecentWindow: 5,
	}
}

// Deps are the collaborators of a Service. Repo and Corpus are required;
// the rest fall back to production defaults.
type Deps struct {
	Repo   store.Repo
	Corpus Corpus
	Clock  clock.Clock
	IDs    id.Generator
	Log    *logging.Logger
	Rand   exercise.Rand
}

// Service implements the session operations.
type Service struct {
	repo   store.Repo
	corpus Corpus
	clock  clock.Clock
	ids    id.Generator
	log    *logging.Logger
	gen    *exercise.Generator
	grader *grading.Grader
	engine *progression.Engine
	opts   Options
}

// NewService wires a Service. Zero-valued option fields take their
// DefaultOptions value.
func NewService(d Deps, opts Options) *Service {
	if d.Clock == nil {
		d.Clock = clock.SystemClock{}
	}
	if d.IDs == nil {
		d.IDs = id.UUID{}
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}

	def := DefaultOptions()
	if opts.TTL <= 0 {
		opts.TTL = def.TTL
	}
	if opts.DefaultCount <= 0 {
		opts.DefaultCount = def.DefaultCount
	}
	if opts.MinCount <= 0 {
		opts.MinCount = def.MinCount
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = def.MaxCount
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = def.MaxAttempts
	}
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = def.RecentWindow
	}
	opts.DefaultCount = max(opts.MinCount, min(opts.MaxCount, opts.DefaultCount))

	return &Service{
		repo:   d.Repo,
		corpus: d.Corpus,
		clock:  d.Clock,
		ids:    d.IDs,
		log:    d.Log,
		gen:    exercise.NewGenerator(d.Rand),
		grader: grading.NewGrader(nil),
		engine: progression.NewEngine(d.Log),
		opts:   opts,
	}
}

// Options returns the effective limits.
func (s *Service) Options() Options {
	return s.opts
}

// clampCount applies the default and bounds to a requested question count.
func (s *Service) clampCount(n int) int {
	if n == 0 {
		return s.opts.DefaultCount
	}
	return max(s.opts.MinCount, min(s.opts.MaxCount, n))
}
