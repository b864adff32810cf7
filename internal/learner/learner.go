// Package learner wires the tracking components around one curriculum and
// one record store.
package learner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/practice"
	"github.com/abhisek/akshara/internal/progress"
	"github.com/abhisek/akshara/internal/review"
	"github.com/abhisek/akshara/internal/stats"
	"github.com/abhisek/akshara/internal/store"
)

// Learner owns one instance of every component for a learner's data.
type Learner struct {
	Curriculum *curriculum.Curriculum
	Store      *store.RecordStore
	Repo       *learning.Repository
	Stats      *stats.Tracker
	Progress   *progress.Calculator
	Selector   *review.Selector
	Scheduler  *review.Scheduler
	Picker     *practice.Picker
}

type options struct {
	clock       func() time.Time
	reviewLimit int
	rng         *rand.Rand
}

// Option configures a Learner.
type Option func(*options)

// WithClock sets the time source shared by every component.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.clock = fn }
}

// WithReviewLimit caps the number of letters selected for daily review.
func WithReviewLimit(n int) Option {
	return func(o *options) { o.reviewLimit = n }
}

// WithRand sets the random source used to pick practice letters.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// New builds a Learner. It fails with curriculum.ErrNotReady when cur is
// nil or empty.
func New(cur *curriculum.Curriculum, rs *store.RecordStore, opts ...Option) (*Learner, error) {
	o := options{clock: time.Now, reviewLimit: review.DefaultLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if !cur.Ready() {
		return nil, fmt.Errorf("new learner: %w", curriculum.ErrNotReady)
	}

	repo := learning.NewRepository(rs, o.clock)
	tracker := stats.NewTracker(rs, repo)
	calc, err := progress.New(cur, rs, repo)
	if err != nil {
		return nil, fmt.Errorf("new learner: %w", err)
	}
	picker, err := practice.NewPicker(cur, repo, o.rng)
	if err != nil {
		return nil, fmt.Errorf("new learner: %w", err)
	}
	selector := review.NewSelector(repo, tracker, o.clock, o.reviewLimit)

	return &Learner{
		Curriculum: cur,
		Store:      rs,
		Repo:       repo,
		Stats:      tracker,
		Progress:   calc,
		Selector:   selector,
		Scheduler:  review.NewScheduler(rs, selector, tracker, repo, o.clock),
		Picker:     picker,
	}, nil
}

// SubmitAttempt records an attempt outcome. A correct attempt also marks the
// letter learned in mode, which recomputes progress.
func (l *Learner) SubmitAttempt(ctx context.Context, letterID string, mode curriculum.Mode, correct bool) error {
	if !mode.Valid() {
		return fmt.Errorf("submit attempt: %w: %q", curriculum.ErrUnknownMode, mode)
	}
	if _, ok := l.Curriculum.Letter(letterID); !ok {
		return fmt.Errorf("submit attempt: %w: %q", curriculum.ErrUnknownLetter, letterID)
	}

	if err := l.Stats.RecordAttempt(ctx, letterID, mode, correct); err != nil {
		return fmt.Errorf("submit attempt: %w", err)
	}
	if !correct {
		return nil
	}
	if _, err := l.Repo.MarkLearned(ctx, letterID, mode); err != nil {
		return fmt.Errorf("submit attempt: %w", err)
	}
	return nil
}

// SubmitReview records the outcome of the current review task and advances
// the session.
func (l *Learner) SubmitReview(ctx context.Context, task review.Task, correct bool) (*review.Session, error) {
	sess, err := l.Scheduler.Resume(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	if sess == nil {
		return nil, review.ErrNoSession
	}
	if head, _ := sess.Current(); head != task {
		return sess, fmt.Errorf("submit review: %w", review.ErrNotCurrent)
	}

	if err := l.SubmitAttempt(ctx, task.LetterID, task.Mode, correct); err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return l.Scheduler.ReportOutcome(ctx, task, correct)
}

// Reset deletes every stored key and recomputes progress to zero.
func (l *Learner) Reset(ctx context.Context) error {
	keys := []string{
		store.KeyLearnedWrite,
		store.KeyLearnedRead,
		store.KeyLetterStats,
		store.KeyReviewSession,
	}
	keys = append(keys, l.Progress.Keys()...)
	if err := l.Store.Clear(ctx, keys...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := l.Progress.Recompute(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Overview summarises a learner's state for the home screen.
type Overview struct {
	Letters      int
	LearnedWrite int
	LearnedRead  int
	Due          int
	InSession    bool
}

// Overview returns learned counts per mode and today's due count.
func (l *Learner) Overview(ctx context.Context) Overview {
	ov := Overview{
		Letters:      len(l.Curriculum.Letters()),
		LearnedWrite: len(l.Repo.Learned(ctx, curriculum.ModeWrite)),
		LearnedRead:  len(l.Repo.Learned(ctx, curriculum.ModeRead)),
		Due:          len(l.Selector.Due(ctx)),
	}
	if sess, err := l.Scheduler.Resume(ctx); err == nil && sess != nil {
		ov.InSession = true
	}
	return ov
}
