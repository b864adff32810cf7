package review

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/stats"
	"github.com/abhisek/akshara/internal/store"
)

var (
	// ErrNoSession is returned when an outcome is reported with no stored session.
	ErrNoSession = errors.New("no review session in progress")

	// ErrNotCurrent is returned when an outcome is reported for a task that
	// isn't at the head of the queue.
	ErrNotCurrent = errors.New("task is not the current review task")
)

// Scheduler builds and advances review sessions. The active session is
// persisted so it survives restarts.
type Scheduler struct {
	rs       *store.RecordStore
	selector *Selector
	tracker  *stats.Tracker
	repo     *learning.Repository
	clock    func() time.Time
	newID    func() string
}

// NewScheduler creates a Scheduler. A nil clock uses time.Now.
func NewScheduler(rs *store.RecordStore, selector *Selector, tracker *stats.Tracker, repo *learning.Repository, clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		rs:       rs,
		selector: selector,
		tracker:  tracker,
		repo:     repo,
		clock:    clock,
		newID:    uuid.NewString,
	}
}

// Start begins a new session over today's due letters, replacing any stored
// session. Each letter gets a task per mode, the weaker mode first and write
// first on a tie. With nothing due the session is StateEmpty and nothing is
// stored.
func (s *Scheduler) Start(ctx context.Context) (*Session, error) {
	due := s.selector.Due(ctx)
	if len(due) == 0 {
		if err := s.clear(ctx); err != nil {
			return nil, fmt.Errorf("start review: %w", err)
		}
		return &Session{State: StateEmpty}, nil
	}

	tasks := make([]Task, 0, 2*len(due))
	for _, c := range due {
		first := curriculum.ModeWrite
		if c.WriteCorrectness > c.ReadCorrectness {
			first = curriculum.ModeRead
		}
		tasks = append(tasks,
			Task{LetterID: c.LetterID, Mode: first},
			Task{LetterID: c.LetterID, Mode: first.Other()},
		)
	}

	sess := &Session{
		ID:        s.newID(),
		StartedAt: s.clock().Truncate(time.Millisecond),
		Tasks:     tasks,
		State:     StateActive,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, fmt.Errorf("start review: %w", err)
	}
	return sess, nil
}

// Resume returns the stored session, or nil when there is none. Tasks for
// letters that no longer have a record in any mode are dropped.
func (s *Scheduler) Resume(ctx context.Context) (*Session, error) {
	sess := s.load(ctx)
	if sess == nil {
		return nil, nil
	}

	kept := slices.DeleteFunc(slices.Clone(sess.Tasks), func(t Task) bool {
		return !t.Mode.Valid() || !s.hasAnyRecord(ctx, t.LetterID)
	})
	if len(kept) == 0 {
		if err := s.clear(ctx); err != nil {
			return nil, fmt.Errorf("resume review: %w", err)
		}
		return nil, nil
	}
	if len(kept) != len(sess.Tasks) {
		sess.Tasks = kept
		if err := s.save(ctx, sess); err != nil {
			return nil, fmt.Errorf("resume review: %w", err)
		}
	}
	return sess, nil
}

// ResumeOrStart resumes the stored session or starts a new one.
func (s *Scheduler) ResumeOrStart(ctx context.Context) (*Session, error) {
	sess, err := s.Resume(ctx)
	if err != nil || sess != nil {
		return sess, err
	}
	return s.Start(ctx)
}

// ReportOutcome applies the result of the head task. A correct answer
// removes every task for the letter and marks it reviewed; an incorrect
// one moves the task to the back. The session completes when the queue
// drains.
func (s *Scheduler) ReportOutcome(ctx context.Context, task Task, isCorrect bool) (*Session, error) {
	sess := s.load(ctx)
	if sess == nil {
		return nil, ErrNoSession
	}
	head, ok := sess.Current()
	if !ok || head != task {
		return sess, fmt.Errorf("%w: got %s/%s", ErrNotCurrent, task.LetterID, task.Mode)
	}

	if isCorrect {
		sess.Tasks = slices.DeleteFunc(sess.Tasks, func(t Task) bool {
			return t.LetterID == task.LetterID
		})
		if err := s.tracker.MarkReviewed(ctx, task.LetterID); err != nil {
			return nil, fmt.Errorf("report outcome: %w", err)
		}
	} else {
		sess.Tasks = append(sess.Tasks[1:], head)
	}

	if len(sess.Tasks) == 0 {
		sess.State = StateCompleted
		if err := s.clear(ctx); err != nil {
			return nil, fmt.Errorf("report outcome: %w", err)
		}
		return sess, nil
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, fmt.Errorf("report outcome: %w", err)
	}
	return sess, nil
}

// Abandon discards the stored session.
func (s *Scheduler) Abandon(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *Scheduler) hasAnyRecord(ctx context.Context, letterID string) bool {
	for _, mode := range curriculum.Modes() {
		if s.repo.Has(ctx, letterID, mode) {
			return true
		}
	}
	return false
}

func (s *Scheduler) load(ctx context.Context) *Session {
	p := store.Read[*persistedSession](ctx, s.rs, store.KeyReviewSession)
	if p == nil || len(p.Tasks) == 0 {
		return nil
	}
	return p.session()
}

func (s *Scheduler) save(ctx context.Context, sess *Session) error {
	return store.Write(ctx, s.rs, store.KeyReviewSession, sess.persisted())
}

func (s *Scheduler) clear(ctx context.Context) error {
	return s.rs.Clear(ctx, store.KeyReviewSession)
}
