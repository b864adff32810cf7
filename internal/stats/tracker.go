package stats

import (
	"context"
	"fmt"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/store"
)

// Tracker records attempt outcomes and derives correctness from them.
type Tracker struct {
	rs   *store.RecordStore
	repo *learning.Repository
}

// NewTracker creates a Tracker. repo is used to refresh lastReviewed on
// letters that already have a record.
func NewTracker(rs *store.RecordStore, repo *learning.Repository) *Tracker {
	return &Tracker{rs: rs, repo: repo}
}

func (t *Tracker) load(ctx context.Context) map[string]*LetterStat {
	all := store.Read[map[string]*LetterStat](ctx, t.rs, store.KeyLetterStats)
	if all == nil {
		all = make(map[string]*LetterStat)
	}
	return all
}

// RecordAttempt counts one attempt. When the letter already has a record
// in mode, its lastReviewed is refreshed too.
func (t *Tracker) RecordAttempt(ctx context.Context, letterID string, mode curriculum.Mode, isCorrect bool) error {
	if !mode.Valid() {
		return fmt.Errorf("record attempt: %w: %q", curriculum.ErrUnknownMode, mode)
	}

	all := t.load(ctx)
	st, ok := all[letterID]
	if !ok || st == nil {
		st = &LetterStat{}
		all[letterID] = st
	}
	c := st.counter(mode)
	c.Total++
	if isCorrect {
		c.Correct++
	}
	if err := store.Write(ctx, t.rs, store.KeyLetterStats, all); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	if _, err := t.repo.Touch(ctx, letterID, mode); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Correctness returns the correct percentage for a letter in mode, 0 when
// there are no attempts or the mode is unknown.
func (t *Tracker) Correctness(ctx context.Context, letterID string, mode curriculum.Mode) int {
	if !mode.Valid() {
		return 0
	}
	return t.Stats(ctx, letterID).Counter(mode).Percent()
}

// MarkReviewed refreshes lastReviewed in every mode that has a record for
// the letter.
func (t *Tracker) MarkReviewed(ctx context.Context, letterID string) error {
	for _, mode := range curriculum.Modes() {
		if _, err := t.repo.Touch(ctx, letterID, mode); err != nil {
			return fmt.Errorf("mark reviewed: %w", err)
		}
	}
	return nil
}

// Stats returns the counters for a letter. Letters never attempted have
// zero counters.
func (t *Tracker) Stats(ctx context.Context, letterID string) LetterStat {
	st := t.load(ctx)[letterID]
	if st == nil {
		return LetterStat{}
	}
	return *st
}

// All returns every letter's counters.
func (t *Tracker) All(ctx context.Context) map[string]*LetterStat {
	return t.load(ctx)
}

// Reset deletes all counters.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.rs.Clear(ctx, store.KeyLetterStats)
}
