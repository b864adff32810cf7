// Package review selects the letters due for daily review and runs review
// sessions over them.
package review

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/stats"
)

const (
	// DefaultLimit is the number of letters selected for one day's review.
	DefaultLimit = 20

	// MaxLimit is the largest accepted limit.
	MaxLimit = 20
)

// Candidate is a letter eligible for review.
type Candidate struct {
	LetterID         string
	LastReviewed     *time.Time // earliest across modes; nil means never
	WriteCorrectness int
	ReadCorrectness  int
}

// Average returns the mean correctness of both modes.
func (c Candidate) Average() float64 {
	return float64(c.WriteCorrectness+c.ReadCorrectness) / 2
}

// Correctness returns the candidate's correctness in mode.
func (c Candidate) Correctness(mode curriculum.Mode) int {
	if mode == curriculum.ModeRead {
		return c.ReadCorrectness
	}
	return c.WriteCorrectness
}

// SameDay reports whether a falls on the same local calendar day as b,
// using b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Selector computes the letters due for review today.
type Selector struct {
	repo    *learning.Repository
	tracker *stats.Tracker
	clock   func() time.Time
	limit   int
}

// NewSelector creates a Selector. A nil clock uses time.Now; a limit
// outside 1..MaxLimit uses DefaultLimit.
func NewSelector(repo *learning.Repository, tracker *stats.Tracker, clock func() time.Time, limit int) *Selector {
	if clock == nil {
		clock = time.Now
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return &Selector{repo: repo, tracker: tracker, clock: clock, limit: limit}
}

// Limit returns the maximum number of letters Due returns.
func (s *Selector) Limit() int {
	return s.limit
}

type candidateState struct {
	lastReviewed *time.Time
	never        bool
	learnedToday bool
}

// Due returns the letters due today, weakest first, oldest review breaking
// ties. Letters learned today or already reviewed today are excluded.
func (s *Selector) Due(ctx context.Context) []Candidate {
	now := s.clock()

	var order []string
	seen := make(map[string]*candidateState)
	for _, mode := range curriculum.Modes() {
		for _, rec := range s.repo.Learned(ctx, mode) {
			st, ok := seen[rec.LetterID]
			if !ok {
				st = &candidateState{}
				seen[rec.LetterID] = st
				order = append(order, rec.LetterID)
			}
			if rec.LearnedDate != nil && SameDay(*rec.LearnedDate, now) {
				st.learnedToday = true
			}
			switch {
			case rec.LastReviewed == nil:
				st.never = true
			case st.lastReviewed == nil || rec.LastReviewed.Before(*st.lastReviewed):
				t := *rec.LastReviewed
				st.lastReviewed = &t
			}
		}
	}

	var due []Candidate
	for _, id := range order {
		st := seen[id]
		if st.learnedToday {
			continue
		}
		last := st.lastReviewed
		if st.never {
			last = nil
		}
		if last != nil && SameDay(*last, now) {
			continue
		}
		due = append(due, Candidate{
			LetterID:         id,
			LastReviewed:     last,
			WriteCorrectness: s.tracker.Correctness(ctx, id, curriculum.ModeWrite),
			ReadCorrectness:  s.tracker.Correctness(ctx, id, curriculum.ModeRead),
		})
	}

	slices.SortStableFunc(due, func(a, b Candidate) int {
		if c := cmp.Compare(a.WriteCorrectness+a.ReadCorrectness, b.WriteCorrectness+b.ReadCorrectness); c != 0 {
			return c
		}
		return compareReviewed(a.LastReviewed, b.LastReviewed)
	})

	if len(due) > s.limit {
		due = due[:s.limit]
	}
	return due
}

// compareReviewed orders never-reviewed first, then oldest first.
func compareReviewed(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
