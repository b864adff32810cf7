package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/store"
)

// Listener is called after every successful MarkLearned.
type Listener func(ctx context.Context) error

// Repository manages per-mode learned-letter records.
type Repository struct {
	rs        *store.RecordStore
	clock     func() time.Time
	listeners []Listener
}

// NewRepository creates a Repository. A nil clock uses time.Now.
func NewRepository(rs *store.RecordStore, clock func() time.Time) *Repository {
	if clock == nil {
		clock = time.Now
	}
	return &Repository{rs: rs, clock: clock}
}

// Key returns the storage key holding the records for mode.
func Key(mode curriculum.Mode) (string, error) {
	switch mode {
	case curriculum.ModeWrite:
		return store.KeyLearnedWrite, nil
	case curriculum.ModeRead:
		return store.KeyLearnedRead, nil
	default:
		return "", fmt.Errorf("%w: %q", curriculum.ErrUnknownMode, mode)
	}
}

type recordKey struct {
	mode   curriculum.Mode
	letter string
}

// recordSet is one mode's records as loaded, with an index for lookups.
type recordSet struct {
	mode    curriculum.Mode
	key     string
	records []Record
	index   map[recordKey]int
}

func (s *recordSet) find(letterID string) (int, bool) {
	i, ok := s.index[recordKey{mode: s.mode, letter: letterID}]
	return i, ok
}

func (r *Repository) load(ctx context.Context, mode curriculum.Mode) (*recordSet, error) {
	key, err := Key(mode)
	if err != nil {
		return nil, err
	}
	stored := store.ReadList[Record](ctx, r.rs, key)
	set := &recordSet{
		mode:    mode,
		key:     key,
		records: make([]Record, 0, len(stored)),
		index:   make(map[recordKey]int, len(stored)),
	}
	for _, rec := range stored {
		if rec.LetterID == "" {
			continue
		}
		// Duplicates from older data collapse to the first entry.
		if _, dup := set.find(rec.LetterID); dup {
			continue
		}
		set.index[recordKey{mode: mode, letter: rec.LetterID}] = len(set.records)
		set.records = append(set.records, rec)
	}
	return set, nil
}

func (r *Repository) save(ctx context.Context, set *recordSet) error {
	return store.Write(ctx, r.rs, set.key, set.records)
}

func (r *Repository) now() time.Time {
	return r.clock().Truncate(time.Millisecond)
}

// Learned returns the records for mode in insertion order.
// An unknown mode has no records.
func (r *Repository) Learned(ctx context.Context, mode curriculum.Mode) []Record {
	set, err := r.load(ctx, mode)
	if err != nil {
		return nil
	}
	return set.records
}

// LearnedIDs returns the set of letter IDs learned in mode.
func (r *Repository) LearnedIDs(ctx context.Context, mode curriculum.Mode) map[string]bool {
	recs := r.Learned(ctx, mode)
	ids := make(map[string]bool, len(recs))
	for _, rec := range recs {
		ids[rec.LetterID] = true
	}
	return ids
}

// Get returns the record for a letter in mode.
func (r *Repository) Get(ctx context.Context, letterID string, mode curriculum.Mode) (Record, bool) {
	set, err := r.load(ctx, mode)
	if err != nil {
		return Record{}, false
	}
	i, ok := set.find(letterID)
	if !ok {
		return Record{}, false
	}
	return set.records[i], true
}

// Has reports whether a letter has a record in mode.
func (r *Repository) Has(ctx context.Context, letterID string, mode curriculum.Mode) bool {
	_, ok := r.Get(ctx, letterID, mode)
	return ok
}

// MarkLearned creates the record for a letter or, if one exists, refreshes
// its lastReviewed while keeping learnedDate. Listeners run afterwards and
// their errors are returned.
func (r *Repository) MarkLearned(ctx context.Context, letterID string, mode curriculum.Mode) (Record, error) {
	set, err := r.load(ctx, mode)
	if err != nil {
		return Record{}, err
	}

	now := r.now()
	var rec Record
	if i, ok := set.find(letterID); ok {
		set.records[i].LastReviewed = &now
		rec = set.records[i]
	} else {
		learned := now
		rec = Record{LetterID: letterID, LearnedDate: &learned, LastReviewed: &now}
		set.index[recordKey{mode: mode, letter: letterID}] = len(set.records)
		set.records = append(set.records, rec)
	}

	if err := r.save(ctx, set); err != nil {
		return Record{}, fmt.Errorf("mark learned: %w", err)
	}

	for _, fn := range r.listeners {
		if err := fn(ctx); err != nil {
			return rec, fmt.Errorf("notify listener: %w", err)
		}
	}
	return rec, nil
}

// Touch refreshes lastReviewed of an existing record. It reports whether
// a record was found.
func (r *Repository) Touch(ctx context.Context, letterID string, mode curriculum.Mode) (bool, error) {
	set, err := r.load(ctx, mode)
	if err != nil {
		return false, err
	}
	i, ok := set.find(letterID)
	if !ok {
		return false, nil
	}
	now := r.now()
	set.records[i].LastReviewed = &now
	if err := r.save(ctx, set); err != nil {
		return false, fmt.Errorf("touch record: %w", err)
	}
	return true, nil
}

// Subscribe registers fn to run after every successful MarkLearned.
func (r *Repository) Subscribe(fn Listener) {
	r.listeners = append(r.listeners, fn)
}

// Reset deletes the records of every mode.
func (r *Repository) Reset(ctx context.Context) error {
	return r.rs.Clear(ctx, store.KeyLearnedWrite, store.KeyLearnedRead)
}
