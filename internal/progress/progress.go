// Package progress maintains per-level completion percentages derived from
// the learned-letter records.
package progress

import (
	"context"
	"fmt"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/stats"
	"github.com/abhisek/akshara/internal/store"
)

// GroupProgress is one level's completion for display.
type GroupProgress struct {
	Group   string
	Name    string
	Mode    curriculum.Mode
	Learned int
	Total   int
	Percent int
}

// Calculator recomputes and serves level progress.
type Calculator struct {
	cur  *curriculum.Curriculum
	rs   *store.RecordStore
	repo *learning.Repository
}

// New creates a Calculator and subscribes it to repo so progress is
// recomputed after every MarkLearned.
func New(cur *curriculum.Curriculum, rs *store.RecordStore, repo *learning.Repository) (*Calculator, error) {
	if !cur.Ready() {
		return nil, fmt.Errorf("new progress calculator: %w", curriculum.ErrNotReady)
	}
	c := &Calculator{cur: cur, rs: rs, repo: repo}
	repo.Subscribe(c.Recompute)
	return c, nil
}

// Recompute persists the completion percent of every (group, mode) pair.
func (c *Calculator) Recompute(ctx context.Context) error {
	for _, mode := range curriculum.Modes() {
		learned := c.repo.LearnedIDs(ctx, mode)
		for _, g := range c.cur.Groups() {
			pct := stats.Percent(int64(countLearned(g, learned)), int64(len(g.Letters)))
			if err := store.Write(ctx, c.rs, store.ProgressKey(g.Key, string(mode)), pct); err != nil {
				return fmt.Errorf("recompute progress: %w", err)
			}
		}
	}
	return nil
}

func countLearned(g curriculum.Group, learned map[string]bool) int {
	n := 0
	for _, id := range g.IDs() {
		if learned[id] {
			n++
		}
	}
	return n
}

// Progress returns the stored percent for a group in mode. Unknown groups,
// unknown modes and missing values are 0.
func (c *Calculator) Progress(ctx context.Context, groupKey string, mode curriculum.Mode) int {
	if !mode.Valid() {
		return 0
	}
	if _, ok := c.cur.Group(groupKey); !ok {
		return 0
	}
	pct := store.Read[int](ctx, c.rs, store.ProgressKey(groupKey, string(mode)))
	return min(max(pct, 0), 100)
}

// LevelProgress returns the stored percent for a level ID.
func (c *Calculator) LevelProgress(ctx context.Context, levelID string) int {
	l, err := c.cur.Level(levelID)
	if err != nil {
		return 0
	}
	return c.Progress(ctx, l.Group, l.Mode)
}

// Summary returns every group's progress in mode, in curriculum order.
func (c *Calculator) Summary(ctx context.Context, mode curriculum.Mode) []GroupProgress {
	learned := c.repo.LearnedIDs(ctx, mode)
	var out []GroupProgress
	for _, g := range c.cur.Groups() {
		out = append(out, GroupProgress{
			Group:   g.Key,
			Name:    g.Name,
			Mode:    mode,
			Learned: countLearned(g, learned),
			Total:   len(g.Letters),
			Percent: c.Progress(ctx, g.Key, mode),
		})
	}
	return out
}

// Keys returns every key Recompute writes.
func (c *Calculator) Keys() []string {
	var keys []string
	for _, g := range c.cur.Groups() {
		for _, mode := range curriculum.Modes() {
			keys = append(keys, store.ProgressKey(g.Key, string(mode)))
		}
	}
	return keys
}
