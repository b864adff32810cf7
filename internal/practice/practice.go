// Package practice picks letters for level practice and checks answers.
package practice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
)

// ErrLevelComplete is returned by Next when every letter of the level is
// already learned in its mode.
var ErrLevelComplete = errors.New("level complete")

// DefaultOptions is the number of choices in a read-mode question.
const DefaultOptions = 4

// Picker chooses the next letter to practise in a level.
type Picker struct {
	cur  *curriculum.Curriculum
	repo *learning.Repository
	rng  *rand.Rand
}

// NewPicker creates a Picker. A nil rng uses a randomly seeded source.
func NewPicker(cur *curriculum.Curriculum, repo *learning.Repository, rng *rand.Rand) (*Picker, error) {
	if !cur.Ready() {
		return nil, fmt.Errorf("new picker: %w", curriculum.ErrNotReady)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{cur: cur, repo: repo, rng: rng}, nil
}

// Next returns a random letter of the level's group not yet learned in the
// level's mode.
func (p *Picker) Next(ctx context.Context, levelID string) (curriculum.Letter, error) {
	lvl, err := p.cur.Level(levelID)
	if err != nil {
		return curriculum.Letter{}, err
	}
	g, _ := p.cur.Group(lvl.Group)
	learned := p.repo.LearnedIDs(ctx, lvl.Mode)

	var open []curriculum.Letter
	for _, l := range g.Letters {
		if !learned[l.ID] {
			open = append(open, l)
		}
	}
	if len(open) == 0 {
		return curriculum.Letter{}, fmt.Errorf("%w: %s", ErrLevelComplete, levelID)
	}
	return open[p.rng.IntN(len(open))], nil
}

// Pool returns the letters of the level's group, used as distractors.
func (p *Picker) Pool(levelID string) []curriculum.Letter {
	lvl, err := p.cur.Level(levelID)
	if err != nil {
		return nil
	}
	g, _ := p.cur.Group(lvl.Group)
	return g.Letters
}

// Rand returns the picker's random source.
func (p *Picker) Rand() *rand.Rand {
	return p.rng
}

// Options builds a read-mode question: the letter's transliteration plus up
// to n-1 distinct distractors from pool, shuffled. It returns the options
// and the index of the correct one.
func Options(letter curriculum.Letter, pool []curriculum.Letter, n int, rng *rand.Rand) ([]string, int) {
	if n < 1 {
		n = 1
	}
	seen := map[string]bool{letter.Transliteration: true}
	var distractors []string
	for _, i := range rng.Perm(len(pool)) {
		if len(distractors) == n-1 {
			break
		}
		t := pool[i].Transliteration
		if seen[t] {
			continue
		}
		seen[t] = true
		distractors = append(distractors, t)
	}

	opts := append(distractors, letter.Transliteration)
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	for i, o := range opts {
		if o == letter.Transliteration {
			return opts, i
		}
	}
	return opts, -1
}

// CheckWritten reports whether a typed answer reproduces the letter.
// Both sides are NFC-normalised and surrounding space is ignored.
func CheckWritten(letter curriculum.Letter, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	return norm.NFC.String(answer) == norm.NFC.String(letter.ID)
}
