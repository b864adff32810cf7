package learner

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/practice"
	"github.com/abhisek/akshara/internal/review"
	"github.com/abhisek/akshara/internal/store"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newLearner(t *testing.T) (*Learner, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)}
	l, err := New(curriculum.Kannada(), store.New(store.NewMemory(), nil),
		WithClock(c.now),
		WithRand(rand.New(rand.NewPCG(7, 7))),
	)
	require.NoError(t, err)
	return l, c
}

func TestNew_RequiresCurriculum(t *testing.T) {
	_, err := New(nil, store.New(store.NewMemory(), nil))
	assert.ErrorIs(t, err, curriculum.ErrNotReady)
}

func TestSubmitAttempt(t *testing.T) {
	l, _ := newLearner(t)
	ctx := context.Background()

	require.NoError(t, l.SubmitAttempt(ctx, "ಅ", curriculum.ModeWrite, false))
	assert.False(t, l.Repo.Has(ctx, "ಅ", curriculum.ModeWrite), "incorrect attempt must not mark learned")
	assert.Equal(t, 0, l.Progress.Progress(ctx, "vowels", curriculum.ModeWrite))

	require.NoError(t, l.SubmitAttempt(ctx, "ಅ", curriculum.ModeWrite, true))
	assert.True(t, l.Repo.Has(ctx, "ಅ", curriculum.ModeWrite))
	assert.Equal(t, 50, l.Stats.Correctness(ctx, "ಅ", curriculum.ModeWrite))
	assert.Equal(t, 8, l.Progress.Progress(ctx, "vowels", curriculum.ModeWrite)) // 1/13
	assert.Equal(t, 0, l.Progress.Progress(ctx, "vowels", curriculum.ModeRead))
}

func TestSubmitAttempt_Validation(t *testing.T) {
	l, _ := newLearner(t)
	ctx := context.Background()

	assert.ErrorIs(t, l.SubmitAttempt(ctx, "ಅ", "draw", true), curriculum.ErrUnknownMode)
	assert.ErrorIs(t, l.SubmitAttempt(ctx, "Q", curriculum.ModeRead, true), curriculum.ErrUnknownLetter)
	assert.Empty(t, l.Stats.All(ctx), "rejected attempts must not be counted")
}

func TestSubmitAttempt_CompletesLevel(t *testing.T) {
	l, _ := newLearner(t)
	ctx := context.Background()
	const level = "consonants_labial_read"

	for {
		letter, err := l.Picker.Next(ctx, level)
		if err != nil {
			assert.ErrorIs(t, err, practice.ErrLevelComplete)
			break
		}
		require.NoError(t, l.SubmitAttempt(ctx, letter.ID, curriculum.ModeRead, true))
	}
	assert.Equal(t, 100, l.Progress.LevelProgress(ctx, level))
	assert.Equal(t, 0, l.Progress.LevelProgress(ctx, "consonants_labial_write"))
}

func TestSubmitReview_FullSession(t *testing.T) {
	l, c := newLearner(t)
	ctx := context.Background()

	require.NoError(t, l.SubmitAttempt(ctx, "ಕ", curriculum.ModeWrite, true))
	require.NoError(t, l.SubmitAttempt(ctx, "ಮ", curriculum.ModeRead, true))
	assert.Equal(t, 0, l.Overview(ctx).Due, "letters learned today are not due")

	c.t = c.t.Add(24 * time.Hour)
	ov := l.Overview(ctx)
	assert.Equal(t, 2, ov.Due)
	assert.Equal(t, 1, ov.LearnedWrite)
	assert.Equal(t, 1, ov.LearnedRead)
	assert.False(t, ov.InSession)

	sess, err := l.Scheduler.Start(ctx)
	require.NoError(t, err)
	require.Len(t, sess.Tasks, 4)
	assert.True(t, l.Overview(ctx).InSession)

	_, err = l.SubmitReview(ctx, review.Task{LetterID: "nope", Mode: curriculum.ModeRead}, true)
	assert.ErrorIs(t, err, review.ErrNotCurrent)

	for !sess.Done() {
		head, ok := sess.Current()
		require.True(t, ok)
		sess, err = l.SubmitReview(ctx, head, true)
		require.NoError(t, err)
	}
	assert.Equal(t, review.StateCompleted, sess.State)
	assert.Equal(t, 0, l.Overview(ctx).Due)
	assert.False(t, l.Overview(ctx).InSession)

	_, err = l.SubmitReview(ctx, review.Task{LetterID: "ಕ", Mode: curriculum.ModeWrite}, true)
	assert.ErrorIs(t, err, review.ErrNoSession)
}

func TestSubmitReview_IncorrectCountsAttempt(t *testing.T) {
	l, c := newLearner(t)
	ctx := context.Background()
	require.NoError(t, l.SubmitAttempt(ctx, "ಕ", curriculum.ModeWrite, true))
	c.t = c.t.Add(24 * time.Hour)

	sess, err := l.Scheduler.Start(ctx)
	require.NoError(t, err)
	head, _ := sess.Current()
	require.Equal(t, curriculum.ModeRead, head.Mode, "never-read mode is weaker and goes first")
	sess, err = l.SubmitReview(ctx, head, false)
	require.NoError(t, err)

	assert.Equal(t, review.StateActive, sess.State)
	assert.Equal(t, int64(1), l.Stats.Stats(ctx, "ಕ").Read.Total)
	assert.False(t, l.Repo.Has(ctx, "ಕ", curriculum.ModeRead))
	next, _ := sess.Current()
	assert.Equal(t, head, sess.Tasks[len(sess.Tasks)-1])
	assert.NotEqual(t, head, next)
}

func TestReset(t *testing.T) {
	l, c := newLearner(t)
	ctx := context.Background()
	require.NoError(t, l.SubmitAttempt(ctx, "ಅ", curriculum.ModeWrite, true))
	require.NoError(t, l.SubmitAttempt(ctx, "ಆ", curriculum.ModeRead, true))
	c.t = c.t.Add(48 * time.Hour)
	_, err := l.Scheduler.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, l.Reset(ctx))

	ov := l.Overview(ctx)
	assert.Zero(t, ov.LearnedWrite)
	assert.Zero(t, ov.LearnedRead)
	assert.Zero(t, ov.Due)
	assert.False(t, ov.InSession)
	assert.Empty(t, l.Stats.All(ctx))
	for _, g := range l.Curriculum.Groups() {
		for _, m := range curriculum.Modes() {
			assert.Zero(t, l.Progress.Progress(ctx, g.Key, m))
		}
	}
}
