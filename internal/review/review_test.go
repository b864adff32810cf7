package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learning"
	"github.com/abhisek/akshara/internal/stats"
	"github.com/abhisek/akshara/internal/store"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

type fixture struct {
	now       time.Time
	rs        *store.RecordStore
	repo      *learning.Repository
	tracker   *stats.Tracker
	selector  *Selector
	scheduler *Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: time.Date(2024, 6, 1, 10, 0, 0, 0, ist)}
	clock := func() time.Time { return f.now }
	f.rs = store.New(store.NewMemory(), nil)
	f.repo = learning.NewRepository(f.rs, clock)
	f.tracker = stats.NewTracker(f.rs, f.repo)
	f.selector = NewSelector(f.repo, f.tracker, clock, DefaultLimit)
	f.scheduler = NewScheduler(f.rs, f.selector, f.tracker, f.repo, clock)
	n := 0
	f.scheduler.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	return f
}

func (f *fixture) at(t time.Time) { f.now = t }

// attempts records outcomes for a letter in mode; true counts as correct.
func (f *fixture) attempts(t *testing.T, letter string, mode curriculum.Mode, outcomes ...bool) {
	t.Helper()
	for _, ok := range outcomes {
		require.NoError(t, f.tracker.RecordAttempt(context.Background(), letter, mode, ok))
	}
}

func (f *fixture) learn(t *testing.T, letter string, modes ...curriculum.Mode) {
	t.Helper()
	for _, m := range modes {
		_, err := f.repo.MarkLearned(context.Background(), letter, m)
		require.NoError(t, err)
	}
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.LetterID
	}
	return out
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 6, 1, 23, 59, 0, 0, ist)
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"two minutes across midnight", base, base.Add(2 * time.Minute), false},
		{"morning and night", time.Date(2024, 6, 1, 0, 0, 0, 0, ist), base, true},
		{"other location same local day", time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC), base, true},
		{"other location next local day", time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC), base, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
		})
	}
}

func TestDue_ExcludesLearnedToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.learn(t, "ಅ", curriculum.ModeWrite)
	f.attempts(t, "ಅ", curriculum.ModeWrite, false, false, false)
	assert.Empty(t, f.selector.Due(ctx), "letter learned today must not be due")

	f.at(f.now.Add(24 * time.Hour))
	assert.Equal(t, []string{"ಅ"}, ids(f.selector.Due(ctx)))
}

func TestDue_LearnedTodayInOtherModeExcludes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.learn(t, "ಅ", curriculum.ModeWrite)
	f.at(f.now.Add(48 * time.Hour))
	require.Len(t, f.selector.Due(ctx), 1)

	// Learning the read side today takes the letter out of today's review.
	f.learn(t, "ಅ", curriculum.ModeRead)
	assert.Empty(t, f.selector.Due(ctx))
}

func TestDue_ScenarioD_MidnightClearsDueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.at(time.Date(2024, 6, 1, 9, 0, 0, 0, ist))
	f.learn(t, "ಕ", curriculum.ModeWrite)

	f.at(time.Date(2024, 6, 2, 23, 59, 0, 0, ist))
	require.NoError(t, f.tracker.MarkReviewed(ctx, "ಕ"))
	assert.Empty(t, f.selector.Due(ctx), "reviewed at 23:59 is not due the same day")

	f.at(time.Date(2024, 6, 3, 0, 1, 0, 0, ist))
	assert.Equal(t, []string{"ಕ"}, ids(f.selector.Due(ctx)), "due again two minutes later on the next day")
}

func TestDue_RankingAndDedupe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 8, 0, 0, 0, ist)
	f.at(day1)
	f.learn(t, "A", curriculum.ModeWrite, curriculum.ModeRead)
	f.attempts(t, "A", curriculum.ModeWrite, true, true) // 100 / 0 -> 50

	f.at(day1.Add(time.Hour))
	f.learn(t, "B", curriculum.ModeRead)
	f.attempts(t, "B", curriculum.ModeRead, true, false) // 0 / 50 -> 25

	f.at(day1.Add(2 * time.Hour))
	f.learn(t, "C", curriculum.ModeWrite)
	f.attempts(t, "C", curriculum.ModeWrite, true) // 100 / 0 -> 50

	f.at(day1.Add(3 * time.Hour))
	f.learn(t, "D", curriculum.ModeWrite) // 0 / 0 -> 0

	f.at(day1.Add(48 * time.Hour))
	due := f.selector.Due(ctx)

	// D weakest, then B, then A and C tied at 50 with A reviewed earlier.
	assert.Equal(t, []string{"D", "B", "A", "C"}, ids(due))
	assert.Equal(t, 50.0, due[2].Average())
	assert.Equal(t, 100, due[2].Correctness(curriculum.ModeWrite))
	assert.Equal(t, 0, due[2].Correctness(curriculum.ModeRead))
}

func TestDue_LastReviewedIsEarliestAcrossModes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 8, 0, 0, 0, ist)
	f.at(day1)
	f.learn(t, "A", curriculum.ModeWrite, curriculum.ModeRead)

	// The read record is refreshed today, the write record is not.
	f.at(day1.Add(72 * time.Hour))
	_, err := f.repo.Touch(ctx, "A", curriculum.ModeRead)
	require.NoError(t, err)

	due := f.selector.Due(ctx)
	require.Len(t, due, 1)
	require.NotNil(t, due[0].LastReviewed)
	assert.True(t, due[0].LastReviewed.Equal(day1))
}

func TestDue_NullLastReviewedSortsOldest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.rs.Medium().Set(ctx, store.KeyLearnedWrite,
		`[{"letter":"A","learnedDate":1600000000000,"lastReviewed":1600000000000},"B"]`)

	due := f.selector.Due(ctx)
	assert.Equal(t, []string{"B", "A"}, ids(due))
	assert.Nil(t, due[0].LastReviewed)
}

func TestDue_Limit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := range 25 {
		f.learn(t, fmt.Sprintf("L%02d", i), curriculum.ModeWrite)
	}
	f.at(f.now.Add(24 * time.Hour))
	assert.Len(t, f.selector.Due(ctx), DefaultLimit)

	small := NewSelector(f.repo, f.tracker, func() time.Time { return f.now }, 5)
	assert.Len(t, small.Due(ctx), 5)
	assert.Equal(t, DefaultLimit, NewSelector(f.repo, f.tracker, nil, 0).Limit())
	assert.Equal(t, DefaultLimit, NewSelector(f.repo, f.tracker, nil, 99).Limit())
}

func TestStart_EmptyDueSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A stale stored session is cleared.
	store.Write(ctx, f.rs, store.KeyReviewSession, persistedSession{ID: "old", Tasks: []Task{{"Z", curriculum.ModeWrite}}})

	sess, err := f.scheduler.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, sess.State)
	assert.True(t, sess.Done())
	_, ok := sess.Current()
	assert.False(t, ok)

	_, stored, _ := f.rs.Medium().Get(ctx, store.KeyReviewSession)
	assert.False(t, stored)
}

func TestScenarioC_RotateThenComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.learn(t, "X", curriculum.ModeWrite, curriculum.ModeRead)
	f.attempts(t, "X", curriculum.ModeWrite, true, false, false, false, false) // 20%
	f.attempts(t, "X", curriculum.ModeRead, true, true, true, true, false)     // 80%
	f.at(f.now.Add(24 * time.Hour))

	sess, err := f.scheduler.Start(ctx)
	require.NoError(t, err)
	require.Equal(t, StateActive, sess.State)
	assert.Equal(t, "session-1", sess.ID)
	assert.Equal(t, []Task{{"X", curriculum.ModeWrite}, {"X", curriculum.ModeRead}}, sess.Tasks)

	sess, err = f.scheduler.ReportOutcome(ctx, Task{"X", curriculum.ModeWrite}, false)
	require.NoError(t, err)
	assert.Equal(t, StateActive, sess.State)
	assert.Equal(t, []Task{{"X", curriculum.ModeRead}, {"X", curriculum.ModeWrite}}, sess.Tasks)

	head, ok := sess.Current()
	require.True(t, ok)
	sess, err = f.scheduler.ReportOutcome(ctx, head, true)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, sess.State)
	assert.Empty(t, sess.Tasks)

	_, stored, _ := f.rs.Medium().Get(ctx, store.KeyReviewSession)
	assert.False(t, stored, "completed session must be removed")

	// The correct answer refreshed lastReviewed, so X is no longer due today.
	assert.Empty(t, f.selector.Due(ctx))
	for _, m := range curriculum.Modes() {
		rec, _ := f.repo.Get(ctx, "X", m)
		assert.True(t, rec.LastReviewed.Equal(f.now), "mode %s", m)
	}
}

func TestStart_WeakerModeFirstAndTies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.learn(t, "R", curriculum.ModeWrite, curriculum.ModeRead)
	f.attempts(t, "R", curriculum.ModeRead, false) // both 0, tie -> write first
	f.learn(t, "W", curriculum.ModeWrite, curriculum.ModeRead)
	f.attempts(t, "W", curriculum.ModeWrite, true) // write 100 > read 0 -> read first
	f.at(f.now.Add(24 * time.Hour))

	sess, err := f.scheduler.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{"R", curriculum.ModeWrite}, {"R", curriculum.ModeRead},
		{"W", curriculum.ModeRead}, {"W", curriculum.ModeWrite},
	}, sess.Tasks)
	assert.Equal(t, 2, sess.Letters())
}

func TestReportOutcome_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.scheduler.ReportOutcome(ctx, Task{"X", curriculum.ModeWrite}, true)
	assert.ErrorIs(t, err, ErrNoSession)

	f.learn(t, "X", curriculum.ModeWrite)
	f.at(f.now.Add(24 * time.Hour))
	_, err = f.scheduler.Start(ctx)
	require.NoError(t, err)

	_, err = f.scheduler.ReportOutcome(ctx, Task{"X", curriculum.ModeRead}, true)
	assert.ErrorIs(t, err, ErrNotCurrent)
}

func TestReportOutcome_CorrectClearsOnlyThatLetter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.learn(t, "A", curriculum.ModeWrite)
	f.learn(t, "B", curriculum.ModeWrite)
	f.at(f.now.Add(24 * time.Hour))

	sess, err := f.scheduler.Start(ctx)
	require.NoError(t, err)
	require.Len(t, sess.Tasks, 4)

	head, _ := sess.Current()
	sess, err = f.scheduler.ReportOutcome(ctx, head, true)
	require.NoError(t, err)
	require.Len(t, sess.Tasks, 2)
	for _, task := range sess.Tasks {
		assert.NotEqual(t, head.LetterID, task.LetterID)
	}
}

func TestResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.scheduler.Resume(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	f.learn(t, "A", curriculum.ModeWrite)
	f.learn(t, "B", curriculum.ModeRead)
	f.at(f.now.Add(24 * time.Hour))
	started, err := f.scheduler.Start(ctx)
	require.NoError(t, err)

	resumed, err := f.scheduler.Resume(ctx)
	require.NoError(t, err)
	require.NotNil(t, resumed)
	assert.Equal(t, started.ID, resumed.ID)
	assert.Equal(t, started.Tasks, resumed.Tasks)
	assert.True(t, started.StartedAt.Equal(resumed.StartedAt))

	// Letters whose records disappeared are dropped on resume.
	require.NoError(t, f.rs.Clear(ctx, store.KeyLearnedRead))
	resumed, err = f.scheduler.Resume(ctx)
	require.NoError(t, err)
	require.NotNil(t, resumed)
	for _, task := range resumed.Tasks {
		assert.Equal(t, "A", task.LetterID)
	}

	require.NoError(t, f.repo.Reset(ctx))
	resumed, err = f.scheduler.Resume(ctx)
	require.NoError(t, err)
	assert.Nil(t, resumed)
	_, stored, _ := f.rs.Medium().Get(ctx, store.KeyReviewSession)
	assert.False(t, stored)
}

func TestResumeOrStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.learn(t, "A", curriculum.ModeWrite)
	f.at(f.now.Add(24 * time.Hour))

	first, err := f.scheduler.ResumeOrStart(ctx)
	require.NoError(t, err)
	second, err := f.scheduler.ResumeOrStart(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	require.NoError(t, f.scheduler.Abandon(ctx))
	third, err := f.scheduler.ResumeOrStart(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestSession_StoredForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.learn(t, "ಅ", curriculum.ModeWrite)
	f.at(f.now.Add(24 * time.Hour))
	_, err := f.scheduler.Start(ctx)
	require.NoError(t, err)

	raw, ok, err := f.rs.Medium().Get(ctx, store.KeyReviewSession)
	require.NoError(t, err)
	require.True(t, ok)
	want := fmt.Sprintf(`{"id":"session-1","startedAt":%d,"tasks":[{"letter":"ಅ","mode":"write"},{"letter":"ಅ","mode":"read"}]}`,
		f.now.UnixMilli())
	assert.JSONEq(t, want, raw)
}
