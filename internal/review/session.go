package review

import (
	"slices"
	"time"

	"github.com/abhisek/akshara/internal/curriculum"
)

// State is the lifecycle state of a review session.
type State string

const (
	StateEmpty     State = "empty"     // nothing was due; terminal
	StateActive    State = "active"    // tasks remain
	StateCompleted State = "completed" // queue drained; terminal
)

// Task asks for one letter in one mode.
type Task struct {
	LetterID string          `json:"letter"`
	Mode     curriculum.Mode `json:"mode"`
}

// Session is an ordered review queue. The head task is the one to present.
type Session struct {
	ID        string
	StartedAt time.Time
	Tasks     []Task
	State     State
}

// Current returns the head task.
func (s *Session) Current() (Task, bool) {
	if s == nil || len(s.Tasks) == 0 {
		return Task{}, false
	}
	return s.Tasks[0], true
}

// Letters returns the number of distinct letters still queued.
func (s *Session) Letters() int {
	if s == nil {
		return 0
	}
	seen := make(map[string]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		seen[t.LetterID] = true
	}
	return len(seen)
}

// Done reports whether the session is in a terminal state.
func (s *Session) Done() bool {
	return s == nil || s.State == StateEmpty || s.State == StateCompleted
}

// persistedSession is the stored form of an active session.
type persistedSession struct {
	ID        string `json:"id"`
	StartedAt int64  `json:"startedAt"`
	Tasks     []Task `json:"tasks"`
}

func (s *Session) persisted() persistedSession {
	return persistedSession{
		ID:        s.ID,
		StartedAt: s.StartedAt.UnixMilli(),
		Tasks:     slices.Clone(s.Tasks),
	}
}

func (p persistedSession) session() *Session {
	return &Session{
		ID:        p.ID,
		StartedAt: time.UnixMilli(p.StartedAt),
		Tasks:     slices.Clone(p.Tasks),
		State:     StateActive,
	}
}
