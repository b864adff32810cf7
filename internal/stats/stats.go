package stats

import "github.com/abhisek/akshara/internal/curriculum"

// Counter is a cumulative attempt tally for one letter in one mode.
type Counter struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}

// Percent returns the share of correct attempts, rounded half up.
func (c Counter) Percent() int {
	return Percent(c.Correct, c.Total)
}

// LetterStat holds both modes' counters for a letter.
type LetterStat struct {
	Read  Counter `json:"read"`
	Write Counter `json:"write"`
}

// Counter returns the counter for mode.
func (s LetterStat) Counter(mode curriculum.Mode) Counter {
	if mode == curriculum.ModeRead {
		return s.Read
	}
	return s.Write
}

func (s *LetterStat) counter(mode curriculum.Mode) *Counter {
	if mode == curriculum.ModeRead {
		return &s.Read
	}
	return &s.Write
}

// Percent returns round(100*n/d) with halves rounded up, clamped to 0..100.
// It returns 0 when d <= 0.
func Percent(n, d int64) int {
	if d <= 0 {
		return 0
	}
	n = min(max(n, 0), d)
	return int((200*n + d) / (2 * d))
}
