package learning

import (
	"bytes"
	"encoding/json"
	"time"
)

// Record marks a letter as learned in one mode. Either timestamp may be nil
// for records imported from older data.
type Record struct {
	LetterID     string
	LearnedDate  *time.Time
	LastReviewed *time.Time
}

type recordJSON struct {
	Letter       string `json:"letter"`
	LearnedDate  *int64 `json:"learnedDate"`
	LastReviewed *int64 `json:"lastReviewed"`
}

// legacyJSON accepts any historical object shape: full letter objects
// pushed as-is, or timestamps stored as numbers or RFC 3339 strings.
type legacyJSON struct {
	Letter       string          `json:"letter"`
	LearnedDate  json.RawMessage `json:"learnedDate"`
	LastReviewed json.RawMessage `json:"lastReviewed"`
}

// MarshalJSON emits the canonical form with epoch-millisecond timestamps.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Letter:       r.LetterID,
		LearnedDate:  toMillis(r.LearnedDate),
		LastReviewed: toMillis(r.LastReviewed),
	})
}

// UnmarshalJSON accepts the canonical form, legacy objects, and bare
// letter strings. An object without a letter decodes to an empty LetterID.
func (r *Record) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Record{LetterID: id}
		return nil
	}

	var raw legacyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		LetterID:     raw.Letter,
		LearnedDate:  parseTimestamp(raw.LearnedDate),
		LastReviewed: parseTimestamp(raw.LastReviewed),
	}
	return nil
}

func toMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func parseTimestamp(raw json.RawMessage) *time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		t := time.UnixMilli(int64(ms))
		return &t
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			t = t.Truncate(time.Millisecond)
			return &t
		}
	}
	return nil
}
