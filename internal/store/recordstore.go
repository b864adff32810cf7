package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// RecordStore reads and writes typed JSON values over a Medium.
// Reads never fail: missing or malformed content yields the zero value.
type RecordStore struct {
	medium Medium
	log    *slog.Logger
}

// New returns a RecordStore over m. A nil logger discards output.
func New(m Medium, log *slog.Logger) *RecordStore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &RecordStore{medium: m, log: log}
}

// Medium returns the underlying medium.
func (rs *RecordStore) Medium() Medium {
	return rs.medium
}

// Read returns the value stored under key decoded as T. Missing keys,
// malformed content and medium errors all return the zero value of T;
// the last two are logged at WARN.
func Read[T any](ctx context.Context, rs *RecordStore, key string) T {
	var v T
	raw, ok, err := rs.medium.Get(ctx, key)
	if err != nil {
		rs.log.WarnContext(ctx, "read failed, using empty value", "key", key, "err", err)
		return v
	}
	if !ok || raw == "" {
		return v
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		rs.log.WarnContext(ctx, "malformed stored value, using empty value", "key", key, "err", err)
		var zero T
		return zero
	}
	return v
}

// ReadList returns the JSON array stored under key, decoding each element
// as T on its own. Elements that fail to decode are logged at WARN and
// skipped; a value that is not an array reads as empty.
func ReadList[T any](ctx context.Context, rs *RecordStore, key string) []T {
	raw := Read[[]json.RawMessage](ctx, rs, key)
	out := make([]T, 0, len(raw))
	for i, elem := range raw {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			rs.log.WarnContext(ctx, "skipping malformed stored element", "key", key, "index", i, "err", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Write serialises v and replaces whatever is stored under key.
func Write[T any](ctx context.Context, rs *RecordStore, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := rs.medium.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	rs.log.DebugContext(ctx, "stored value", "key", key, "bytes", len(data))
	return nil
}

// Clear removes the named keys.
func (rs *RecordStore) Clear(ctx context.Context, keys ...string) error {
	if err := rs.medium.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("clear keys: %w", err)
	}
	rs.log.InfoContext(ctx, "cleared keys", "keys", keys)
	return nil
}
