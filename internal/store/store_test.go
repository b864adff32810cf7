package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWALModeFileDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

// mediumContract exercises the behaviour every Medium must share.
func mediumContract(t *testing.T, m Medium) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent without error", ok, err)
	}

	if err := m.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if err := m.Set(ctx, "b", "3"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := m.Get(ctx, "a")
	if err != nil || !ok || v != "2" {
		t.Errorf("Get(a) = %q, %v, %v; want 2", v, ok, err)
	}

	if err := m.Delete(ctx, "a", "b", "never-set"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, ok, _ := m.Get(ctx, k); ok {
			t.Errorf("key %q still present after Delete", k)
		}
	}
	if err := m.Delete(ctx); err != nil {
		t.Errorf("Delete with no keys: %v", err)
	}
}

func TestStore_Medium(t *testing.T) {
	mediumContract(t, openTestStore(t))
}

func TestMemory_Medium(t *testing.T) {
	mediumContract(t, NewMemory())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akshara.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, KeyLetterStats, `{"ಅ":{}}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyLetterStats)
	if err != nil || !ok || v != `{"ಅ":{}}` {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "akshara", "akshara.db"); p != want {
		t.Errorf("DefaultDBPath() = %q, want %q", p, want)
	}
}

func TestProgressKey(t *testing.T) {
	if got := ProgressKey("consonants_velar", "read"); got != "consonants_velar_read" {
		t.Errorf("ProgressKey = %q", got)
	}
}
