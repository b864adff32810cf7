package levels

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/practice"
	"github.com/abhisek/akshara/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestLearner(t *testing.T) *learner.Learner {
	t.Helper()
	l, err := learner.New(curriculum.Kannada(), store.New(store.NewMemory(), nil))
	if err != nil {
		t.Fatalf("new learner: %v", err)
	}
	return l
}

func TestListsEveryLevel(t *testing.T) {
	s := New(newTestLearner(t))
	if len(s.menu.Items) != 14 {
		t.Fatalf("expected 14 levels, got %d", len(s.menu.Items))
	}
	if !strings.Contains(s.menu.Items[0].Label, "Write") || !strings.Contains(s.menu.Items[1].Label, "Read") {
		t.Errorf("expected write before read, got %q, %q", s.menu.Items[0].Label, s.menu.Items[1].Label)
	}
}

func TestEnterPushesPractice(t *testing.T) {
	s := New(newTestLearner(t))
	s.Update(specialKey(tea.KeyDown))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("expected practice screen, got %T", msg.Screen)
	}
	if msg.Screen.Title() != "Level 2" {
		t.Errorf("expected Level 2, got %q", msg.Screen.Title())
	}
}

func TestResumeRefreshesProgress(t *testing.T) {
	l := newTestLearner(t)
	s := New(l)
	if s.menu.Items[2].Detail != "0%" {
		t.Fatalf("expected 0%%, got %q", s.menu.Items[2].Detail)
	}

	ctx := context.Background()
	for _, id := range []string{"ಕ", "ಖ", "ಗ", "ಘ", "ಙ"} {
		if err := l.SubmitAttempt(ctx, id, curriculum.ModeWrite, true); err != nil {
			t.Fatal(err)
		}
	}
	s.Update(router.ResumedMsg{})
	if s.menu.Items[2].Detail != "✓ done" {
		t.Errorf("expected level 3 done, got %q", s.menu.Items[2].Detail)
	}
}
