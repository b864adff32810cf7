package levels

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/practice"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/layout"
	"github.com/abhisek/akshara/internal/ui/theme"
)

// LevelsScreen lists every level with its progress.
type LevelsScreen struct {
	learner *learner.Learner
	menu    components.Menu
}

var _ router.Screen = (*LevelsScreen)(nil)

// New creates the level list.
func New(l *learner.Learner) *LevelsScreen {
	s := &LevelsScreen{learner: l}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *LevelsScreen) items() []components.MenuItem {
	ctx := context.Background()
	levels := s.learner.Curriculum.Levels()
	items := make([]components.MenuItem, 0, len(levels))
	for _, lvl := range levels {
		id := lvl.ID
		pct := s.learner.Progress.LevelProgress(ctx, id)
		detail := fmt.Sprintf("%d%%", pct)
		if pct == 100 {
			detail = "✓ done"
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%2d. %s · %s", lvl.Number, lvl.Title, lvl.Mode.Label()),
			Detail: detail,
			Action: func() tea.Cmd {
				return router.Push(practice.New(s.learner, id))
			},
		})
	}
	return items
}

func (s *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelsScreen) Title() string {
	return "Levels"
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg.(type) {
	case router.ResumedMsg, router.DataChangedMsg:
		s.menu.SetItems(s.items())
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LevelsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	content := theme.Title.Width(cw).Render("Choose a level") + "\n\n" + s.menu.View()
	return components.Center(content, width, height)
}
