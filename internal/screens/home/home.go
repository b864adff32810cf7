package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/levels"
	"github.com/abhisek/akshara/internal/screens/progress"
	"github.com/abhisek/akshara/internal/screens/review"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	learner  *learner.Learner
	menu     components.Menu
	overview learner.Overview
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(l *learner.Learner) *HomeScreen {
	h := &HomeScreen{learner: l}
	h.refresh()
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) refresh() {
	h.overview = h.learner.Overview(context.Background())
}

func (h *HomeScreen) items() []components.MenuItem {
	reviewDetail := "nothing due"
	switch {
	case h.overview.InSession:
		reviewDetail = "resume"
	case h.overview.Due > 0:
		reviewDetail = fmt.Sprintf("%d due", h.overview.Due)
	}

	return []components.MenuItem{
		{Label: "Daily Review", Detail: reviewDetail, Action: func() tea.Cmd {
			return router.Push(review.New(h.learner))
		}},
		{Label: "Practice", Action: func() tea.Cmd {
			return router.Push(levels.New(h.learner))
		}},
		{Label: "Progress", Action: func() tea.Cmd {
			return router.Push(progress.New(h.learner))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg.(type) {
	case router.ResumedMsg, router.DataChangedMsg:
		h.refresh()
		h.menu.SetItems(h.items())
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 22

	content := renderTitle(cw, compact) + "\n\n" +
		renderStats(h.overview, cw) + "\n\n" +
		h.menu.View()
	return components.Center(content, width, height)
}
