package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	prog "github.com/abhisek/akshara/internal/progress"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/layout"
	"github.com/abhisek/akshara/internal/ui/theme"
)

// ProgressScreen shows per-group progress bars for one mode at a time.
type ProgressScreen struct {
	learner *learner.Learner
	mode    curriculum.Mode
	groups  []prog.GroupProgress
}

var _ router.Screen = (*ProgressScreen)(nil)

// New creates the progress screen showing write progress.
func New(l *learner.Learner) *ProgressScreen {
	s := &ProgressScreen{learner: l, mode: curriculum.ModeWrite}
	s.refresh()
	return s
}

func (s *ProgressScreen) refresh() {
	s.groups = s.learner.Progress.Summary(context.Background(), s.mode)
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Show " + s.mode.Other().Label()},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "left", "right", "h", "l":
			s.mode = s.mode.Other()
			s.refresh()
		}
	case router.DataChangedMsg, router.ResumedMsg:
		s.refresh()
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	labelWidth := 0
	learned, total := 0, 0
	for _, g := range s.groups {
		labelWidth = max(labelWidth, len([]rune(shortName(g.Name))))
		learned += g.Learned
		total += g.Total
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(s.mode.Label() + " progress"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d of %d letters", learned, total)))
	b.WriteString("\n\n")
	for _, g := range s.groups {
		b.WriteString(components.ProgressBar{
			Label:      shortName(g.Name),
			LabelWidth: labelWidth,
			Percent:    g.Percent,
			Width:      cw,
		}.View())
		b.WriteString("\n")
	}
	return components.Center(b.String(), width, height)
}

// shortName drops the native-script suffix in parentheses from a group name.
func shortName(name string) string {
	if i := strings.Index(name, " ("); i > 0 {
		return name[:i]
	}
	return name
}
