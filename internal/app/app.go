package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/home"
	"github.com/abhisek/akshara/internal/screens/welcome"
	"github.com/abhisek/akshara/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	learner *learner.Learner
	router  *router.Router
	status  layout.Status
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome splash, which
// hands over to the home screen.
func newAppModel(l *learner.Learner) AppModel {
	m := AppModel{
		learner: l,
		router: router.New(welcome.New(func() router.Screen {
			return home.New(l)
		})),
	}
	m.refreshStatus()
	return m
}

func (m *AppModel) refreshStatus() {
	ctx := context.Background()
	learned := 0
	write := m.learner.Repo.LearnedIDs(ctx, curriculum.ModeWrite)
	read := m.learner.Repo.LearnedIDs(ctx, curriculum.ModeRead)
	for _, letter := range m.learner.Curriculum.Letters() {
		if write[letter.ID] || read[letter.ID] {
			learned++
		}
	}
	ov := m.learner.Overview(ctx)
	m.status = layout.Status{Learned: learned, Letters: ov.Letters, Due: ov.Due}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}

	case router.DataChangedMsg, router.ResumedMsg:
		m.refreshStatus()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(router.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(l *learner.Learner) error {
	p := tea.NewProgram(newAppModel(l))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
