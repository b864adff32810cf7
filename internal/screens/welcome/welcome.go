package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	revealEnd    = tickInterval * time.Duration(len(revealLetters))
	totalDur     = revealEnd + 600*time.Millisecond
)

// revealLetters appear one per tick before the title.
var revealLetters = [...]string{"ಅ", "ಆ", "ಇ", "ಈ", "ಉ", "ಊ", "ಎ", "ಏ", "ಐ", "ಒ", "ಓ", "ಔ"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() router.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ router.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by homeFactory.
func New(homeFactory func() router.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

// visible returns how many reveal letters are shown.
func (w *WelcomeScreen) visible() int {
	return min(int(w.elapsed/tickInterval), len(revealLetters))
}

func (w *WelcomeScreen) View(width, height int) string {
	letters := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(strings.Join(revealLetters[:w.visible()], " "))

	sections := []string{letters}
	if w.elapsed >= revealEnd {
		sections = append(sections, "",
			theme.Title.Render("A K S H A R A"),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Learn the Kannada alphabet, one letter a day."),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
