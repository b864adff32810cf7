package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	prac "github.com/abhisek/akshara/internal/practice"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/quiz"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/layout"
	"github.com/abhisek/akshara/internal/ui/theme"
)

// feedbackDelay is how long the answer feedback stays up before the next
// question is shown.
const feedbackDelay = 1500 * time.Millisecond

// feedbackDoneMsg ends the feedback display for answer seq.
type feedbackDoneMsg struct{ seq int }

// PracticeScreen drills the letters of one level until all are learned.
type PracticeScreen struct {
	learner *learner.Learner
	level   curriculum.Level

	question quiz.Question
	hasQ     bool
	complete bool
	percent  int
	correct  int
	answered int
	seq      int
	errMsg   string
}

var _ router.Screen = (*PracticeScreen)(nil)

// New creates a practice screen for levelID and picks the first letter.
func New(l *learner.Learner, levelID string) *PracticeScreen {
	s := &PracticeScreen{learner: l}
	lvl, err := l.Curriculum.Level(levelID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.level = lvl
	s.percent = l.Progress.LevelProgress(context.Background(), lvl.ID)
	s.advance()
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	if s.level.ID == "" {
		return "Practice"
	}
	return fmt.Sprintf("Level %d", s.level.Number)
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.complete && s.level.Next != "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next level"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.level.Mode == curriculum.ModeRead {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Choose"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}

// advance picks the next unlearned letter or marks the level complete.
func (s *PracticeScreen) advance() {
	ctx := context.Background()
	letter, err := s.learner.Picker.Next(ctx, s.level.ID)
	switch {
	case errors.Is(err, prac.ErrLevelComplete):
		s.complete = true
		s.hasQ = false
	case err != nil:
		s.errMsg = err.Error()
		s.hasQ = false
	default:
		s.question = quiz.New(letter, s.level.Mode, s.learner.Picker.Pool(s.level.ID), s.learner.Picker.Rand())
		s.hasQ = true
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quiz.AnsweredMsg:
		return s.handleAnswer(msg)
	case feedbackDoneMsg:
		if msg.seq == s.seq && s.hasQ {
			s.advance()
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleAnswer(msg quiz.AnsweredMsg) (router.Screen, tea.Cmd) {
	ctx := context.Background()
	if err := s.learner.SubmitAttempt(ctx, msg.LetterID, msg.Mode, msg.Correct); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.answered++
	if msg.Correct {
		s.correct++
	}
	s.percent = s.learner.Progress.LevelProgress(ctx, s.level.ID)
	s.seq++
	seq := s.seq
	return s, tea.Batch(router.DataChanged, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	}))
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.Pop
	}

	if s.complete {
		if msg.String() == "enter" && s.level.Next != "" {
			return s, router.Replace(New(s.learner, s.level.Next))
		}
		return s, nil
	}

	if !s.hasQ {
		return s, nil
	}

	// Any key skips the remaining feedback time.
	if s.question.Answered() {
		s.seq++
		s.advance()
		return s, nil
	}

	var cmd tea.Cmd
	s.question, cmd = s.question.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Center(
			theme.Incorrect.Render("Something went wrong")+"\n\n"+
				theme.Hint.Render(s.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to go back"),
			width, height)
	}

	var b strings.Builder
	cw := components.ContentWidth(width)

	b.WriteString(theme.Title.Width(cw).Render(s.level.Title + " · " + s.level.Mode.Label()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(s.level.Description()))
	b.WriteString("\n\n")
	b.WriteString(components.ProgressBar{Label: "Learned", Percent: s.percent, Width: cw}.View())
	b.WriteString("\n\n")

	switch {
	case s.complete:
		b.WriteString(components.Card(s.completeView(), cw))
	case s.hasQ:
		b.WriteString(components.Card(s.question.View(cw-8), cw))
	}

	if s.answered > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
			theme.Hint.Render(fmt.Sprintf("%d of %d correct this round", s.correct, s.answered))))
	}

	return components.Center(b.String(), width, height)
}

func (s *PracticeScreen) completeView() string {
	msg := theme.Correct.Render(fmt.Sprintf("★ Level %d complete!", s.level.Number))
	if s.level.Next == "" {
		return msg + "\n\n" + theme.Body.Render("You have finished every level.")
	}
	next, err := s.learner.Curriculum.Level(s.level.Next)
	if err != nil {
		return msg
	}
	return msg + "\n\n" + theme.Body.Render(fmt.Sprintf("Up next: %s · %s", next.Title, next.Mode.Label())) +
		"\n" + theme.Hint.Render("Press Enter to continue")
}
