package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	rev "github.com/abhisek/akshara/internal/review"
	"github.com/abhisek/akshara/internal/router"
	"github.com/abhisek/akshara/internal/screens/quiz"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/layout"
	"github.com/abhisek/akshara/internal/ui/theme"
)

const feedbackDelay = 1500 * time.Millisecond

type feedbackDoneMsg struct{ seq int }

// ReviewScreen runs the daily review session, resuming one left open.
type ReviewScreen struct {
	learner *learner.Learner
	sess    *rev.Session
	total   int // letters in the session when the screen opened

	question quiz.Question
	hasQ     bool
	seq      int
	errMsg   string
}

var _ router.Screen = (*ReviewScreen)(nil)

// New resumes today's session or starts one from the due letters.
func New(l *learner.Learner) *ReviewScreen {
	s := &ReviewScreen{learner: l}
	sess, err := l.Scheduler.ResumeOrStart(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.sess = sess
	s.total = sess.Letters()
	s.nextQuestion()
	return s
}

func (s *ReviewScreen) Init() tea.Cmd {
	// Starting a session may have cleared or written the stored queue.
	return router.DataChanged
}

func (s *ReviewScreen) Title() string {
	return "Daily Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if !s.hasQ {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.question.Mode == curriculum.ModeRead {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Esc", Description: "Pause"},
			{Key: "Ctrl+X", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Pause"},
		{Key: "Ctrl+X", Description: "End session"},
	}
}

// nextQuestion builds the question for the session head.
func (s *ReviewScreen) nextQuestion() {
	s.hasQ = false
	task, ok := s.sess.Current()
	if !ok || s.sess.Done() {
		return
	}
	cur := s.learner.Curriculum
	letter, ok := cur.Letter(task.LetterID)
	if !ok {
		s.errMsg = fmt.Sprintf("unknown letter %q in review", task.LetterID)
		return
	}
	var pool []curriculum.Letter
	if key, ok := cur.GroupOf(task.LetterID); ok {
		g, _ := cur.Group(key)
		pool = g.Letters
	}
	s.question = quiz.New(letter, task.Mode, pool, s.learner.Picker.Rand())
	s.hasQ = true
}

func (s *ReviewScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quiz.AnsweredMsg:
		return s.handleAnswer(msg)
	case feedbackDoneMsg:
		if msg.seq == s.seq && s.hasQ {
			s.nextQuestion()
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ReviewScreen) handleAnswer(msg quiz.AnsweredMsg) (router.Screen, tea.Cmd) {
	task := rev.Task{LetterID: msg.LetterID, Mode: msg.Mode}
	sess, err := s.learner.SubmitReview(context.Background(), task, msg.Correct)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.sess = sess
	s.seq++
	seq := s.seq
	return s, tea.Batch(router.DataChanged, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	}))
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if s.errMsg != "" || s.sess == nil {
		return s, router.Pop
	}
	if !s.hasQ {
		if msg.String() == "enter" {
			return s, router.Pop
		}
		return s, nil
	}
	if msg.String() == "ctrl+x" {
		return s, s.abandon()
	}
	if s.question.Answered() {
		s.seq++
		s.nextQuestion()
		return s, nil
	}
	var cmd tea.Cmd
	s.question, cmd = s.question.Update(msg)
	return s, cmd
}

// abandon drops the stored session so the next visit starts afresh.
func (s *ReviewScreen) abandon() tea.Cmd {
	if err := s.learner.Scheduler.Abandon(context.Background()); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.seq++
	s.hasQ = false
	return tea.Batch(router.DataChanged, router.Pop)
}

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Center(
			theme.Incorrect.Render("Something went wrong")+"\n\n"+
				theme.Hint.Render(s.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to go back"),
			width, height)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Daily Review"))
	b.WriteString("\n\n")

	switch {
	case s.sess.State == rev.StateEmpty:
		b.WriteString(components.Card(
			theme.Body.Render("Nothing to review today.")+"\n\n"+
				theme.Hint.Render("Letters learned earlier come up here the next day."),
			cw))
	case s.hasQ:
		done := s.total - s.sess.Letters()
		b.WriteString(components.ProgressBar{
			Label:   fmt.Sprintf("%d/%d", done, s.total),
			Percent: percentOf(done, s.total),
			Width:   cw,
		}.View())
		b.WriteString("\n\n")
		b.WriteString(components.Card(s.question.View(cw-8), cw))
	case s.sess.State == rev.StateCompleted:
		b.WriteString(components.Card(
			theme.Correct.Render("★ Review complete!")+"\n\n"+
				theme.Body.Render(fmt.Sprintf("You reviewed %d letters.", s.total))+"\n"+
				theme.Hint.Render("Press Enter to go back"),
			cw))
	}
	return components.Center(b.String(), width, height)
}

func percentOf(n, d int) int {
	if d == 0 {
		return 0
	}
	return n * 100 / d
}
