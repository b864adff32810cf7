// Package quiz renders a single letter question. Read questions show the
// letter and ask for its transliteration; write questions show the
// transliteration and ask the learner to type the letter.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/practice"
	"github.com/abhisek/akshara/internal/ui/components"
	"github.com/abhisek/akshara/internal/ui/theme"
)

// AnsweredMsg is emitted once when the learner answers the question.
type AnsweredMsg struct {
	LetterID string
	Mode     curriculum.Mode
	Correct  bool
}

// Question is one read or write question about a letter.
type Question struct {
	Letter curriculum.Letter
	Mode   curriculum.Mode

	mc       components.MultiChoice
	input    components.TextInput
	answered bool
	correct  bool
}

// New builds a question. pool supplies distractors for read questions.
func New(letter curriculum.Letter, mode curriculum.Mode, pool []curriculum.Letter, rng *rand.Rand) Question {
	q := Question{Letter: letter, Mode: mode}
	if mode == curriculum.ModeRead {
		opts, correct := practice.Options(letter, pool, practice.DefaultOptions, rng)
		q.mc = components.NewMultiChoice(opts, correct)
	} else {
		q.input = components.NewTextInput("type the letter", 8)
	}
	return q
}

// Answered reports whether the question has been answered.
func (q Question) Answered() bool { return q.answered }

// Correct reports whether the answer given was right.
func (q Question) Correct() bool { return q.correct }

// Update handles keys until the question is answered.
func (q Question) Update(msg tea.Msg) (Question, tea.Cmd) {
	if q.answered {
		return q, nil
	}

	if q.Mode == curriculum.ModeRead {
		q.mc, _ = q.mc.Update(msg)
		if q.mc.Submitted {
			return q.finish(q.mc.IsCorrect())
		}
		return q, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if strings.TrimSpace(q.input.Value()) == "" {
			return q, nil
		}
		right := practice.CheckWritten(q.Letter, q.input.Value())
		q.input.Submit(right)
		return q.finish(right)
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q Question) finish(correct bool) (Question, tea.Cmd) {
	q.answered = true
	q.correct = correct
	msg := AnsweredMsg{LetterID: q.Letter.ID, Mode: q.Mode, Correct: correct}
	return q, func() tea.Msg { return msg }
}

// View renders the question at the given width.
func (q Question) View(width int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if q.Mode == curriculum.ModeRead {
		b.WriteString(center.Render(theme.Subtitle.Render("How is this letter read?")))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Glyph.Render(q.Letter.ID)))
		b.WriteString("\n\n")
		b.WriteString(center.Render(q.mc.View()))
	} else {
		b.WriteString(center.Render(theme.Subtitle.Render("Write the letter for")))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Glyph.Render(q.Letter.Transliteration)))
		if q.Letter.Pronunciation != "" {
			b.WriteString("\n")
			b.WriteString(center.Render(theme.Hint.Render(q.Letter.Pronunciation)))
		}
		b.WriteString("\n\n")
		b.WriteString(center.Render(q.input.View()))
	}

	if q.answered {
		b.WriteString("\n\n")
		b.WriteString(center.Render(q.feedback()))
	}
	return b.String()
}

func (q Question) feedback() string {
	var line string
	if q.correct {
		line = theme.Correct.Render(fmt.Sprintf("✓ Correct! %s is %q", q.Letter.ID, q.Letter.Transliteration))
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("✗ Not quite. %s is %q", q.Letter.ID, q.Letter.Transliteration))
	}
	if len(q.Letter.Examples) > 0 {
		line += "\n" + theme.Hint.Render("e.g. "+q.Letter.Examples[0])
	}
	return line
}
