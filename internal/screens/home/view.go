package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/ui/theme"
)

const (
	titleFull    = "ಅ ಆ ಇ ಈ ಉ ಊ\n\nA K S H A R A"
	titleCompact = "A · K · S · H · A · R · A"
)

// renderTitle returns the title block or its one-line fallback.
func renderTitle(cw int, compact bool) string {
	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(text)
}

// renderStats renders learned counts and the due count in a bordered box.
func renderStats(ov learner.Overview, cw int) string {
	learned := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	due := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	dueText := dim.Render("⟳ none due")
	if ov.Due > 0 {
		dueText = due.Render(fmt.Sprintf("⟳ %d due", ov.Due))
	}

	stats := fmt.Sprintf("%s  %s  %s",
		learned.Render(fmt.Sprintf("✎ %d/%d written", ov.LearnedWrite, ov.Letters)),
		learned.Render(fmt.Sprintf("◉ %d/%d read", ov.LearnedRead, ov.Letters)),
		dueText,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
