package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/akshara/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a whole percentage.
type ProgressBar struct {
	Label      string
	LabelWidth int // pads the label so bars line up
	Percent    int
	Width      int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" || p.LabelWidth > 0 {
		result = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(p.LabelWidth).
			Render(p.Label) + "  "
	}

	pct := min(max(p.Percent, 0), 100)
	percent := fmt.Sprintf("  %3d%%", pct)
	barWidth := max(p.Width-lipgloss.Width(result)-len(percent), 4)

	filled := barWidth * pct / 100
	fill := theme.ProgressFilled
	if pct == 100 {
		fill = theme.ProgressDone
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(percent)
	return result
}
