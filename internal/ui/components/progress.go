package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// ProgressBar shows how many of a fixed number of steps are done.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Done:  done,
		Total: total,
		Width: width,
	}
}

// filled returns how many of barWidth cells represent completed steps.
func (p ProgressBar) filled(barWidth int) int {
	if p.Total <= 0 || p.Done <= 0 {
		return 0
	}
	if p.Done >= p.Total {
		return barWidth
	}
	return barWidth * p.Done / p.Total
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	count := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := p.Width - lipgloss.Width(b.String()) - len(count)
	if barWidth < p.Total {
		barWidth = p.Total
	}

	n := p.filled(barWidth)
	b.WriteString(lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", n)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-n)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(count))
	return b.String()
}
