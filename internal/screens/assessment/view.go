package assessment

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/layout"
	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.alert.Visible {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.alert.View())
	}

	var lines []string
	focusLine := 0
	add := func(block string, focused bool) {
		if focused {
			focusLine = len(lines)
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add("", false)
	add(s.name.View(), s.focus == focusName)
	add("", false)
	for i := range s.symptoms {
		add(s.symptoms[i].View(), s.focus == focusSymptom+i)
	}
	add("", false)
	add(s.medication.View(), s.focus == focusMedication)
	add("", false)
	add(s.renderButtons(), s.focus >= focusEvaluate)

	if s.result != nil {
		add("", false)
		headline := lipgloss.NewStyle().
			Foreground(theme.LevelColor(s.result.Level)).
			Bold(true).
			Render("● " + s.result.Headline())
		add("  "+headline, false)
	}
	if s.status != "" {
		add("  "+theme.Hint.Render(s.status), false)
	}

	return strings.Join(layout.Clip(lines, focusLine, height), "\n")
}

func (s *AssessmentScreen) renderButtons() string {
	buttons := []string{"  ", s.evaluateBtn.View()}
	if s.result != nil && s.opts.Sharer != nil {
		buttons = append(buttons, "  ", s.shareBtn.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
