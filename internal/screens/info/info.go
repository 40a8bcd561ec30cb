// Package info shows static guidance about the self check.
package info

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/router"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/ui/layout"
	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

const illustration = `      ╭───────╮
      │       │
╭─────╯       ╰─────╮
│                   │
╰─────╮       ╭─────╯
      │       │
      ╰───────╯`

const about = `This self check asks about five common symptoms: difficulty
breathing, dizziness, fever, cough and chest pain. The number of
symptoms you answer "Yes" to decides the result. Your medication
answer is recorded with the result but does not change it.

This is not a diagnosis. If you feel unwell, contact a doctor.`

// InfoScreen renders the illustration, the explanation and the scoring tiers.
type InfoScreen struct{}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates an InfoScreen.
func New() *InfoScreen {
	return &InfoScreen{}
}

func (s *InfoScreen) Init() tea.Cmd {
	return nil
}

func (s *InfoScreen) Title() string {
	return "About"
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back"},
	}
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *InfoScreen) View(width, height int) string {
	var b strings.Builder

	art := lipgloss.NewStyle().Foreground(theme.Error).Render(illustration)
	b.WriteString(art)
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(about))
	b.WriteString("\n\n")

	for _, tier := range tiers() {
		line := lipgloss.NewStyle().Foreground(theme.LevelColor(tier.level)).Bold(true).
			Render(fmt.Sprintf("%-9s", tier.level.DisplayName()))
		b.WriteString(line + theme.Label.Render(tier.rule) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

type tier struct {
	level severity.Level
	rule  string
}

// tiers derives each level's answer range from severity.FromCount so the
// text cannot drift from the scoring.
func tiers() []tier {
	var out []tier
	for _, lvl := range severity.AllLevels() {
		lo, hi := -1, -1
		for n := 0; n <= severity.SymptomCount; n++ {
			if severity.FromCount(n) != lvl {
				continue
			}
			if lo < 0 {
				lo = n
			}
			hi = n
		}
		rule := fmt.Sprintf("%d–%d \"Yes\" answers", lo, hi)
		if lo == hi {
			rule = fmt.Sprintf("%d \"Yes\" answers", lo)
		}
		out = append(out, tier{level: lvl, rule: rule})
	}
	return out
}
