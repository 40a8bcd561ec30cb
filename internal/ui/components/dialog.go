package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// Alert is a modal message dismissed with Enter or Esc.
type Alert struct {
	Title   string
	Body    string
	Visible bool
}

// Show makes the alert visible with the given text.
func (a *Alert) Show(title, body string) {
	a.Title = title
	a.Body = body
	a.Visible = true
}

// Update consumes every key while visible and hides on Enter/Esc.
func (a Alert) Update(msg tea.Msg) (Alert, bool) {
	if !a.Visible {
		return a, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return a, false
	}
	switch kmsg.String() {
	case "enter", "esc", "space":
		a.Visible = false
	}
	return a, true
}

// View renders the alert box, or "" when hidden.
func (a Alert) View() string {
	if !a.Visible {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("⚠ " + a.Title)
	body := theme.Body.Render(a.Body)
	ok := theme.ButtonActive.Render("OK")
	return theme.Dialog.Render(title + "\n\n" + body + "\n\n" + ok)
}
