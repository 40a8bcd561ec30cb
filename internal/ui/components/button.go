package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// Button is a focusable action. Active marks the focused button.
type Button struct {
	Label  string
	Active bool
}

func NewButton(label string) Button {
	return Button{Label: label}
}

// Pressed reports whether msg activates the button: Enter or Space while
// the button has focus.
func (b Button) Pressed(msg tea.Msg) bool {
	if !b.Active {
		return false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	switch kmsg.String() {
	case "enter", "space":
		return true
	}
	return false
}

func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
