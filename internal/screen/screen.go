// Package screen defines the contract between the router and the app's
// screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns the stack; a screen only
// sees messages while it is on top.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, without header or footer.
	View(width, height int) string

	// Title is the screen's breadcrumb label. Empty titles are skipped.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that need to react when the screen
// above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}
