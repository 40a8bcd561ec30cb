package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and a required-field warning.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	// LabelWidth pads the label column; 0 uses DefaultLabelWidth.
	LabelWidth int
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and, for a blank required field, a warning.
func (t TextInput) View() string {
	view := renderLabel(t.Label, t.LabelWidth, t.Focused()) + t.Model.View()
	if t.Required && strings.TrimSpace(t.Model.Value()) == "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ required")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}
