package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// Dropdown is a closed field showing the chosen option that expands into an
// option list on Enter.
type Dropdown struct {
	Label   string
	Options []string
	Open    bool
	Cursor  int
	Chosen  int // -1 until an option is picked
	Focused bool
	// LabelWidth pads the label column; 0 uses DefaultLabelWidth.
	LabelWidth int
}

// NewDropdown creates a dropdown with nothing chosen.
func NewDropdown(label string, options []string) Dropdown {
	return Dropdown{
		Label:   label,
		Options: options,
		Chosen:  -1,
	}
}

// Value returns the chosen option text, or "" when nothing is chosen.
func (d Dropdown) Value() string {
	if d.Chosen < 0 || d.Chosen >= len(d.Options) {
		return ""
	}
	return d.Options[d.Chosen]
}

// Update handles keys. It returns handled=false for keys the dropdown does
// not consume so the parent can use them for focus movement.
func (d Dropdown) Update(msg tea.Msg) (Dropdown, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, false
	}

	if !d.Open {
		switch kmsg.String() {
		case "enter", "space":
			d.Open = true
			if d.Chosen >= 0 {
				d.Cursor = d.Chosen
			}
			return d, true
		}
		return d, false
	}

	switch kmsg.String() {
	case "up", "k":
		if d.Cursor > 0 {
			d.Cursor--
		}
	case "down", "j":
		if d.Cursor < len(d.Options)-1 {
			d.Cursor++
		}
	case "enter", "space":
		d.Chosen = d.Cursor
		d.Open = false
	case "esc":
		d.Open = false
	}
	// An open list swallows every key.
	return d, true
}

// View renders the field on one line and, when open, the option list below.
func (d Dropdown) View() string {
	label := renderLabel(d.Label, d.LabelWidth, d.Focused)

	value := d.Value()
	if value == "" {
		value = theme.Hint.Render("select…")
	} else {
		value = theme.Body.Render(value)
	}
	arrow := "▾"
	if d.Open {
		arrow = "▴"
	}
	s := label + "[ " + value + " " + arrow + " ]"

	if d.Open {
		indent := strings.Repeat(" ", lipgloss.Width(label))
		for i, opt := range d.Options {
			if i == d.Cursor {
				s += "\n" + indent + theme.Selected.Render("▸ "+opt)
			} else {
				s += "\n" + indent + theme.Unselected.Render("  "+opt)
			}
		}
	}
	return s
}
