package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// Radio is a single-line group of mutually exclusive options.
type Radio struct {
	Label   string
	Options []string
	Chosen  int // -1 until an option is picked
	Focused bool
	// LabelWidth pads the label column; 0 uses DefaultLabelWidth.
	LabelWidth int
}

// NewRadio creates a radio group with nothing chosen.
func NewRadio(label string, options []string) Radio {
	return Radio{
		Label:   label,
		Options: options,
		Chosen:  -1,
	}
}

// Value returns the chosen option text, or "" when nothing is chosen.
func (r Radio) Value() string {
	if r.Chosen < 0 || r.Chosen >= len(r.Options) {
		return ""
	}
	return r.Options[r.Chosen]
}

// Update handles ←/→ to move the choice and the first letter of an option
// to pick it directly. Unconsumed keys return handled=false.
func (r Radio) Update(msg tea.Msg) (Radio, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, false
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if r.Chosen <= 0 {
			r.Chosen = 0
		} else {
			r.Chosen--
		}
		return r, true
	case "right", "l":
		if r.Chosen < len(r.Options)-1 {
			r.Chosen++
		}
		return r, true
	default:
		for i, opt := range r.Options {
			if len(key) == 1 && strings.EqualFold(key, opt[:1]) {
				r.Chosen = i
				return r, true
			}
		}
	}
	return r, false
}

// View renders the label and the options on one line.
func (r Radio) View() string {
	label := renderLabel(r.Label, r.LabelWidth, r.Focused)

	parts := make([]string, 0, len(r.Options))
	for i, opt := range r.Options {
		mark := "( )"
		style := theme.Unselected
		if i == r.Chosen {
			mark = "(•)"
			style = theme.Selected
		}
		parts = append(parts, style.Render(mark+" "+opt))
	}
	return label + strings.Join(parts, "   ")
}
