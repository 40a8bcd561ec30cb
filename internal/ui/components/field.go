package components

import (
	"fmt"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// DefaultLabelWidth is the label column width used by form fields.
const DefaultLabelWidth = 42

// renderLabel renders a fixed-width field label with a focus marker.
func renderLabel(label string, width int, focused bool) string {
	if width <= 0 {
		width = DefaultLabelWidth
	}
	if focused {
		return theme.Focused.Render(fmt.Sprintf("▸ %-*s", width, label))
	}
	return theme.Label.Render(fmt.Sprintf("  %-*s", width, label))
}
