// Package layout renders the frame around the active screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

// The self-check form needs a full label column plus a dropdown per row.
const (
	MinWidth  = 80
	MinHeight = 24
)

const crumbSep = " › "

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nSymptoquiz needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the title bar: app name, the screen breadcrumb and
// the number of assessments saved today. A negative count hides the counter.
func RenderHeader(crumbs []string, checksToday int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  ✚ Symptoquiz")

	right := ""
	if checksToday >= 0 {
		right = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d today", checksToday))
	}

	inner := width - 4 // border + padding
	if inner < 0 {
		inner = 0
	}

	room := inner - lipgloss.Width(left) - lipgloss.Width(right) - 2
	trail := visibleCrumbs(crumbs, room)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(trail)

	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := inner - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return box(content, width)
}

func visibleCrumbs(crumbs []string, room int) string {
	var trail []string
	for _, c := range crumbs {
		if c != "" {
			trail = append(trail, c)
		}
	}
	s := strings.Join(trail, crumbSep)
	for len(trail) > 1 && lipgloss.Width(s) > room {
		trail = trail[1:]
		s = "…" + crumbSep + strings.Join(trail, crumbSep)
	}
	return s
}

// RenderFooter renders the key hints, dropping trailing hints that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	content := " "
	for _, h := range hints {
		part := "  " + keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if lipgloss.Width(content+part) > width-4 {
			break
		}
		content += part
	}
	return box(content, width)
}

func box(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

// Clip returns at most height lines, scrolled so focusLine stays visible
// with up to two lines of context below it.
func Clip(lines []string, focusLine, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focusLine - height + 3
	if start > focusLine {
		start = focusLine
	}
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
