// Package welcome shows the splash screen before the self-check form.
package welcome

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/router"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 400 * time.Millisecond
	hintAt       = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const crossArt = `      ┌───┐
      │   │
  ┌───┘   └───┐
  │           │
  └───┐   ┌───┘
      │   │
      └───┘`

// the cross alternates between these colours once the banner is up
var pulseColors = []color.Color{theme.Error, theme.Secondary}

const disclaimer = "This quiz is not a diagnosis. When in doubt, contact a doctor."

type tickMsg time.Time

// WelcomeScreen animates the splash and replaces itself with the screen
// built by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	c := pulseColors[0]
	if w.elapsed >= bannerAt {
		c = pulseColors[(w.tickCount/4)%len(pulseColors)]
	}
	sections := []string{lipgloss.NewStyle().Foreground(c).Render(crossArt)}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("How are you feeling today?"),
		)
	}

	if w.elapsed >= hintAt {
		sections = append(sections,
			"",
			theme.Hint.Render(disclaimer),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
