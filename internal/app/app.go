// Package app assembles the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/symptoquiz/internal/router"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/screens/assessment"
	"github.com/abhisek/symptoquiz/internal/screens/welcome"
	"github.com/abhisek/symptoquiz/internal/share"
	"github.com/abhisek/symptoquiz/internal/store"
	"github.com/abhisek/symptoquiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Repo        store.AssessmentRepo
	SaveHistory bool
	Sharer      share.Sharer
	Logger      *zap.Logger

	// NoSplash starts directly on the self-check form.
	NoSplash bool

	// now is overridden in tests.
	now func() time.Time
}

// todayCountMsg carries the number of assessments saved since midnight.
type todayCountMsg struct {
	n int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	form   *assessment.AssessmentScreen
	width  int
	height int
	today  int // -1 hides the header counter
}

func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	form := assessment.New(assessment.Options{
		Repo:        opts.Repo,
		SaveHistory: opts.SaveHistory,
		Sharer:      opts.Sharer,
		Logger:      opts.Logger,
	})

	var root screen.Screen = form
	if !opts.NoSplash {
		root = welcome.New(func() screen.Screen { return form })
	}

	today := -1
	if opts.Repo != nil {
		today = 0
	}
	return AppModel{
		opts:   opts,
		router: router.New(root),
		form:   form,
		today:  today,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.countToday())
}

// countToday reloads the header counter from the store.
func (m AppModel) countToday() tea.Cmd {
	repo := m.opts.Repo
	if repo == nil {
		return nil
	}
	now := m.opts.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	logger := m.opts.Logger
	return func() tea.Msg {
		n, err := repo.Count(context.Background(), store.QueryOpts{From: midnight})
		if err != nil {
			logger.Warn("count today's assessments", zap.Error(err))
			return nil
		}
		return todayCountMsg{n: n}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todayCountMsg:
		m.today = msg.n
		return m, nil

	case assessment.SavedMsg:
		// The save may finish after another screen was pushed over the form.
		_, cmd := m.form.Update(msg)
		if msg.Err == nil {
			return m, tea.Batch(cmd, m.countToday())
		}
		return m, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// The root screen uses esc to close dropdowns and alerts.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Titles(), m.today, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
