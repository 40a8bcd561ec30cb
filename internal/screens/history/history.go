package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/store"
	"github.com/abhisek/symptoquiz/internal/ui/layout"
	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Assessments []store.Assessment
	Err         error
}

// HistoryScreen displays saved assessments, newest first.
type HistoryScreen struct {
	repo        store.AssessmentRepo
	assessments []store.Assessment
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil repo shows that history is off.
func New(repo store.AssessmentRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		s.loaded = true
		return nil
	}
	repo := s.repo
	return func() tea.Msg {
		list, err := repo.List(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Assessments: list, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.repo == nil {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  History is turned off.")
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.assessments) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet.")
	}

	lines := []string{""}
	focusLine := 0
	add := func(line string) {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	}

	questions := questionnaire.Symptoms()
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i, a := range s.assessments {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.LevelColor(a.Level))
		if i == s.selected {
			prefix = "> "
			style = style.Bold(true)
			focusLine = len(lines)
		}

		add(style.Render(fmt.Sprintf("%s%s  %-20s  %-8s  %d/%d yes",
			prefix, a.Timestamp.Local().Format("Jan 02, 2006 15:04"), truncate(a.Name, 20),
			a.Level.DisplayName(), a.YesCount, len(questions))))

		if s.expanded[i] {
			for qi, q := range questions {
				answer := "-"
				if qi < len(a.Symptoms) {
					answer = a.Symptoms[qi]
				}
				add(dim.Render(fmt.Sprintf("    %-42s %s", q.Prompt, answer)))
			}
			add(dim.Render(fmt.Sprintf("    %-42s %s", questionnaire.Medication.Prompt, a.Medication)))
			if i == s.selected {
				// Keep the expanded answers in view.
				focusLine = len(lines) - 1
			}
		}
	}

	return strings.Join(layout.Clip(lines, focusLine, height), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
