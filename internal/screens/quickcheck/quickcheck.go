// Package quickcheck is the name-less variant of the self check: one yes/no
// choice per symptom and an immediate result.
package quickcheck

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/ui/components"
	"github.com/abhisek/symptoquiz/internal/ui/layout"
	"github.com/abhisek/symptoquiz/internal/ui/theme"
)

const toastDuration = 2 * time.Second

// toastExpiredMsg clears the toast with the matching id.
type toastExpiredMsg struct{ id int }

// QuickCheckScreen lists the symptom questions as radio groups.
type QuickCheckScreen struct {
	logger    *zap.Logger
	questions [severity.SymptomCount]components.Radio
	focus     int
	result    *questionnaire.Result
	toast     string
	toastID   int
}

var _ screen.Screen = (*QuickCheckScreen)(nil)
var _ screen.KeyHintProvider = (*QuickCheckScreen)(nil)

// New creates a QuickCheckScreen with nothing answered.
func New(logger *zap.Logger) *QuickCheckScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	labels := make([]string, 0, 2)
	for _, a := range questionnaire.Options() {
		labels = append(labels, a.String())
	}

	s := &QuickCheckScreen{logger: logger}
	for i, q := range questionnaire.Symptoms() {
		s.questions[i] = components.NewRadio(q.Prompt, labels)
	}
	s.questions[0].Focused = true
	return s
}

func (s *QuickCheckScreen) Init() tea.Cmd {
	return nil
}

func (s *QuickCheckScreen) Title() string {
	return "Quick Check"
}

func (s *QuickCheckScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Question"},
		{Key: "←→/Y/N", Description: "Answer"},
		{Key: "Enter", Description: "Evaluate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Answers returns the current answers.
func (s *QuickCheckScreen) Answers() questionnaire.QuickCheck {
	var q questionnaire.QuickCheck
	opts := questionnaire.Options()
	for i, r := range s.questions {
		if r.Chosen >= 0 && r.Chosen < len(opts) {
			q.Symptoms[i] = opts[r.Chosen]
		}
	}
	return q
}

func (s *QuickCheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		if msg.id == s.toastID {
			s.toast = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			s.moveFocus(-1)
			return s, nil
		case "down", "j", "tab":
			s.moveFocus(1)
			return s, nil
		case "enter":
			return s, s.evaluate()
		}

		var handled bool
		s.questions[s.focus], handled = s.questions[s.focus].Update(msg)
		if handled && s.questions[s.focus].Chosen >= 0 {
			// Answering moves on to the next question.
			switch msg.String() {
			case "left", "right", "h", "l":
			default:
				s.moveFocus(1)
			}
		}
	}
	return s, nil
}

func (s *QuickCheckScreen) moveFocus(delta int) {
	next := s.focus + delta
	if next < 0 || next >= len(s.questions) {
		return
	}
	s.questions[s.focus].Focused = false
	s.focus = next
	s.questions[s.focus].Focused = true
}

func (s *QuickCheckScreen) evaluate() tea.Cmd {
	result, err := s.Answers().Evaluate()
	if err != nil {
		s.toastID++
		s.toast = "Please answer all questions"
		id := s.toastID
		return tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})
	}
	s.result = &result
	s.toast = ""
	s.logger.Info("quick check evaluated",
		zap.String("level", string(result.Level)),
		zap.Int("yes_count", result.YesCount),
	)
	return nil
}

func (s *QuickCheckScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	answered := 0
	for _, r := range s.questions {
		b.WriteString(r.View())
		b.WriteString("\n")
		if r.Chosen >= 0 {
			answered++
		}
	}
	b.WriteString("\n  ")
	b.WriteString(components.NewProgressBar("Answered", answered, len(s.questions), 50).View())
	b.WriteString("\n")

	if s.result != nil {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.LevelColor(s.result.Level)).
			Bold(true).
			Render("● " + s.result.Headline()))
		b.WriteString("\n")
	}
	if s.toast != "" {
		b.WriteString("\n  ")
		b.WriteString(theme.Warning.Render("⚠ " + s.toast))
		b.WriteString("\n")
	}
	return b.String()
}
