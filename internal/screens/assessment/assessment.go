// Package assessment implements the home screen: the self-check form.
package assessment

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/router"
	"github.com/abhisek/symptoquiz/internal/screen"
	"github.com/abhisek/symptoquiz/internal/screens/history"
	"github.com/abhisek/symptoquiz/internal/screens/info"
	"github.com/abhisek/symptoquiz/internal/screens/quickcheck"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/share"
	"github.com/abhisek/symptoquiz/internal/store"
	"github.com/abhisek/symptoquiz/internal/ui/components"
	"github.com/abhisek/symptoquiz/internal/ui/layout"
)

// Focus order of the form fields.
const (
	focusName       = 0
	focusSymptom    = 1 // first of severity.SymptomCount dropdowns
	focusMedication = focusSymptom + severity.SymptomCount
	focusEvaluate   = focusMedication + 1
	focusShare      = focusEvaluate + 1
)

const (
	incompleteTitle = "Incomplete"
	incompleteBody  = "Please answer all questions before evaluating."
)

// Options wires the screen to its collaborators. Every field is optional.
type Options struct {
	// Repo saves each evaluated assessment when SaveHistory is true.
	Repo        store.AssessmentRepo
	SaveHistory bool

	// Sharer receives the share message. Nil hides the Share button.
	Sharer share.Sharer

	Logger *zap.Logger
}

// SavedMsg reports the outcome of persisting an assessment.
type SavedMsg struct {
	Err error
}

// sharedMsg reports the outcome of the share action.
type sharedMsg struct {
	Receipt share.Receipt
	Err     error
}

// AssessmentScreen is the self-check form.
type AssessmentScreen struct {
	opts Options

	name        components.TextInput
	symptoms    [severity.SymptomCount]components.Dropdown
	medication  components.Radio
	evaluateBtn components.Button
	shareBtn    components.Button
	alert       components.Alert

	focus  int
	form   questionnaire.Form // snapshot taken at the last evaluation
	result *questionnaire.Result
	status string
	failed bool // status reports a failure and survives Resume
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.Resumer = (*AssessmentScreen)(nil)

// New creates the form with every answer empty.
func New(opts Options) *AssessmentScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	labels := answerLabels()

	name := components.NewTextInput("Your name", "Enter your name", 40)
	name.Required = true

	s := &AssessmentScreen{
		opts:        opts,
		name:        name,
		medication:  components.NewRadio(questionnaire.Medication.Prompt, labels),
		evaluateBtn: components.NewButton("Evaluate"),
		shareBtn:    components.NewButton("Share"),
	}
	for i, q := range questionnaire.Symptoms() {
		s.symptoms[i] = components.NewDropdown(q.Prompt, labels)
	}
	return s
}

func answerLabels() []string {
	opts := questionnaire.Options()
	labels := make([]string, len(opts))
	for i, a := range opts {
		labels[i] = a.String()
	}
	return labels
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

// Resume runs when a screen opened from the form is closed. It drops a
// successful save/share status, keeps a failure, and restores focus.
func (s *AssessmentScreen) Resume() tea.Cmd {
	if !s.failed {
		s.status = ""
	}
	return s.setFocus(s.focus)
}

func (s *AssessmentScreen) Title() string {
	return "Self Check"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.alert.Visible {
		return []layout.KeyHint{{Key: "Enter", Description: "OK"}}
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "F1", Description: "Info"},
		{Key: "F2", Description: "Quick check"},
		{Key: "F3", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Form returns the current answers as a questionnaire value.
func (s *AssessmentScreen) Form() questionnaire.Form {
	f := questionnaire.Form{
		Name:       s.name.Value(),
		Medication: answerAt(s.medication.Chosen),
	}
	for i, d := range s.symptoms {
		f.Symptoms[i] = answerAt(d.Chosen)
	}
	return f
}

// Result returns the last evaluation, or nil before the first one.
func (s *AssessmentScreen) Result() *questionnaire.Result {
	return s.result
}

func answerAt(idx int) questionnaire.Answer {
	opts := questionnaire.Options()
	if idx < 0 || idx >= len(opts) {
		return questionnaire.Unanswered
	}
	return opts[idx]
}

func (s *AssessmentScreen) lastFocus() int {
	if s.result != nil && s.opts.Sharer != nil {
		return focusShare
	}
	return focusEvaluate
}

// setFocus moves focus to idx and returns the text input's cursor command
// when the name field gains focus.
func (s *AssessmentScreen) setFocus(idx int) tea.Cmd {
	if idx < focusName {
		idx = focusName
	}
	if last := s.lastFocus(); idx > last {
		idx = last
	}
	s.focus = idx

	for i := range s.symptoms {
		s.symptoms[i].Focused = idx == focusSymptom+i
	}
	s.medication.Focused = idx == focusMedication
	s.evaluateBtn.Active = idx == focusEvaluate
	s.shareBtn.Active = idx == focusShare

	if idx == focusName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case SavedMsg:
		s.failed = msg.Err != nil
		if msg.Err != nil {
			s.status = "Could not save to history: " + msg.Err.Error()
		} else {
			s.status = "Saved to history."
		}
		return s, nil

	case sharedMsg:
		s.failed = msg.Err != nil
		if msg.Err != nil {
			s.opts.Logger.Warn("share failed", zap.Error(msg.Err))
			s.status = "Share failed: " + msg.Err.Error()
		} else {
			s.status = "Shared to " + msg.Receipt.Target + "."
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.focus == focusName {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.alert.Visible {
		s.alert, _ = s.alert.Update(msg)
		return nil
	}

	switch msg.String() {
	case "f1":
		return push(info.New())
	case "f2":
		return push(quickcheck.New(s.opts.Logger))
	case "f3":
		return push(history.New(s.opts.Repo))
	}

	switch {
	case s.focus == focusName:
		switch msg.String() {
		case "tab", "down", "enter":
			return s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return nil
		}
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return cmd

	case s.focus >= focusSymptom && s.focus < focusMedication:
		i := s.focus - focusSymptom
		var handled bool
		s.symptoms[i], handled = s.symptoms[i].Update(msg)
		if handled {
			return nil
		}

	case s.focus == focusMedication:
		var handled bool
		s.medication, handled = s.medication.Update(msg)
		if handled {
			return nil
		}

	case s.focus == focusEvaluate:
		if s.evaluateBtn.Pressed(msg) {
			return s.runEvaluation()
		}
		if msg.String() == "right" {
			return s.setFocus(focusShare)
		}

	case s.focus == focusShare:
		if s.shareBtn.Pressed(msg) {
			return s.share()
		}
		if msg.String() == "left" {
			return s.setFocus(focusEvaluate)
		}
	}

	switch msg.String() {
	case "tab", "down":
		return s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s.setFocus(s.focus - 1)
	}
	return nil
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

// runEvaluation validates the form, shows the incomplete alert or the
// result, and schedules the history save.
func (s *AssessmentScreen) runEvaluation() tea.Cmd {
	form := s.Form()
	result, err := form.Evaluate()
	if err != nil {
		var inc *questionnaire.IncompleteError
		if errors.As(err, &inc) {
			s.opts.Logger.Debug("evaluation rejected", zap.Strings("missing", inc.Missing))
		}
		s.alert.Show(incompleteTitle, incompleteBody)
		return nil
	}

	s.form = form
	s.result = &result
	s.status = ""
	s.failed = false
	s.opts.Logger.Info("assessment evaluated",
		zap.String("level", string(result.Level)),
		zap.Int("yes_count", result.YesCount),
	)

	if s.opts.Repo == nil || !s.opts.SaveHistory {
		return nil
	}
	return saveCmd(s.opts.Repo, s.opts.Logger, form, result)
}

func saveCmd(repo store.AssessmentRepo, logger *zap.Logger, form questionnaire.Form, result questionnaire.Result) tea.Cmd {
	rec := store.NewAssessment(form, result)
	return func() tea.Msg {
		err := repo.Save(context.Background(), rec)
		if err != nil {
			logger.Error("save assessment", zap.Error(err))
		}
		return SavedMsg{Err: err}
	}
}

func (s *AssessmentScreen) share() tea.Cmd {
	if s.result == nil || s.opts.Sharer == nil {
		return nil
	}
	text := questionnaire.ShareMessage(s.form, *s.result)
	sharer := s.opts.Sharer
	return func() tea.Msg {
		r, err := sharer.Share(context.Background(), text)
		return sharedMsg{Receipt: r, Err: err}
	}
}
