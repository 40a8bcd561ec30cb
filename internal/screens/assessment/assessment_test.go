package assessment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/router"
	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/share"
	"github.com/abhisek/symptoquiz/internal/store"
)

// mockRepo implements store.AssessmentRepo and records saves.
type mockRepo struct {
	mu    sync.Mutex
	saved []store.Assessment
	err   error
}

func (m *mockRepo) Save(_ context.Context, a *store.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, *a)
	return nil
}
func (m *mockRepo) List(context.Context, store.QueryOpts) ([]store.Assessment, error) {
	return nil, nil
}
func (m *mockRepo) Count(context.Context, store.QueryOpts) (int, error) { return 0, nil }
func (m *mockRepo) LevelCounts(context.Context) (map[severity.Level]int, error) {
	return nil, nil
}
func (m *mockRepo) DeleteAll(context.Context) (int64, error) { return 0, nil }

type stubSharer struct {
	text string
	err  error
}

func (s *stubSharer) Share(_ context.Context, text string) (share.Receipt, error) {
	s.text = text
	if s.err != nil {
		return share.Receipt{}, s.err
	}
	return share.Receipt{Target: "clipboard"}, nil
}

func keyMsg(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func textMsg(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// fill answers every dropdown with the given choices (true = Yes) and the
// medication radio with No, leaving focus on the Evaluate button.
func fill(s *AssessmentScreen, name string, yes [severity.SymptomCount]bool) {
	s.name.SetValue(name)
	s.setFocus(focusSymptom)
	for _, y := range yes {
		s.Update(keyMsg(tea.KeyEnter)) // open
		if !y {
			s.Update(keyMsg(tea.KeyDown))
		}
		s.Update(keyMsg(tea.KeyEnter)) // choose
		s.Update(keyMsg(tea.KeyTab))
	}
	s.Update(textMsg('n'))
	s.Update(keyMsg(tea.KeyTab))
}

func TestAssessment_InitFocusesName(t *testing.T) {
	s := New(Options{})
	s.Init()
	if s.focus != focusName || !s.name.Focused() {
		t.Error("name field should be focused initially")
	}
}

func TestAssessment_TypingName(t *testing.T) {
	s := New(Options{})
	s.Init()
	for _, r := range "Kaji" {
		s.Update(textMsg(r))
	}
	if got := s.Form().Name; got != "Kaji" {
		t.Errorf("name = %q, want Kaji", got)
	}
}

func TestAssessment_FocusMovement(t *testing.T) {
	s := New(Options{})
	s.Init()

	s.Update(keyMsg(tea.KeyTab))
	if s.focus != focusSymptom || !s.symptoms[0].Focused {
		t.Fatalf("focus = %d, want first symptom", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != focusName {
		t.Errorf("shift+tab should return to name, focus = %d", s.focus)
	}

	for i := 0; i < 20; i++ {
		s.Update(keyMsg(tea.KeyDown))
	}
	if s.focus != focusEvaluate {
		t.Errorf("focus should stop at Evaluate before a result, got %d", s.focus)
	}
}

func TestAssessment_IncompleteShowsAlert(t *testing.T) {
	repo := &mockRepo{}
	s := New(Options{Repo: repo, SaveHistory: true})
	s.Init()
	s.setFocus(focusEvaluate)

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Error("incomplete evaluation should not schedule a save")
	}
	if !s.alert.Visible {
		t.Fatal("expected incomplete alert")
	}
	if s.result != nil {
		t.Error("no result expected for incomplete form")
	}
	if s.alert.Title != incompleteTitle || !strings.Contains(s.alert.Body, "Please answer all questions") {
		t.Errorf("unexpected alert: %q / %q", s.alert.Title, s.alert.Body)
	}
	if s.View(100, 30) == "" {
		t.Error("alert should be rendered")
	}

	s.Update(keyMsg(tea.KeyEnter))
	if s.alert.Visible {
		t.Error("enter should dismiss the alert")
	}
}

func TestAssessment_BlankNameIsIncomplete(t *testing.T) {
	s := New(Options{})
	s.Init()
	fill(s, "   ", [severity.SymptomCount]bool{})

	s.Update(keyMsg(tea.KeyEnter))
	if !s.alert.Visible {
		t.Error("blank name should be rejected")
	}
}

func TestAssessment_EvaluateLevels(t *testing.T) {
	tests := []struct {
		name string
		yes  [severity.SymptomCount]bool
		want severity.Level
	}{
		{"critical", [severity.SymptomCount]bool{true, true, true, true, false}, severity.LevelCritical},
		{"moderate", [severity.SymptomCount]bool{true, true, false, false, false}, severity.LevelModerate},
		{"normal", [severity.SymptomCount]bool{}, severity.LevelNormal},
		{"normal one", [severity.SymptomCount]bool{true}, severity.LevelNormal},
		{"moderate three", [severity.SymptomCount]bool{true, true, true}, severity.LevelModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{})
			s.Init()
			fill(s, "Misato", tt.yes)
			if s.focus != focusEvaluate {
				t.Fatalf("focus = %d, want Evaluate", s.focus)
			}

			s.Update(keyMsg(tea.KeyEnter))
			if s.alert.Visible {
				t.Fatal("complete form should not alert")
			}
			if s.Result() == nil || s.Result().Level != tt.want {
				t.Fatalf("result = %+v, want level %q", s.Result(), tt.want)
			}
			if !strings.Contains(s.View(120, 40), "Misato, your condition is") {
				t.Error("headline should be rendered")
			}
		})
	}
}

func TestAssessment_SavesWhenEnabled(t *testing.T) {
	repo := &mockRepo{}
	s := New(Options{Repo: repo, SaveHistory: true})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{true, true})

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd()
	if _, ok := msg.(SavedMsg); !ok {
		t.Fatalf("expected SavedMsg, got %T", msg)
	}
	s.Update(msg)

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d assessments, want 1", len(repo.saved))
	}
	got := repo.saved[0]
	if got.Name != "Misato" || got.Level != severity.LevelModerate || got.YesCount != 2 {
		t.Errorf("unexpected record: %+v", got)
	}
	if strings.Join(got.Symptoms, ",") != "Yes,Yes,No,No,No" || got.Medication != "No" {
		t.Errorf("unexpected answers: %v / %s", got.Symptoms, got.Medication)
	}
	if !strings.Contains(s.status, "Saved") {
		t.Errorf("status = %q", s.status)
	}
}

func TestAssessment_SaveDisabled(t *testing.T) {
	repo := &mockRepo{}
	s := New(Options{Repo: repo, SaveHistory: false})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{})

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Error("no save expected when history is off")
	}
}

func TestAssessment_SaveErrorShown(t *testing.T) {
	s := New(Options{})
	s.Update(SavedMsg{Err: errors.New("locked")})
	if !strings.Contains(s.status, "locked") {
		t.Errorf("status = %q", s.status)
	}
}

func TestAssessment_Share(t *testing.T) {
	sharer := &stubSharer{}
	s := New(Options{Sharer: sharer})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{true, true, true, true, true})
	s.Update(keyMsg(tea.KeyEnter))

	if !strings.Contains(s.View(120, 40), "Share") {
		t.Error("share button should appear after a result")
	}

	s.Update(keyMsg(tea.KeyTab))
	if s.focus != focusShare {
		t.Fatalf("focus = %d, want Share", s.focus)
	}

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected share command")
	}
	s.Update(cmd())

	if !strings.Contains(sharer.text, "Name: Misato") || !strings.Contains(sharer.text, "Result: Critical") {
		t.Errorf("unexpected share text: %q", sharer.text)
	}
	if !strings.Contains(s.status, "clipboard") {
		t.Errorf("status = %q", s.status)
	}
}

func TestAssessment_ShareUsesEvaluatedAnswers(t *testing.T) {
	sharer := &stubSharer{}
	s := New(Options{Sharer: sharer})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{true, true, true, true, true})
	s.Update(keyMsg(tea.KeyEnter))

	// Editing after evaluation does not change what gets shared.
	s.name.SetValue("Someone else")
	s.setFocus(focusShare)
	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	s.Update(cmd())
	if !strings.Contains(sharer.text, "Name: Misato") {
		t.Errorf("share should use the evaluated form, got %q", sharer.text)
	}
}

func TestAssessment_ShareError(t *testing.T) {
	s := New(Options{Sharer: &stubSharer{err: errors.New("no clipboard")}})
	s.Update(sharedMsg{Err: errors.New("no clipboard")})
	if !strings.Contains(s.status, "no clipboard") {
		t.Errorf("status = %q", s.status)
	}
}

func TestAssessment_NoShareWithoutSharer(t *testing.T) {
	s := New(Options{})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{})
	s.Update(keyMsg(tea.KeyEnter))
	s.Update(keyMsg(tea.KeyTab))
	if s.focus != focusEvaluate {
		t.Errorf("focus should stay on Evaluate without a sharer, got %d", s.focus)
	}
}

func TestAssessment_NavigationKeys(t *testing.T) {
	tests := []struct {
		key   tea.KeyPressMsg
		title string
	}{
		{tea.KeyPressMsg{Code: tea.KeyF1}, "About"},
		{tea.KeyPressMsg{Code: tea.KeyF2}, "Quick Check"},
		{tea.KeyPressMsg{Code: tea.KeyF3}, "History"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			s := New(Options{})
			_, cmd := s.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected push command")
			}
			push, ok := cmd().(router.PushScreenMsg)
			if !ok {
				t.Fatal("expected PushScreenMsg")
			}
			if got := push.Screen.Title(); got != tt.title {
				t.Errorf("pushed %q, want %q", got, tt.title)
			}
		})
	}
}

func TestAssessment_FormSnapshot(t *testing.T) {
	s := New(Options{})
	s.Init()
	fill(s, "Misato", [severity.SymptomCount]bool{true, false, true, false, true})
	f := s.Form()
	want := [severity.SymptomCount]questionnaire.Answer{
		questionnaire.Yes, questionnaire.No, questionnaire.Yes, questionnaire.No, questionnaire.Yes,
	}
	if f.Symptoms != want {
		t.Errorf("symptoms = %v, want %v", f.Symptoms, want)
	}
	if f.Medication != questionnaire.No {
		t.Errorf("medication = %v, want No", f.Medication)
	}
}

func TestAssessment_ResumeClearsStatus(t *testing.T) {
	s := New(Options{})
	s.Init()
	s.Update(SavedMsg{})
	if s.status == "" {
		t.Fatal("expected a status after saving")
	}

	s.setFocus(focusMedication)
	s.Resume()
	if s.status != "" {
		t.Errorf("status should be cleared on resume, got %q", s.status)
	}
	if s.focus != focusMedication {
		t.Errorf("resume should keep focus, got %d", s.focus)
	}
}

func TestAssessment_ResumeKeepsFailure(t *testing.T) {
	s := New(Options{})
	s.Init()
	s.Update(SavedMsg{Err: errors.New("locked")})

	s.Resume()
	if !strings.Contains(s.status, "locked") {
		t.Errorf("a failed save should survive resume, got %q", s.status)
	}

	// A later success replaces it and is cleared as usual.
	s.Update(SavedMsg{})
	s.Resume()
	if s.status != "" {
		t.Errorf("status = %q, want cleared", s.status)
	}
}
