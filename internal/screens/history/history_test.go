package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/severity"
	"github.com/abhisek/symptoquiz/internal/store"
)

// mockRepo implements store.AssessmentRepo for history tests.
type mockRepo struct {
	list []store.Assessment
	err  error
	opts store.QueryOpts
}

func (m *mockRepo) Save(context.Context, *store.Assessment) error { return nil }
func (m *mockRepo) List(_ context.Context, opts store.QueryOpts) ([]store.Assessment, error) {
	m.opts = opts
	return m.list, m.err
}
func (m *mockRepo) Count(context.Context, store.QueryOpts) (int, error) { return len(m.list), nil }
func (m *mockRepo) LevelCounts(context.Context) (map[severity.Level]int, error) {
	return nil, nil
}
func (m *mockRepo) DeleteAll(context.Context) (int64, error) { return 0, nil }

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestHistory_LoadsNewestPage(t *testing.T) {
	repo := &mockRepo{list: []store.Assessment{
		{Name: "Rei", Level: severity.LevelCritical, YesCount: 4, Timestamp: time.Now(),
			Symptoms: []string{"Yes", "Yes", "Yes", "Yes", "No"}, Medication: "No"},
		{Name: "Shinji", Level: severity.LevelNormal, YesCount: 0, Timestamp: time.Now()},
	}}
	s := New(repo)
	load(t, s)

	if repo.opts.Limit != pageSize {
		t.Errorf("limit = %d, want %d", repo.opts.Limit, pageSize)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Rei") || !strings.Contains(view, "Critical") {
		t.Errorf("view missing first assessment: %q", view)
	}
}

func TestHistory_ExpandShowsAnswers(t *testing.T) {
	repo := &mockRepo{list: []store.Assessment{
		{Name: "Rei", Level: severity.LevelCritical, YesCount: 4, Timestamp: time.Now(),
			Symptoms: []string{"Yes", "Yes", "Yes", "Yes", "No"}, Medication: "No"},
	}}
	s := New(repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "chest pain") {
		t.Error("expanded entry should list the questions")
	}
}

func TestHistory_Navigation(t *testing.T) {
	repo := &mockRepo{list: make([]store.Assessment, 3)}
	for i := range repo.list {
		repo.list[i].Level = severity.LevelNormal
	}
	s := New(repo)
	load(t, s)

	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistory_Error(t *testing.T) {
	s := New(&mockRepo{err: errors.New("disk on fire")})
	load(t, s)
	if !strings.Contains(s.View(80, 20), "disk on fire") {
		t.Error("expected error in view")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(&mockRepo{})
	load(t, s)
	if !strings.Contains(s.View(80, 20), "No assessments yet") {
		t.Error("expected empty message")
	}
}

func TestHistory_Disabled(t *testing.T) {
	s := New(nil)
	if s.Init() != nil {
		t.Error("nil repo should not schedule a load")
	}
	if !strings.Contains(s.View(80, 20), "turned off") {
		t.Error("expected disabled message")
	}
}

func TestHistory_SelectionStaysVisible(t *testing.T) {
	repo := &mockRepo{list: make([]store.Assessment, pageSize)}
	for i := range repo.list {
		repo.list[i] = store.Assessment{
			Name:      fmt.Sprintf("row-%02d", i),
			Level:     severity.LevelNormal,
			Timestamp: time.Now(),
		}
	}
	s := New(repo)
	load(t, s)

	for i := 0; i < pageSize; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(100, 12)
	if got := strings.Count(view, "\n") + 1; got > 12 {
		t.Errorf("view has %d lines, want at most 12", got)
	}
	if !strings.Contains(view, "row-49") {
		t.Error("the selected last row should be on screen")
	}
	if strings.Contains(view, "row-00") {
		t.Error("the first row should have scrolled off")
	}
}
