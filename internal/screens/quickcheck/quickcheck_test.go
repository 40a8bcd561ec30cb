package quickcheck

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symptoquiz/internal/severity"
)

func press(s *QuickCheckScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

func letter(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuickCheck_IncompleteShowsToast(t *testing.T) {
	s := New(nil)
	cmd := press(s, letter('y'), tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected toast expiry command")
	}
	if s.result != nil {
		t.Error("incomplete answers must not produce a result")
	}
	if !strings.Contains(s.View(80, 20), "Please answer all questions") {
		t.Error("toast should be visible")
	}

	// An expired toast with the current id clears it.
	s.Update(toastExpiredMsg{id: s.toastID})
	if s.toast != "" {
		t.Error("toast should clear on expiry")
	}
}

func TestQuickCheck_StaleToastExpiryIgnored(t *testing.T) {
	s := New(nil)
	press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	first := s.toastID
	press(s, tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(toastExpiredMsg{id: first})
	if s.toast == "" {
		t.Error("an older expiry must not clear a newer toast")
	}
}

func TestQuickCheck_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		keys []rune
		want severity.Level
	}{
		{"critical", []rune{'y', 'y', 'y', 'y', 'n'}, severity.LevelCritical},
		{"moderate", []rune{'y', 'y', 'n', 'n', 'n'}, severity.LevelModerate},
		{"normal", []rune{'n', 'n', 'n', 'n', 'n'}, severity.LevelNormal},
		{"normal one", []rune{'y', 'n', 'n', 'n', 'n'}, severity.LevelNormal},
		{"moderate three", []rune{'y', 'y', 'y', 'n', 'n'}, severity.LevelModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			for _, k := range tt.keys {
				press(s, letter(k))
			}
			press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
			if s.result == nil {
				t.Fatal("expected a result")
			}
			if s.result.Level != tt.want {
				t.Errorf("level = %q, want %q", s.result.Level, tt.want)
			}
		})
	}
}

func TestQuickCheck_Navigation(t *testing.T) {
	s := New(nil)
	press(s, tea.KeyPressMsg{Code: tea.KeyUp})
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0", s.focus)
	}
	press(s, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyDown})
	if s.focus != 2 || !s.questions[2].Focused || s.questions[0].Focused {
		t.Errorf("focus = %d, want 2 with only that radio focused", s.focus)
	}
	for i := 0; i < 10; i++ {
		press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.focus != severity.SymptomCount-1 {
		t.Errorf("focus should stop at the last question, got %d", s.focus)
	}
}

func TestQuickCheck_Title(t *testing.T) {
	if New(nil).Title() != "Quick Check" {
		t.Error("unexpected title")
	}
}
