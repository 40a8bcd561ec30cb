package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestDropdownSelect(t *testing.T) {
	d := NewDropdown("Fever?", []string{"Yes", "No"})

	d, handled := d.Update(key(tea.KeyDown))
	if handled {
		t.Error("closed dropdown should not consume down")
	}

	d, handled = d.Update(key(tea.KeyEnter))
	if !handled || !d.Open {
		t.Fatal("enter should open the dropdown")
	}

	d, _ = d.Update(key(tea.KeyDown))
	d, _ = d.Update(key(tea.KeyEnter))
	if d.Open {
		t.Error("enter should close after choosing")
	}
	if d.Value() != "No" {
		t.Errorf("Value = %q, want No", d.Value())
	}
}

func TestDropdownEscKeepsChoice(t *testing.T) {
	d := NewDropdown("Cough?", []string{"Yes", "No"})
	d, _ = d.Update(key(tea.KeyEnter))
	d, _ = d.Update(key(tea.KeyEnter))
	if d.Value() != "Yes" {
		t.Fatalf("Value = %q, want Yes", d.Value())
	}

	d, _ = d.Update(key(tea.KeyEnter))
	d, _ = d.Update(key(tea.KeyDown))
	d, handled := d.Update(key(tea.KeyEscape))
	if !handled || d.Open {
		t.Error("esc should close an open dropdown")
	}
	if d.Value() != "Yes" {
		t.Errorf("esc should not change the choice, got %q", d.Value())
	}
}

func TestDropdownView(t *testing.T) {
	d := NewDropdown("Dizzy?", []string{"Yes", "No"})
	if !strings.Contains(d.View(), "select") {
		t.Error("empty dropdown should show a placeholder")
	}
	d.Open = true
	v := d.View()
	if !strings.Contains(v, "Yes") || !strings.Contains(v, "No") {
		t.Error("open dropdown should list options")
	}
}

func TestRadio(t *testing.T) {
	r := NewRadio("Medication?", []string{"Yes", "No"})
	if r.Value() != "" {
		t.Fatal("radio should start unanswered")
	}

	r, handled := r.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if !handled || r.Value() != "No" {
		t.Errorf("n should pick No, got %q", r.Value())
	}

	r, _ = r.Update(key(tea.KeyLeft))
	if r.Value() != "Yes" {
		t.Errorf("left should move to Yes, got %q", r.Value())
	}

	r, _ = r.Update(key(tea.KeyRight))
	if r.Value() != "No" {
		t.Errorf("right should move to No, got %q", r.Value())
	}

	_, handled = r.Update(key(tea.KeyTab))
	if handled {
		t.Error("tab should not be consumed by the radio")
	}
}

func TestButtonPress(t *testing.T) {
	b := NewButton("Evaluate")
	if b.Pressed(key(tea.KeyEnter)) {
		t.Error("inactive button should ignore enter")
	}

	b.Active = true
	if !b.Pressed(key(tea.KeyEnter)) || !b.Pressed(key(tea.KeySpace)) {
		t.Error("active button should fire on enter and space")
	}
	if b.Pressed(key(tea.KeyTab)) {
		t.Error("tab should not press the button")
	}
	if !strings.Contains(b.View(), "▸ Evaluate") {
		t.Errorf("active button should show the marker: %q", b.View())
	}
}

func TestAlert(t *testing.T) {
	var a Alert
	if _, handled := a.Update(key(tea.KeyEnter)); handled {
		t.Error("hidden alert should not consume keys")
	}

	a.Show("Incomplete", "Please answer all questions")
	if !strings.Contains(a.View(), "Please answer all questions") {
		t.Error("visible alert should render its body")
	}

	a, handled := a.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if !handled || !a.Visible {
		t.Error("alert should swallow other keys and stay visible")
	}

	a, _ = a.Update(key(tea.KeyEscape))
	if a.Visible {
		t.Error("esc should dismiss the alert")
	}
	if a.View() != "" {
		t.Error("hidden alert should render nothing")
	}
}

func TestTextInputRequiredWarning(t *testing.T) {
	ti := NewTextInput("Your name", "Enter your name", 40)
	ti.Required = true
	if !strings.Contains(ti.View(), "required") {
		t.Error("blank required field should warn")
	}
	ti.SetValue("Misato")
	if strings.Contains(ti.View(), "required") {
		t.Error("filled field should not warn")
	}
	if ti.Value() != "Misato" {
		t.Errorf("Value = %q", ti.Value())
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Answered", 3, 5, 40)
	if !strings.Contains(p.View(), "3/5") {
		t.Errorf("progress view should show the step count: %q", p.View())
	}

	if got := NewProgressBar("", 7, 5, 40).filled(10); got != 10 {
		t.Errorf("overfull bar filled = %d, want 10", got)
	}
	if got := NewProgressBar("", 0, 0, 40).filled(10); got != 0 {
		t.Errorf("empty total filled = %d, want 0", got)
	}
	if got := NewProgressBar("", 2, 5, 40).filled(10); got != 4 {
		t.Errorf("2/5 of 10 filled = %d, want 4", got)
	}
}
