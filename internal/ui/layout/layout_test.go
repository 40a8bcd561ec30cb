package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader([]string{"Self Check", "History"}, 3, 80)
	if !strings.Contains(h, "Self Check") || !strings.Contains(h, "History") {
		t.Errorf("header should contain the breadcrumb: %q", h)
	}
	if !strings.Contains(h, "today") {
		t.Error("header should contain today's count")
	}

	h = RenderHeader([]string{"About"}, -1, 80)
	if strings.Contains(h, "today") {
		t.Error("negative count should hide the counter")
	}
}

func TestVisibleCrumbs(t *testing.T) {
	tests := []struct {
		name   string
		crumbs []string
		room   int
		want   string
	}{
		{"fits", []string{"Self Check", "History"}, 40, "Self Check › History"},
		{"skips empty", []string{"", "Self Check"}, 40, "Self Check"},
		{"drops leading", []string{"Self Check", "Quick Check", "About"}, 25, "… › Quick Check › About"},
		{"keeps last", []string{"Self Check", "History"}, 3, "… › History"},
		{"none", nil, 40, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleCrumbs(tt.crumbs, tt.room); got != tt.want {
				t.Errorf("visibleCrumbs = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "F1", Description: "Info"}}, 80)
	if !strings.Contains(f, "F1") || !strings.Contains(f, "Info") {
		t.Errorf("footer missing hint: %q", f)
	}
}

func TestRenderFooterDropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "F1", Description: "A very long description that cannot fit"},
	}
	f := RenderFooter(hints, 40)
	if !strings.Contains(f, "Tab") {
		t.Error("first hint should be kept")
	}
	if strings.Contains(f, "cannot fit") {
		t.Error("overflowing hint should be dropped")
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader([]string{"Self Check"}, 0, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestClip(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	if got := Clip(lines, 0, 20); len(got) != 10 {
		t.Errorf("short content should not be clipped, got %d lines", len(got))
	}
	got := Clip(lines, 0, 4)
	if strings.Join(got, "") != "0123" {
		t.Errorf("clip at top = %v", got)
	}
	got = Clip(lines, 6, 4)
	if strings.Join(got, "") != "5678" {
		t.Errorf("clip around 6 = %v", got)
	}
	got = Clip(lines, 9, 4)
	if strings.Join(got, "") != "6789" {
		t.Errorf("clip at bottom = %v", got)
	}
}
