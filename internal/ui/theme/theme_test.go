package theme

import (
	"testing"

	"github.com/abhisek/symptoquiz/internal/severity"
)

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level severity.Level
		want  any
	}{
		{severity.LevelCritical, Error},
		{severity.LevelModerate, Accent},
		{severity.LevelNormal, Success},
		{severity.Level("other"), Text},
	}
	for _, tt := range tests {
		if got := LevelColor(tt.level); got != tt.want {
			t.Errorf("LevelColor(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
