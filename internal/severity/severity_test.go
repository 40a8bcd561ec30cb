package severity

import (
	"sync"
	"testing"
)

// vectorsWith returns every answer vector with exactly k affirmative answers.
func vectorsWith(k int) [][SymptomCount]bool {
	var out [][SymptomCount]bool
	for mask := 0; mask < 1<<SymptomCount; mask++ {
		var v [SymptomCount]bool
		n := 0
		for i := 0; i < SymptomCount; i++ {
			if mask&(1<<i) != 0 {
				v[i] = true
				n++
			}
		}
		if n == k {
			out = append(out, v)
		}
	}
	return out
}

func TestEvaluate_AllVectorsByCount(t *testing.T) {
	tests := []struct {
		yes  int
		want Level
	}{
		{0, LevelNormal},
		{1, LevelNormal},
		{2, LevelModerate},
		{3, LevelModerate},
		{4, LevelCritical},
		{5, LevelCritical},
	}

	for _, tt := range tests {
		for _, v := range vectorsWith(tt.yes) {
			if got := Evaluate(v); got != tt.want {
				t.Errorf("Evaluate(%v) = %q, want %q", v, got, tt.want)
			}
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		answers [SymptomCount]bool
		want    Level
	}{
		{"four yes", [SymptomCount]bool{true, true, true, true, false}, LevelCritical},
		{"two yes", [SymptomCount]bool{true, true, false, false, false}, LevelModerate},
		{"none", [SymptomCount]bool{false, false, false, false, false}, LevelNormal},
		{"one yes", [SymptomCount]bool{true, false, false, false, false}, LevelNormal},
		{"three yes", [SymptomCount]bool{true, true, true, false, false}, LevelModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.answers); got != tt.want {
				t.Errorf("Evaluate(%v) = %q, want %q", tt.answers, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	in := [SymptomCount]bool{false, true, false, true, true}
	first := Evaluate(in)
	second := Evaluate(in)
	if first != second {
		t.Errorf("repeated Evaluate differs: %q then %q", first, second)
	}
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	base := [SymptomCount]bool{true, false, true, false, false}
	want := Evaluate(base)

	// Rotate through every cyclic shift and reversal.
	for shift := 0; shift < SymptomCount; shift++ {
		var rotated, reversed [SymptomCount]bool
		for i := 0; i < SymptomCount; i++ {
			rotated[i] = base[(i+shift)%SymptomCount]
		}
		for i := 0; i < SymptomCount; i++ {
			reversed[i] = rotated[SymptomCount-1-i]
		}
		if got := Evaluate(rotated); got != want {
			t.Errorf("Evaluate(%v) = %q, want %q", rotated, got, want)
		}
		if got := Evaluate(reversed); got != want {
			t.Errorf("Evaluate(%v) = %q, want %q", reversed, got, want)
		}
	}
}

func TestEvaluate_Concurrent(t *testing.T) {
	in := [SymptomCount]bool{true, true, true, true, true}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Evaluate(in); got != LevelCritical {
				t.Errorf("Evaluate = %q, want critical", got)
			}
		}()
	}
	wg.Wait()
}

func TestFromCount_Boundaries(t *testing.T) {
	tests := []struct {
		yes  int
		want Level
	}{
		{-1, LevelNormal},
		{1, LevelNormal},
		{2, LevelModerate},
		{3, LevelModerate},
		{4, LevelCritical},
		{5, LevelCritical},
	}
	for _, tt := range tests {
		if got := FromCount(tt.yes); got != tt.want {
			t.Errorf("FromCount(%d) = %q, want %q", tt.yes, got, tt.want)
		}
	}
}

func TestCountYes(t *testing.T) {
	if got := CountYes([SymptomCount]bool{true, false, true, false, true}); got != 3 {
		t.Errorf("CountYes = %d, want 3", got)
	}
}

func TestLevelNames(t *testing.T) {
	for _, l := range AllLevels() {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
		if l.DisplayName() == "" || l.DisplayName() == string(l) {
			t.Errorf("%q has no display name", l)
		}
		if l.Message() == string(l) {
			t.Errorf("%q has no message", l)
		}
	}
	if Level("unknown").Valid() {
		t.Error("unknown level should be invalid")
	}
}
