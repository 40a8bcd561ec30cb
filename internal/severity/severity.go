// Package severity maps a completed set of symptom answers to a severity level.
package severity

// SymptomCount is the number of scored symptom questions.
const SymptomCount = 5

// Level is the severity classification of a completed questionnaire.
type Level string

const (
	LevelNormal   Level = "normal"
	LevelModerate Level = "moderate"
	LevelCritical Level = "critical"
)

// AllLevels returns all levels from least to most severe.
func AllLevels() []Level {
	return []Level{LevelNormal, LevelModerate, LevelCritical}
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelNormal, LevelModerate, LevelCritical:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelNormal:
		return "Normal"
	case LevelModerate:
		return "Moderate"
	case LevelCritical:
		return "Critical"
	default:
		return string(l)
	}
}

// Message returns the sentence shown to the user for the level.
func (l Level) Message() string {
	switch l {
	case LevelCritical:
		return "your condition is critical. Please seek medical help immediately."
	case LevelModerate:
		return "your condition is moderate. Rest and monitor your symptoms."
	case LevelNormal:
		return "your condition is normal. Stay healthy!"
	default:
		return string(l)
	}
}

// CountYes returns the number of affirmative answers.
func CountYes(answers [SymptomCount]bool) int {
	n := 0
	for _, yes := range answers {
		if yes {
			n++
		}
	}
	return n
}

// FromCount returns the level for a number of affirmative answers.
// Each tier's lower bound is inclusive.
func FromCount(yes int) Level {
	switch {
	case yes >= 4:
		return LevelCritical
	case yes >= 2:
		return LevelModerate
	default:
		return LevelNormal
	}
}

// Evaluate classifies five symptom answers (true = yes). Only the number of
// affirmative answers matters, not their position.
func Evaluate(answers [SymptomCount]bool) Level {
	return FromCount(CountYes(answers))
}
