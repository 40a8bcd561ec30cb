package questionnaire

import (
	"strings"

	"github.com/abhisek/symptoquiz/internal/severity"
)

// FieldName is the identifier reported for a blank name.
const FieldName = "name"

// Form is the home-screen questionnaire: a name, five symptom answers and
// the medication answer. It is a plain value; screens copy it freely.
type Form struct {
	Name       string
	Symptoms   [severity.SymptomCount]Answer
	Medication Answer
}

// NameMissing reports whether the name is blank.
func (f Form) NameMissing() bool {
	return strings.TrimSpace(f.Name) == ""
}

// Validate returns an *IncompleteError naming every unanswered field, or nil.
func (f Form) Validate() error {
	var missing []string
	if f.NameMissing() {
		missing = append(missing, FieldName)
	}
	missing = append(missing, missingSymptoms(f.Symptoms)...)
	if !f.Medication.Answered() {
		missing = append(missing, Medication.ID)
	}
	if len(missing) > 0 {
		return &IncompleteError{Missing: missing}
	}
	return nil
}

// Evaluate validates the form and classifies the symptom answers.
// The medication answer is required but does not affect the level.
func (f Form) Evaluate() (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	flags := toFlags(f.Symptoms)
	return Result{
		Name:     strings.TrimSpace(f.Name),
		Level:    severity.Evaluate(flags),
		YesCount: severity.CountYes(flags),
	}, nil
}

// QuickCheck is the name-less variant with one yes/no choice per symptom.
type QuickCheck struct {
	Symptoms [severity.SymptomCount]Answer
}

// Validate returns an *IncompleteError when any symptom is unanswered.
func (q QuickCheck) Validate() error {
	if missing := missingSymptoms(q.Symptoms); len(missing) > 0 {
		return &IncompleteError{Missing: missing}
	}
	return nil
}

// Evaluate validates and classifies the answers.
func (q QuickCheck) Evaluate() (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}
	flags := toFlags(q.Symptoms)
	return Result{
		Level:    severity.Evaluate(flags),
		YesCount: severity.CountYes(flags),
	}, nil
}

func missingSymptoms(answers [severity.SymptomCount]Answer) []string {
	var missing []string
	questions := Symptoms()
	for i, a := range answers {
		if !a.Answered() {
			missing = append(missing, questions[i].ID)
		}
	}
	return missing
}

func toFlags(answers [severity.SymptomCount]Answer) [severity.SymptomCount]bool {
	var flags [severity.SymptomCount]bool
	for i, a := range answers {
		flags[i] = a == Yes
	}
	return flags
}
