// Package questionnaire holds the answer state collected by the screens and
// validates it before handing it to the severity evaluator.
package questionnaire

import (
	"fmt"
	"strings"

	"github.com/abhisek/symptoquiz/internal/severity"
)

// Answer is a tri-state yes/no answer.
type Answer int

const (
	Unanswered Answer = iota
	Yes
	No
)

// Options returns the selectable answers in display order.
func Options() []Answer {
	return []Answer{Yes, No}
}

// String returns the display label, or "" when unanswered.
func (a Answer) String() string {
	switch a {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return ""
	}
}

// Answered reports whether a yes or no has been chosen.
func (a Answer) Answered() bool {
	return a == Yes || a == No
}

// ParseAnswer converts user text into an Answer.
// Accepted (case-insensitive): yes, y, true, 1, no, n, false, 0.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return Yes, nil
	case "no", "n", "false", "0":
		return No, nil
	}
	return Unanswered, fmt.Errorf("invalid answer %q: want yes or no", s)
}

// Question is a fixed-identity yes/no question.
type Question struct {
	ID     string
	Prompt string
}

// Symptoms returns the scored symptom questions in order.
func Symptoms() [severity.SymptomCount]Question {
	return [severity.SymptomCount]Question{
		{ID: "breathing", Prompt: "Do you have difficulty breathing?"},
		{ID: "dizzy", Prompt: "Do you feel dizzy?"},
		{ID: "fever", Prompt: "Do you have a fever?"},
		{ID: "cough", Prompt: "Do you have a cough?"},
		{ID: "chest_pain", Prompt: "Do you have chest pain?"},
	}
}

// Medication is the unscored medication question.
var Medication = Question{
	ID:     "medication",
	Prompt: "Are you currently taking any medication?",
}

// Result is the outcome of evaluating a complete questionnaire.
type Result struct {
	Name     string
	Level    severity.Level
	YesCount int
}

// Headline renders the result line shown under the form.
// A zero Result renders as an empty line.
func (r Result) Headline() string {
	msg := r.Level.Message()
	switch {
	case msg == "":
		return r.Name
	case r.Name == "":
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	return r.Name + ", " + msg
}
