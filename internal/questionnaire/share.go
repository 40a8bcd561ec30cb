package questionnaire

import (
	"fmt"
	"strings"
)

// ShareMessage renders the plain-text summary handed to the share action.
func ShareMessage(f Form, r Result) string {
	answers := make([]string, 0, len(f.Symptoms))
	for _, a := range f.Symptoms {
		answers = append(answers, a.String())
	}

	medication := f.Medication.String()
	if medication == "" {
		medication = "-"
	}

	return fmt.Sprintf("Name: %s\nSymptom answers: %s\nTaking medication: %s\nResult: %s (%s)",
		strings.TrimSpace(f.Name),
		strings.Join(answers, ", "),
		medication,
		r.Level.DisplayName(),
		r.Headline(),
	)
}
