package questionnaire

import (
	"errors"
	"strings"
)

// ErrIncomplete is matched (errors.Is) by every IncompleteError.
var ErrIncomplete = errors.New("incomplete questionnaire")

// IncompleteError lists the fields that still need an answer.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	if len(e.Missing) == 0 {
		return ErrIncomplete.Error()
	}
	return ErrIncomplete.Error() + ": missing " + strings.Join(e.Missing, ", ")
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }
