package store

import (
	"context"
	"time"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/severity"
)

// QueryOpts configures assessment queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	Level string    // only this severity level ("" = all)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// Assessment is a saved, completed evaluation.
type Assessment struct {
	ID         string
	Sequence   int64
	Timestamp  time.Time
	Name       string
	Symptoms   []string // "Yes"/"No" per symptom question, in order
	Medication string
	YesCount   int
	Level      severity.Level
}

// NewAssessment builds the record for an evaluated form.
func NewAssessment(f questionnaire.Form, r questionnaire.Result) *Assessment {
	a := &Assessment{
		Name:       r.Name,
		Symptoms:   make([]string, 0, len(f.Symptoms)),
		Medication: f.Medication.String(),
		YesCount:   r.YesCount,
		Level:      r.Level,
	}
	for _, ans := range f.Symptoms {
		a.Symptoms = append(a.Symptoms, ans.String())
	}
	return a
}

// AssessmentRepo persists completed assessments.
type AssessmentRepo interface {
	// Save assigns ID, Sequence and (if zero) Timestamp, then stores a.
	Save(ctx context.Context, a *Assessment) error

	// List returns assessments newest first.
	List(ctx context.Context, opts QueryOpts) ([]Assessment, error)

	// Count returns the number of assessments matching opts (Limit ignored).
	Count(ctx context.Context, opts QueryOpts) (int, error)

	// LevelCounts returns the number of assessments per level.
	LevelCounts(ctx context.Context) (map[severity.Level]int, error)

	// DeleteAll removes every assessment and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
