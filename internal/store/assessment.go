package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/symptoquiz/ent"
	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/abhisek/symptoquiz/ent/predicate"
	"github.com/abhisek/symptoquiz/internal/severity"
)

// assessmentRepo implements AssessmentRepo using the ent client and the
// sequence counter.
type assessmentRepo struct {
	client *ent.Client
	seq    *sequence
}

func (r *assessmentRepo) Save(ctx context.Context, a *Assessment) error {
	if !a.Level.Valid() {
		return fmt.Errorf("save assessment: invalid level %q", a.Level)
	}

	seqNum, err := r.seq.next(ctx)
	if err != nil {
		return err
	}

	id := uuid.New()
	if a.ID != "" {
		if id, err = uuid.Parse(a.ID); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	a.Timestamp = a.Timestamp.UTC()

	_, err = r.client.Assessment.Create().
		SetID(id).
		SetSequence(seqNum).
		SetTimestamp(a.Timestamp).
		SetName(a.Name).
		SetSymptoms(a.Symptoms).
		SetMedication(a.Medication).
		SetYesCount(a.YesCount).
		SetLevel(assessment.Level(a.Level)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}

	a.ID = id.String()
	a.Sequence = seqNum
	return nil
}

func (r *assessmentRepo) List(ctx context.Context, opts QueryOpts) ([]Assessment, error) {
	query := r.client.Assessment.Query().
		Where(opts.predicates()...).
		Order(ent.Desc(assessment.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]Assessment, 0, len(rows))
	for _, e := range rows {
		out = append(out, entAssessmentToAssessment(e))
	}
	return out, nil
}

func (r *assessmentRepo) Count(ctx context.Context, opts QueryOpts) (int, error) {
	n, err := r.client.Assessment.Query().
		Where(opts.predicates()...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

func (r *assessmentRepo) LevelCounts(ctx context.Context) (map[severity.Level]int, error) {
	var rows []struct {
		Level string `json:"level"`
		Count int    `json:"count"`
	}
	err := r.client.Assessment.Query().
		GroupBy(assessment.FieldLevel).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query level counts: %w", err)
	}

	counts := make(map[severity.Level]int, len(rows))
	for _, row := range rows {
		counts[severity.Level(row.Level)] = row.Count
	}
	return counts, nil
}

func (r *assessmentRepo) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.client.Assessment.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete assessments: %w", err)
	}
	return int64(n), nil
}

// predicates builds the filters shared by List and Count.
func (o QueryOpts) predicates() []predicate.Assessment {
	var ps []predicate.Assessment
	if o.Level != "" {
		ps = append(ps, assessment.LevelEQ(assessment.Level(o.Level)))
	}
	if !o.From.IsZero() {
		ps = append(ps, assessment.TimestampGTE(o.From.UTC()))
	}
	if !o.To.IsZero() {
		ps = append(ps, assessment.TimestampLTE(o.To.UTC()))
	}
	return ps
}

// entAssessmentToAssessment converts an ent Assessment to a store Assessment.
func entAssessmentToAssessment(e *ent.Assessment) Assessment {
	return Assessment{
		ID:         e.ID.String(),
		Sequence:   e.Sequence,
		Timestamp:  e.Timestamp.UTC(),
		Name:       e.Name,
		Symptoms:   e.Symptoms,
		Medication: e.Medication,
		YesCount:   e.YesCount,
		Level:      severity.Level(e.Level),
	}
}
