package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence hands out the ordering number stored with each assessment.
// Two saves in the same clock tick share a timestamp; the sequence still
// orders them. It keeps counting after DeleteAll.
//
// It lives in raw SQL next to the ent tables: ent has no atomic counter.
// The mutex serializes within the process and RETURNING makes the
// increment atomic in the database.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequence creates the counter table on first use. A database that
// already holds assessments starts counting after the highest one.
func newSequence(db *sql.DB) (*sequence, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS assessment_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO assessment_sequence (id, next_val)
		SELECT 1, COALESCE(MAX(sequence), 0) + 1 FROM assessments`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequence{db: db}, nil
}

// next returns the current value and advances the counter in one statement.
func (s *sequence) next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE assessment_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
