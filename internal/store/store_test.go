package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/symptoquiz/internal/questionnaire"
	"github.com/abhisek/symptoquiz/internal/severity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='assessments'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "assessments" {
		t.Errorf("table name = %q, want 'assessments'", name)
	}
}

func TestSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		n, err := s.seq.next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); n != want {
			t.Errorf("seq[%d] = %d, want %d", i, n, want)
		}
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestReopenKeepsAssessments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AssessmentRepo().Save(ctx, sample("Misato", severity.LevelModerate, 2)))
	require.NoError(t, s.Close())

	// Auto-migration on an existing schema is a no-op.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	list, err := s.AssessmentRepo().List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Misato", list[0].Name)
}

func TestSequenceSeededFromExistingAssessments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	repo := s.AssessmentRepo()
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Save(ctx, sample("Ritsuko", severity.LevelNormal, 0)))
	}
	_, err = s.DB().Exec(`DROP TABLE assessment_sequence`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	a := sample("Ritsuko", severity.LevelNormal, 0)
	require.NoError(t, s.AssessmentRepo().Save(ctx, a))
	assert.Equal(t, int64(3), a.Sequence)
}

func TestSequenceSurvivesReopenAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	repo := s.AssessmentRepo()
	require.NoError(t, repo.Save(ctx, sample("Toji", severity.LevelNormal, 0)))
	require.NoError(t, repo.Save(ctx, sample("Toji", severity.LevelNormal, 0)))
	_, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	a := sample("Toji", severity.LevelNormal, 0)
	require.NoError(t, s.AssessmentRepo().Save(ctx, a))
	assert.Equal(t, int64(3), a.Sequence)
}

func sample(name string, level severity.Level, yes int) *Assessment {
	return &Assessment{
		Name:       name,
		Symptoms:   []string{"Yes", "No", "No", "No", "No"},
		Medication: "No",
		YesCount:   yes,
		Level:      level,
	}
}

func TestAssessmentSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := sample("Shinji", severity.LevelNormal, 1)
	require.NoError(t, repo.Save(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, int64(1), a.Sequence)
	assert.False(t, a.Timestamp.IsZero())

	list, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Shinji", got.Name)
	assert.Equal(t, []string{"Yes", "No", "No", "No", "No"}, got.Symptoms)
	assert.Equal(t, "No", got.Medication)
	assert.Equal(t, 1, got.YesCount)
	assert.Equal(t, severity.LevelNormal, got.Level)
	assert.True(t, a.Timestamp.Equal(got.Timestamp))
}

func TestAssessmentListNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	// Same timestamp for all: the sequence must still order them.
	ts := time.Now().UTC()
	for _, name := range []string{"a", "b", "c"} {
		a := sample(name, severity.LevelModerate, 2)
		a.Timestamp = ts
		require.NoError(t, repo.Save(ctx, a))
	}

	list, err := repo.List(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "b", list[1].Name)
}

func TestAssessmentFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	levels := []severity.Level{severity.LevelNormal, severity.LevelCritical, severity.LevelCritical}
	for i, lvl := range levels {
		a := sample("x", lvl, 4)
		a.Timestamp = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Save(ctx, a))
	}

	n, err := repo.Count(ctx, QueryOpts{Level: string(severity.LevelCritical)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.Count(ctx, QueryOpts{From: base.Add(30 * time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := repo.List(ctx, QueryOpts{To: base})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, severity.LevelNormal, list[0].Level)

	counts, err := repo.LevelCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[severity.LevelNormal])
	assert.Equal(t, 2, counts[severity.LevelCritical])
	assert.Equal(t, 0, counts[severity.LevelModerate])
}

func TestAssessmentSaveRejectsInvalidLevel(t *testing.T) {
	s := openTestStore(t)
	err := s.AssessmentRepo().Save(context.Background(), sample("x", severity.Level("bogus"), 0))
	assert.Error(t, err)
}

func TestAssessmentDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, sample("x", severity.LevelNormal, 0)))
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	count, err := repo.Count(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "q.db")
	t.Setenv("SYMPTOQUIZ_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SYMPTOQUIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "symptoquiz", "symptoquiz.db"), got)
}

func TestNewAssessmentFromForm(t *testing.T) {
	f := questionnaire.Form{
		Name: "  Asuka ",
		Symptoms: [severity.SymptomCount]questionnaire.Answer{
			questionnaire.Yes, questionnaire.Yes, questionnaire.No, questionnaire.Yes, questionnaire.Yes,
		},
		Medication: questionnaire.Yes,
	}
	r, err := f.Evaluate()
	require.NoError(t, err)

	a := NewAssessment(f, r)
	assert.Equal(t, "Asuka", a.Name)
	assert.Equal(t, []string{"Yes", "Yes", "No", "Yes", "Yes"}, a.Symptoms)
	assert.Equal(t, "Yes", a.Medication)
	assert.Equal(t, 4, a.YesCount)
	assert.Equal(t, severity.LevelCritical, a.Level)
	assert.Empty(t, a.ID)

	repo := openTestStore(t).AssessmentRepo()
	require.NoError(t, repo.Save(context.Background(), a))
	n, err := repo.Count(context.Background(), QueryOpts{Level: string(severity.LevelCritical)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
