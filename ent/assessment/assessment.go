// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// FieldMedication holds the string denoting the medication field in the database.
	FieldMedication = "medication"
	// FieldYesCount holds the string denoting the yes_count field in the database.
	FieldYesCount = "yes_count"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldName,
	FieldSymptoms,
	FieldMedication,
	FieldYesCount,
	FieldLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// YesCountValidator is a validator for the "yes_count" field. It is called by the builders before save.
	YesCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelNormal   Level = "normal"
	LevelModerate Level = "moderate"
	LevelCritical Level = "critical"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelNormal, LevelModerate, LevelCritical:
		return nil
	default:
		return fmt.Errorf("assessment: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMedication orders the results by the medication field.
func ByMedication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedication, opts...).ToFunc()
}

// ByYesCount orders the results by the yes_count field.
func ByYesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYesCount, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}
