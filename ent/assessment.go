// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/google/uuid"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Trimmed name entered on the form
	Name string `json:"name,omitempty"`
	// Yes/No per symptom question, in question order
	Symptoms []string `json:"symptoms,omitempty"`
	// Yes/No answer to the medication question
	Medication string `json:"medication,omitempty"`
	// Number of symptoms answered Yes
	YesCount int `json:"yes_count,omitempty"`
	// Severity derived from yes_count
	Level        assessment.Level `json:"level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldSymptoms:
			values[i] = new([]byte)
		case assessment.FieldSequence, assessment.FieldYesCount:
			values[i] = new(sql.NullInt64)
		case assessment.FieldName, assessment.FieldMedication, assessment.FieldLevel:
			values[i] = new(sql.NullString)
		case assessment.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case assessment.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (_m *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assessment.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessment.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessment.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case assessment.FieldSymptoms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Symptoms); err != nil {
					return fmt.Errorf("unmarshal field symptoms: %w", err)
				}
			}
		case assessment.FieldMedication:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication", values[i])
			} else if value.Valid {
				_m.Medication = value.String
			}
		case assessment.FieldYesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field yes_count", values[i])
			} else if value.Valid {
				_m.YesCount = int(value.Int64)
			}
		case assessment.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = assessment.Level(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (_m *Assessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assessment) Unwrap() *Assessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("symptoms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Symptoms))
	builder.WriteString(", ")
	builder.WriteString("medication=")
	builder.WriteString(_m.Medication)
	builder.WriteString(", ")
	builder.WriteString("yes_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.YesCount))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
