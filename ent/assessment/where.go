// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/symptoquiz/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTimestamp, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldName, v))
}

// Medication applies equality check predicate on the "medication" field. It's identical to MedicationEQ.
func Medication(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldMedication, v))
}

// YesCount applies equality check predicate on the "yes_count" field. It's identical to YesCountEQ.
func YesCount(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldYesCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTimestamp, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldName, v))
}

// MedicationEQ applies the EQ predicate on the "medication" field.
func MedicationEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldMedication, v))
}

// MedicationNEQ applies the NEQ predicate on the "medication" field.
func MedicationNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldMedication, v))
}

// MedicationIn applies the In predicate on the "medication" field.
func MedicationIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldMedication, vs...))
}

// MedicationNotIn applies the NotIn predicate on the "medication" field.
func MedicationNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldMedication, vs...))
}

// MedicationGT applies the GT predicate on the "medication" field.
func MedicationGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldMedication, v))
}

// MedicationGTE applies the GTE predicate on the "medication" field.
func MedicationGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldMedication, v))
}

// MedicationLT applies the LT predicate on the "medication" field.
func MedicationLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldMedication, v))
}

// MedicationLTE applies the LTE predicate on the "medication" field.
func MedicationLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldMedication, v))
}

// MedicationContains applies the Contains predicate on the "medication" field.
func MedicationContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldMedication, v))
}

// MedicationHasPrefix applies the HasPrefix predicate on the "medication" field.
func MedicationHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldMedication, v))
}

// MedicationHasSuffix applies the HasSuffix predicate on the "medication" field.
func MedicationHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldMedication, v))
}

// MedicationEqualFold applies the EqualFold predicate on the "medication" field.
func MedicationEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldMedication, v))
}

// MedicationContainsFold applies the ContainsFold predicate on the "medication" field.
func MedicationContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldMedication, v))
}

// YesCountEQ applies the EQ predicate on the "yes_count" field.
func YesCountEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldYesCount, v))
}

// YesCountNEQ applies the NEQ predicate on the "yes_count" field.
func YesCountNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldYesCount, v))
}

// YesCountIn applies the In predicate on the "yes_count" field.
func YesCountIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldYesCount, vs...))
}

// YesCountNotIn applies the NotIn predicate on the "yes_count" field.
func YesCountNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldYesCount, vs...))
}

// YesCountGT applies the GT predicate on the "yes_count" field.
func YesCountGT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldYesCount, v))
}

// YesCountGTE applies the GTE predicate on the "yes_count" field.
func YesCountGTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldYesCount, v))
}

// YesCountLT applies the LT predicate on the "yes_count" field.
func YesCountLT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldYesCount, v))
}

// YesCountLTE applies the LTE predicate on the "yes_count" field.
func YesCountLTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldYesCount, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldLevel, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
