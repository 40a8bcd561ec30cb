// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/abhisek/symptoquiz/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentMixin := schema.Assessment{}.Mixin()
	assessmentMixinFields0 := assessmentMixin[0].Fields()
	_ = assessmentMixinFields0
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescTimestamp is the schema descriptor for timestamp field.
	assessmentDescTimestamp := assessmentMixinFields0[1].Descriptor()
	// assessment.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessment.DefaultTimestamp = assessmentDescTimestamp.Default.(func() time.Time)
	// assessmentDescYesCount is the schema descriptor for yes_count field.
	assessmentDescYesCount := assessmentFields[4].Descriptor()
	// assessment.YesCountValidator is a validator for the "yes_count" field. It is called by the builders before save.
	assessment.YesCountValidator = assessmentDescYesCount.Validators[0].(func(int) error)
	// assessmentDescID is the schema descriptor for id field.
	assessmentDescID := assessmentFields[0].Descriptor()
	// assessment.DefaultID holds the default value on creation for the id field.
	assessment.DefaultID = assessmentDescID.Default.(func() uuid.UUID)
}
