// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/abhisek/symptoquiz/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AssessmentUpdate) SetName(v string) *AssessmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableName(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AssessmentUpdate) SetSymptoms(v []string) *AssessmentUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *AssessmentUpdate) AppendSymptoms(v []string) *AssessmentUpdate {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// SetMedication sets the "medication" field.
func (_u *AssessmentUpdate) SetMedication(v string) *AssessmentUpdate {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableMedication(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetYesCount sets the "yes_count" field.
func (_u *AssessmentUpdate) SetYesCount(v int) *AssessmentUpdate {
	_u.mutation.ResetYesCount()
	_u.mutation.SetYesCount(v)
	return _u
}

// SetNillableYesCount sets the "yes_count" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableYesCount(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetYesCount(*v)
	}
	return _u
}

// AddYesCount adds value to the "yes_count" field.
func (_u *AssessmentUpdate) AddYesCount(v int) *AssessmentUpdate {
	_u.mutation.AddYesCount(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentUpdate) SetLevel(v assessment.Level) *AssessmentUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableLevel(v *assessment.Level) *AssessmentUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.YesCount(); ok {
		if err := assessment.YesCountValidator(v); err != nil {
			return &ValidationError{Name: "yes_count", err: fmt.Errorf(`ent: validator failed for field "Assessment.yes_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assessment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(assessment.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldSymptoms, value)
		})
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(assessment.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.YesCount(); ok {
		_spec.SetField(assessment.FieldYesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYesCount(); ok {
		_spec.AddField(assessment.FieldYesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetName sets the "name" field.
func (_u *AssessmentUpdateOne) SetName(v string) *AssessmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableName(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AssessmentUpdateOne) SetSymptoms(v []string) *AssessmentUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *AssessmentUpdateOne) AppendSymptoms(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// SetMedication sets the "medication" field.
func (_u *AssessmentUpdateOne) SetMedication(v string) *AssessmentUpdateOne {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableMedication(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetYesCount sets the "yes_count" field.
func (_u *AssessmentUpdateOne) SetYesCount(v int) *AssessmentUpdateOne {
	_u.mutation.ResetYesCount()
	_u.mutation.SetYesCount(v)
	return _u
}

// SetNillableYesCount sets the "yes_count" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableYesCount(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetYesCount(*v)
	}
	return _u
}

// AddYesCount adds value to the "yes_count" field.
func (_u *AssessmentUpdateOne) AddYesCount(v int) *AssessmentUpdateOne {
	_u.mutation.AddYesCount(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentUpdateOne) SetLevel(v assessment.Level) *AssessmentUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableLevel(v *assessment.Level) *AssessmentUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.YesCount(); ok {
		if err := assessment.YesCountValidator(v); err != nil {
			return &ValidationError{Name: "yes_count", err: fmt.Errorf(`ent: validator failed for field "Assessment.yes_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assessment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(assessment.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldSymptoms, value)
		})
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(assessment.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.YesCount(); ok {
		_spec.SetField(assessment.FieldYesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYesCount(); ok {
		_spec.AddField(assessment.FieldYesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeEnum, value)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
