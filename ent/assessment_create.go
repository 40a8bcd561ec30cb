// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/google/uuid"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentCreate) SetSequence(v int64) *AssessmentCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentCreate) SetTimestamp(v time.Time) *AssessmentCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableTimestamp(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *AssessmentCreate) SetName(v string) *AssessmentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *AssessmentCreate) SetSymptoms(v []string) *AssessmentCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetMedication sets the "medication" field.
func (_c *AssessmentCreate) SetMedication(v string) *AssessmentCreate {
	_c.mutation.SetMedication(v)
	return _c
}

// SetYesCount sets the "yes_count" field.
func (_c *AssessmentCreate) SetYesCount(v int) *AssessmentCreate {
	_c.mutation.SetYesCount(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AssessmentCreate) SetLevel(v assessment.Level) *AssessmentCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentCreate) SetID(v uuid.UUID) *AssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableID(v *uuid.UUID) *AssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessment.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Assessment.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Assessment.timestamp"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Assessment.name"`)}
	}
	if _, ok := _c.mutation.Symptoms(); !ok {
		return &ValidationError{Name: "symptoms", err: errors.New(`ent: missing required field "Assessment.symptoms"`)}
	}
	if _, ok := _c.mutation.Medication(); !ok {
		return &ValidationError{Name: "medication", err: errors.New(`ent: missing required field "Assessment.medication"`)}
	}
	if _, ok := _c.mutation.YesCount(); !ok {
		return &ValidationError{Name: "yes_count", err: errors.New(`ent: missing required field "Assessment.yes_count"`)}
	}
	if v, ok := _c.mutation.YesCount(); ok {
		if err := assessment.YesCountValidator(v); err != nil {
			return &ValidationError{Name: "yes_count", err: fmt.Errorf(`ent: validator failed for field "Assessment.yes_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Assessment.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessment.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessment.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(assessment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(assessment.FieldSymptoms, field.TypeJSON, value)
		_node.Symptoms = value
	}
	if value, ok := _c.mutation.Medication(); ok {
		_spec.SetField(assessment.FieldMedication, field.TypeString, value)
		_node.Medication = value
	}
	if value, ok := _c.mutation.YesCount(); ok {
		_spec.SetField(assessment.FieldYesCount, field.TypeInt, value)
		_node.YesCount = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
