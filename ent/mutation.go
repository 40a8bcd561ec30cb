// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/symptoquiz/ent/assessment"
	"github.com/abhisek/symptoquiz/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessment = "Assessment"
)

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	name           *string
	symptoms       *[]string
	appendsymptoms []string
	medication     *string
	yes_count      *int
	addyes_count   *int
	level          *assessment.Level
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Assessment, error)
	predicates     []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id uuid.UUID) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assessment entities.
func (m *AssessmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssessmentMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssessmentMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetName sets the "name" field.
func (m *AssessmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AssessmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AssessmentMutation) ResetName() {
	m.name = nil
}

// SetSymptoms sets the "symptoms" field.
func (m *AssessmentMutation) SetSymptoms(s []string) {
	m.symptoms = &s
	m.appendsymptoms = nil
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *AssessmentMutation) Symptoms() (r []string, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSymptoms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// AppendSymptoms adds s to the "symptoms" field.
func (m *AssessmentMutation) AppendSymptoms(s []string) {
	m.appendsymptoms = append(m.appendsymptoms, s...)
}

// AppendedSymptoms returns the list of values that were appended to the "symptoms" field in this mutation.
func (m *AssessmentMutation) AppendedSymptoms() ([]string, bool) {
	if len(m.appendsymptoms) == 0 {
		return nil, false
	}
	return m.appendsymptoms, true
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *AssessmentMutation) ResetSymptoms() {
	m.symptoms = nil
	m.appendsymptoms = nil
}

// SetMedication sets the "medication" field.
func (m *AssessmentMutation) SetMedication(s string) {
	m.medication = &s
}

// Medication returns the value of the "medication" field in the mutation.
func (m *AssessmentMutation) Medication() (r string, exists bool) {
	v := m.medication
	if v == nil {
		return
	}
	return *v, true
}

// OldMedication returns the old "medication" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldMedication(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedication: %w", err)
	}
	return oldValue.Medication, nil
}

// ResetMedication resets all changes to the "medication" field.
func (m *AssessmentMutation) ResetMedication() {
	m.medication = nil
}

// SetYesCount sets the "yes_count" field.
func (m *AssessmentMutation) SetYesCount(i int) {
	m.yes_count = &i
	m.addyes_count = nil
}

// YesCount returns the value of the "yes_count" field in the mutation.
func (m *AssessmentMutation) YesCount() (r int, exists bool) {
	v := m.yes_count
	if v == nil {
		return
	}
	return *v, true
}

// OldYesCount returns the old "yes_count" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldYesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYesCount: %w", err)
	}
	return oldValue.YesCount, nil
}

// AddYesCount adds i to the "yes_count" field.
func (m *AssessmentMutation) AddYesCount(i int) {
	if m.addyes_count != nil {
		*m.addyes_count += i
	} else {
		m.addyes_count = &i
	}
}

// AddedYesCount returns the value that was added to the "yes_count" field in this mutation.
func (m *AssessmentMutation) AddedYesCount() (r int, exists bool) {
	v := m.addyes_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetYesCount resets all changes to the "yes_count" field.
func (m *AssessmentMutation) ResetYesCount() {
	m.yes_count = nil
	m.addyes_count = nil
}

// SetLevel sets the "level" field.
func (m *AssessmentMutation) SetLevel(a assessment.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *AssessmentMutation) Level() (r assessment.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldLevel(ctx context.Context) (v assessment.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AssessmentMutation) ResetLevel() {
	m.level = nil
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, assessment.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessment.FieldTimestamp)
	}
	if m.name != nil {
		fields = append(fields, assessment.FieldName)
	}
	if m.symptoms != nil {
		fields = append(fields, assessment.FieldSymptoms)
	}
	if m.medication != nil {
		fields = append(fields, assessment.FieldMedication)
	}
	if m.yes_count != nil {
		fields = append(fields, assessment.FieldYesCount)
	}
	if m.level != nil {
		fields = append(fields, assessment.FieldLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldSequence:
		return m.Sequence()
	case assessment.FieldTimestamp:
		return m.Timestamp()
	case assessment.FieldName:
		return m.Name()
	case assessment.FieldSymptoms:
		return m.Symptoms()
	case assessment.FieldMedication:
		return m.Medication()
	case assessment.FieldYesCount:
		return m.YesCount()
	case assessment.FieldLevel:
		return m.Level()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldSequence:
		return m.OldSequence(ctx)
	case assessment.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessment.FieldName:
		return m.OldName(ctx)
	case assessment.FieldSymptoms:
		return m.OldSymptoms(ctx)
	case assessment.FieldMedication:
		return m.OldMedication(ctx)
	case assessment.FieldYesCount:
		return m.OldYesCount(ctx)
	case assessment.FieldLevel:
		return m.OldLevel(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessment.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case assessment.FieldSymptoms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	case assessment.FieldMedication:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedication(v)
		return nil
	case assessment.FieldYesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYesCount(v)
		return nil
	case assessment.FieldLevel:
		v, ok := value.(assessment.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessment.FieldSequence)
	}
	if m.addyes_count != nil {
		fields = append(fields, assessment.FieldYesCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldSequence:
		return m.AddedSequence()
	case assessment.FieldYesCount:
		return m.AddedYesCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessment.FieldYesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYesCount(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldSequence:
		m.ResetSequence()
		return nil
	case assessment.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessment.FieldName:
		m.ResetName()
		return nil
	case assessment.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	case assessment.FieldMedication:
		m.ResetMedication()
		return nil
	case assessment.FieldYesCount:
		m.ResetYesCount()
		return nil
	case assessment.FieldLevel:
		m.ResetLevel()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Assessment edge %s", name)
}
