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
	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
	"github.com/quillhq/quill/ent/predicate"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConnectorRecord     = "ConnectorRecord"
	TypeJob                 = "Job"
	TypeJobEvent            = "JobEvent"
	TypeSemanticModelRecord = "SemanticModelRecord"
)

// ConnectorRecordMutation represents an operation that mutates the ConnectorRecord nodes in the graph.
type ConnectorRecordMutation struct {
	config
	op              Op
	typ             string
	id              *string
	organisation_id *string
	name            *string
	dialect         *string
	dsn_secret      *string
	options         *map[string]string
	enabled         *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ConnectorRecord, error)
	predicates      []predicate.ConnectorRecord
}

var _ ent.Mutation = (*ConnectorRecordMutation)(nil)

// connectorrecordOption allows management of the mutation configuration using functional options.
type connectorrecordOption func(*ConnectorRecordMutation)

// newConnectorRecordMutation creates new mutation for the ConnectorRecord entity.
func newConnectorRecordMutation(c config, op Op, opts ...connectorrecordOption) *ConnectorRecordMutation {
	m := &ConnectorRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorRecordID sets the ID field of the mutation.
func withConnectorRecordID(id string) connectorrecordOption {
	return func(m *ConnectorRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorRecord
		)
		m.oldValue = func(ctx context.Context) (*ConnectorRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorRecord sets the old ConnectorRecord of the mutation.
func withConnectorRecord(node *ConnectorRecord) connectorrecordOption {
	return func(m *ConnectorRecordMutation) {
		m.oldValue = func(context.Context) (*ConnectorRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectorRecord entities.
func (m *ConnectorRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganisationID sets the "organisation_id" field.
func (m *ConnectorRecordMutation) SetOrganisationID(s string) {
	m.organisation_id = &s
}

// OrganisationID returns the value of the "organisation_id" field in the mutation.
func (m *ConnectorRecordMutation) OrganisationID() (r string, exists bool) {
	v := m.organisation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganisationID returns the old "organisation_id" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldOrganisationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganisationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganisationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganisationID: %w", err)
	}
	return oldValue.OrganisationID, nil
}

// ResetOrganisationID resets all changes to the "organisation_id" field.
func (m *ConnectorRecordMutation) ResetOrganisationID() {
	m.organisation_id = nil
}

// SetName sets the "name" field.
func (m *ConnectorRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConnectorRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ConnectorRecordMutation) ResetName() {
	m.name = nil
}

// SetDialect sets the "dialect" field.
func (m *ConnectorRecordMutation) SetDialect(s string) {
	m.dialect = &s
}

// Dialect returns the value of the "dialect" field in the mutation.
func (m *ConnectorRecordMutation) Dialect() (r string, exists bool) {
	v := m.dialect
	if v == nil {
		return
	}
	return *v, true
}

// OldDialect returns the old "dialect" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldDialect(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDialect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDialect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDialect: %w", err)
	}
	return oldValue.Dialect, nil
}

// ResetDialect resets all changes to the "dialect" field.
func (m *ConnectorRecordMutation) ResetDialect() {
	m.dialect = nil
}

// SetDsnSecret sets the "dsn_secret" field.
func (m *ConnectorRecordMutation) SetDsnSecret(s string) {
	m.dsn_secret = &s
}

// DsnSecret returns the value of the "dsn_secret" field in the mutation.
func (m *ConnectorRecordMutation) DsnSecret() (r string, exists bool) {
	v := m.dsn_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldDsnSecret returns the old "dsn_secret" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldDsnSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDsnSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDsnSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDsnSecret: %w", err)
	}
	return oldValue.DsnSecret, nil
}

// ResetDsnSecret resets all changes to the "dsn_secret" field.
func (m *ConnectorRecordMutation) ResetDsnSecret() {
	m.dsn_secret = nil
}

// SetOptions sets the "options" field.
func (m *ConnectorRecordMutation) SetOptions(value map[string]string) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *ConnectorRecordMutation) Options() (r map[string]string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldOptions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *ConnectorRecordMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[connectorrecord.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *ConnectorRecordMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[connectorrecord.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *ConnectorRecordMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, connectorrecord.FieldOptions)
}

// SetEnabled sets the "enabled" field.
func (m *ConnectorRecordMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ConnectorRecordMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ConnectorRecordMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectorRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectorRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConnectorRecord entity.
// If the ConnectorRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectorRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ConnectorRecordMutation builder.
func (m *ConnectorRecordMutation) Where(ps ...predicate.ConnectorRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorRecord).
func (m *ConnectorRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.organisation_id != nil {
		fields = append(fields, connectorrecord.FieldOrganisationID)
	}
	if m.name != nil {
		fields = append(fields, connectorrecord.FieldName)
	}
	if m.dialect != nil {
		fields = append(fields, connectorrecord.FieldDialect)
	}
	if m.dsn_secret != nil {
		fields = append(fields, connectorrecord.FieldDsnSecret)
	}
	if m.options != nil {
		fields = append(fields, connectorrecord.FieldOptions)
	}
	if m.enabled != nil {
		fields = append(fields, connectorrecord.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, connectorrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorrecord.FieldOrganisationID:
		return m.OrganisationID()
	case connectorrecord.FieldName:
		return m.Name()
	case connectorrecord.FieldDialect:
		return m.Dialect()
	case connectorrecord.FieldDsnSecret:
		return m.DsnSecret()
	case connectorrecord.FieldOptions:
		return m.Options()
	case connectorrecord.FieldEnabled:
		return m.Enabled()
	case connectorrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorrecord.FieldOrganisationID:
		return m.OldOrganisationID(ctx)
	case connectorrecord.FieldName:
		return m.OldName(ctx)
	case connectorrecord.FieldDialect:
		return m.OldDialect(ctx)
	case connectorrecord.FieldDsnSecret:
		return m.OldDsnSecret(ctx)
	case connectorrecord.FieldOptions:
		return m.OldOptions(ctx)
	case connectorrecord.FieldEnabled:
		return m.OldEnabled(ctx)
	case connectorrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorrecord.FieldOrganisationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganisationID(v)
		return nil
	case connectorrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case connectorrecord.FieldDialect:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDialect(v)
		return nil
	case connectorrecord.FieldDsnSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDsnSecret(v)
		return nil
	case connectorrecord.FieldOptions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case connectorrecord.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case connectorrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConnectorRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorrecord.FieldOptions) {
		fields = append(fields, connectorrecord.FieldOptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorRecordMutation) ClearField(name string) error {
	switch name {
	case connectorrecord.FieldOptions:
		m.ClearOptions()
		return nil
	}
	return fmt.Errorf("unknown ConnectorRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorRecordMutation) ResetField(name string) error {
	switch name {
	case connectorrecord.FieldOrganisationID:
		m.ResetOrganisationID()
		return nil
	case connectorrecord.FieldName:
		m.ResetName()
		return nil
	case connectorrecord.FieldDialect:
		m.ResetDialect()
		return nil
	case connectorrecord.FieldDsnSecret:
		m.ResetDsnSecret()
		return nil
	case connectorrecord.FieldOptions:
		m.ResetOptions()
		return nil
	case connectorrecord.FieldEnabled:
		m.ResetEnabled()
		return nil
	case connectorrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorRecord edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	organisation_id *string
	job_type        *string
	payload         *map[string]interface{}
	headers         *map[string]string
	status          *job.Status
	priority        *int
	addpriority     *int
	attempt         *int
	addattempt      *int
	max_attempts    *int
	addmax_attempts *int
	lock_owner      *string
	locked_until    *time.Time
	progress        *int
	addprogress     *int
	status_message  *string
	result          *map[string]interface{}
	error_message   *string
	scheduled_for   *time.Time
	created_at      *time.Time
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	events          map[int]struct{}
	removedevents   map[int]struct{}
	clearedevents   bool
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganisationID sets the "organisation_id" field.
func (m *JobMutation) SetOrganisationID(s string) {
	m.organisation_id = &s
}

// OrganisationID returns the value of the "organisation_id" field in the mutation.
func (m *JobMutation) OrganisationID() (r string, exists bool) {
	v := m.organisation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganisationID returns the old "organisation_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOrganisationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganisationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganisationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganisationID: %w", err)
	}
	return oldValue.OrganisationID, nil
}

// ResetOrganisationID resets all changes to the "organisation_id" field.
func (m *JobMutation) ResetOrganisationID() {
	m.organisation_id = nil
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetHeaders sets the "headers" field.
func (m *JobMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *JobMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *JobMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[job.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *JobMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[job.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *JobMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, job.FieldHeaders)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempt sets the "attempt" field.
func (m *JobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *JobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *JobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *JobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *JobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetLockOwner sets the "lock_owner" field.
func (m *JobMutation) SetLockOwner(s string) {
	m.lock_owner = &s
}

// LockOwner returns the value of the "lock_owner" field in the mutation.
func (m *JobMutation) LockOwner() (r string, exists bool) {
	v := m.lock_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLockOwner returns the old "lock_owner" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockOwner: %w", err)
	}
	return oldValue.LockOwner, nil
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (m *JobMutation) ClearLockOwner() {
	m.lock_owner = nil
	m.clearedFields[job.FieldLockOwner] = struct{}{}
}

// LockOwnerCleared returns if the "lock_owner" field was cleared in this mutation.
func (m *JobMutation) LockOwnerCleared() bool {
	_, ok := m.clearedFields[job.FieldLockOwner]
	return ok
}

// ResetLockOwner resets all changes to the "lock_owner" field.
func (m *JobMutation) ResetLockOwner() {
	m.lock_owner = nil
	delete(m.clearedFields, job.FieldLockOwner)
}

// SetLockedUntil sets the "locked_until" field.
func (m *JobMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *JobMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *JobMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[job.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *JobMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[job.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *JobMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, job.FieldLockedUntil)
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *JobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *JobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetStatusMessage sets the "status_message" field.
func (m *JobMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *JobMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatusMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *JobMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[job.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *JobMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *JobMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, job.FieldStatusMessage)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *JobMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *JobMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldScheduledFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (m *JobMutation) ClearScheduledFor() {
	m.scheduled_for = nil
	m.clearedFields[job.FieldScheduledFor] = struct{}{}
}

// ScheduledForCleared returns if the "scheduled_for" field was cleared in this mutation.
func (m *JobMutation) ScheduledForCleared() bool {
	_, ok := m.clearedFields[job.FieldScheduledFor]
	return ok
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *JobMutation) ResetScheduledFor() {
	m.scheduled_for = nil
	delete(m.clearedFields, job.FieldScheduledFor)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// AddEventIDs adds the "events" edge to the JobEvent entity by ids.
func (m *JobMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the JobEvent entity.
func (m *JobMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the JobEvent entity was cleared.
func (m *JobMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the JobEvent entity by IDs.
func (m *JobMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the JobEvent entity.
func (m *JobMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *JobMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *JobMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.organisation_id != nil {
		fields = append(fields, job.FieldOrganisationID)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.headers != nil {
		fields = append(fields, job.FieldHeaders)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.attempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.lock_owner != nil {
		fields = append(fields, job.FieldLockOwner)
	}
	if m.locked_until != nil {
		fields = append(fields, job.FieldLockedUntil)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.status_message != nil {
		fields = append(fields, job.FieldStatusMessage)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.scheduled_for != nil {
		fields = append(fields, job.FieldScheduledFor)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldOrganisationID:
		return m.OrganisationID()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldHeaders:
		return m.Headers()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldAttempt:
		return m.Attempt()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldLockOwner:
		return m.LockOwner()
	case job.FieldLockedUntil:
		return m.LockedUntil()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldStatusMessage:
		return m.StatusMessage()
	case job.FieldResult:
		return m.Result()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldScheduledFor:
		return m.ScheduledFor()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldOrganisationID:
		return m.OldOrganisationID(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldHeaders:
		return m.OldHeaders(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldAttempt:
		return m.OldAttempt(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldLockOwner:
		return m.OldLockOwner(ctx)
	case job.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldOrganisationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganisationID(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldLockOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockOwner(v)
		return nil
	case job.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.addprogress != nil {
		fields = append(fields, job.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttempt:
		return m.AddedAttempt()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case job.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldHeaders) {
		fields = append(fields, job.FieldHeaders)
	}
	if m.FieldCleared(job.FieldLockOwner) {
		fields = append(fields, job.FieldLockOwner)
	}
	if m.FieldCleared(job.FieldLockedUntil) {
		fields = append(fields, job.FieldLockedUntil)
	}
	if m.FieldCleared(job.FieldStatusMessage) {
		fields = append(fields, job.FieldStatusMessage)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldScheduledFor) {
		fields = append(fields, job.FieldScheduledFor)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldHeaders:
		m.ClearHeaders()
		return nil
	case job.FieldLockOwner:
		m.ClearLockOwner()
		return nil
	case job.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	case job.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldScheduledFor:
		m.ClearScheduledFor()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldOrganisationID:
		m.ResetOrganisationID()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldHeaders:
		m.ResetHeaders()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldAttempt:
		m.ResetAttempt()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldLockOwner:
		m.ResetLockOwner()
		return nil
	case job.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobEventMutation represents an operation that mutates the JobEvent nodes in the graph.
type JobEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	event_type     *string
	event_index    *int
	addevent_index *int
	details        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	job            *string
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*JobEvent, error)
	predicates     []predicate.JobEvent
}

var _ ent.Mutation = (*JobEventMutation)(nil)

// jobeventOption allows management of the mutation configuration using functional options.
type jobeventOption func(*JobEventMutation)

// newJobEventMutation creates new mutation for the JobEvent entity.
func newJobEventMutation(c config, op Op, opts ...jobeventOption) *JobEventMutation {
	m := &JobEventMutation{
		config:        c,
		op:            op,
		typ:           TypeJobEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobEventID sets the ID field of the mutation.
func withJobEventID(id int) jobeventOption {
	return func(m *JobEventMutation) {
		var (
			err   error
			once  sync.Once
			value *JobEvent
		)
		m.oldValue = func(ctx context.Context) (*JobEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobEvent sets the old JobEvent of the mutation.
func withJobEvent(node *JobEvent) jobeventOption {
	return func(m *JobEventMutation) {
		m.oldValue = func(context.Context) (*JobEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobEventMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobEventMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobEvent entity.
// If the JobEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobEventMutation) ResetJobID() {
	m.job = nil
}

// SetEventType sets the "event_type" field.
func (m *JobEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *JobEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the JobEvent entity.
// If the JobEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *JobEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventIndex sets the "event_index" field.
func (m *JobEventMutation) SetEventIndex(i int) {
	m.event_index = &i
	m.addevent_index = nil
}

// EventIndex returns the value of the "event_index" field in the mutation.
func (m *JobEventMutation) EventIndex() (r int, exists bool) {
	v := m.event_index
	if v == nil {
		return
	}
	return *v, true
}

// OldEventIndex returns the old "event_index" field's value of the JobEvent entity.
// If the JobEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEventMutation) OldEventIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventIndex: %w", err)
	}
	return oldValue.EventIndex, nil
}

// AddEventIndex adds i to the "event_index" field.
func (m *JobEventMutation) AddEventIndex(i int) {
	if m.addevent_index != nil {
		*m.addevent_index += i
	} else {
		m.addevent_index = &i
	}
}

// AddedEventIndex returns the value that was added to the "event_index" field in this mutation.
func (m *JobEventMutation) AddedEventIndex() (r int, exists bool) {
	v := m.addevent_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventIndex resets all changes to the "event_index" field.
func (m *JobEventMutation) ResetEventIndex() {
	m.event_index = nil
	m.addevent_index = nil
}

// SetDetails sets the "details" field.
func (m *JobEventMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *JobEventMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the JobEvent entity.
// If the JobEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEventMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *JobEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[jobevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *JobEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[jobevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *JobEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, jobevent.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobEvent entity.
// If the JobEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobEventMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobevent.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobEventMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobEventMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobEventMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobEventMutation builder.
func (m *JobEventMutation) Where(ps ...predicate.JobEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobEvent).
func (m *JobEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, jobevent.FieldJobID)
	}
	if m.event_type != nil {
		fields = append(fields, jobevent.FieldEventType)
	}
	if m.event_index != nil {
		fields = append(fields, jobevent.FieldEventIndex)
	}
	if m.details != nil {
		fields = append(fields, jobevent.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, jobevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobevent.FieldJobID:
		return m.JobID()
	case jobevent.FieldEventType:
		return m.EventType()
	case jobevent.FieldEventIndex:
		return m.EventIndex()
	case jobevent.FieldDetails:
		return m.Details()
	case jobevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobevent.FieldJobID:
		return m.OldJobID(ctx)
	case jobevent.FieldEventType:
		return m.OldEventType(ctx)
	case jobevent.FieldEventIndex:
		return m.OldEventIndex(ctx)
	case jobevent.FieldDetails:
		return m.OldDetails(ctx)
	case jobevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobevent.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case jobevent.FieldEventIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventIndex(v)
		return nil
	case jobevent.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case jobevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobEventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_index != nil {
		fields = append(fields, jobevent.FieldEventIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobevent.FieldEventIndex:
		return m.AddedEventIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobevent.FieldEventIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventIndex(v)
		return nil
	}
	return fmt.Errorf("unknown JobEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobevent.FieldDetails) {
		fields = append(fields, jobevent.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobEventMutation) ClearField(name string) error {
	switch name {
	case jobevent.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown JobEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobEventMutation) ResetField(name string) error {
	switch name {
	case jobevent.FieldJobID:
		m.ResetJobID()
		return nil
	case jobevent.FieldEventType:
		m.ResetEventType()
		return nil
	case jobevent.FieldEventIndex:
		m.ResetEventIndex()
		return nil
	case jobevent.FieldDetails:
		m.ResetDetails()
		return nil
	case jobevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobevent.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobevent.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobevent.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobEventMutation) EdgeCleared(name string) bool {
	switch name {
	case jobevent.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobEventMutation) ClearEdge(name string) error {
	switch name {
	case jobevent.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobEventMutation) ResetEdge(name string) error {
	switch name {
	case jobevent.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobEvent edge %s", name)
}

// SemanticModelRecordMutation represents an operation that mutates the SemanticModelRecord nodes in the graph.
type SemanticModelRecordMutation struct {
	config
	op              Op
	typ             string
	id              *string
	organisation_id *string
	name            *string
	connector_id    *string
	definition      *string
	tags            *[]string
	appendtags      []string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SemanticModelRecord, error)
	predicates      []predicate.SemanticModelRecord
}

var _ ent.Mutation = (*SemanticModelRecordMutation)(nil)

// semanticmodelrecordOption allows management of the mutation configuration using functional options.
type semanticmodelrecordOption func(*SemanticModelRecordMutation)

// newSemanticModelRecordMutation creates new mutation for the SemanticModelRecord entity.
func newSemanticModelRecordMutation(c config, op Op, opts ...semanticmodelrecordOption) *SemanticModelRecordMutation {
	m := &SemanticModelRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSemanticModelRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSemanticModelRecordID sets the ID field of the mutation.
func withSemanticModelRecordID(id string) semanticmodelrecordOption {
	return func(m *SemanticModelRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SemanticModelRecord
		)
		m.oldValue = func(ctx context.Context) (*SemanticModelRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SemanticModelRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSemanticModelRecord sets the old SemanticModelRecord of the mutation.
func withSemanticModelRecord(node *SemanticModelRecord) semanticmodelrecordOption {
	return func(m *SemanticModelRecordMutation) {
		m.oldValue = func(context.Context) (*SemanticModelRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SemanticModelRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SemanticModelRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SemanticModelRecord entities.
func (m *SemanticModelRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SemanticModelRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SemanticModelRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SemanticModelRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganisationID sets the "organisation_id" field.
func (m *SemanticModelRecordMutation) SetOrganisationID(s string) {
	m.organisation_id = &s
}

// OrganisationID returns the value of the "organisation_id" field in the mutation.
func (m *SemanticModelRecordMutation) OrganisationID() (r string, exists bool) {
	v := m.organisation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganisationID returns the old "organisation_id" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldOrganisationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganisationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganisationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganisationID: %w", err)
	}
	return oldValue.OrganisationID, nil
}

// ResetOrganisationID resets all changes to the "organisation_id" field.
func (m *SemanticModelRecordMutation) ResetOrganisationID() {
	m.organisation_id = nil
}

// SetName sets the "name" field.
func (m *SemanticModelRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SemanticModelRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *SemanticModelRecordMutation) ResetName() {
	m.name = nil
}

// SetConnectorID sets the "connector_id" field.
func (m *SemanticModelRecordMutation) SetConnectorID(s string) {
	m.connector_id = &s
}

// ConnectorID returns the value of the "connector_id" field in the mutation.
func (m *SemanticModelRecordMutation) ConnectorID() (r string, exists bool) {
	v := m.connector_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorID returns the old "connector_id" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldConnectorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorID: %w", err)
	}
	return oldValue.ConnectorID, nil
}

// ResetConnectorID resets all changes to the "connector_id" field.
func (m *SemanticModelRecordMutation) ResetConnectorID() {
	m.connector_id = nil
}

// SetDefinition sets the "definition" field.
func (m *SemanticModelRecordMutation) SetDefinition(s string) {
	m.definition = &s
}

// Definition returns the value of the "definition" field in the mutation.
func (m *SemanticModelRecordMutation) Definition() (r string, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *SemanticModelRecordMutation) ResetDefinition() {
	m.definition = nil
}

// SetTags sets the "tags" field.
func (m *SemanticModelRecordMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SemanticModelRecordMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *SemanticModelRecordMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *SemanticModelRecordMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *SemanticModelRecordMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[semanticmodelrecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *SemanticModelRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[semanticmodelrecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *SemanticModelRecordMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, semanticmodelrecord.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *SemanticModelRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SemanticModelRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SemanticModelRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SemanticModelRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SemanticModelRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SemanticModelRecord entity.
// If the SemanticModelRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SemanticModelRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SemanticModelRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SemanticModelRecordMutation builder.
func (m *SemanticModelRecordMutation) Where(ps ...predicate.SemanticModelRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SemanticModelRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SemanticModelRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SemanticModelRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SemanticModelRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SemanticModelRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SemanticModelRecord).
func (m *SemanticModelRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SemanticModelRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.organisation_id != nil {
		fields = append(fields, semanticmodelrecord.FieldOrganisationID)
	}
	if m.name != nil {
		fields = append(fields, semanticmodelrecord.FieldName)
	}
	if m.connector_id != nil {
		fields = append(fields, semanticmodelrecord.FieldConnectorID)
	}
	if m.definition != nil {
		fields = append(fields, semanticmodelrecord.FieldDefinition)
	}
	if m.tags != nil {
		fields = append(fields, semanticmodelrecord.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, semanticmodelrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, semanticmodelrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SemanticModelRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case semanticmodelrecord.FieldOrganisationID:
		return m.OrganisationID()
	case semanticmodelrecord.FieldName:
		return m.Name()
	case semanticmodelrecord.FieldConnectorID:
		return m.ConnectorID()
	case semanticmodelrecord.FieldDefinition:
		return m.Definition()
	case semanticmodelrecord.FieldTags:
		return m.Tags()
	case semanticmodelrecord.FieldCreatedAt:
		return m.CreatedAt()
	case semanticmodelrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SemanticModelRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case semanticmodelrecord.FieldOrganisationID:
		return m.OldOrganisationID(ctx)
	case semanticmodelrecord.FieldName:
		return m.OldName(ctx)
	case semanticmodelrecord.FieldConnectorID:
		return m.OldConnectorID(ctx)
	case semanticmodelrecord.FieldDefinition:
		return m.OldDefinition(ctx)
	case semanticmodelrecord.FieldTags:
		return m.OldTags(ctx)
	case semanticmodelrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case semanticmodelrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SemanticModelRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SemanticModelRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case semanticmodelrecord.FieldOrganisationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganisationID(v)
		return nil
	case semanticmodelrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case semanticmodelrecord.FieldConnectorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorID(v)
		return nil
	case semanticmodelrecord.FieldDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case semanticmodelrecord.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case semanticmodelrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case semanticmodelrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SemanticModelRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SemanticModelRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SemanticModelRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SemanticModelRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SemanticModelRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SemanticModelRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(semanticmodelrecord.FieldTags) {
		fields = append(fields, semanticmodelrecord.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SemanticModelRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SemanticModelRecordMutation) ClearField(name string) error {
	switch name {
	case semanticmodelrecord.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown SemanticModelRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SemanticModelRecordMutation) ResetField(name string) error {
	switch name {
	case semanticmodelrecord.FieldOrganisationID:
		m.ResetOrganisationID()
		return nil
	case semanticmodelrecord.FieldName:
		m.ResetName()
		return nil
	case semanticmodelrecord.FieldConnectorID:
		m.ResetConnectorID()
		return nil
	case semanticmodelrecord.FieldDefinition:
		m.ResetDefinition()
		return nil
	case semanticmodelrecord.FieldTags:
		m.ResetTags()
		return nil
	case semanticmodelrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case semanticmodelrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SemanticModelRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SemanticModelRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SemanticModelRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SemanticModelRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SemanticModelRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SemanticModelRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SemanticModelRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SemanticModelRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SemanticModelRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SemanticModelRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SemanticModelRecord edge %s", name)
}
