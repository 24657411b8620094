// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/ent/predicate"
)

// ConnectorRecordUpdate is the builder for updating ConnectorRecord entities.
type ConnectorRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorRecordMutation
}

// Where appends a list predicates to the ConnectorRecordUpdate builder.
func (_u *ConnectorRecordUpdate) Where(ps ...predicate.ConnectorRecord) *ConnectorRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *ConnectorRecordUpdate) SetOrganisationID(v string) *ConnectorRecordUpdate {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *ConnectorRecordUpdate) SetNillableOrganisationID(v *string) *ConnectorRecordUpdate {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConnectorRecordUpdate) SetName(v string) *ConnectorRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConnectorRecordUpdate) SetNillableName(v *string) *ConnectorRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *ConnectorRecordUpdate) SetDialect(v string) *ConnectorRecordUpdate {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *ConnectorRecordUpdate) SetNillableDialect(v *string) *ConnectorRecordUpdate {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// SetDsnSecret sets the "dsn_secret" field.
func (_u *ConnectorRecordUpdate) SetDsnSecret(v string) *ConnectorRecordUpdate {
	_u.mutation.SetDsnSecret(v)
	return _u
}

// SetNillableDsnSecret sets the "dsn_secret" field if the given value is not nil.
func (_u *ConnectorRecordUpdate) SetNillableDsnSecret(v *string) *ConnectorRecordUpdate {
	if v != nil {
		_u.SetDsnSecret(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ConnectorRecordUpdate) SetOptions(v map[string]string) *ConnectorRecordUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ConnectorRecordUpdate) ClearOptions() *ConnectorRecordUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorRecordUpdate) SetEnabled(v bool) *ConnectorRecordUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorRecordUpdate) SetNillableEnabled(v *bool) *ConnectorRecordUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ConnectorRecordMutation object of the builder.
func (_u *ConnectorRecordUpdate) Mutation() *ConnectorRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectorRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorrecord.Table, connectorrecord.Columns, sqlgraph.NewFieldSpec(connectorrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganisationID(); ok {
		_spec.SetField(connectorrecord.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(connectorrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(connectorrecord.FieldDialect, field.TypeString, value)
	}
	if value, ok := _u.mutation.DsnSecret(); ok {
		_spec.SetField(connectorrecord.FieldDsnSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(connectorrecord.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(connectorrecord.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connectorrecord.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorRecordUpdateOne is the builder for updating a single ConnectorRecord entity.
type ConnectorRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorRecordMutation
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *ConnectorRecordUpdateOne) SetOrganisationID(v string) *ConnectorRecordUpdateOne {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *ConnectorRecordUpdateOne) SetNillableOrganisationID(v *string) *ConnectorRecordUpdateOne {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConnectorRecordUpdateOne) SetName(v string) *ConnectorRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConnectorRecordUpdateOne) SetNillableName(v *string) *ConnectorRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *ConnectorRecordUpdateOne) SetDialect(v string) *ConnectorRecordUpdateOne {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *ConnectorRecordUpdateOne) SetNillableDialect(v *string) *ConnectorRecordUpdateOne {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// SetDsnSecret sets the "dsn_secret" field.
func (_u *ConnectorRecordUpdateOne) SetDsnSecret(v string) *ConnectorRecordUpdateOne {
	_u.mutation.SetDsnSecret(v)
	return _u
}

// SetNillableDsnSecret sets the "dsn_secret" field if the given value is not nil.
func (_u *ConnectorRecordUpdateOne) SetNillableDsnSecret(v *string) *ConnectorRecordUpdateOne {
	if v != nil {
		_u.SetDsnSecret(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ConnectorRecordUpdateOne) SetOptions(v map[string]string) *ConnectorRecordUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ConnectorRecordUpdateOne) ClearOptions() *ConnectorRecordUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorRecordUpdateOne) SetEnabled(v bool) *ConnectorRecordUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorRecordUpdateOne) SetNillableEnabled(v *bool) *ConnectorRecordUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ConnectorRecordMutation object of the builder.
func (_u *ConnectorRecordUpdateOne) Mutation() *ConnectorRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorRecordUpdate builder.
func (_u *ConnectorRecordUpdateOne) Where(ps ...predicate.ConnectorRecord) *ConnectorRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorRecordUpdateOne) Select(field string, fields ...string) *ConnectorRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorRecord entity.
func (_u *ConnectorRecordUpdateOne) Save(ctx context.Context) (*ConnectorRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorRecordUpdateOne) SaveX(ctx context.Context) *ConnectorRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectorRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorrecord.Table, connectorrecord.Columns, sqlgraph.NewFieldSpec(connectorrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorrecord.FieldID)
		for _, f := range fields {
			if !connectorrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorrecord.FieldID {
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
	if value, ok := _u.mutation.OrganisationID(); ok {
		_spec.SetField(connectorrecord.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(connectorrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(connectorrecord.FieldDialect, field.TypeString, value)
	}
	if value, ok := _u.mutation.DsnSecret(); ok {
		_spec.SetField(connectorrecord.FieldDsnSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(connectorrecord.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(connectorrecord.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connectorrecord.FieldEnabled, field.TypeBool, value)
	}
	_node = &ConnectorRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
