// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/predicate"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// SemanticModelRecordUpdate is the builder for updating SemanticModelRecord entities.
type SemanticModelRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SemanticModelRecordMutation
}

// Where appends a list predicates to the SemanticModelRecordUpdate builder.
func (_u *SemanticModelRecordUpdate) Where(ps ...predicate.SemanticModelRecord) *SemanticModelRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *SemanticModelRecordUpdate) SetOrganisationID(v string) *SemanticModelRecordUpdate {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *SemanticModelRecordUpdate) SetNillableOrganisationID(v *string) *SemanticModelRecordUpdate {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SemanticModelRecordUpdate) SetName(v string) *SemanticModelRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SemanticModelRecordUpdate) SetNillableName(v *string) *SemanticModelRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnectorID sets the "connector_id" field.
func (_u *SemanticModelRecordUpdate) SetConnectorID(v string) *SemanticModelRecordUpdate {
	_u.mutation.SetConnectorID(v)
	return _u
}

// SetNillableConnectorID sets the "connector_id" field if the given value is not nil.
func (_u *SemanticModelRecordUpdate) SetNillableConnectorID(v *string) *SemanticModelRecordUpdate {
	if v != nil {
		_u.SetConnectorID(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *SemanticModelRecordUpdate) SetDefinition(v string) *SemanticModelRecordUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *SemanticModelRecordUpdate) SetNillableDefinition(v *string) *SemanticModelRecordUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SemanticModelRecordUpdate) SetTags(v []string) *SemanticModelRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SemanticModelRecordUpdate) AppendTags(v []string) *SemanticModelRecordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SemanticModelRecordUpdate) ClearTags() *SemanticModelRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SemanticModelRecordUpdate) SetUpdatedAt(v time.Time) *SemanticModelRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SemanticModelRecordMutation object of the builder.
func (_u *SemanticModelRecordUpdate) Mutation() *SemanticModelRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SemanticModelRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SemanticModelRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SemanticModelRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SemanticModelRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SemanticModelRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := semanticmodelrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SemanticModelRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(semanticmodelrecord.Table, semanticmodelrecord.Columns, sqlgraph.NewFieldSpec(semanticmodelrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganisationID(); ok {
		_spec.SetField(semanticmodelrecord.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(semanticmodelrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorID(); ok {
		_spec.SetField(semanticmodelrecord.FieldConnectorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(semanticmodelrecord.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(semanticmodelrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, semanticmodelrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(semanticmodelrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(semanticmodelrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{semanticmodelrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SemanticModelRecordUpdateOne is the builder for updating a single SemanticModelRecord entity.
type SemanticModelRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SemanticModelRecordMutation
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *SemanticModelRecordUpdateOne) SetOrganisationID(v string) *SemanticModelRecordUpdateOne {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *SemanticModelRecordUpdateOne) SetNillableOrganisationID(v *string) *SemanticModelRecordUpdateOne {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SemanticModelRecordUpdateOne) SetName(v string) *SemanticModelRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SemanticModelRecordUpdateOne) SetNillableName(v *string) *SemanticModelRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnectorID sets the "connector_id" field.
func (_u *SemanticModelRecordUpdateOne) SetConnectorID(v string) *SemanticModelRecordUpdateOne {
	_u.mutation.SetConnectorID(v)
	return _u
}

// SetNillableConnectorID sets the "connector_id" field if the given value is not nil.
func (_u *SemanticModelRecordUpdateOne) SetNillableConnectorID(v *string) *SemanticModelRecordUpdateOne {
	if v != nil {
		_u.SetConnectorID(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *SemanticModelRecordUpdateOne) SetDefinition(v string) *SemanticModelRecordUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *SemanticModelRecordUpdateOne) SetNillableDefinition(v *string) *SemanticModelRecordUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SemanticModelRecordUpdateOne) SetTags(v []string) *SemanticModelRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SemanticModelRecordUpdateOne) AppendTags(v []string) *SemanticModelRecordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SemanticModelRecordUpdateOne) ClearTags() *SemanticModelRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SemanticModelRecordUpdateOne) SetUpdatedAt(v time.Time) *SemanticModelRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SemanticModelRecordMutation object of the builder.
func (_u *SemanticModelRecordUpdateOne) Mutation() *SemanticModelRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SemanticModelRecordUpdate builder.
func (_u *SemanticModelRecordUpdateOne) Where(ps ...predicate.SemanticModelRecord) *SemanticModelRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SemanticModelRecordUpdateOne) Select(field string, fields ...string) *SemanticModelRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SemanticModelRecord entity.
func (_u *SemanticModelRecordUpdateOne) Save(ctx context.Context) (*SemanticModelRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SemanticModelRecordUpdateOne) SaveX(ctx context.Context) *SemanticModelRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SemanticModelRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SemanticModelRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SemanticModelRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := semanticmodelrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SemanticModelRecordUpdateOne) sqlSave(ctx context.Context) (_node *SemanticModelRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(semanticmodelrecord.Table, semanticmodelrecord.Columns, sqlgraph.NewFieldSpec(semanticmodelrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SemanticModelRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, semanticmodelrecord.FieldID)
		for _, f := range fields {
			if !semanticmodelrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != semanticmodelrecord.FieldID {
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
		_spec.SetField(semanticmodelrecord.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(semanticmodelrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectorID(); ok {
		_spec.SetField(semanticmodelrecord.FieldConnectorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(semanticmodelrecord.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(semanticmodelrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, semanticmodelrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(semanticmodelrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(semanticmodelrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SemanticModelRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{semanticmodelrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
