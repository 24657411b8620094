// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// SemanticModelRecordCreate is the builder for creating a SemanticModelRecord entity.
type SemanticModelRecordCreate struct {
	config
	mutation *SemanticModelRecordMutation
	hooks    []Hook
}

// SetOrganisationID sets the "organisation_id" field.
func (_c *SemanticModelRecordCreate) SetOrganisationID(v string) *SemanticModelRecordCreate {
	_c.mutation.SetOrganisationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SemanticModelRecordCreate) SetName(v string) *SemanticModelRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConnectorID sets the "connector_id" field.
func (_c *SemanticModelRecordCreate) SetConnectorID(v string) *SemanticModelRecordCreate {
	_c.mutation.SetConnectorID(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *SemanticModelRecordCreate) SetDefinition(v string) *SemanticModelRecordCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *SemanticModelRecordCreate) SetTags(v []string) *SemanticModelRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SemanticModelRecordCreate) SetCreatedAt(v time.Time) *SemanticModelRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SemanticModelRecordCreate) SetNillableCreatedAt(v *time.Time) *SemanticModelRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SemanticModelRecordCreate) SetUpdatedAt(v time.Time) *SemanticModelRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SemanticModelRecordCreate) SetNillableUpdatedAt(v *time.Time) *SemanticModelRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SemanticModelRecordCreate) SetID(v string) *SemanticModelRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SemanticModelRecordMutation object of the builder.
func (_c *SemanticModelRecordCreate) Mutation() *SemanticModelRecordMutation {
	return _c.mutation
}

// Save creates the SemanticModelRecord in the database.
func (_c *SemanticModelRecordCreate) Save(ctx context.Context) (*SemanticModelRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SemanticModelRecordCreate) SaveX(ctx context.Context) *SemanticModelRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SemanticModelRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SemanticModelRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SemanticModelRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := semanticmodelrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := semanticmodelrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SemanticModelRecordCreate) check() error {
	if _, ok := _c.mutation.OrganisationID(); !ok {
		return &ValidationError{Name: "organisation_id", err: errors.New(`ent: missing required field "SemanticModelRecord.organisation_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SemanticModelRecord.name"`)}
	}
	if _, ok := _c.mutation.ConnectorID(); !ok {
		return &ValidationError{Name: "connector_id", err: errors.New(`ent: missing required field "SemanticModelRecord.connector_id"`)}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "SemanticModelRecord.definition"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SemanticModelRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SemanticModelRecord.updated_at"`)}
	}
	return nil
}

func (_c *SemanticModelRecordCreate) sqlSave(ctx context.Context) (*SemanticModelRecord, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SemanticModelRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SemanticModelRecordCreate) createSpec() (*SemanticModelRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SemanticModelRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(semanticmodelrecord.Table, sqlgraph.NewFieldSpec(semanticmodelrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganisationID(); ok {
		_spec.SetField(semanticmodelrecord.FieldOrganisationID, field.TypeString, value)
		_node.OrganisationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(semanticmodelrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ConnectorID(); ok {
		_spec.SetField(semanticmodelrecord.FieldConnectorID, field.TypeString, value)
		_node.ConnectorID = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(semanticmodelrecord.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(semanticmodelrecord.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(semanticmodelrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(semanticmodelrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SemanticModelRecordCreateBulk is the builder for creating many SemanticModelRecord entities in bulk.
type SemanticModelRecordCreateBulk struct {
	config
	err      error
	builders []*SemanticModelRecordCreate
}

// Save creates the SemanticModelRecord entities in the database.
func (_c *SemanticModelRecordCreateBulk) Save(ctx context.Context) ([]*SemanticModelRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SemanticModelRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SemanticModelRecordMutation)
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
func (_c *SemanticModelRecordCreateBulk) SaveX(ctx context.Context) []*SemanticModelRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SemanticModelRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SemanticModelRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
