// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/connectorrecord"
)

// ConnectorRecordCreate is the builder for creating a ConnectorRecord entity.
type ConnectorRecordCreate struct {
	config
	mutation *ConnectorRecordMutation
	hooks    []Hook
}

// SetOrganisationID sets the "organisation_id" field.
func (_c *ConnectorRecordCreate) SetOrganisationID(v string) *ConnectorRecordCreate {
	_c.mutation.SetOrganisationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConnectorRecordCreate) SetName(v string) *ConnectorRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDialect sets the "dialect" field.
func (_c *ConnectorRecordCreate) SetDialect(v string) *ConnectorRecordCreate {
	_c.mutation.SetDialect(v)
	return _c
}

// SetDsnSecret sets the "dsn_secret" field.
func (_c *ConnectorRecordCreate) SetDsnSecret(v string) *ConnectorRecordCreate {
	_c.mutation.SetDsnSecret(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ConnectorRecordCreate) SetOptions(v map[string]string) *ConnectorRecordCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ConnectorRecordCreate) SetEnabled(v bool) *ConnectorRecordCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ConnectorRecordCreate) SetNillableEnabled(v *bool) *ConnectorRecordCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConnectorRecordCreate) SetCreatedAt(v time.Time) *ConnectorRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConnectorRecordCreate) SetNillableCreatedAt(v *time.Time) *ConnectorRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectorRecordCreate) SetID(v string) *ConnectorRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectorRecordMutation object of the builder.
func (_c *ConnectorRecordCreate) Mutation() *ConnectorRecordMutation {
	return _c.mutation
}

// Save creates the ConnectorRecord in the database.
func (_c *ConnectorRecordCreate) Save(ctx context.Context) (*ConnectorRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorRecordCreate) SaveX(ctx context.Context) *ConnectorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorRecordCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := connectorrecord.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := connectorrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorRecordCreate) check() error {
	if _, ok := _c.mutation.OrganisationID(); !ok {
		return &ValidationError{Name: "organisation_id", err: errors.New(`ent: missing required field "ConnectorRecord.organisation_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConnectorRecord.name"`)}
	}
	if _, ok := _c.mutation.Dialect(); !ok {
		return &ValidationError{Name: "dialect", err: errors.New(`ent: missing required field "ConnectorRecord.dialect"`)}
	}
	if _, ok := _c.mutation.DsnSecret(); !ok {
		return &ValidationError{Name: "dsn_secret", err: errors.New(`ent: missing required field "ConnectorRecord.dsn_secret"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ConnectorRecord.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConnectorRecord.created_at"`)}
	}
	return nil
}

func (_c *ConnectorRecordCreate) sqlSave(ctx context.Context) (*ConnectorRecord, error) {
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
			return nil, fmt.Errorf("unexpected ConnectorRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectorRecordCreate) createSpec() (*ConnectorRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorrecord.Table, sqlgraph.NewFieldSpec(connectorrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganisationID(); ok {
		_spec.SetField(connectorrecord.FieldOrganisationID, field.TypeString, value)
		_node.OrganisationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(connectorrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dialect(); ok {
		_spec.SetField(connectorrecord.FieldDialect, field.TypeString, value)
		_node.Dialect = value
	}
	if value, ok := _c.mutation.DsnSecret(); ok {
		_spec.SetField(connectorrecord.FieldDsnSecret, field.TypeString, value)
		_node.DsnSecret = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(connectorrecord.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(connectorrecord.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(connectorrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ConnectorRecordCreateBulk is the builder for creating many ConnectorRecord entities in bulk.
type ConnectorRecordCreateBulk struct {
	config
	err      error
	builders []*ConnectorRecordCreate
}

// Save creates the ConnectorRecord entities in the database.
func (_c *ConnectorRecordCreateBulk) Save(ctx context.Context) ([]*ConnectorRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorRecordMutation)
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
func (_c *ConnectorRecordCreateBulk) SaveX(ctx context.Context) []*ConnectorRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
