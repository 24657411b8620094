// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/ent/predicate"
)

// ConnectorRecordDelete is the builder for deleting a ConnectorRecord entity.
type ConnectorRecordDelete struct {
	config
	hooks    []Hook
	mutation *ConnectorRecordMutation
}

// Where appends a list predicates to the ConnectorRecordDelete builder.
func (_d *ConnectorRecordDelete) Where(ps ...predicate.ConnectorRecord) *ConnectorRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConnectorRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConnectorRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(connectorrecord.Table, sqlgraph.NewFieldSpec(connectorrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ConnectorRecordDeleteOne is the builder for deleting a single ConnectorRecord entity.
type ConnectorRecordDeleteOne struct {
	_d *ConnectorRecordDelete
}

// Where appends a list predicates to the ConnectorRecordDelete builder.
func (_d *ConnectorRecordDeleteOne) Where(ps ...predicate.ConnectorRecord) *ConnectorRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConnectorRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{connectorrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
