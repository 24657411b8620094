// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/predicate"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// SemanticModelRecordDelete is the builder for deleting a SemanticModelRecord entity.
type SemanticModelRecordDelete struct {
	config
	hooks    []Hook
	mutation *SemanticModelRecordMutation
}

// Where appends a list predicates to the SemanticModelRecordDelete builder.
func (_d *SemanticModelRecordDelete) Where(ps ...predicate.SemanticModelRecord) *SemanticModelRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SemanticModelRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SemanticModelRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SemanticModelRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(semanticmodelrecord.Table, sqlgraph.NewFieldSpec(semanticmodelrecord.FieldID, field.TypeString))
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

// SemanticModelRecordDeleteOne is the builder for deleting a single SemanticModelRecord entity.
type SemanticModelRecordDeleteOne struct {
	_d *SemanticModelRecordDelete
}

// Where appends a list predicates to the SemanticModelRecordDelete builder.
func (_d *SemanticModelRecordDeleteOne) Where(ps ...predicate.SemanticModelRecord) *SemanticModelRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SemanticModelRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{semanticmodelrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SemanticModelRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
