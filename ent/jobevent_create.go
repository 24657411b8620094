// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
)

// JobEventCreate is the builder for creating a JobEvent entity.
type JobEventCreate struct {
	config
	mutation *JobEventMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobEventCreate) SetJobID(v string) *JobEventCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *JobEventCreate) SetEventType(v string) *JobEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventIndex sets the "event_index" field.
func (_c *JobEventCreate) SetEventIndex(v int) *JobEventCreate {
	_c.mutation.SetEventIndex(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *JobEventCreate) SetDetails(v map[string]interface{}) *JobEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobEventCreate) SetCreatedAt(v time.Time) *JobEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobEventCreate) SetNillableCreatedAt(v *time.Time) *JobEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobEventCreate) SetJob(v *Job) *JobEventCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobEventMutation object of the builder.
func (_c *JobEventCreate) Mutation() *JobEventMutation {
	return _c.mutation
}

// Save creates the JobEvent in the database.
func (_c *JobEventCreate) Save(ctx context.Context) (*JobEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobEventCreate) SaveX(ctx context.Context) *JobEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobEventCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobEvent.job_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "JobEvent.event_type"`)}
	}
	if _, ok := _c.mutation.EventIndex(); !ok {
		return &ValidationError{Name: "event_index", err: errors.New(`ent: missing required field "JobEvent.event_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobEvent.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobEvent.job"`)}
	}
	return nil
}

func (_c *JobEventCreate) sqlSave(ctx context.Context) (*JobEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobEventCreate) createSpec() (*JobEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JobEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobevent.Table, sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(jobevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventIndex(); ok {
		_spec.SetField(jobevent.FieldEventIndex, field.TypeInt, value)
		_node.EventIndex = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(jobevent.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobevent.JobTable,
			Columns: []string{jobevent.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobEventCreateBulk is the builder for creating many JobEvent entities in bulk.
type JobEventCreateBulk struct {
	config
	err      error
	builders []*JobEventCreate
}

// Save creates the JobEvent entities in the database.
func (_c *JobEventCreateBulk) Save(ctx context.Context) ([]*JobEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *JobEventCreateBulk) SaveX(ctx context.Context) []*JobEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
