// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
	"github.com/quillhq/quill/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *JobUpdate) SetOrganisationID(v string) *JobUpdate {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOrganisationID(v *string) *JobUpdate {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdate) SetJobType(v string) *JobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobType(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *JobUpdate) SetHeaders(v map[string]string) *JobUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *JobUpdate) ClearHeaders() *JobUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v int) *JobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *int) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdate) AddPriority(v int) *JobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *JobUpdate) SetAttempt(v int) *JobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempt(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *JobUpdate) AddAttempt(v int) *JobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdate) SetMaxAttempts(v int) *JobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdate) AddMaxAttempts(v int) *JobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLockOwner sets the "lock_owner" field.
func (_u *JobUpdate) SetLockOwner(v string) *JobUpdate {
	_u.mutation.SetLockOwner(v)
	return _u
}

// SetNillableLockOwner sets the "lock_owner" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockOwner(v *string) *JobUpdate {
	if v != nil {
		_u.SetLockOwner(*v)
	}
	return _u
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (_u *JobUpdate) ClearLockOwner() *JobUpdate {
	_u.mutation.ClearLockOwner()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *JobUpdate) SetLockedUntil(v time.Time) *JobUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockedUntil(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *JobUpdate) ClearLockedUntil() *JobUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdate) SetProgress(v int) *JobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProgress(v *int) *JobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdate) AddProgress(v int) *JobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *JobUpdate) SetStatusMessage(v string) *JobUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatusMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *JobUpdate) ClearStatusMessage() *JobUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *JobUpdate) SetScheduledFor(v time.Time) *JobUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *JobUpdate) SetNillableScheduledFor(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *JobUpdate) ClearScheduledFor() *JobUpdate {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdate) SetFinishedAt(v time.Time) *JobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinishedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdate) ClearFinishedAt() *JobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the JobEvent entity by IDs.
func (_u *JobUpdate) AddEventIDs(ids ...int) *JobUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JobEvent entity.
func (_u *JobUpdate) AddEvents(v ...*JobEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JobEvent entity.
func (_u *JobUpdate) ClearEvents() *JobUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JobEvent entities by IDs.
func (_u *JobUpdate) RemoveEventIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JobEvent entities.
func (_u *JobUpdate) RemoveEvents(v ...*JobEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganisationID(); ok {
		_spec.SetField(job.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(job.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(job.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockOwner(); ok {
		_spec.SetField(job.FieldLockOwner, field.TypeString, value)
	}
	if _u.mutation.LockOwnerCleared() {
		_spec.ClearField(job.FieldLockOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(job.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(job.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(job.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(job.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(job.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(job.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetOrganisationID sets the "organisation_id" field.
func (_u *JobUpdateOne) SetOrganisationID(v string) *JobUpdateOne {
	_u.mutation.SetOrganisationID(v)
	return _u
}

// SetNillableOrganisationID sets the "organisation_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOrganisationID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOrganisationID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdateOne) SetJobType(v string) *JobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *JobUpdateOne) SetHeaders(v map[string]string) *JobUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *JobUpdateOne) ClearHeaders() *JobUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v int) *JobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdateOne) AddPriority(v int) *JobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *JobUpdateOne) SetAttempt(v int) *JobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempt(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *JobUpdateOne) AddAttempt(v int) *JobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *JobUpdateOne) SetMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *JobUpdateOne) AddMaxAttempts(v int) *JobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLockOwner sets the "lock_owner" field.
func (_u *JobUpdateOne) SetLockOwner(v string) *JobUpdateOne {
	_u.mutation.SetLockOwner(v)
	return _u
}

// SetNillableLockOwner sets the "lock_owner" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockOwner(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLockOwner(*v)
	}
	return _u
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (_u *JobUpdateOne) ClearLockOwner() *JobUpdateOne {
	_u.mutation.ClearLockOwner()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *JobUpdateOne) SetLockedUntil(v time.Time) *JobUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockedUntil(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *JobUpdateOne) ClearLockedUntil() *JobUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdateOne) SetProgress(v int) *JobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProgress(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdateOne) AddProgress(v int) *JobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *JobUpdateOne) SetStatusMessage(v string) *JobUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatusMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *JobUpdateOne) ClearStatusMessage() *JobUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *JobUpdateOne) SetScheduledFor(v time.Time) *JobUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableScheduledFor(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *JobUpdateOne) ClearScheduledFor() *JobUpdateOne {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdateOne) SetFinishedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinishedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdateOne) ClearFinishedAt() *JobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the JobEvent entity by IDs.
func (_u *JobUpdateOne) AddEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JobEvent entity.
func (_u *JobUpdateOne) AddEvents(v ...*JobEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JobEvent entity.
func (_u *JobUpdateOne) ClearEvents() *JobUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JobEvent entities by IDs.
func (_u *JobUpdateOne) RemoveEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JobEvent entities.
func (_u *JobUpdateOne) RemoveEvents(v ...*JobEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
		_spec.SetField(job.FieldOrganisationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(job.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(job.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(job.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(job.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockOwner(); ok {
		_spec.SetField(job.FieldLockOwner, field.TypeString, value)
	}
	if _u.mutation.LockOwnerCleared() {
		_spec.ClearField(job.FieldLockOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(job.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(job.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(job.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(job.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(job.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(job.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
