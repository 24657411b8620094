// Code generated by ent, DO NOT EDIT.

package jobevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quillhq/quill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldJobID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldEventType, v))
}

// EventIndex applies equality check predicate on the "event_index" field. It's identical to EventIndexEQ.
func EventIndex(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldEventIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldContainsFold(FieldJobID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventIndexEQ applies the EQ predicate on the "event_index" field.
func EventIndexEQ(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldEventIndex, v))
}

// EventIndexNEQ applies the NEQ predicate on the "event_index" field.
func EventIndexNEQ(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNEQ(FieldEventIndex, v))
}

// EventIndexIn applies the In predicate on the "event_index" field.
func EventIndexIn(vs ...int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIn(FieldEventIndex, vs...))
}

// EventIndexNotIn applies the NotIn predicate on the "event_index" field.
func EventIndexNotIn(vs ...int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotIn(FieldEventIndex, vs...))
}

// EventIndexGT applies the GT predicate on the "event_index" field.
func EventIndexGT(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGT(FieldEventIndex, v))
}

// EventIndexGTE applies the GTE predicate on the "event_index" field.
func EventIndexGTE(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGTE(FieldEventIndex, v))
}

// EventIndexLT applies the LT predicate on the "event_index" field.
func EventIndexLT(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLT(FieldEventIndex, v))
}

// EventIndexLTE applies the LTE predicate on the "event_index" field.
func EventIndexLTE(v int) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLTE(FieldEventIndex, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobEvent {
	return predicate.JobEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobEvent {
	return predicate.JobEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobEvent {
	return predicate.JobEvent(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobEvent) predicate.JobEvent {
	return predicate.JobEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobEvent) predicate.JobEvent {
	return predicate.JobEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobEvent) predicate.JobEvent {
	return predicate.JobEvent(sql.NotPredicates(p))
}
