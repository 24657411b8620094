// Code generated by ent, DO NOT EDIT.

package connectorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillhq/quill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContainsFold(FieldID, id))
}

// OrganisationID applies equality check predicate on the "organisation_id" field. It's identical to OrganisationIDEQ.
func OrganisationID(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldOrganisationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldName, v))
}

// Dialect applies equality check predicate on the "dialect" field. It's identical to DialectEQ.
func Dialect(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldDialect, v))
}

// DsnSecret applies equality check predicate on the "dsn_secret" field. It's identical to DsnSecretEQ.
func DsnSecret(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldDsnSecret, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganisationIDEQ applies the EQ predicate on the "organisation_id" field.
func OrganisationIDEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldOrganisationID, v))
}

// OrganisationIDNEQ applies the NEQ predicate on the "organisation_id" field.
func OrganisationIDNEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldOrganisationID, v))
}

// OrganisationIDIn applies the In predicate on the "organisation_id" field.
func OrganisationIDIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldOrganisationID, vs...))
}

// OrganisationIDNotIn applies the NotIn predicate on the "organisation_id" field.
func OrganisationIDNotIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldOrganisationID, vs...))
}

// OrganisationIDGT applies the GT predicate on the "organisation_id" field.
func OrganisationIDGT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldOrganisationID, v))
}

// OrganisationIDGTE applies the GTE predicate on the "organisation_id" field.
func OrganisationIDGTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldOrganisationID, v))
}

// OrganisationIDLT applies the LT predicate on the "organisation_id" field.
func OrganisationIDLT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldOrganisationID, v))
}

// OrganisationIDLTE applies the LTE predicate on the "organisation_id" field.
func OrganisationIDLTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldOrganisationID, v))
}

// OrganisationIDContains applies the Contains predicate on the "organisation_id" field.
func OrganisationIDContains(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContains(FieldOrganisationID, v))
}

// OrganisationIDHasPrefix applies the HasPrefix predicate on the "organisation_id" field.
func OrganisationIDHasPrefix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasPrefix(FieldOrganisationID, v))
}

// OrganisationIDHasSuffix applies the HasSuffix predicate on the "organisation_id" field.
func OrganisationIDHasSuffix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasSuffix(FieldOrganisationID, v))
}

// OrganisationIDEqualFold applies the EqualFold predicate on the "organisation_id" field.
func OrganisationIDEqualFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEqualFold(FieldOrganisationID, v))
}

// OrganisationIDContainsFold applies the ContainsFold predicate on the "organisation_id" field.
func OrganisationIDContainsFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContainsFold(FieldOrganisationID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContainsFold(FieldName, v))
}

// DialectEQ applies the EQ predicate on the "dialect" field.
func DialectEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldDialect, v))
}

// DialectNEQ applies the NEQ predicate on the "dialect" field.
func DialectNEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldDialect, v))
}

// DialectIn applies the In predicate on the "dialect" field.
func DialectIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldDialect, vs...))
}

// DialectNotIn applies the NotIn predicate on the "dialect" field.
func DialectNotIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldDialect, vs...))
}

// DialectGT applies the GT predicate on the "dialect" field.
func DialectGT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldDialect, v))
}

// DialectGTE applies the GTE predicate on the "dialect" field.
func DialectGTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldDialect, v))
}

// DialectLT applies the LT predicate on the "dialect" field.
func DialectLT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldDialect, v))
}

// DialectLTE applies the LTE predicate on the "dialect" field.
func DialectLTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldDialect, v))
}

// DialectContains applies the Contains predicate on the "dialect" field.
func DialectContains(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContains(FieldDialect, v))
}

// DialectHasPrefix applies the HasPrefix predicate on the "dialect" field.
func DialectHasPrefix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasPrefix(FieldDialect, v))
}

// DialectHasSuffix applies the HasSuffix predicate on the "dialect" field.
func DialectHasSuffix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasSuffix(FieldDialect, v))
}

// DialectEqualFold applies the EqualFold predicate on the "dialect" field.
func DialectEqualFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEqualFold(FieldDialect, v))
}

// DialectContainsFold applies the ContainsFold predicate on the "dialect" field.
func DialectContainsFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContainsFold(FieldDialect, v))
}

// DsnSecretEQ applies the EQ predicate on the "dsn_secret" field.
func DsnSecretEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldDsnSecret, v))
}

// DsnSecretNEQ applies the NEQ predicate on the "dsn_secret" field.
func DsnSecretNEQ(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldDsnSecret, v))
}

// DsnSecretIn applies the In predicate on the "dsn_secret" field.
func DsnSecretIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldDsnSecret, vs...))
}

// DsnSecretNotIn applies the NotIn predicate on the "dsn_secret" field.
func DsnSecretNotIn(vs ...string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldDsnSecret, vs...))
}

// DsnSecretGT applies the GT predicate on the "dsn_secret" field.
func DsnSecretGT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldDsnSecret, v))
}

// DsnSecretGTE applies the GTE predicate on the "dsn_secret" field.
func DsnSecretGTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldDsnSecret, v))
}

// DsnSecretLT applies the LT predicate on the "dsn_secret" field.
func DsnSecretLT(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldDsnSecret, v))
}

// DsnSecretLTE applies the LTE predicate on the "dsn_secret" field.
func DsnSecretLTE(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldDsnSecret, v))
}

// DsnSecretContains applies the Contains predicate on the "dsn_secret" field.
func DsnSecretContains(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContains(FieldDsnSecret, v))
}

// DsnSecretHasPrefix applies the HasPrefix predicate on the "dsn_secret" field.
func DsnSecretHasPrefix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasPrefix(FieldDsnSecret, v))
}

// DsnSecretHasSuffix applies the HasSuffix predicate on the "dsn_secret" field.
func DsnSecretHasSuffix(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldHasSuffix(FieldDsnSecret, v))
}

// DsnSecretEqualFold applies the EqualFold predicate on the "dsn_secret" field.
func DsnSecretEqualFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEqualFold(FieldDsnSecret, v))
}

// DsnSecretContainsFold applies the ContainsFold predicate on the "dsn_secret" field.
func DsnSecretContainsFold(v string) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldContainsFold(FieldDsnSecret, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotNull(FieldOptions))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorRecord) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorRecord) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorRecord) predicate.ConnectorRecord {
	return predicate.ConnectorRecord(sql.NotPredicates(p))
}
