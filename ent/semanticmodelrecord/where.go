// Code generated by ent, DO NOT EDIT.

package semanticmodelrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillhq/quill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContainsFold(FieldID, id))
}

// OrganisationID applies equality check predicate on the "organisation_id" field. It's identical to OrganisationIDEQ.
func OrganisationID(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldOrganisationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldName, v))
}

// ConnectorID applies equality check predicate on the "connector_id" field. It's identical to ConnectorIDEQ.
func ConnectorID(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldConnectorID, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldDefinition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganisationIDEQ applies the EQ predicate on the "organisation_id" field.
func OrganisationIDEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldOrganisationID, v))
}

// OrganisationIDNEQ applies the NEQ predicate on the "organisation_id" field.
func OrganisationIDNEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldOrganisationID, v))
}

// OrganisationIDIn applies the In predicate on the "organisation_id" field.
func OrganisationIDIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldOrganisationID, vs...))
}

// OrganisationIDNotIn applies the NotIn predicate on the "organisation_id" field.
func OrganisationIDNotIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldOrganisationID, vs...))
}

// OrganisationIDGT applies the GT predicate on the "organisation_id" field.
func OrganisationIDGT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldOrganisationID, v))
}

// OrganisationIDGTE applies the GTE predicate on the "organisation_id" field.
func OrganisationIDGTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldOrganisationID, v))
}

// OrganisationIDLT applies the LT predicate on the "organisation_id" field.
func OrganisationIDLT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldOrganisationID, v))
}

// OrganisationIDLTE applies the LTE predicate on the "organisation_id" field.
func OrganisationIDLTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldOrganisationID, v))
}

// OrganisationIDContains applies the Contains predicate on the "organisation_id" field.
func OrganisationIDContains(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContains(FieldOrganisationID, v))
}

// OrganisationIDHasPrefix applies the HasPrefix predicate on the "organisation_id" field.
func OrganisationIDHasPrefix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasPrefix(FieldOrganisationID, v))
}

// OrganisationIDHasSuffix applies the HasSuffix predicate on the "organisation_id" field.
func OrganisationIDHasSuffix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasSuffix(FieldOrganisationID, v))
}

// OrganisationIDEqualFold applies the EqualFold predicate on the "organisation_id" field.
func OrganisationIDEqualFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEqualFold(FieldOrganisationID, v))
}

// OrganisationIDContainsFold applies the ContainsFold predicate on the "organisation_id" field.
func OrganisationIDContainsFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContainsFold(FieldOrganisationID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContainsFold(FieldName, v))
}

// ConnectorIDEQ applies the EQ predicate on the "connector_id" field.
func ConnectorIDEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldConnectorID, v))
}

// ConnectorIDNEQ applies the NEQ predicate on the "connector_id" field.
func ConnectorIDNEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldConnectorID, v))
}

// ConnectorIDIn applies the In predicate on the "connector_id" field.
func ConnectorIDIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldConnectorID, vs...))
}

// ConnectorIDNotIn applies the NotIn predicate on the "connector_id" field.
func ConnectorIDNotIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldConnectorID, vs...))
}

// ConnectorIDGT applies the GT predicate on the "connector_id" field.
func ConnectorIDGT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldConnectorID, v))
}

// ConnectorIDGTE applies the GTE predicate on the "connector_id" field.
func ConnectorIDGTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldConnectorID, v))
}

// ConnectorIDLT applies the LT predicate on the "connector_id" field.
func ConnectorIDLT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldConnectorID, v))
}

// ConnectorIDLTE applies the LTE predicate on the "connector_id" field.
func ConnectorIDLTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldConnectorID, v))
}

// ConnectorIDContains applies the Contains predicate on the "connector_id" field.
func ConnectorIDContains(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContains(FieldConnectorID, v))
}

// ConnectorIDHasPrefix applies the HasPrefix predicate on the "connector_id" field.
func ConnectorIDHasPrefix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasPrefix(FieldConnectorID, v))
}

// ConnectorIDHasSuffix applies the HasSuffix predicate on the "connector_id" field.
func ConnectorIDHasSuffix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasSuffix(FieldConnectorID, v))
}

// ConnectorIDEqualFold applies the EqualFold predicate on the "connector_id" field.
func ConnectorIDEqualFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEqualFold(FieldConnectorID, v))
}

// ConnectorIDContainsFold applies the ContainsFold predicate on the "connector_id" field.
func ConnectorIDContainsFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContainsFold(FieldConnectorID, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldContainsFold(FieldDefinition, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotNull(FieldTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SemanticModelRecord) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SemanticModelRecord) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SemanticModelRecord) predicate.SemanticModelRecord {
	return predicate.SemanticModelRecord(sql.NotPredicates(p))
}
