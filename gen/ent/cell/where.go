// Code generated by ent, DO NOT EDIT.

package cell

import (
	"ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldJobID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIdentifier applies equality check predicate on the "document_identifier" field. It's identical to DocumentIdentifierEQ.
func DocumentIdentifier(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldDocumentIdentifier, v))
}

// FieldKey applies equality check predicate on the "field_key" field. It's identical to FieldKeyEQ.
func FieldKey(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldKey, v))
}

// FieldLabel applies equality check predicate on the "field_label" field. It's identical to FieldLabelEQ.
func FieldLabel(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldLabel, v))
}

// FieldType applies equality check predicate on the "field_type" field. It's identical to FieldTypeEQ.
func FieldType(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldType, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValue, v))
}

// ValueRaw applies equality check predicate on the "value_raw" field. It's identical to ValueRawEQ.
func ValueRaw(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValueRaw, v))
}

// ValueNormalized applies equality check predicate on the "value_normalized" field. It's identical to ValueNormalizedEQ.
func ValueNormalized(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValueNormalized, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldConfidence, v))
}

// ReviewState applies equality check predicate on the "review_state" field. It's identical to ReviewStateEQ.
func ReviewState(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldReviewState, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldOrdinal, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldJobID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldDocumentID, v))
}

// DocumentIdentifierEQ applies the EQ predicate on the "document_identifier" field.
func DocumentIdentifierEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldDocumentIdentifier, v))
}

// DocumentIdentifierNEQ applies the NEQ predicate on the "document_identifier" field.
func DocumentIdentifierNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldDocumentIdentifier, v))
}

// DocumentIdentifierIn applies the In predicate on the "document_identifier" field.
func DocumentIdentifierIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldDocumentIdentifier, vs...))
}

// DocumentIdentifierNotIn applies the NotIn predicate on the "document_identifier" field.
func DocumentIdentifierNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldDocumentIdentifier, vs...))
}

// DocumentIdentifierGT applies the GT predicate on the "document_identifier" field.
func DocumentIdentifierGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldDocumentIdentifier, v))
}

// DocumentIdentifierGTE applies the GTE predicate on the "document_identifier" field.
func DocumentIdentifierGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldDocumentIdentifier, v))
}

// DocumentIdentifierLT applies the LT predicate on the "document_identifier" field.
func DocumentIdentifierLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldDocumentIdentifier, v))
}

// DocumentIdentifierLTE applies the LTE predicate on the "document_identifier" field.
func DocumentIdentifierLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldDocumentIdentifier, v))
}

// DocumentIdentifierContains applies the Contains predicate on the "document_identifier" field.
func DocumentIdentifierContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldDocumentIdentifier, v))
}

// DocumentIdentifierHasPrefix applies the HasPrefix predicate on the "document_identifier" field.
func DocumentIdentifierHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldDocumentIdentifier, v))
}

// DocumentIdentifierHasSuffix applies the HasSuffix predicate on the "document_identifier" field.
func DocumentIdentifierHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldDocumentIdentifier, v))
}

// DocumentIdentifierEqualFold applies the EqualFold predicate on the "document_identifier" field.
func DocumentIdentifierEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldDocumentIdentifier, v))
}

// DocumentIdentifierContainsFold applies the ContainsFold predicate on the "document_identifier" field.
func DocumentIdentifierContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldDocumentIdentifier, v))
}

// FieldKeyEQ applies the EQ predicate on the "field_key" field.
func FieldKeyEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldKey, v))
}

// FieldKeyNEQ applies the NEQ predicate on the "field_key" field.
func FieldKeyNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldFieldKey, v))
}

// FieldKeyIn applies the In predicate on the "field_key" field.
func FieldKeyIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldFieldKey, vs...))
}

// FieldKeyNotIn applies the NotIn predicate on the "field_key" field.
func FieldKeyNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldFieldKey, vs...))
}

// FieldKeyGT applies the GT predicate on the "field_key" field.
func FieldKeyGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldFieldKey, v))
}

// FieldKeyGTE applies the GTE predicate on the "field_key" field.
func FieldKeyGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldFieldKey, v))
}

// FieldKeyLT applies the LT predicate on the "field_key" field.
func FieldKeyLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldFieldKey, v))
}

// FieldKeyLTE applies the LTE predicate on the "field_key" field.
func FieldKeyLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldFieldKey, v))
}

// FieldKeyContains applies the Contains predicate on the "field_key" field.
func FieldKeyContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldFieldKey, v))
}

// FieldKeyHasPrefix applies the HasPrefix predicate on the "field_key" field.
func FieldKeyHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldFieldKey, v))
}

// FieldKeyHasSuffix applies the HasSuffix predicate on the "field_key" field.
func FieldKeyHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldFieldKey, v))
}

// FieldKeyEqualFold applies the EqualFold predicate on the "field_key" field.
func FieldKeyEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldFieldKey, v))
}

// FieldKeyContainsFold applies the ContainsFold predicate on the "field_key" field.
func FieldKeyContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldFieldKey, v))
}

// FieldLabelEQ applies the EQ predicate on the "field_label" field.
func FieldLabelEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldLabel, v))
}

// FieldLabelNEQ applies the NEQ predicate on the "field_label" field.
func FieldLabelNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldFieldLabel, v))
}

// FieldLabelIn applies the In predicate on the "field_label" field.
func FieldLabelIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldFieldLabel, vs...))
}

// FieldLabelNotIn applies the NotIn predicate on the "field_label" field.
func FieldLabelNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldFieldLabel, vs...))
}

// FieldLabelGT applies the GT predicate on the "field_label" field.
func FieldLabelGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldFieldLabel, v))
}

// FieldLabelGTE applies the GTE predicate on the "field_label" field.
func FieldLabelGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldFieldLabel, v))
}

// FieldLabelLT applies the LT predicate on the "field_label" field.
func FieldLabelLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldFieldLabel, v))
}

// FieldLabelLTE applies the LTE predicate on the "field_label" field.
func FieldLabelLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldFieldLabel, v))
}

// FieldLabelContains applies the Contains predicate on the "field_label" field.
func FieldLabelContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldFieldLabel, v))
}

// FieldLabelHasPrefix applies the HasPrefix predicate on the "field_label" field.
func FieldLabelHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldFieldLabel, v))
}

// FieldLabelHasSuffix applies the HasSuffix predicate on the "field_label" field.
func FieldLabelHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldFieldLabel, v))
}

// FieldLabelEqualFold applies the EqualFold predicate on the "field_label" field.
func FieldLabelEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldFieldLabel, v))
}

// FieldLabelContainsFold applies the ContainsFold predicate on the "field_label" field.
func FieldLabelContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldFieldLabel, v))
}

// FieldTypeEQ applies the EQ predicate on the "field_type" field.
func FieldTypeEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldFieldType, v))
}

// FieldTypeNEQ applies the NEQ predicate on the "field_type" field.
func FieldTypeNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldFieldType, v))
}

// FieldTypeIn applies the In predicate on the "field_type" field.
func FieldTypeIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldFieldType, vs...))
}

// FieldTypeNotIn applies the NotIn predicate on the "field_type" field.
func FieldTypeNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldFieldType, vs...))
}

// FieldTypeGT applies the GT predicate on the "field_type" field.
func FieldTypeGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldFieldType, v))
}

// FieldTypeGTE applies the GTE predicate on the "field_type" field.
func FieldTypeGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldFieldType, v))
}

// FieldTypeLT applies the LT predicate on the "field_type" field.
func FieldTypeLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldFieldType, v))
}

// FieldTypeLTE applies the LTE predicate on the "field_type" field.
func FieldTypeLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldFieldType, v))
}

// FieldTypeContains applies the Contains predicate on the "field_type" field.
func FieldTypeContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldFieldType, v))
}

// FieldTypeHasPrefix applies the HasPrefix predicate on the "field_type" field.
func FieldTypeHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldFieldType, v))
}

// FieldTypeHasSuffix applies the HasSuffix predicate on the "field_type" field.
func FieldTypeHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldFieldType, v))
}

// FieldTypeEqualFold applies the EqualFold predicate on the "field_type" field.
func FieldTypeEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldFieldType, v))
}

// FieldTypeContainsFold applies the ContainsFold predicate on the "field_type" field.
func FieldTypeContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldFieldType, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.Cell {
	return predicate.Cell(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.Cell {
	return predicate.Cell(sql.FieldNotNull(FieldValue))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldValue, v))
}

// ValueRawEQ applies the EQ predicate on the "value_raw" field.
func ValueRawEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValueRaw, v))
}

// ValueRawNEQ applies the NEQ predicate on the "value_raw" field.
func ValueRawNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldValueRaw, v))
}

// ValueRawIn applies the In predicate on the "value_raw" field.
func ValueRawIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldValueRaw, vs...))
}

// ValueRawNotIn applies the NotIn predicate on the "value_raw" field.
func ValueRawNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldValueRaw, vs...))
}

// ValueRawGT applies the GT predicate on the "value_raw" field.
func ValueRawGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldValueRaw, v))
}

// ValueRawGTE applies the GTE predicate on the "value_raw" field.
func ValueRawGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldValueRaw, v))
}

// ValueRawLT applies the LT predicate on the "value_raw" field.
func ValueRawLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldValueRaw, v))
}

// ValueRawLTE applies the LTE predicate on the "value_raw" field.
func ValueRawLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldValueRaw, v))
}

// ValueRawContains applies the Contains predicate on the "value_raw" field.
func ValueRawContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldValueRaw, v))
}

// ValueRawHasPrefix applies the HasPrefix predicate on the "value_raw" field.
func ValueRawHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldValueRaw, v))
}

// ValueRawHasSuffix applies the HasSuffix predicate on the "value_raw" field.
func ValueRawHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldValueRaw, v))
}

// ValueRawIsNil applies the IsNil predicate on the "value_raw" field.
func ValueRawIsNil() predicate.Cell {
	return predicate.Cell(sql.FieldIsNull(FieldValueRaw))
}

// ValueRawNotNil applies the NotNil predicate on the "value_raw" field.
func ValueRawNotNil() predicate.Cell {
	return predicate.Cell(sql.FieldNotNull(FieldValueRaw))
}

// ValueRawEqualFold applies the EqualFold predicate on the "value_raw" field.
func ValueRawEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldValueRaw, v))
}

// ValueRawContainsFold applies the ContainsFold predicate on the "value_raw" field.
func ValueRawContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldValueRaw, v))
}

// ValueNormalizedEQ applies the EQ predicate on the "value_normalized" field.
func ValueNormalizedEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldValueNormalized, v))
}

// ValueNormalizedNEQ applies the NEQ predicate on the "value_normalized" field.
func ValueNormalizedNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldValueNormalized, v))
}

// ValueNormalizedIn applies the In predicate on the "value_normalized" field.
func ValueNormalizedIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldValueNormalized, vs...))
}

// ValueNormalizedNotIn applies the NotIn predicate on the "value_normalized" field.
func ValueNormalizedNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldValueNormalized, vs...))
}

// ValueNormalizedGT applies the GT predicate on the "value_normalized" field.
func ValueNormalizedGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldValueNormalized, v))
}

// ValueNormalizedGTE applies the GTE predicate on the "value_normalized" field.
func ValueNormalizedGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldValueNormalized, v))
}

// ValueNormalizedLT applies the LT predicate on the "value_normalized" field.
func ValueNormalizedLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldValueNormalized, v))
}

// ValueNormalizedLTE applies the LTE predicate on the "value_normalized" field.
func ValueNormalizedLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldValueNormalized, v))
}

// ValueNormalizedContains applies the Contains predicate on the "value_normalized" field.
func ValueNormalizedContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldValueNormalized, v))
}

// ValueNormalizedHasPrefix applies the HasPrefix predicate on the "value_normalized" field.
func ValueNormalizedHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldValueNormalized, v))
}

// ValueNormalizedHasSuffix applies the HasSuffix predicate on the "value_normalized" field.
func ValueNormalizedHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldValueNormalized, v))
}

// ValueNormalizedIsNil applies the IsNil predicate on the "value_normalized" field.
func ValueNormalizedIsNil() predicate.Cell {
	return predicate.Cell(sql.FieldIsNull(FieldValueNormalized))
}

// ValueNormalizedNotNil applies the NotNil predicate on the "value_normalized" field.
func ValueNormalizedNotNil() predicate.Cell {
	return predicate.Cell(sql.FieldNotNull(FieldValueNormalized))
}

// ValueNormalizedEqualFold applies the EqualFold predicate on the "value_normalized" field.
func ValueNormalizedEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldValueNormalized, v))
}

// ValueNormalizedContainsFold applies the ContainsFold predicate on the "value_normalized" field.
func ValueNormalizedContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldValueNormalized, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldConfidence, v))
}

// ReviewStateEQ applies the EQ predicate on the "review_state" field.
func ReviewStateEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldReviewState, v))
}

// ReviewStateNEQ applies the NEQ predicate on the "review_state" field.
func ReviewStateNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldReviewState, v))
}

// ReviewStateIn applies the In predicate on the "review_state" field.
func ReviewStateIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldReviewState, vs...))
}

// ReviewStateNotIn applies the NotIn predicate on the "review_state" field.
func ReviewStateNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldReviewState, vs...))
}

// ReviewStateGT applies the GT predicate on the "review_state" field.
func ReviewStateGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldReviewState, v))
}

// ReviewStateGTE applies the GTE predicate on the "review_state" field.
func ReviewStateGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldReviewState, v))
}

// ReviewStateLT applies the LT predicate on the "review_state" field.
func ReviewStateLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldReviewState, v))
}

// ReviewStateLTE applies the LTE predicate on the "review_state" field.
func ReviewStateLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldReviewState, v))
}

// ReviewStateContains applies the Contains predicate on the "review_state" field.
func ReviewStateContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldReviewState, v))
}

// ReviewStateHasPrefix applies the HasPrefix predicate on the "review_state" field.
func ReviewStateHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldReviewState, v))
}

// ReviewStateHasSuffix applies the HasSuffix predicate on the "review_state" field.
func ReviewStateHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldReviewState, v))
}

// ReviewStateEqualFold applies the EqualFold predicate on the "review_state" field.
func ReviewStateEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldReviewState, v))
}

// ReviewStateContainsFold applies the ContainsFold predicate on the "review_state" field.
func ReviewStateContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldReviewState, v))
}

// CitationIsNil applies the IsNil predicate on the "citation" field.
func CitationIsNil() predicate.Cell {
	return predicate.Cell(sql.FieldIsNull(FieldCitation))
}

// CitationNotNil applies the NotNil predicate on the "citation" field.
func CitationNotNil() predicate.Cell {
	return predicate.Cell(sql.FieldNotNull(FieldCitation))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldOrdinal, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ReviewJob) predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditEntries applies the HasEdge predicate on the "audit_entries" edge.
func HasAuditEntries() predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditEntriesWith applies the HasEdge predicate on the "audit_entries" edge with a given conditions (other predicates).
func HasAuditEntriesWith(preds ...predicate.AuditEntry) predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := newAuditEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.NotPredicates(p))
}
