// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldID, id))
}

// CellID applies equality check predicate on the "cell_id" field. It's identical to CellIDEQ.
func CellID(v uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCellID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSeq, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldActor, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldReason, v))
}

// BeforeValue applies equality check predicate on the "before_value" field. It's identical to BeforeValueEQ.
func BeforeValue(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldBeforeValue, v))
}

// AfterValue applies equality check predicate on the "after_value" field. It's identical to AfterValueEQ.
func AfterValue(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAfterValue, v))
}

// BeforeState applies equality check predicate on the "before_state" field. It's identical to BeforeStateEQ.
func BeforeState(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldBeforeState, v))
}

// AfterState applies equality check predicate on the "after_state" field. It's identical to AfterStateEQ.
func AfterState(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAfterState, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CellIDEQ applies the EQ predicate on the "cell_id" field.
func CellIDEQ(v uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCellID, v))
}

// CellIDNEQ applies the NEQ predicate on the "cell_id" field.
func CellIDNEQ(v uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldCellID, v))
}

// CellIDIn applies the In predicate on the "cell_id" field.
func CellIDIn(vs ...uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldCellID, vs...))
}

// CellIDNotIn applies the NotIn predicate on the "cell_id" field.
func CellIDNotIn(vs ...uuid.UUID) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldCellID, vs...))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldSeq, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldActor, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldAction, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldReason, v))
}

// BeforeValueEQ applies the EQ predicate on the "before_value" field.
func BeforeValueEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldBeforeValue, v))
}

// BeforeValueNEQ applies the NEQ predicate on the "before_value" field.
func BeforeValueNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldBeforeValue, v))
}

// BeforeValueIn applies the In predicate on the "before_value" field.
func BeforeValueIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldBeforeValue, vs...))
}

// BeforeValueNotIn applies the NotIn predicate on the "before_value" field.
func BeforeValueNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldBeforeValue, vs...))
}

// BeforeValueGT applies the GT predicate on the "before_value" field.
func BeforeValueGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldBeforeValue, v))
}

// BeforeValueGTE applies the GTE predicate on the "before_value" field.
func BeforeValueGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldBeforeValue, v))
}

// BeforeValueLT applies the LT predicate on the "before_value" field.
func BeforeValueLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldBeforeValue, v))
}

// BeforeValueLTE applies the LTE predicate on the "before_value" field.
func BeforeValueLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldBeforeValue, v))
}

// BeforeValueContains applies the Contains predicate on the "before_value" field.
func BeforeValueContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldBeforeValue, v))
}

// BeforeValueHasPrefix applies the HasPrefix predicate on the "before_value" field.
func BeforeValueHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldBeforeValue, v))
}

// BeforeValueHasSuffix applies the HasSuffix predicate on the "before_value" field.
func BeforeValueHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldBeforeValue, v))
}

// BeforeValueIsNil applies the IsNil predicate on the "before_value" field.
func BeforeValueIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldBeforeValue))
}

// BeforeValueNotNil applies the NotNil predicate on the "before_value" field.
func BeforeValueNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldBeforeValue))
}

// BeforeValueEqualFold applies the EqualFold predicate on the "before_value" field.
func BeforeValueEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldBeforeValue, v))
}

// BeforeValueContainsFold applies the ContainsFold predicate on the "before_value" field.
func BeforeValueContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldBeforeValue, v))
}

// AfterValueEQ applies the EQ predicate on the "after_value" field.
func AfterValueEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAfterValue, v))
}

// AfterValueNEQ applies the NEQ predicate on the "after_value" field.
func AfterValueNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldAfterValue, v))
}

// AfterValueIn applies the In predicate on the "after_value" field.
func AfterValueIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldAfterValue, vs...))
}

// AfterValueNotIn applies the NotIn predicate on the "after_value" field.
func AfterValueNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldAfterValue, vs...))
}

// AfterValueGT applies the GT predicate on the "after_value" field.
func AfterValueGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldAfterValue, v))
}

// AfterValueGTE applies the GTE predicate on the "after_value" field.
func AfterValueGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldAfterValue, v))
}

// AfterValueLT applies the LT predicate on the "after_value" field.
func AfterValueLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldAfterValue, v))
}

// AfterValueLTE applies the LTE predicate on the "after_value" field.
func AfterValueLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldAfterValue, v))
}

// AfterValueContains applies the Contains predicate on the "after_value" field.
func AfterValueContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldAfterValue, v))
}

// AfterValueHasPrefix applies the HasPrefix predicate on the "after_value" field.
func AfterValueHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldAfterValue, v))
}

// AfterValueHasSuffix applies the HasSuffix predicate on the "after_value" field.
func AfterValueHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldAfterValue, v))
}

// AfterValueIsNil applies the IsNil predicate on the "after_value" field.
func AfterValueIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldAfterValue))
}

// AfterValueNotNil applies the NotNil predicate on the "after_value" field.
func AfterValueNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldAfterValue))
}

// AfterValueEqualFold applies the EqualFold predicate on the "after_value" field.
func AfterValueEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldAfterValue, v))
}

// AfterValueContainsFold applies the ContainsFold predicate on the "after_value" field.
func AfterValueContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldAfterValue, v))
}

// BeforeStateEQ applies the EQ predicate on the "before_state" field.
func BeforeStateEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldBeforeState, v))
}

// BeforeStateNEQ applies the NEQ predicate on the "before_state" field.
func BeforeStateNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldBeforeState, v))
}

// BeforeStateIn applies the In predicate on the "before_state" field.
func BeforeStateIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldBeforeState, vs...))
}

// BeforeStateNotIn applies the NotIn predicate on the "before_state" field.
func BeforeStateNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldBeforeState, vs...))
}

// BeforeStateGT applies the GT predicate on the "before_state" field.
func BeforeStateGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldBeforeState, v))
}

// BeforeStateGTE applies the GTE predicate on the "before_state" field.
func BeforeStateGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldBeforeState, v))
}

// BeforeStateLT applies the LT predicate on the "before_state" field.
func BeforeStateLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldBeforeState, v))
}

// BeforeStateLTE applies the LTE predicate on the "before_state" field.
func BeforeStateLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldBeforeState, v))
}

// BeforeStateContains applies the Contains predicate on the "before_state" field.
func BeforeStateContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldBeforeState, v))
}

// BeforeStateHasPrefix applies the HasPrefix predicate on the "before_state" field.
func BeforeStateHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldBeforeState, v))
}

// BeforeStateHasSuffix applies the HasSuffix predicate on the "before_state" field.
func BeforeStateHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldBeforeState, v))
}

// BeforeStateEqualFold applies the EqualFold predicate on the "before_state" field.
func BeforeStateEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldBeforeState, v))
}

// BeforeStateContainsFold applies the ContainsFold predicate on the "before_state" field.
func BeforeStateContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldBeforeState, v))
}

// AfterStateEQ applies the EQ predicate on the "after_state" field.
func AfterStateEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAfterState, v))
}

// AfterStateNEQ applies the NEQ predicate on the "after_state" field.
func AfterStateNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldAfterState, v))
}

// AfterStateIn applies the In predicate on the "after_state" field.
func AfterStateIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldAfterState, vs...))
}

// AfterStateNotIn applies the NotIn predicate on the "after_state" field.
func AfterStateNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldAfterState, vs...))
}

// AfterStateGT applies the GT predicate on the "after_state" field.
func AfterStateGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldAfterState, v))
}

// AfterStateGTE applies the GTE predicate on the "after_state" field.
func AfterStateGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldAfterState, v))
}

// AfterStateLT applies the LT predicate on the "after_state" field.
func AfterStateLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldAfterState, v))
}

// AfterStateLTE applies the LTE predicate on the "after_state" field.
func AfterStateLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldAfterState, v))
}

// AfterStateContains applies the Contains predicate on the "after_state" field.
func AfterStateContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldAfterState, v))
}

// AfterStateHasPrefix applies the HasPrefix predicate on the "after_state" field.
func AfterStateHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldAfterState, v))
}

// AfterStateHasSuffix applies the HasSuffix predicate on the "after_state" field.
func AfterStateHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldAfterState, v))
}

// AfterStateEqualFold applies the EqualFold predicate on the "after_state" field.
func AfterStateEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldAfterState, v))
}

// AfterStateContainsFold applies the ContainsFold predicate on the "after_state" field.
func AfterStateContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldAfterState, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCell applies the HasEdge predicate on the "cell" edge.
func HasCell() predicate.AuditEntry {
	return predicate.AuditEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellWith applies the HasEdge predicate on the "cell" edge with a given conditions (other predicates).
func HasCellWith(preds ...predicate.Cell) predicate.AuditEntry {
	return predicate.AuditEntry(func(s *sql.Selector) {
		step := newCellStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.NotPredicates(p))
}
