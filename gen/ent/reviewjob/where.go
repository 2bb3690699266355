// Code generated by ent, DO NOT EDIT.

package reviewjob

import (
	"ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldID, id))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldMode, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStatus, v))
}

// TemplatePath applies equality check predicate on the "template_path" field. It's identical to TemplatePathEQ.
func TemplatePath(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldTemplatePath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldFinishedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldMode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldStatus, v))
}

// TemplatePathEQ applies the EQ predicate on the "template_path" field.
func TemplatePathEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldTemplatePath, v))
}

// TemplatePathNEQ applies the NEQ predicate on the "template_path" field.
func TemplatePathNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldTemplatePath, v))
}

// TemplatePathIn applies the In predicate on the "template_path" field.
func TemplatePathIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldTemplatePath, vs...))
}

// TemplatePathNotIn applies the NotIn predicate on the "template_path" field.
func TemplatePathNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldTemplatePath, vs...))
}

// TemplatePathGT applies the GT predicate on the "template_path" field.
func TemplatePathGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldTemplatePath, v))
}

// TemplatePathGTE applies the GTE predicate on the "template_path" field.
func TemplatePathGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldTemplatePath, v))
}

// TemplatePathLT applies the LT predicate on the "template_path" field.
func TemplatePathLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldTemplatePath, v))
}

// TemplatePathLTE applies the LTE predicate on the "template_path" field.
func TemplatePathLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldTemplatePath, v))
}

// TemplatePathContains applies the Contains predicate on the "template_path" field.
func TemplatePathContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldTemplatePath, v))
}

// TemplatePathHasPrefix applies the HasPrefix predicate on the "template_path" field.
func TemplatePathHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldTemplatePath, v))
}

// TemplatePathHasSuffix applies the HasSuffix predicate on the "template_path" field.
func TemplatePathHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldTemplatePath, v))
}

// TemplatePathIsNil applies the IsNil predicate on the "template_path" field.
func TemplatePathIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldTemplatePath))
}

// TemplatePathNotNil applies the NotNil predicate on the "template_path" field.
func TemplatePathNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldTemplatePath))
}

// TemplatePathEqualFold applies the EqualFold predicate on the "template_path" field.
func TemplatePathEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldTemplatePath, v))
}

// TemplatePathContainsFold applies the ContainsFold predicate on the "template_path" field.
func TemplatePathContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldTemplatePath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DocumentErrorsIsNil applies the IsNil predicate on the "document_errors" field.
func DocumentErrorsIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldDocumentErrors))
}

// DocumentErrorsNotNil applies the NotNil predicate on the "document_errors" field.
func DocumentErrorsNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldDocumentErrors))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ReviewJob {
	return predicate.ReviewJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasCells applies the HasEdge predicate on the "cells" edge.
func HasCells() predicate.ReviewJob {
	return predicate.ReviewJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CellsTable, CellsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellsWith applies the HasEdge predicate on the "cells" edge with a given conditions (other predicates).
func HasCellsWith(preds ...predicate.Cell) predicate.ReviewJob {
	return predicate.ReviewJob(func(s *sql.Selector) {
		step := newCellsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewJob) predicate.ReviewJob {
	return predicate.ReviewJob(sql.NotPredicates(p))
}
