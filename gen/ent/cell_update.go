// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"ent/auditentry"
	"ent/cell"
	"ent/document"
	"ent/predicate"
	"ent/reviewjob"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CellUpdate is the builder for updating Cell entities.
type CellUpdate struct {
	config
	hooks    []Hook
	mutation *CellMutation
}

// Where appends a list predicates to the CellUpdate builder.
func (_u *CellUpdate) Where(ps ...predicate.Cell) *CellUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *CellUpdate) SetJobID(v uuid.UUID) *CellUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CellUpdate) SetNillableJobID(v *uuid.UUID) *CellUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *CellUpdate) SetDocumentID(v string) *CellUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CellUpdate) SetNillableDocumentID(v *string) *CellUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentIdentifier sets the "document_identifier" field.
func (_u *CellUpdate) SetDocumentIdentifier(v string) *CellUpdate {
	_u.mutation.SetDocumentIdentifier(v)
	return _u
}

// SetNillableDocumentIdentifier sets the "document_identifier" field if the given value is not nil.
func (_u *CellUpdate) SetNillableDocumentIdentifier(v *string) *CellUpdate {
	if v != nil {
		_u.SetDocumentIdentifier(*v)
	}
	return _u
}

// SetFieldKey sets the "field_key" field.
func (_u *CellUpdate) SetFieldKey(v string) *CellUpdate {
	_u.mutation.SetFieldKey(v)
	return _u
}

// SetNillableFieldKey sets the "field_key" field if the given value is not nil.
func (_u *CellUpdate) SetNillableFieldKey(v *string) *CellUpdate {
	if v != nil {
		_u.SetFieldKey(*v)
	}
	return _u
}

// SetFieldLabel sets the "field_label" field.
func (_u *CellUpdate) SetFieldLabel(v string) *CellUpdate {
	_u.mutation.SetFieldLabel(v)
	return _u
}

// SetNillableFieldLabel sets the "field_label" field if the given value is not nil.
func (_u *CellUpdate) SetNillableFieldLabel(v *string) *CellUpdate {
	if v != nil {
		_u.SetFieldLabel(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *CellUpdate) SetFieldType(v string) *CellUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *CellUpdate) SetNillableFieldType(v *string) *CellUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CellUpdate) SetValue(v string) *CellUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *CellUpdate) SetNillableValue(v *string) *CellUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *CellUpdate) ClearValue() *CellUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetValueNormalized sets the "value_normalized" field.
func (_u *CellUpdate) SetValueNormalized(v string) *CellUpdate {
	_u.mutation.SetValueNormalized(v)
	return _u
}

// SetNillableValueNormalized sets the "value_normalized" field if the given value is not nil.
func (_u *CellUpdate) SetNillableValueNormalized(v *string) *CellUpdate {
	if v != nil {
		_u.SetValueNormalized(*v)
	}
	return _u
}

// ClearValueNormalized clears the value of the "value_normalized" field.
func (_u *CellUpdate) ClearValueNormalized() *CellUpdate {
	_u.mutation.ClearValueNormalized()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CellUpdate) SetConfidence(v float64) *CellUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CellUpdate) SetNillableConfidence(v *float64) *CellUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CellUpdate) AddConfidence(v float64) *CellUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfidenceReasons sets the "confidence_reasons" field.
func (_u *CellUpdate) SetConfidenceReasons(v []string) *CellUpdate {
	_u.mutation.SetConfidenceReasons(v)
	return _u
}

// AppendConfidenceReasons appends value to the "confidence_reasons" field.
func (_u *CellUpdate) AppendConfidenceReasons(v []string) *CellUpdate {
	_u.mutation.AppendConfidenceReasons(v)
	return _u
}

// SetReviewState sets the "review_state" field.
func (_u *CellUpdate) SetReviewState(v string) *CellUpdate {
	_u.mutation.SetReviewState(v)
	return _u
}

// SetNillableReviewState sets the "review_state" field if the given value is not nil.
func (_u *CellUpdate) SetNillableReviewState(v *string) *CellUpdate {
	if v != nil {
		_u.SetReviewState(*v)
	}
	return _u
}

// SetCitation sets the "citation" field.
func (_u *CellUpdate) SetCitation(v json.RawMessage) *CellUpdate {
	_u.mutation.SetCitation(v)
	return _u
}

// AppendCitation appends value to the "citation" field.
func (_u *CellUpdate) AppendCitation(v json.RawMessage) *CellUpdate {
	_u.mutation.AppendCitation(v)
	return _u
}

// ClearCitation clears the value of the "citation" field.
func (_u *CellUpdate) ClearCitation() *CellUpdate {
	_u.mutation.ClearCitation()
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *CellUpdate) SetOrdinal(v int) *CellUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *CellUpdate) SetNillableOrdinal(v *int) *CellUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *CellUpdate) AddOrdinal(v int) *CellUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CellUpdate) SetVersion(v int) *CellUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CellUpdate) SetNillableVersion(v *int) *CellUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CellUpdate) AddVersion(v int) *CellUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CellUpdate) SetCreatedAt(v time.Time) *CellUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CellUpdate) SetNillableCreatedAt(v *time.Time) *CellUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellUpdate) SetUpdatedAt(v time.Time) *CellUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ReviewJob entity.
func (_u *CellUpdate) SetJob(v *ReviewJob) *CellUpdate {
	return _u.SetJobID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CellUpdate) SetDocument(v *Document) *CellUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *CellUpdate) AddAuditEntryIDs(ids ...uuid.UUID) *CellUpdate {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *CellUpdate) AddAuditEntries(v ...*AuditEntry) *CellUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the CellMutation object of the builder.
func (_u *CellUpdate) Mutation() *CellMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ReviewJob entity.
func (_u *CellUpdate) ClearJob() *CellUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CellUpdate) ClearDocument() *CellUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *CellUpdate) ClearAuditEntries() *CellUpdate {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *CellUpdate) RemoveAuditEntryIDs(ids ...uuid.UUID) *CellUpdate {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *CellUpdate) RemoveAuditEntries(v ...*AuditEntry) *CellUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CellUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CellUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cell.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := cell.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "Cell.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentIdentifier(); ok {
		if err := cell.DocumentIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "document_identifier", err: fmt.Errorf(`ent: validator failed for field "Cell.document_identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldKey(); ok {
		if err := cell.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "Cell.field_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldLabel(); ok {
		if err := cell.FieldLabelValidator(v); err != nil {
			return &ValidationError{Name: "field_label", err: fmt.Errorf(`ent: validator failed for field "Cell.field_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := cell.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "Cell.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewState(); ok {
		if err := cell.ReviewStateValidator(v); err != nil {
			return &ValidationError{Name: "review_state", err: fmt.Errorf(`ent: validator failed for field "Cell.review_state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cell.job"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cell.document"`)
	}
	return nil
}

func (_u *CellUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cell.Table, cell.Columns, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentIdentifier(); ok {
		_spec.SetField(cell.FieldDocumentIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldKey(); ok {
		_spec.SetField(cell.FieldFieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldLabel(); ok {
		_spec.SetField(cell.FieldFieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(cell.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cell.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(cell.FieldValue, field.TypeString)
	}
	if _u.mutation.ValueRawCleared() {
		_spec.ClearField(cell.FieldValueRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ValueNormalized(); ok {
		_spec.SetField(cell.FieldValueNormalized, field.TypeString, value)
	}
	if _u.mutation.ValueNormalizedCleared() {
		_spec.ClearField(cell.FieldValueNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cell.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cell.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceReasons(); ok {
		_spec.SetField(cell.FieldConfidenceReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cell.FieldConfidenceReasons, value)
		})
	}
	if value, ok := _u.mutation.ReviewState(); ok {
		_spec.SetField(cell.FieldReviewState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Citation(); ok {
		_spec.SetField(cell.FieldCitation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cell.FieldCitation, value)
		})
	}
	if _u.mutation.CitationCleared() {
		_spec.ClearField(cell.FieldCitation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(cell.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(cell.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(cell.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(cell.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cell.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cell.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.JobTable,
			Columns: []string{cell.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.JobTable,
			Columns: []string{cell.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.DocumentTable,
			Columns: []string{cell.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.DocumentTable,
			Columns: []string{cell.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CellUpdateOne is the builder for updating a single Cell entity.
type CellUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CellMutation
}

// SetJobID sets the "job_id" field.
func (_u *CellUpdateOne) SetJobID(v uuid.UUID) *CellUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableJobID(v *uuid.UUID) *CellUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *CellUpdateOne) SetDocumentID(v string) *CellUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableDocumentID(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentIdentifier sets the "document_identifier" field.
func (_u *CellUpdateOne) SetDocumentIdentifier(v string) *CellUpdateOne {
	_u.mutation.SetDocumentIdentifier(v)
	return _u
}

// SetNillableDocumentIdentifier sets the "document_identifier" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableDocumentIdentifier(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetDocumentIdentifier(*v)
	}
	return _u
}

// SetFieldKey sets the "field_key" field.
func (_u *CellUpdateOne) SetFieldKey(v string) *CellUpdateOne {
	_u.mutation.SetFieldKey(v)
	return _u
}

// SetNillableFieldKey sets the "field_key" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableFieldKey(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetFieldKey(*v)
	}
	return _u
}

// SetFieldLabel sets the "field_label" field.
func (_u *CellUpdateOne) SetFieldLabel(v string) *CellUpdateOne {
	_u.mutation.SetFieldLabel(v)
	return _u
}

// SetNillableFieldLabel sets the "field_label" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableFieldLabel(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetFieldLabel(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *CellUpdateOne) SetFieldType(v string) *CellUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableFieldType(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CellUpdateOne) SetValue(v string) *CellUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableValue(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *CellUpdateOne) ClearValue() *CellUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetValueNormalized sets the "value_normalized" field.
func (_u *CellUpdateOne) SetValueNormalized(v string) *CellUpdateOne {
	_u.mutation.SetValueNormalized(v)
	return _u
}

// SetNillableValueNormalized sets the "value_normalized" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableValueNormalized(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetValueNormalized(*v)
	}
	return _u
}

// ClearValueNormalized clears the value of the "value_normalized" field.
func (_u *CellUpdateOne) ClearValueNormalized() *CellUpdateOne {
	_u.mutation.ClearValueNormalized()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CellUpdateOne) SetConfidence(v float64) *CellUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableConfidence(v *float64) *CellUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CellUpdateOne) AddConfidence(v float64) *CellUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfidenceReasons sets the "confidence_reasons" field.
func (_u *CellUpdateOne) SetConfidenceReasons(v []string) *CellUpdateOne {
	_u.mutation.SetConfidenceReasons(v)
	return _u
}

// AppendConfidenceReasons appends value to the "confidence_reasons" field.
func (_u *CellUpdateOne) AppendConfidenceReasons(v []string) *CellUpdateOne {
	_u.mutation.AppendConfidenceReasons(v)
	return _u
}

// SetReviewState sets the "review_state" field.
func (_u *CellUpdateOne) SetReviewState(v string) *CellUpdateOne {
	_u.mutation.SetReviewState(v)
	return _u
}

// SetNillableReviewState sets the "review_state" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableReviewState(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetReviewState(*v)
	}
	return _u
}

// SetCitation sets the "citation" field.
func (_u *CellUpdateOne) SetCitation(v json.RawMessage) *CellUpdateOne {
	_u.mutation.SetCitation(v)
	return _u
}

// AppendCitation appends value to the "citation" field.
func (_u *CellUpdateOne) AppendCitation(v json.RawMessage) *CellUpdateOne {
	_u.mutation.AppendCitation(v)
	return _u
}

// ClearCitation clears the value of the "citation" field.
func (_u *CellUpdateOne) ClearCitation() *CellUpdateOne {
	_u.mutation.ClearCitation()
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *CellUpdateOne) SetOrdinal(v int) *CellUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableOrdinal(v *int) *CellUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *CellUpdateOne) AddOrdinal(v int) *CellUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CellUpdateOne) SetVersion(v int) *CellUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableVersion(v *int) *CellUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CellUpdateOne) AddVersion(v int) *CellUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CellUpdateOne) SetCreatedAt(v time.Time) *CellUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableCreatedAt(v *time.Time) *CellUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellUpdateOne) SetUpdatedAt(v time.Time) *CellUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ReviewJob entity.
func (_u *CellUpdateOne) SetJob(v *ReviewJob) *CellUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CellUpdateOne) SetDocument(v *Document) *CellUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_u *CellUpdateOne) AddAuditEntryIDs(ids ...uuid.UUID) *CellUpdateOne {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_u *CellUpdateOne) AddAuditEntries(v ...*AuditEntry) *CellUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the CellMutation object of the builder.
func (_u *CellUpdateOne) Mutation() *CellMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ReviewJob entity.
func (_u *CellUpdateOne) ClearJob() *CellUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CellUpdateOne) ClearDocument() *CellUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditEntry entity.
func (_u *CellUpdateOne) ClearAuditEntries() *CellUpdateOne {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditEntry entities by IDs.
func (_u *CellUpdateOne) RemoveAuditEntryIDs(ids ...uuid.UUID) *CellUpdateOne {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditEntry entities.
func (_u *CellUpdateOne) RemoveAuditEntries(v ...*AuditEntry) *CellUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// Where appends a list predicates to the CellUpdate builder.
func (_u *CellUpdateOne) Where(ps ...predicate.Cell) *CellUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CellUpdateOne) Select(field string, fields ...string) *CellUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cell entity.
func (_u *CellUpdateOne) Save(ctx context.Context) (*Cell, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellUpdateOne) SaveX(ctx context.Context) *Cell {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CellUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cell.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := cell.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "Cell.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentIdentifier(); ok {
		if err := cell.DocumentIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "document_identifier", err: fmt.Errorf(`ent: validator failed for field "Cell.document_identifier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldKey(); ok {
		if err := cell.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "Cell.field_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldLabel(); ok {
		if err := cell.FieldLabelValidator(v); err != nil {
			return &ValidationError{Name: "field_label", err: fmt.Errorf(`ent: validator failed for field "Cell.field_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := cell.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "Cell.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewState(); ok {
		if err := cell.ReviewStateValidator(v); err != nil {
			return &ValidationError{Name: "review_state", err: fmt.Errorf(`ent: validator failed for field "Cell.review_state": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cell.job"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Cell.document"`)
	}
	return nil
}

func (_u *CellUpdateOne) sqlSave(ctx context.Context) (_node *Cell, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cell.Table, cell.Columns, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cell.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cell.FieldID)
		for _, f := range fields {
			if !cell.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cell.FieldID {
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
	if value, ok := _u.mutation.DocumentIdentifier(); ok {
		_spec.SetField(cell.FieldDocumentIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldKey(); ok {
		_spec.SetField(cell.FieldFieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldLabel(); ok {
		_spec.SetField(cell.FieldFieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(cell.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cell.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(cell.FieldValue, field.TypeString)
	}
	if _u.mutation.ValueRawCleared() {
		_spec.ClearField(cell.FieldValueRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ValueNormalized(); ok {
		_spec.SetField(cell.FieldValueNormalized, field.TypeString, value)
	}
	if _u.mutation.ValueNormalizedCleared() {
		_spec.ClearField(cell.FieldValueNormalized, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cell.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cell.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceReasons(); ok {
		_spec.SetField(cell.FieldConfidenceReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cell.FieldConfidenceReasons, value)
		})
	}
	if value, ok := _u.mutation.ReviewState(); ok {
		_spec.SetField(cell.FieldReviewState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Citation(); ok {
		_spec.SetField(cell.FieldCitation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCitation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cell.FieldCitation, value)
		})
	}
	if _u.mutation.CitationCleared() {
		_spec.ClearField(cell.FieldCitation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(cell.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(cell.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(cell.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(cell.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cell.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cell.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.JobTable,
			Columns: []string{cell.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.JobTable,
			Columns: []string{cell.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.DocumentTable,
			Columns: []string{cell.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cell.DocumentTable,
			Columns: []string{cell.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cell.AuditEntriesTable,
			Columns: []string{cell.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Cell{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
