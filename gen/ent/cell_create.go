// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"ent/auditentry"
	"ent/cell"
	"ent/document"
	"ent/reviewjob"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CellCreate is the builder for creating a Cell entity.
type CellCreate struct {
	config
	mutation *CellMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *CellCreate) SetJobID(v uuid.UUID) *CellCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *CellCreate) SetDocumentID(v string) *CellCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDocumentIdentifier sets the "document_identifier" field.
func (_c *CellCreate) SetDocumentIdentifier(v string) *CellCreate {
	_c.mutation.SetDocumentIdentifier(v)
	return _c
}

// SetFieldKey sets the "field_key" field.
func (_c *CellCreate) SetFieldKey(v string) *CellCreate {
	_c.mutation.SetFieldKey(v)
	return _c
}

// SetFieldLabel sets the "field_label" field.
func (_c *CellCreate) SetFieldLabel(v string) *CellCreate {
	_c.mutation.SetFieldLabel(v)
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *CellCreate) SetFieldType(v string) *CellCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *CellCreate) SetValue(v string) *CellCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *CellCreate) SetNillableValue(v *string) *CellCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetValueRaw sets the "value_raw" field.
func (_c *CellCreate) SetValueRaw(v string) *CellCreate {
	_c.mutation.SetValueRaw(v)
	return _c
}

// SetNillableValueRaw sets the "value_raw" field if the given value is not nil.
func (_c *CellCreate) SetNillableValueRaw(v *string) *CellCreate {
	if v != nil {
		_c.SetValueRaw(*v)
	}
	return _c
}

// SetValueNormalized sets the "value_normalized" field.
func (_c *CellCreate) SetValueNormalized(v string) *CellCreate {
	_c.mutation.SetValueNormalized(v)
	return _c
}

// SetNillableValueNormalized sets the "value_normalized" field if the given value is not nil.
func (_c *CellCreate) SetNillableValueNormalized(v *string) *CellCreate {
	if v != nil {
		_c.SetValueNormalized(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CellCreate) SetConfidence(v float64) *CellCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetConfidenceReasons sets the "confidence_reasons" field.
func (_c *CellCreate) SetConfidenceReasons(v []string) *CellCreate {
	_c.mutation.SetConfidenceReasons(v)
	return _c
}

// SetReviewState sets the "review_state" field.
func (_c *CellCreate) SetReviewState(v string) *CellCreate {
	_c.mutation.SetReviewState(v)
	return _c
}

// SetCitation sets the "citation" field.
func (_c *CellCreate) SetCitation(v json.RawMessage) *CellCreate {
	_c.mutation.SetCitation(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *CellCreate) SetOrdinal(v int) *CellCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CellCreate) SetVersion(v int) *CellCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CellCreate) SetNillableVersion(v *int) *CellCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CellCreate) SetCreatedAt(v time.Time) *CellCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CellCreate) SetNillableCreatedAt(v *time.Time) *CellCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CellCreate) SetUpdatedAt(v time.Time) *CellCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CellCreate) SetNillableUpdatedAt(v *time.Time) *CellCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CellCreate) SetID(v uuid.UUID) *CellCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CellCreate) SetNillableID(v *uuid.UUID) *CellCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ReviewJob entity.
func (_c *CellCreate) SetJob(v *ReviewJob) *CellCreate {
	return _c.SetJobID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *CellCreate) SetDocument(v *Document) *CellCreate {
	return _c.SetDocumentID(v.ID)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by IDs.
func (_c *CellCreate) AddAuditEntryIDs(ids ...uuid.UUID) *CellCreate {
	_c.mutation.AddAuditEntryIDs(ids...)
	return _c
}

// AddAuditEntries adds the "audit_entries" edges to the AuditEntry entity.
func (_c *CellCreate) AddAuditEntries(v ...*AuditEntry) *CellCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditEntryIDs(ids...)
}

// Mutation returns the CellMutation object of the builder.
func (_c *CellCreate) Mutation() *CellMutation {
	return _c.mutation
}

// Save creates the Cell in the database.
func (_c *CellCreate) Save(ctx context.Context) (*Cell, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellCreate) SaveX(ctx context.Context) *Cell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CellCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := cell.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cell.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cell.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cell.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Cell.job_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Cell.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := cell.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "Cell.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentIdentifier(); !ok {
		return &ValidationError{Name: "document_identifier", err: errors.New(`ent: missing required field "Cell.document_identifier"`)}
	}
	if v, ok := _c.mutation.DocumentIdentifier(); ok {
		if err := cell.DocumentIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "document_identifier", err: fmt.Errorf(`ent: validator failed for field "Cell.document_identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldKey(); !ok {
		return &ValidationError{Name: "field_key", err: errors.New(`ent: missing required field "Cell.field_key"`)}
	}
	if v, ok := _c.mutation.FieldKey(); ok {
		if err := cell.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "Cell.field_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldLabel(); !ok {
		return &ValidationError{Name: "field_label", err: errors.New(`ent: missing required field "Cell.field_label"`)}
	}
	if v, ok := _c.mutation.FieldLabel(); ok {
		if err := cell.FieldLabelValidator(v); err != nil {
			return &ValidationError{Name: "field_label", err: fmt.Errorf(`ent: validator failed for field "Cell.field_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "Cell.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := cell.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "Cell.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Cell.confidence"`)}
	}
	if _, ok := _c.mutation.ConfidenceReasons(); !ok {
		return &ValidationError{Name: "confidence_reasons", err: errors.New(`ent: missing required field "Cell.confidence_reasons"`)}
	}
	if _, ok := _c.mutation.ReviewState(); !ok {
		return &ValidationError{Name: "review_state", err: errors.New(`ent: missing required field "Cell.review_state"`)}
	}
	if v, ok := _c.mutation.ReviewState(); ok {
		if err := cell.ReviewStateValidator(v); err != nil {
			return &ValidationError{Name: "review_state", err: fmt.Errorf(`ent: validator failed for field "Cell.review_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "Cell.ordinal"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Cell.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Cell.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Cell.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Cell.job"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Cell.document"`)}
	}
	return nil
}

func (_c *CellCreate) sqlSave(ctx context.Context) (*Cell, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CellCreate) createSpec() (*Cell, *sqlgraph.CreateSpec) {
	var (
		_node = &Cell{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cell.Table, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentIdentifier(); ok {
		_spec.SetField(cell.FieldDocumentIdentifier, field.TypeString, value)
		_node.DocumentIdentifier = value
	}
	if value, ok := _c.mutation.FieldKey(); ok {
		_spec.SetField(cell.FieldFieldKey, field.TypeString, value)
		_node.FieldKey = value
	}
	if value, ok := _c.mutation.FieldLabel(); ok {
		_spec.SetField(cell.FieldFieldLabel, field.TypeString, value)
		_node.FieldLabel = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(cell.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(cell.FieldValue, field.TypeString, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.ValueRaw(); ok {
		_spec.SetField(cell.FieldValueRaw, field.TypeString, value)
		_node.ValueRaw = &value
	}
	if value, ok := _c.mutation.ValueNormalized(); ok {
		_spec.SetField(cell.FieldValueNormalized, field.TypeString, value)
		_node.ValueNormalized = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(cell.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ConfidenceReasons(); ok {
		_spec.SetField(cell.FieldConfidenceReasons, field.TypeJSON, value)
		_node.ConfidenceReasons = value
	}
	if value, ok := _c.mutation.ReviewState(); ok {
		_spec.SetField(cell.FieldReviewState, field.TypeString, value)
		_node.ReviewState = value
	}
	if value, ok := _c.mutation.Citation(); ok {
		_spec.SetField(cell.FieldCitation, field.TypeJSON, value)
		_node.Citation = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(cell.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(cell.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cell.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cell.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CellCreateBulk is the builder for creating many Cell entities in bulk.
type CellCreateBulk struct {
	config
	err      error
	builders []*CellCreate
}

// Save creates the Cell entities in the database.
func (_c *CellCreateBulk) Save(ctx context.Context) ([]*Cell, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cell, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellMutation)
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
func (_c *CellCreateBulk) SaveX(ctx context.Context) []*Cell {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
