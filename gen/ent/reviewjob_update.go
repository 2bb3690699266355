// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"ent/cell"
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

// ReviewJobUpdate is the builder for updating ReviewJob entities.
type ReviewJobUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewJobMutation
}

// Where appends a list predicates to the ReviewJobUpdate builder.
func (_u *ReviewJobUpdate) Where(ps ...predicate.ReviewJob) *ReviewJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *ReviewJobUpdate) SetMode(v string) *ReviewJobUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableMode(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewJobUpdate) SetStatus(v string) *ReviewJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableStatus(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTemplatePath sets the "template_path" field.
func (_u *ReviewJobUpdate) SetTemplatePath(v string) *ReviewJobUpdate {
	_u.mutation.SetTemplatePath(v)
	return _u
}

// SetNillableTemplatePath sets the "template_path" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableTemplatePath(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetTemplatePath(*v)
	}
	return _u
}

// ClearTemplatePath clears the value of the "template_path" field.
func (_u *ReviewJobUpdate) ClearTemplatePath() *ReviewJobUpdate {
	_u.mutation.ClearTemplatePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReviewJobUpdate) SetErrorMessage(v string) *ReviewJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableErrorMessage(v *string) *ReviewJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReviewJobUpdate) ClearErrorMessage() *ReviewJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocumentErrors sets the "document_errors" field.
func (_u *ReviewJobUpdate) SetDocumentErrors(v json.RawMessage) *ReviewJobUpdate {
	_u.mutation.SetDocumentErrors(v)
	return _u
}

// AppendDocumentErrors appends value to the "document_errors" field.
func (_u *ReviewJobUpdate) AppendDocumentErrors(v json.RawMessage) *ReviewJobUpdate {
	_u.mutation.AppendDocumentErrors(v)
	return _u
}

// ClearDocumentErrors clears the value of the "document_errors" field.
func (_u *ReviewJobUpdate) ClearDocumentErrors() *ReviewJobUpdate {
	_u.mutation.ClearDocumentErrors()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewJobUpdate) SetCreatedAt(v time.Time) *ReviewJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableCreatedAt(v *time.Time) *ReviewJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReviewJobUpdate) SetStartedAt(v time.Time) *ReviewJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableStartedAt(v *time.Time) *ReviewJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReviewJobUpdate) ClearStartedAt() *ReviewJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ReviewJobUpdate) SetFinishedAt(v time.Time) *ReviewJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ReviewJobUpdate) SetNillableFinishedAt(v *time.Time) *ReviewJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ReviewJobUpdate) ClearFinishedAt() *ReviewJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_u *ReviewJobUpdate) AddCellIDs(ids ...uuid.UUID) *ReviewJobUpdate {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the Cell entity.
func (_u *ReviewJobUpdate) AddCells(v ...*Cell) *ReviewJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_u *ReviewJobUpdate) Mutation() *ReviewJobMutation {
	return _u.mutation
}

// ClearCells clears all "cells" edges to the Cell entity.
func (_u *ReviewJobUpdate) ClearCells() *ReviewJobUpdate {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to Cell entities by IDs.
func (_u *ReviewJobUpdate) RemoveCellIDs(ids ...uuid.UUID) *ReviewJobUpdate {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to Cell entities.
func (_u *ReviewJobUpdate) RemoveCells(v ...*Cell) *ReviewJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewJobUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := reviewjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewjob.Table, reviewjob.Columns, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(reviewjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplatePath(); ok {
		_spec.SetField(reviewjob.FieldTemplatePath, field.TypeString, value)
	}
	if _u.mutation.TemplatePathCleared() {
		_spec.ClearField(reviewjob.FieldTemplatePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reviewjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentErrors(); ok {
		_spec.SetField(reviewjob.FieldDocumentErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldDocumentErrors, value)
		})
	}
	if _u.mutation.DocumentErrorsCleared() {
		_spec.ClearField(reviewjob.FieldDocumentErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reviewjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reviewjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(reviewjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(reviewjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewJobUpdateOne is the builder for updating a single ReviewJob entity.
type ReviewJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewJobMutation
}

// SetMode sets the "mode" field.
func (_u *ReviewJobUpdateOne) SetMode(v string) *ReviewJobUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableMode(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewJobUpdateOne) SetStatus(v string) *ReviewJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableStatus(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTemplatePath sets the "template_path" field.
func (_u *ReviewJobUpdateOne) SetTemplatePath(v string) *ReviewJobUpdateOne {
	_u.mutation.SetTemplatePath(v)
	return _u
}

// SetNillableTemplatePath sets the "template_path" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableTemplatePath(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetTemplatePath(*v)
	}
	return _u
}

// ClearTemplatePath clears the value of the "template_path" field.
func (_u *ReviewJobUpdateOne) ClearTemplatePath() *ReviewJobUpdateOne {
	_u.mutation.ClearTemplatePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReviewJobUpdateOne) SetErrorMessage(v string) *ReviewJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableErrorMessage(v *string) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReviewJobUpdateOne) ClearErrorMessage() *ReviewJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocumentErrors sets the "document_errors" field.
func (_u *ReviewJobUpdateOne) SetDocumentErrors(v json.RawMessage) *ReviewJobUpdateOne {
	_u.mutation.SetDocumentErrors(v)
	return _u
}

// AppendDocumentErrors appends value to the "document_errors" field.
func (_u *ReviewJobUpdateOne) AppendDocumentErrors(v json.RawMessage) *ReviewJobUpdateOne {
	_u.mutation.AppendDocumentErrors(v)
	return _u
}

// ClearDocumentErrors clears the value of the "document_errors" field.
func (_u *ReviewJobUpdateOne) ClearDocumentErrors() *ReviewJobUpdateOne {
	_u.mutation.ClearDocumentErrors()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewJobUpdateOne) SetCreatedAt(v time.Time) *ReviewJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReviewJobUpdateOne) SetStartedAt(v time.Time) *ReviewJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableStartedAt(v *time.Time) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReviewJobUpdateOne) ClearStartedAt() *ReviewJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ReviewJobUpdateOne) SetFinishedAt(v time.Time) *ReviewJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ReviewJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ReviewJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ReviewJobUpdateOne) ClearFinishedAt() *ReviewJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_u *ReviewJobUpdateOne) AddCellIDs(ids ...uuid.UUID) *ReviewJobUpdateOne {
	_u.mutation.AddCellIDs(ids...)
	return _u
}

// AddCells adds the "cells" edges to the Cell entity.
func (_u *ReviewJobUpdateOne) AddCells(v ...*Cell) *ReviewJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCellIDs(ids...)
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_u *ReviewJobUpdateOne) Mutation() *ReviewJobMutation {
	return _u.mutation
}

// ClearCells clears all "cells" edges to the Cell entity.
func (_u *ReviewJobUpdateOne) ClearCells() *ReviewJobUpdateOne {
	_u.mutation.ClearCells()
	return _u
}

// RemoveCellIDs removes the "cells" edge to Cell entities by IDs.
func (_u *ReviewJobUpdateOne) RemoveCellIDs(ids ...uuid.UUID) *ReviewJobUpdateOne {
	_u.mutation.RemoveCellIDs(ids...)
	return _u
}

// RemoveCells removes "cells" edges to Cell entities.
func (_u *ReviewJobUpdateOne) RemoveCells(v ...*Cell) *ReviewJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCellIDs(ids...)
}

// Where appends a list predicates to the ReviewJobUpdate builder.
func (_u *ReviewJobUpdateOne) Where(ps ...predicate.ReviewJob) *ReviewJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewJobUpdateOne) Select(field string, fields ...string) *ReviewJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewJob entity.
func (_u *ReviewJobUpdateOne) Save(ctx context.Context) (*ReviewJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewJobUpdateOne) SaveX(ctx context.Context) *ReviewJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewJobUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := reviewjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewJobUpdateOne) sqlSave(ctx context.Context) (_node *ReviewJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewjob.Table, reviewjob.Columns, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewjob.FieldID)
		for _, f := range fields {
			if !reviewjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewjob.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(reviewjob.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplatePath(); ok {
		_spec.SetField(reviewjob.FieldTemplatePath, field.TypeString, value)
	}
	if _u.mutation.TemplatePathCleared() {
		_spec.ClearField(reviewjob.FieldTemplatePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reviewjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentErrors(); ok {
		_spec.SetField(reviewjob.FieldDocumentErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewjob.FieldDocumentErrors, value)
		})
	}
	if _u.mutation.DocumentErrorsCleared() {
		_spec.ClearField(reviewjob.FieldDocumentErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reviewjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reviewjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(reviewjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(reviewjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCellsIDs(); len(nodes) > 0 && !_u.mutation.CellsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CellsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewjob.CellsTable,
			Columns: []string{reviewjob.CellsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReviewJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
