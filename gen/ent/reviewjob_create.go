// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"ent/cell"
	"ent/reviewjob"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReviewJobCreate is the builder for creating a ReviewJob entity.
type ReviewJobCreate struct {
	config
	mutation *ReviewJobMutation
	hooks    []Hook
}

// SetMode sets the "mode" field.
func (_c *ReviewJobCreate) SetMode(v string) *ReviewJobCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewJobCreate) SetStatus(v string) *ReviewJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetTemplatePath sets the "template_path" field.
func (_c *ReviewJobCreate) SetTemplatePath(v string) *ReviewJobCreate {
	_c.mutation.SetTemplatePath(v)
	return _c
}

// SetNillableTemplatePath sets the "template_path" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableTemplatePath(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetTemplatePath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReviewJobCreate) SetErrorMessage(v string) *ReviewJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableErrorMessage(v *string) *ReviewJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDocumentErrors sets the "document_errors" field.
func (_c *ReviewJobCreate) SetDocumentErrors(v json.RawMessage) *ReviewJobCreate {
	_c.mutation.SetDocumentErrors(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewJobCreate) SetCreatedAt(v time.Time) *ReviewJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableCreatedAt(v *time.Time) *ReviewJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ReviewJobCreate) SetStartedAt(v time.Time) *ReviewJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableStartedAt(v *time.Time) *ReviewJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ReviewJobCreate) SetFinishedAt(v time.Time) *ReviewJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableFinishedAt(v *time.Time) *ReviewJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewJobCreate) SetID(v uuid.UUID) *ReviewJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewJobCreate) SetNillableID(v *uuid.UUID) *ReviewJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddCellIDs adds the "cells" edge to the Cell entity by IDs.
func (_c *ReviewJobCreate) AddCellIDs(ids ...uuid.UUID) *ReviewJobCreate {
	_c.mutation.AddCellIDs(ids...)
	return _c
}

// AddCells adds the "cells" edges to the Cell entity.
func (_c *ReviewJobCreate) AddCells(v ...*Cell) *ReviewJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCellIDs(ids...)
}

// Mutation returns the ReviewJobMutation object of the builder.
func (_c *ReviewJobCreate) Mutation() *ReviewJobMutation {
	return _c.mutation
}

// Save creates the ReviewJob in the database.
func (_c *ReviewJobCreate) Save(ctx context.Context) (*ReviewJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewJobCreate) SaveX(ctx context.Context) *ReviewJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewJobCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reviewjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewJobCreate) check() error {
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ReviewJob.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := reviewjob.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reviewjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewJob.created_at"`)}
	}
	return nil
}

func (_c *ReviewJobCreate) sqlSave(ctx context.Context) (*ReviewJob, error) {
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

func (_c *ReviewJobCreate) createSpec() (*ReviewJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewjob.Table, sqlgraph.NewFieldSpec(reviewjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(reviewjob.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TemplatePath(); ok {
		_spec.SetField(reviewjob.FieldTemplatePath, field.TypeString, value)
		_node.TemplatePath = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.DocumentErrors(); ok {
		_spec.SetField(reviewjob.FieldDocumentErrors, field.TypeJSON, value)
		_node.DocumentErrors = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(reviewjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(reviewjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.CellsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewJobCreateBulk is the builder for creating many ReviewJob entities in bulk.
type ReviewJobCreateBulk struct {
	config
	err      error
	builders []*ReviewJobCreate
}

// Save creates the ReviewJob entities in the database.
func (_c *ReviewJobCreateBulk) Save(ctx context.Context) ([]*ReviewJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewJobMutation)
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
func (_c *ReviewJobCreateBulk) SaveX(ctx context.Context) []*ReviewJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
