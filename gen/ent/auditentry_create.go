// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"ent/auditentry"
	"ent/cell"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
}

// SetCellID sets the "cell_id" field.
func (_c *AuditEntryCreate) SetCellID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetCellID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *AuditEntryCreate) SetSeq(v int) *AuditEntryCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *AuditEntryCreate) SetActor(v string) *AuditEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AuditEntryCreate) SetReason(v string) *AuditEntryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableReason(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetBeforeValue sets the "before_value" field.
func (_c *AuditEntryCreate) SetBeforeValue(v string) *AuditEntryCreate {
	_c.mutation.SetBeforeValue(v)
	return _c
}

// SetNillableBeforeValue sets the "before_value" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableBeforeValue(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetBeforeValue(*v)
	}
	return _c
}

// SetAfterValue sets the "after_value" field.
func (_c *AuditEntryCreate) SetAfterValue(v string) *AuditEntryCreate {
	_c.mutation.SetAfterValue(v)
	return _c
}

// SetNillableAfterValue sets the "after_value" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableAfterValue(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetAfterValue(*v)
	}
	return _c
}

// SetBeforeState sets the "before_state" field.
func (_c *AuditEntryCreate) SetBeforeState(v string) *AuditEntryCreate {
	_c.mutation.SetBeforeState(v)
	return _c
}

// SetAfterState sets the "after_state" field.
func (_c *AuditEntryCreate) SetAfterState(v string) *AuditEntryCreate {
	_c.mutation.SetAfterState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditEntryCreate) SetCreatedAt(v time.Time) *AuditEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableCreatedAt(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableID(v *uuid.UUID) *AuditEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCell sets the "cell" edge to the Cell entity.
func (_c *AuditEntryCreate) SetCell(v *Cell) *AuditEntryCreate {
	return _c.SetCellID(v.ID)
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := auditentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.CellID(); !ok {
		return &ValidationError{Name: "cell_id", err: errors.New(`ent: missing required field "AuditEntry.cell_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "AuditEntry.seq"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "AuditEntry.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := auditentry.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BeforeState(); !ok {
		return &ValidationError{Name: "before_state", err: errors.New(`ent: missing required field "AuditEntry.before_state"`)}
	}
	if v, ok := _c.mutation.BeforeState(); ok {
		if err := auditentry.BeforeStateValidator(v); err != nil {
			return &ValidationError{Name: "before_state", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.before_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AfterState(); !ok {
		return &ValidationError{Name: "after_state", err: errors.New(`ent: missing required field "AuditEntry.after_state"`)}
	}
	if v, ok := _c.mutation.AfterState(); ok {
		if err := auditentry.AfterStateValidator(v); err != nil {
			return &ValidationError{Name: "after_state", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.after_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditEntry.created_at"`)}
	}
	if len(_c.mutation.CellIDs()) == 0 {
		return &ValidationError{Name: "cell", err: errors.New(`ent: missing required edge "AuditEntry.cell"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(auditentry.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(auditentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(auditentry.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.BeforeValue(); ok {
		_spec.SetField(auditentry.FieldBeforeValue, field.TypeString, value)
		_node.BeforeValue = &value
	}
	if value, ok := _c.mutation.AfterValue(); ok {
		_spec.SetField(auditentry.FieldAfterValue, field.TypeString, value)
		_node.AfterValue = &value
	}
	if value, ok := _c.mutation.BeforeState(); ok {
		_spec.SetField(auditentry.FieldBeforeState, field.TypeString, value)
		_node.BeforeState = value
	}
	if value, ok := _c.mutation.AfterState(); ok {
		_spec.SetField(auditentry.FieldAfterState, field.TypeString, value)
		_node.AfterState = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CellIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditentry.CellTable,
			Columns: []string{auditentry.CellColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CellID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
