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
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry = "AuditEntry"
	TypeCell       = "Cell"
	TypeDocument   = "Document"
	TypeReviewJob  = "ReviewJob"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	seq           *int
	addseq        *int
	actor         *string
	action        *string
	reason        *string
	before_value  *string
	after_value   *string
	before_state  *string
	after_state   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	cell          *uuid.UUID
	clearedcell   bool
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id uuid.UUID) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCellID sets the "cell_id" field.
func (m *AuditEntryMutation) SetCellID(u uuid.UUID) {
	m.cell = &u
}

// CellID returns the value of the "cell_id" field in the mutation.
func (m *AuditEntryMutation) CellID() (r uuid.UUID, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCellID returns the old "cell_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCellID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCellID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCellID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCellID: %w", err)
	}
	return oldValue.CellID, nil
}

// ResetCellID resets all changes to the "cell_id" field.
func (m *AuditEntryMutation) ResetCellID() {
	m.cell = nil
}

// SetSeq sets the "seq" field.
func (m *AuditEntryMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *AuditEntryMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *AuditEntryMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *AuditEntryMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *AuditEntryMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetActor sets the "actor" field.
func (m *AuditEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEntryMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *AuditEntryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AuditEntryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *AuditEntryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[auditentry.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *AuditEntryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *AuditEntryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, auditentry.FieldReason)
}

// SetBeforeValue sets the "before_value" field.
func (m *AuditEntryMutation) SetBeforeValue(s string) {
	m.before_value = &s
}

// BeforeValue returns the value of the "before_value" field in the mutation.
func (m *AuditEntryMutation) BeforeValue() (r string, exists bool) {
	v := m.before_value
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeValue returns the old "before_value" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldBeforeValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeValue: %w", err)
	}
	return oldValue.BeforeValue, nil
}

// ClearBeforeValue clears the value of the "before_value" field.
func (m *AuditEntryMutation) ClearBeforeValue() {
	m.before_value = nil
	m.clearedFields[auditentry.FieldBeforeValue] = struct{}{}
}

// BeforeValueCleared returns if the "before_value" field was cleared in this mutation.
func (m *AuditEntryMutation) BeforeValueCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldBeforeValue]
	return ok
}

// ResetBeforeValue resets all changes to the "before_value" field.
func (m *AuditEntryMutation) ResetBeforeValue() {
	m.before_value = nil
	delete(m.clearedFields, auditentry.FieldBeforeValue)
}

// SetAfterValue sets the "after_value" field.
func (m *AuditEntryMutation) SetAfterValue(s string) {
	m.after_value = &s
}

// AfterValue returns the value of the "after_value" field in the mutation.
func (m *AuditEntryMutation) AfterValue() (r string, exists bool) {
	v := m.after_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterValue returns the old "after_value" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAfterValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterValue: %w", err)
	}
	return oldValue.AfterValue, nil
}

// ClearAfterValue clears the value of the "after_value" field.
func (m *AuditEntryMutation) ClearAfterValue() {
	m.after_value = nil
	m.clearedFields[auditentry.FieldAfterValue] = struct{}{}
}

// AfterValueCleared returns if the "after_value" field was cleared in this mutation.
func (m *AuditEntryMutation) AfterValueCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAfterValue]
	return ok
}

// ResetAfterValue resets all changes to the "after_value" field.
func (m *AuditEntryMutation) ResetAfterValue() {
	m.after_value = nil
	delete(m.clearedFields, auditentry.FieldAfterValue)
}

// SetBeforeState sets the "before_state" field.
func (m *AuditEntryMutation) SetBeforeState(s string) {
	m.before_state = &s
}

// BeforeState returns the value of the "before_state" field in the mutation.
func (m *AuditEntryMutation) BeforeState() (r string, exists bool) {
	v := m.before_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeState returns the old "before_state" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldBeforeState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeState: %w", err)
	}
	return oldValue.BeforeState, nil
}

// ResetBeforeState resets all changes to the "before_state" field.
func (m *AuditEntryMutation) ResetBeforeState() {
	m.before_state = nil
}

// SetAfterState sets the "after_state" field.
func (m *AuditEntryMutation) SetAfterState(s string) {
	m.after_state = &s
}

// AfterState returns the value of the "after_state" field in the mutation.
func (m *AuditEntryMutation) AfterState() (r string, exists bool) {
	v := m.after_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterState returns the old "after_state" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAfterState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterState: %w", err)
	}
	return oldValue.AfterState, nil
}

// ResetAfterState resets all changes to the "after_state" field.
func (m *AuditEntryMutation) ResetAfterState() {
	m.after_state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCell clears the "cell" edge to the Cell entity.
func (m *AuditEntryMutation) ClearCell() {
	m.clearedcell = true
	m.clearedFields[auditentry.FieldCellID] = struct{}{}
}

// CellCleared reports if the "cell" edge to the Cell entity was cleared.
func (m *AuditEntryMutation) CellCleared() bool {
	return m.clearedcell
}

// CellIDs returns the "cell" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CellID instead. It exists only for internal usage by the builders.
func (m *AuditEntryMutation) CellIDs() (ids []uuid.UUID) {
	if id := m.cell; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCell resets all changes to the "cell" edge.
func (m *AuditEntryMutation) ResetCell() {
	m.cell = nil
	m.clearedcell = false
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.cell != nil {
		fields = append(fields, auditentry.FieldCellID)
	}
	if m.seq != nil {
		fields = append(fields, auditentry.FieldSeq)
	}
	if m.actor != nil {
		fields = append(fields, auditentry.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, auditentry.FieldReason)
	}
	if m.before_value != nil {
		fields = append(fields, auditentry.FieldBeforeValue)
	}
	if m.after_value != nil {
		fields = append(fields, auditentry.FieldAfterValue)
	}
	if m.before_state != nil {
		fields = append(fields, auditentry.FieldBeforeState)
	}
	if m.after_state != nil {
		fields = append(fields, auditentry.FieldAfterState)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldCellID:
		return m.CellID()
	case auditentry.FieldSeq:
		return m.Seq()
	case auditentry.FieldActor:
		return m.Actor()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldReason:
		return m.Reason()
	case auditentry.FieldBeforeValue:
		return m.BeforeValue()
	case auditentry.FieldAfterValue:
		return m.AfterValue()
	case auditentry.FieldBeforeState:
		return m.BeforeState()
	case auditentry.FieldAfterState:
		return m.AfterState()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldCellID:
		return m.OldCellID(ctx)
	case auditentry.FieldSeq:
		return m.OldSeq(ctx)
	case auditentry.FieldActor:
		return m.OldActor(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldReason:
		return m.OldReason(ctx)
	case auditentry.FieldBeforeValue:
		return m.OldBeforeValue(ctx)
	case auditentry.FieldAfterValue:
		return m.OldAfterValue(ctx)
	case auditentry.FieldBeforeState:
		return m.OldBeforeState(ctx)
	case auditentry.FieldAfterState:
		return m.OldAfterState(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldCellID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCellID(v)
		return nil
	case auditentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case auditentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case auditentry.FieldBeforeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeValue(v)
		return nil
	case auditentry.FieldAfterValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterValue(v)
		return nil
	case auditentry.FieldBeforeState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeState(v)
		return nil
	case auditentry.FieldAfterState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterState(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, auditentry.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldReason) {
		fields = append(fields, auditentry.FieldReason)
	}
	if m.FieldCleared(auditentry.FieldBeforeValue) {
		fields = append(fields, auditentry.FieldBeforeValue)
	}
	if m.FieldCleared(auditentry.FieldAfterValue) {
		fields = append(fields, auditentry.FieldAfterValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldReason:
		m.ClearReason()
		return nil
	case auditentry.FieldBeforeValue:
		m.ClearBeforeValue()
		return nil
	case auditentry.FieldAfterValue:
		m.ClearAfterValue()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldCellID:
		m.ResetCellID()
		return nil
	case auditentry.FieldSeq:
		m.ResetSeq()
		return nil
	case auditentry.FieldActor:
		m.ResetActor()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldReason:
		m.ResetReason()
		return nil
	case auditentry.FieldBeforeValue:
		m.ResetBeforeValue()
		return nil
	case auditentry.FieldAfterValue:
		m.ResetAfterValue()
		return nil
	case auditentry.FieldBeforeState:
		m.ResetBeforeState()
		return nil
	case auditentry.FieldAfterState:
		m.ResetAfterState()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cell != nil {
		edges = append(edges, auditentry.EdgeCell)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditentry.EdgeCell:
		if id := m.cell; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcell {
		edges = append(edges, auditentry.EdgeCell)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditentry.EdgeCell:
		return m.clearedcell
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	switch name {
	case auditentry.EdgeCell:
		m.ClearCell()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	switch name {
	case auditentry.EdgeCell:
		m.ResetCell()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// CellMutation represents an operation that mutates the Cell nodes in the graph.
type CellMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	document_identifier      *string
	field_key                *string
	field_label              *string
	field_type               *string
	value                    *string
	value_raw                *string
	value_normalized         *string
	confidence               *float64
	addconfidence            *float64
	confidence_reasons       *[]string
	appendconfidence_reasons []string
	review_state             *string
	citation                 *json.RawMessage
	appendcitation           json.RawMessage
	ordinal                  *int
	addordinal               *int
	version                  *int
	addversion               *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *uuid.UUID
	clearedjob               bool
	document                 *string
	cleareddocument          bool
	audit_entries            map[uuid.UUID]struct{}
	removedaudit_entries     map[uuid.UUID]struct{}
	clearedaudit_entries     bool
	done                     bool
	oldValue                 func(context.Context) (*Cell, error)
	predicates               []predicate.Cell
}

var _ ent.Mutation = (*CellMutation)(nil)

// cellOption allows management of the mutation configuration using functional options.
type cellOption func(*CellMutation)

// newCellMutation creates new mutation for the Cell entity.
func newCellMutation(c config, op Op, opts ...cellOption) *CellMutation {
	m := &CellMutation{
		config:        c,
		op:            op,
		typ:           TypeCell,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellID sets the ID field of the mutation.
func withCellID(id uuid.UUID) cellOption {
	return func(m *CellMutation) {
		var (
			err   error
			once  sync.Once
			value *Cell
		)
		m.oldValue = func(ctx context.Context) (*Cell, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cell.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCell sets the old Cell of the mutation.
func withCell(node *Cell) cellOption {
	return func(m *CellMutation) {
		m.oldValue = func(context.Context) (*Cell, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cell entities.
func (m *CellMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cell.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *CellMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *CellMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *CellMutation) ResetJobID() {
	m.job = nil
}

// SetDocumentID sets the "document_id" field.
func (m *CellMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *CellMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *CellMutation) ResetDocumentID() {
	m.document = nil
}

// SetDocumentIdentifier sets the "document_identifier" field.
func (m *CellMutation) SetDocumentIdentifier(s string) {
	m.document_identifier = &s
}

// DocumentIdentifier returns the value of the "document_identifier" field in the mutation.
func (m *CellMutation) DocumentIdentifier() (r string, exists bool) {
	v := m.document_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentIdentifier returns the old "document_identifier" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldDocumentIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentIdentifier: %w", err)
	}
	return oldValue.DocumentIdentifier, nil
}

// ResetDocumentIdentifier resets all changes to the "document_identifier" field.
func (m *CellMutation) ResetDocumentIdentifier() {
	m.document_identifier = nil
}

// SetFieldKey sets the "field_key" field.
func (m *CellMutation) SetFieldKey(s string) {
	m.field_key = &s
}

// FieldKey returns the value of the "field_key" field in the mutation.
func (m *CellMutation) FieldKey() (r string, exists bool) {
	v := m.field_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldKey returns the old "field_key" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldFieldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldKey: %w", err)
	}
	return oldValue.FieldKey, nil
}

// ResetFieldKey resets all changes to the "field_key" field.
func (m *CellMutation) ResetFieldKey() {
	m.field_key = nil
}

// SetFieldLabel sets the "field_label" field.
func (m *CellMutation) SetFieldLabel(s string) {
	m.field_label = &s
}

// FieldLabel returns the value of the "field_label" field in the mutation.
func (m *CellMutation) FieldLabel() (r string, exists bool) {
	v := m.field_label
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldLabel returns the old "field_label" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldFieldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldLabel: %w", err)
	}
	return oldValue.FieldLabel, nil
}

// ResetFieldLabel resets all changes to the "field_label" field.
func (m *CellMutation) ResetFieldLabel() {
	m.field_label = nil
}

// SetFieldType sets the "field_type" field.
func (m *CellMutation) SetFieldType(s string) {
	m.field_type = &s
}

// FieldType returns the value of the "field_type" field in the mutation.
func (m *CellMutation) FieldType() (r string, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldType returns the old "field_type" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldFieldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldType: %w", err)
	}
	return oldValue.FieldType, nil
}

// ResetFieldType resets all changes to the "field_type" field.
func (m *CellMutation) ResetFieldType() {
	m.field_type = nil
}

// SetValue sets the "value" field.
func (m *CellMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *CellMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *CellMutation) ClearValue() {
	m.value = nil
	m.clearedFields[cell.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *CellMutation) ValueCleared() bool {
	_, ok := m.clearedFields[cell.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *CellMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, cell.FieldValue)
}

// SetValueRaw sets the "value_raw" field.
func (m *CellMutation) SetValueRaw(s string) {
	m.value_raw = &s
}

// ValueRaw returns the value of the "value_raw" field in the mutation.
func (m *CellMutation) ValueRaw() (r string, exists bool) {
	v := m.value_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldValueRaw returns the old "value_raw" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldValueRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueRaw: %w", err)
	}
	return oldValue.ValueRaw, nil
}

// ClearValueRaw clears the value of the "value_raw" field.
func (m *CellMutation) ClearValueRaw() {
	m.value_raw = nil
	m.clearedFields[cell.FieldValueRaw] = struct{}{}
}

// ValueRawCleared returns if the "value_raw" field was cleared in this mutation.
func (m *CellMutation) ValueRawCleared() bool {
	_, ok := m.clearedFields[cell.FieldValueRaw]
	return ok
}

// ResetValueRaw resets all changes to the "value_raw" field.
func (m *CellMutation) ResetValueRaw() {
	m.value_raw = nil
	delete(m.clearedFields, cell.FieldValueRaw)
}

// SetValueNormalized sets the "value_normalized" field.
func (m *CellMutation) SetValueNormalized(s string) {
	m.value_normalized = &s
}

// ValueNormalized returns the value of the "value_normalized" field in the mutation.
func (m *CellMutation) ValueNormalized() (r string, exists bool) {
	v := m.value_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldValueNormalized returns the old "value_normalized" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldValueNormalized(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueNormalized: %w", err)
	}
	return oldValue.ValueNormalized, nil
}

// ClearValueNormalized clears the value of the "value_normalized" field.
func (m *CellMutation) ClearValueNormalized() {
	m.value_normalized = nil
	m.clearedFields[cell.FieldValueNormalized] = struct{}{}
}

// ValueNormalizedCleared returns if the "value_normalized" field was cleared in this mutation.
func (m *CellMutation) ValueNormalizedCleared() bool {
	_, ok := m.clearedFields[cell.FieldValueNormalized]
	return ok
}

// ResetValueNormalized resets all changes to the "value_normalized" field.
func (m *CellMutation) ResetValueNormalized() {
	m.value_normalized = nil
	delete(m.clearedFields, cell.FieldValueNormalized)
}

// SetConfidence sets the "confidence" field.
func (m *CellMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CellMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CellMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CellMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CellMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetConfidenceReasons sets the "confidence_reasons" field.
func (m *CellMutation) SetConfidenceReasons(s []string) {
	m.confidence_reasons = &s
	m.appendconfidence_reasons = nil
}

// ConfidenceReasons returns the value of the "confidence_reasons" field in the mutation.
func (m *CellMutation) ConfidenceReasons() (r []string, exists bool) {
	v := m.confidence_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceReasons returns the old "confidence_reasons" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldConfidenceReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceReasons: %w", err)
	}
	return oldValue.ConfidenceReasons, nil
}

// AppendConfidenceReasons adds s to the "confidence_reasons" field.
func (m *CellMutation) AppendConfidenceReasons(s []string) {
	m.appendconfidence_reasons = append(m.appendconfidence_reasons, s...)
}

// AppendedConfidenceReasons returns the list of values that were appended to the "confidence_reasons" field in this mutation.
func (m *CellMutation) AppendedConfidenceReasons() ([]string, bool) {
	if len(m.appendconfidence_reasons) == 0 {
		return nil, false
	}
	return m.appendconfidence_reasons, true
}

// ResetConfidenceReasons resets all changes to the "confidence_reasons" field.
func (m *CellMutation) ResetConfidenceReasons() {
	m.confidence_reasons = nil
	m.appendconfidence_reasons = nil
}

// SetReviewState sets the "review_state" field.
func (m *CellMutation) SetReviewState(s string) {
	m.review_state = &s
}

// ReviewState returns the value of the "review_state" field in the mutation.
func (m *CellMutation) ReviewState() (r string, exists bool) {
	v := m.review_state
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewState returns the old "review_state" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldReviewState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewState: %w", err)
	}
	return oldValue.ReviewState, nil
}

// ResetReviewState resets all changes to the "review_state" field.
func (m *CellMutation) ResetReviewState() {
	m.review_state = nil
}

// SetCitation sets the "citation" field.
func (m *CellMutation) SetCitation(jm json.RawMessage) {
	m.citation = &jm
	m.appendcitation = nil
}

// Citation returns the value of the "citation" field in the mutation.
func (m *CellMutation) Citation() (r json.RawMessage, exists bool) {
	v := m.citation
	if v == nil {
		return
	}
	return *v, true
}

// OldCitation returns the old "citation" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldCitation(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitation: %w", err)
	}
	return oldValue.Citation, nil
}

// AppendCitation adds jm to the "citation" field.
func (m *CellMutation) AppendCitation(jm json.RawMessage) {
	m.appendcitation = append(m.appendcitation, jm...)
}

// AppendedCitation returns the list of values that were appended to the "citation" field in this mutation.
func (m *CellMutation) AppendedCitation() (json.RawMessage, bool) {
	if len(m.appendcitation) == 0 {
		return nil, false
	}
	return m.appendcitation, true
}

// ClearCitation clears the value of the "citation" field.
func (m *CellMutation) ClearCitation() {
	m.citation = nil
	m.appendcitation = nil
	m.clearedFields[cell.FieldCitation] = struct{}{}
}

// CitationCleared returns if the "citation" field was cleared in this mutation.
func (m *CellMutation) CitationCleared() bool {
	_, ok := m.clearedFields[cell.FieldCitation]
	return ok
}

// ResetCitation resets all changes to the "citation" field.
func (m *CellMutation) ResetCitation() {
	m.citation = nil
	m.appendcitation = nil
	delete(m.clearedFields, cell.FieldCitation)
}

// SetOrdinal sets the "ordinal" field.
func (m *CellMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *CellMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *CellMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *CellMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *CellMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetVersion sets the "version" field.
func (m *CellMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CellMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CellMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CellMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CellMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CellMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CellMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CellMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CellMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CellMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CellMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ReviewJob entity.
func (m *CellMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[cell.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ReviewJob entity was cleared.
func (m *CellMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *CellMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *CellMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *CellMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[cell.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *CellMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *CellMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *CellMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditEntry entity by ids.
func (m *CellMutation) AddAuditEntryIDs(ids ...uuid.UUID) {
	if m.audit_entries == nil {
		m.audit_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audit_entries[ids[i]] = struct{}{}
	}
}

// ClearAuditEntries clears the "audit_entries" edge to the AuditEntry entity.
func (m *CellMutation) ClearAuditEntries() {
	m.clearedaudit_entries = true
}

// AuditEntriesCleared reports if the "audit_entries" edge to the AuditEntry entity was cleared.
func (m *CellMutation) AuditEntriesCleared() bool {
	return m.clearedaudit_entries
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to the AuditEntry entity by IDs.
func (m *CellMutation) RemoveAuditEntryIDs(ids ...uuid.UUID) {
	if m.removedaudit_entries == nil {
		m.removedaudit_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audit_entries, ids[i])
		m.removedaudit_entries[ids[i]] = struct{}{}
	}
}

// RemovedAuditEntries returns the removed IDs of the "audit_entries" edge to the AuditEntry entity.
func (m *CellMutation) RemovedAuditEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedaudit_entries {
		ids = append(ids, id)
	}
	return
}

// AuditEntriesIDs returns the "audit_entries" edge IDs in the mutation.
func (m *CellMutation) AuditEntriesIDs() (ids []uuid.UUID) {
	for id := range m.audit_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEntries resets all changes to the "audit_entries" edge.
func (m *CellMutation) ResetAuditEntries() {
	m.audit_entries = nil
	m.clearedaudit_entries = false
	m.removedaudit_entries = nil
}

// Where appends a list predicates to the CellMutation builder.
func (m *CellMutation) Where(ps ...predicate.Cell) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cell, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cell).
func (m *CellMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.job != nil {
		fields = append(fields, cell.FieldJobID)
	}
	if m.document != nil {
		fields = append(fields, cell.FieldDocumentID)
	}
	if m.document_identifier != nil {
		fields = append(fields, cell.FieldDocumentIdentifier)
	}
	if m.field_key != nil {
		fields = append(fields, cell.FieldFieldKey)
	}
	if m.field_label != nil {
		fields = append(fields, cell.FieldFieldLabel)
	}
	if m.field_type != nil {
		fields = append(fields, cell.FieldFieldType)
	}
	if m.value != nil {
		fields = append(fields, cell.FieldValue)
	}
	if m.value_raw != nil {
		fields = append(fields, cell.FieldValueRaw)
	}
	if m.value_normalized != nil {
		fields = append(fields, cell.FieldValueNormalized)
	}
	if m.confidence != nil {
		fields = append(fields, cell.FieldConfidence)
	}
	if m.confidence_reasons != nil {
		fields = append(fields, cell.FieldConfidenceReasons)
	}
	if m.review_state != nil {
		fields = append(fields, cell.FieldReviewState)
	}
	if m.citation != nil {
		fields = append(fields, cell.FieldCitation)
	}
	if m.ordinal != nil {
		fields = append(fields, cell.FieldOrdinal)
	}
	if m.version != nil {
		fields = append(fields, cell.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, cell.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cell.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldJobID:
		return m.JobID()
	case cell.FieldDocumentID:
		return m.DocumentID()
	case cell.FieldDocumentIdentifier:
		return m.DocumentIdentifier()
	case cell.FieldFieldKey:
		return m.FieldKey()
	case cell.FieldFieldLabel:
		return m.FieldLabel()
	case cell.FieldFieldType:
		return m.FieldType()
	case cell.FieldValue:
		return m.Value()
	case cell.FieldValueRaw:
		return m.ValueRaw()
	case cell.FieldValueNormalized:
		return m.ValueNormalized()
	case cell.FieldConfidence:
		return m.Confidence()
	case cell.FieldConfidenceReasons:
		return m.ConfidenceReasons()
	case cell.FieldReviewState:
		return m.ReviewState()
	case cell.FieldCitation:
		return m.Citation()
	case cell.FieldOrdinal:
		return m.Ordinal()
	case cell.FieldVersion:
		return m.Version()
	case cell.FieldCreatedAt:
		return m.CreatedAt()
	case cell.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cell.FieldJobID:
		return m.OldJobID(ctx)
	case cell.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case cell.FieldDocumentIdentifier:
		return m.OldDocumentIdentifier(ctx)
	case cell.FieldFieldKey:
		return m.OldFieldKey(ctx)
	case cell.FieldFieldLabel:
		return m.OldFieldLabel(ctx)
	case cell.FieldFieldType:
		return m.OldFieldType(ctx)
	case cell.FieldValue:
		return m.OldValue(ctx)
	case cell.FieldValueRaw:
		return m.OldValueRaw(ctx)
	case cell.FieldValueNormalized:
		return m.OldValueNormalized(ctx)
	case cell.FieldConfidence:
		return m.OldConfidence(ctx)
	case cell.FieldConfidenceReasons:
		return m.OldConfidenceReasons(ctx)
	case cell.FieldReviewState:
		return m.OldReviewState(ctx)
	case cell.FieldCitation:
		return m.OldCitation(ctx)
	case cell.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case cell.FieldVersion:
		return m.OldVersion(ctx)
	case cell.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cell.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cell field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cell.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case cell.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case cell.FieldDocumentIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentIdentifier(v)
		return nil
	case cell.FieldFieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldKey(v)
		return nil
	case cell.FieldFieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldLabel(v)
		return nil
	case cell.FieldFieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldType(v)
		return nil
	case cell.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case cell.FieldValueRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueRaw(v)
		return nil
	case cell.FieldValueNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueNormalized(v)
		return nil
	case cell.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case cell.FieldConfidenceReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceReasons(v)
		return nil
	case cell.FieldReviewState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewState(v)
		return nil
	case cell.FieldCitation:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitation(v)
		return nil
	case cell.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case cell.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case cell.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cell.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, cell.FieldConfidence)
	}
	if m.addordinal != nil {
		fields = append(fields, cell.FieldOrdinal)
	}
	if m.addversion != nil {
		fields = append(fields, cell.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldConfidence:
		return m.AddedConfidence()
	case cell.FieldOrdinal:
		return m.AddedOrdinal()
	case cell.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cell.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case cell.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	case cell.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Cell numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cell.FieldValue) {
		fields = append(fields, cell.FieldValue)
	}
	if m.FieldCleared(cell.FieldValueRaw) {
		fields = append(fields, cell.FieldValueRaw)
	}
	if m.FieldCleared(cell.FieldValueNormalized) {
		fields = append(fields, cell.FieldValueNormalized)
	}
	if m.FieldCleared(cell.FieldCitation) {
		fields = append(fields, cell.FieldCitation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellMutation) ClearField(name string) error {
	switch name {
	case cell.FieldValue:
		m.ClearValue()
		return nil
	case cell.FieldValueRaw:
		m.ClearValueRaw()
		return nil
	case cell.FieldValueNormalized:
		m.ClearValueNormalized()
		return nil
	case cell.FieldCitation:
		m.ClearCitation()
		return nil
	}
	return fmt.Errorf("unknown Cell nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellMutation) ResetField(name string) error {
	switch name {
	case cell.FieldJobID:
		m.ResetJobID()
		return nil
	case cell.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case cell.FieldDocumentIdentifier:
		m.ResetDocumentIdentifier()
		return nil
	case cell.FieldFieldKey:
		m.ResetFieldKey()
		return nil
	case cell.FieldFieldLabel:
		m.ResetFieldLabel()
		return nil
	case cell.FieldFieldType:
		m.ResetFieldType()
		return nil
	case cell.FieldValue:
		m.ResetValue()
		return nil
	case cell.FieldValueRaw:
		m.ResetValueRaw()
		return nil
	case cell.FieldValueNormalized:
		m.ResetValueNormalized()
		return nil
	case cell.FieldConfidence:
		m.ResetConfidence()
		return nil
	case cell.FieldConfidenceReasons:
		m.ResetConfidenceReasons()
		return nil
	case cell.FieldReviewState:
		m.ResetReviewState()
		return nil
	case cell.FieldCitation:
		m.ResetCitation()
		return nil
	case cell.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case cell.FieldVersion:
		m.ResetVersion()
		return nil
	case cell.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cell.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, cell.EdgeJob)
	}
	if m.document != nil {
		edges = append(edges, cell.EdgeDocument)
	}
	if m.audit_entries != nil {
		edges = append(edges, cell.EdgeAuditEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cell.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case cell.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case cell.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.audit_entries))
		for id := range m.audit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedaudit_entries != nil {
		edges = append(edges, cell.EdgeAuditEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cell.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.removedaudit_entries))
		for id := range m.removedaudit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, cell.EdgeJob)
	}
	if m.cleareddocument {
		edges = append(edges, cell.EdgeDocument)
	}
	if m.clearedaudit_entries {
		edges = append(edges, cell.EdgeAuditEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellMutation) EdgeCleared(name string) bool {
	switch name {
	case cell.EdgeJob:
		return m.clearedjob
	case cell.EdgeDocument:
		return m.cleareddocument
	case cell.EdgeAuditEntries:
		return m.clearedaudit_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellMutation) ClearEdge(name string) error {
	switch name {
	case cell.EdgeJob:
		m.ClearJob()
		return nil
	case cell.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Cell unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellMutation) ResetEdge(name string) error {
	switch name {
	case cell.EdgeJob:
		m.ResetJob()
		return nil
	case cell.EdgeDocument:
		m.ResetDocument()
		return nil
	case cell.EdgeAuditEntries:
		m.ResetAuditEntries()
		return nil
	}
	return fmt.Errorf("unknown Cell edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	identifier    *string
	_path         *string
	source        *string
	format        *string
	first_seen_at *time.Time
	clearedFields map[string]struct{}
	cells         map[uuid.UUID]struct{}
	removedcells  map[uuid.UUID]struct{}
	clearedcells  bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIdentifier sets the "identifier" field.
func (m *DocumentMutation) SetIdentifier(s string) {
	m.identifier = &s
}

// Identifier returns the value of the "identifier" field in the mutation.
func (m *DocumentMutation) Identifier() (r string, exists bool) {
	v := m.identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifier returns the old "identifier" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifier: %w", err)
	}
	return oldValue.Identifier, nil
}

// ResetIdentifier resets all changes to the "identifier" field.
func (m *DocumentMutation) ResetIdentifier() {
	m.identifier = nil
}

// SetPath sets the "path" field.
func (m *DocumentMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *DocumentMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *DocumentMutation) ResetPath() {
	m._path = nil
}

// SetSource sets the "source" field.
func (m *DocumentMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *DocumentMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DocumentMutation) ResetSource() {
	m.source = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *DocumentMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *DocumentMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *DocumentMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// AddCellIDs adds the "cells" edge to the Cell entity by ids.
func (m *DocumentMutation) AddCellIDs(ids ...uuid.UUID) {
	if m.cells == nil {
		m.cells = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.cells[ids[i]] = struct{}{}
	}
}

// ClearCells clears the "cells" edge to the Cell entity.
func (m *DocumentMutation) ClearCells() {
	m.clearedcells = true
}

// CellsCleared reports if the "cells" edge to the Cell entity was cleared.
func (m *DocumentMutation) CellsCleared() bool {
	return m.clearedcells
}

// RemoveCellIDs removes the "cells" edge to the Cell entity by IDs.
func (m *DocumentMutation) RemoveCellIDs(ids ...uuid.UUID) {
	if m.removedcells == nil {
		m.removedcells = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.cells, ids[i])
		m.removedcells[ids[i]] = struct{}{}
	}
}

// RemovedCells returns the removed IDs of the "cells" edge to the Cell entity.
func (m *DocumentMutation) RemovedCellsIDs() (ids []uuid.UUID) {
	for id := range m.removedcells {
		ids = append(ids, id)
	}
	return
}

// CellsIDs returns the "cells" edge IDs in the mutation.
func (m *DocumentMutation) CellsIDs() (ids []uuid.UUID) {
	for id := range m.cells {
		ids = append(ids, id)
	}
	return
}

// ResetCells resets all changes to the "cells" edge.
func (m *DocumentMutation) ResetCells() {
	m.cells = nil
	m.clearedcells = false
	m.removedcells = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.identifier != nil {
		fields = append(fields, document.FieldIdentifier)
	}
	if m._path != nil {
		fields = append(fields, document.FieldPath)
	}
	if m.source != nil {
		fields = append(fields, document.FieldSource)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.first_seen_at != nil {
		fields = append(fields, document.FieldFirstSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldIdentifier:
		return m.Identifier()
	case document.FieldPath:
		return m.Path()
	case document.FieldSource:
		return m.Source()
	case document.FieldFormat:
		return m.Format()
	case document.FieldFirstSeenAt:
		return m.FirstSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldIdentifier:
		return m.OldIdentifier(ctx)
	case document.FieldPath:
		return m.OldPath(ctx)
	case document.FieldSource:
		return m.OldSource(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifier(v)
		return nil
	case document.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case document.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldIdentifier:
		m.ResetIdentifier()
		return nil
	case document.FieldPath:
		m.ResetPath()
		return nil
	case document.FieldSource:
		m.ResetSource()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cells != nil {
		edges = append(edges, document.EdgeCells)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeCells:
		ids := make([]ent.Value, 0, len(m.cells))
		for id := range m.cells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcells != nil {
		edges = append(edges, document.EdgeCells)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeCells:
		ids := make([]ent.Value, 0, len(m.removedcells))
		for id := range m.removedcells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcells {
		edges = append(edges, document.EdgeCells)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeCells:
		return m.clearedcells
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeCells:
		m.ResetCells()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ReviewJobMutation represents an operation that mutates the ReviewJob nodes in the graph.
type ReviewJobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	mode                  *string
	status                *string
	template_path         *string
	error_message         *string
	document_errors       *json.RawMessage
	appenddocument_errors json.RawMessage
	created_at            *time.Time
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	cells                 map[uuid.UUID]struct{}
	removedcells          map[uuid.UUID]struct{}
	clearedcells          bool
	done                  bool
	oldValue              func(context.Context) (*ReviewJob, error)
	predicates            []predicate.ReviewJob
}

var _ ent.Mutation = (*ReviewJobMutation)(nil)

// reviewjobOption allows management of the mutation configuration using functional options.
type reviewjobOption func(*ReviewJobMutation)

// newReviewJobMutation creates new mutation for the ReviewJob entity.
func newReviewJobMutation(c config, op Op, opts ...reviewjobOption) *ReviewJobMutation {
	m := &ReviewJobMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewJobID sets the ID field of the mutation.
func withReviewJobID(id uuid.UUID) reviewjobOption {
	return func(m *ReviewJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewJob
		)
		m.oldValue = func(ctx context.Context) (*ReviewJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewJob sets the old ReviewJob of the mutation.
func withReviewJob(node *ReviewJob) reviewjobOption {
	return func(m *ReviewJobMutation) {
		m.oldValue = func(context.Context) (*ReviewJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewJob entities.
func (m *ReviewJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMode sets the "mode" field.
func (m *ReviewJobMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ReviewJobMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ReviewJobMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *ReviewJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewJobMutation) ResetStatus() {
	m.status = nil
}

// SetTemplatePath sets the "template_path" field.
func (m *ReviewJobMutation) SetTemplatePath(s string) {
	m.template_path = &s
}

// TemplatePath returns the value of the "template_path" field in the mutation.
func (m *ReviewJobMutation) TemplatePath() (r string, exists bool) {
	v := m.template_path
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplatePath returns the old "template_path" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldTemplatePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplatePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplatePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplatePath: %w", err)
	}
	return oldValue.TemplatePath, nil
}

// ClearTemplatePath clears the value of the "template_path" field.
func (m *ReviewJobMutation) ClearTemplatePath() {
	m.template_path = nil
	m.clearedFields[reviewjob.FieldTemplatePath] = struct{}{}
}

// TemplatePathCleared returns if the "template_path" field was cleared in this mutation.
func (m *ReviewJobMutation) TemplatePathCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldTemplatePath]
	return ok
}

// ResetTemplatePath resets all changes to the "template_path" field.
func (m *ReviewJobMutation) ResetTemplatePath() {
	m.template_path = nil
	delete(m.clearedFields, reviewjob.FieldTemplatePath)
}

// SetErrorMessage sets the "error_message" field.
func (m *ReviewJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReviewJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReviewJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reviewjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReviewJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReviewJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reviewjob.FieldErrorMessage)
}

// SetDocumentErrors sets the "document_errors" field.
func (m *ReviewJobMutation) SetDocumentErrors(jm json.RawMessage) {
	m.document_errors = &jm
	m.appenddocument_errors = nil
}

// DocumentErrors returns the value of the "document_errors" field in the mutation.
func (m *ReviewJobMutation) DocumentErrors() (r json.RawMessage, exists bool) {
	v := m.document_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentErrors returns the old "document_errors" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldDocumentErrors(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentErrors: %w", err)
	}
	return oldValue.DocumentErrors, nil
}

// AppendDocumentErrors adds jm to the "document_errors" field.
func (m *ReviewJobMutation) AppendDocumentErrors(jm json.RawMessage) {
	m.appenddocument_errors = append(m.appenddocument_errors, jm...)
}

// AppendedDocumentErrors returns the list of values that were appended to the "document_errors" field in this mutation.
func (m *ReviewJobMutation) AppendedDocumentErrors() (json.RawMessage, bool) {
	if len(m.appenddocument_errors) == 0 {
		return nil, false
	}
	return m.appenddocument_errors, true
}

// ClearDocumentErrors clears the value of the "document_errors" field.
func (m *ReviewJobMutation) ClearDocumentErrors() {
	m.document_errors = nil
	m.appenddocument_errors = nil
	m.clearedFields[reviewjob.FieldDocumentErrors] = struct{}{}
}

// DocumentErrorsCleared returns if the "document_errors" field was cleared in this mutation.
func (m *ReviewJobMutation) DocumentErrorsCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldDocumentErrors]
	return ok
}

// ResetDocumentErrors resets all changes to the "document_errors" field.
func (m *ReviewJobMutation) ResetDocumentErrors() {
	m.document_errors = nil
	m.appenddocument_errors = nil
	delete(m.clearedFields, reviewjob.FieldDocumentErrors)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ReviewJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ReviewJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ReviewJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[reviewjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ReviewJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ReviewJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, reviewjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ReviewJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ReviewJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ReviewJob entity.
// If the ReviewJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ReviewJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[reviewjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ReviewJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[reviewjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ReviewJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, reviewjob.FieldFinishedAt)
}

// AddCellIDs adds the "cells" edge to the Cell entity by ids.
func (m *ReviewJobMutation) AddCellIDs(ids ...uuid.UUID) {
	if m.cells == nil {
		m.cells = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.cells[ids[i]] = struct{}{}
	}
}

// ClearCells clears the "cells" edge to the Cell entity.
func (m *ReviewJobMutation) ClearCells() {
	m.clearedcells = true
}

// CellsCleared reports if the "cells" edge to the Cell entity was cleared.
func (m *ReviewJobMutation) CellsCleared() bool {
	return m.clearedcells
}

// RemoveCellIDs removes the "cells" edge to the Cell entity by IDs.
func (m *ReviewJobMutation) RemoveCellIDs(ids ...uuid.UUID) {
	if m.removedcells == nil {
		m.removedcells = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.cells, ids[i])
		m.removedcells[ids[i]] = struct{}{}
	}
}

// RemovedCells returns the removed IDs of the "cells" edge to the Cell entity.
func (m *ReviewJobMutation) RemovedCellsIDs() (ids []uuid.UUID) {
	for id := range m.removedcells {
		ids = append(ids, id)
	}
	return
}

// CellsIDs returns the "cells" edge IDs in the mutation.
func (m *ReviewJobMutation) CellsIDs() (ids []uuid.UUID) {
	for id := range m.cells {
		ids = append(ids, id)
	}
	return
}

// ResetCells resets all changes to the "cells" edge.
func (m *ReviewJobMutation) ResetCells() {
	m.cells = nil
	m.clearedcells = false
	m.removedcells = nil
}

// Where appends a list predicates to the ReviewJobMutation builder.
func (m *ReviewJobMutation) Where(ps ...predicate.ReviewJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewJob).
func (m *ReviewJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.mode != nil {
		fields = append(fields, reviewjob.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, reviewjob.FieldStatus)
	}
	if m.template_path != nil {
		fields = append(fields, reviewjob.FieldTemplatePath)
	}
	if m.error_message != nil {
		fields = append(fields, reviewjob.FieldErrorMessage)
	}
	if m.document_errors != nil {
		fields = append(fields, reviewjob.FieldDocumentErrors)
	}
	if m.created_at != nil {
		fields = append(fields, reviewjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, reviewjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, reviewjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewjob.FieldMode:
		return m.Mode()
	case reviewjob.FieldStatus:
		return m.Status()
	case reviewjob.FieldTemplatePath:
		return m.TemplatePath()
	case reviewjob.FieldErrorMessage:
		return m.ErrorMessage()
	case reviewjob.FieldDocumentErrors:
		return m.DocumentErrors()
	case reviewjob.FieldCreatedAt:
		return m.CreatedAt()
	case reviewjob.FieldStartedAt:
		return m.StartedAt()
	case reviewjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewjob.FieldMode:
		return m.OldMode(ctx)
	case reviewjob.FieldStatus:
		return m.OldStatus(ctx)
	case reviewjob.FieldTemplatePath:
		return m.OldTemplatePath(ctx)
	case reviewjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reviewjob.FieldDocumentErrors:
		return m.OldDocumentErrors(ctx)
	case reviewjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case reviewjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewjob.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case reviewjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewjob.FieldTemplatePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplatePath(v)
		return nil
	case reviewjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reviewjob.FieldDocumentErrors:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentErrors(v)
		return nil
	case reviewjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case reviewjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReviewJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewjob.FieldTemplatePath) {
		fields = append(fields, reviewjob.FieldTemplatePath)
	}
	if m.FieldCleared(reviewjob.FieldErrorMessage) {
		fields = append(fields, reviewjob.FieldErrorMessage)
	}
	if m.FieldCleared(reviewjob.FieldDocumentErrors) {
		fields = append(fields, reviewjob.FieldDocumentErrors)
	}
	if m.FieldCleared(reviewjob.FieldStartedAt) {
		fields = append(fields, reviewjob.FieldStartedAt)
	}
	if m.FieldCleared(reviewjob.FieldFinishedAt) {
		fields = append(fields, reviewjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewJobMutation) ClearField(name string) error {
	switch name {
	case reviewjob.FieldTemplatePath:
		m.ClearTemplatePath()
		return nil
	case reviewjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reviewjob.FieldDocumentErrors:
		m.ClearDocumentErrors()
		return nil
	case reviewjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case reviewjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewJobMutation) ResetField(name string) error {
	switch name {
	case reviewjob.FieldMode:
		m.ResetMode()
		return nil
	case reviewjob.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewjob.FieldTemplatePath:
		m.ResetTemplatePath()
		return nil
	case reviewjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reviewjob.FieldDocumentErrors:
		m.ResetDocumentErrors()
		return nil
	case reviewjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case reviewjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cells != nil {
		edges = append(edges, reviewjob.EdgeCells)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reviewjob.EdgeCells:
		ids := make([]ent.Value, 0, len(m.cells))
		for id := range m.cells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcells != nil {
		edges = append(edges, reviewjob.EdgeCells)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reviewjob.EdgeCells:
		ids := make([]ent.Value, 0, len(m.removedcells))
		for id := range m.removedcells {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcells {
		edges = append(edges, reviewjob.EdgeCells)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewJobMutation) EdgeCleared(name string) bool {
	switch name {
	case reviewjob.EdgeCells:
		return m.clearedcells
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ReviewJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewJobMutation) ResetEdge(name string) error {
	switch name {
	case reviewjob.EdgeCells:
		m.ResetCells()
		return nil
	}
	return fmt.Errorf("unknown ReviewJob edge %s", name)
}
