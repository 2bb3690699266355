// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the auditentry type in the database.
	Label = "audit_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCellID holds the string denoting the cell_id field in the database.
	FieldCellID = "cell_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldBeforeValue holds the string denoting the before_value field in the database.
	FieldBeforeValue = "before_value"
	// FieldAfterValue holds the string denoting the after_value field in the database.
	FieldAfterValue = "after_value"
	// FieldBeforeState holds the string denoting the before_state field in the database.
	FieldBeforeState = "before_state"
	// FieldAfterState holds the string denoting the after_state field in the database.
	FieldAfterState = "after_state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCell holds the string denoting the cell edge name in mutations.
	EdgeCell = "cell"
	// Table holds the table name of the auditentry in the database.
	Table = "audit_logs"
	// CellTable is the table that holds the cell relation/edge.
	CellTable = "audit_logs"
	// CellInverseTable is the table name for the Cell entity.
	// It exists in this package in order to avoid circular dependency with the "cell" package.
	CellInverseTable = "cells"
	// CellColumn is the table column denoting the cell relation/edge.
	CellColumn = "cell_id"
)

// Columns holds all SQL columns for auditentry fields.
var Columns = []string{
	FieldID,
	FieldCellID,
	FieldSeq,
	FieldActor,
	FieldAction,
	FieldReason,
	FieldBeforeValue,
	FieldAfterValue,
	FieldBeforeState,
	FieldAfterState,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	ActorValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// BeforeStateValidator is a validator for the "before_state" field. It is called by the builders before save.
	BeforeStateValidator func(string) error
	// AfterStateValidator is a validator for the "after_state" field. It is called by the builders before save.
	AfterStateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AuditEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCellID orders the results by the cell_id field.
func ByCellID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByBeforeValue orders the results by the before_value field.
func ByBeforeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeValue, opts...).ToFunc()
}

// ByAfterValue orders the results by the after_value field.
func ByAfterValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterValue, opts...).ToFunc()
}

// ByBeforeState orders the results by the before_state field.
func ByBeforeState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeState, opts...).ToFunc()
}

// ByAfterState orders the results by the after_state field.
func ByAfterState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCellField orders the results by cell field.
func ByCellField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellStep(), sql.OrderByField(field, opts...))
	}
}
func newCellStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CellTable, CellColumn),
	)
}
