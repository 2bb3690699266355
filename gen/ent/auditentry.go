// Code generated by ent, DO NOT EDIT.

package ent

import (
	"ent/auditentry"
	"ent/cell"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AuditEntry is the model entity for the AuditEntry schema.
type AuditEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CellID holds the value of the "cell_id" field.
	CellID uuid.UUID `json:"cell_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor string `json:"actor,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// BeforeValue holds the value of the "before_value" field.
	BeforeValue *string `json:"before_value,omitempty"`
	// AfterValue holds the value of the "after_value" field.
	AfterValue *string `json:"after_value,omitempty"`
	// BeforeState holds the value of the "before_state" field.
	BeforeState string `json:"before_state,omitempty"`
	// AfterState holds the value of the "after_state" field.
	AfterState string `json:"after_state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditEntryQuery when eager-loading is set.
	Edges        AuditEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditEntryEdges holds the relations/edges for other nodes in the graph.
type AuditEntryEdges struct {
	// Cell holds the value of the cell edge.
	Cell *Cell `json:"cell,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CellOrErr returns the Cell value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEntryEdges) CellOrErr() (*Cell, error) {
	if e.Cell != nil {
		return e.Cell, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cell.Label}
	}
	return nil, &NotLoadedError{edge: "cell"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditentry.FieldSeq:
			values[i] = new(sql.NullInt64)
		case auditentry.FieldActor, auditentry.FieldAction, auditentry.FieldReason, auditentry.FieldBeforeValue, auditentry.FieldAfterValue, auditentry.FieldBeforeState, auditentry.FieldAfterState:
			values[i] = new(sql.NullString)
		case auditentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case auditentry.FieldID, auditentry.FieldCellID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditEntry fields.
func (_m *AuditEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case auditentry.FieldCellID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field cell_id", values[i])
			} else if value != nil {
				_m.CellID = *value
			}
		case auditentry.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case auditentry.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case auditentry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case auditentry.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case auditentry.FieldBeforeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field before_value", values[i])
			} else if value.Valid {
				_m.BeforeValue = new(string)
				*_m.BeforeValue = value.String
			}
		case auditentry.FieldAfterValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field after_value", values[i])
			} else if value.Valid {
				_m.AfterValue = new(string)
				*_m.AfterValue = value.String
			}
		case auditentry.FieldBeforeState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field before_state", values[i])
			} else if value.Valid {
				_m.BeforeState = value.String
			}
		case auditentry.FieldAfterState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field after_state", values[i])
			} else if value.Valid {
				_m.AfterState = value.String
			}
		case auditentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditEntry.
// This includes values selected through modifiers, order, etc.
func (_m *AuditEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCell queries the "cell" edge of the AuditEntry entity.
func (_m *AuditEntry) QueryCell() *CellQuery {
	return NewAuditEntryClient(_m.config).QueryCell(_m)
}

// Update returns a builder for updating this AuditEntry.
// Note that you need to call AuditEntry.Unwrap() before calling this method if this AuditEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditEntry) Update() *AuditEntryUpdateOne {
	return NewAuditEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditEntry) Unwrap() *AuditEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditEntry) String() string {
	var builder strings.Builder
	builder.WriteString("AuditEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cell_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CellID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BeforeValue; v != nil {
		builder.WriteString("before_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AfterValue; v != nil {
		builder.WriteString("after_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("before_state=")
	builder.WriteString(_m.BeforeState)
	builder.WriteString(", ")
	builder.WriteString("after_state=")
	builder.WriteString(_m.AfterState)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditEntries is a parsable slice of AuditEntry.
type AuditEntries []*AuditEntry
