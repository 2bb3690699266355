// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"ent/cell"
	"ent/document"
	"ent/reviewjob"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Cell is the model entity for the Cell schema.
type Cell struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// DocumentIdentifier holds the value of the "document_identifier" field.
	DocumentIdentifier string `json:"document_identifier,omitempty"`
	// FieldKey holds the value of the "field_key" field.
	FieldKey string `json:"field_key,omitempty"`
	// FieldLabel holds the value of the "field_label" field.
	FieldLabel string `json:"field_label,omitempty"`
	// FieldType holds the value of the "field_type" field.
	FieldType string `json:"field_type,omitempty"`
	// Value holds the value of the "value" field.
	Value *string `json:"value,omitempty"`
	// ValueRaw holds the value of the "value_raw" field.
	ValueRaw *string `json:"value_raw,omitempty"`
	// ValueNormalized holds the value of the "value_normalized" field.
	ValueNormalized *string `json:"value_normalized,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ConfidenceReasons holds the value of the "confidence_reasons" field.
	ConfidenceReasons []string `json:"confidence_reasons,omitempty"`
	// ReviewState holds the value of the "review_state" field.
	ReviewState string `json:"review_state,omitempty"`
	// Citation holds the value of the "citation" field.
	Citation json.RawMessage `json:"citation,omitempty"`
	// Ordinal holds the value of the "ordinal" field.
	Ordinal int `json:"ordinal,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CellQuery when eager-loading is set.
	Edges        CellEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CellEdges holds the relations/edges for other nodes in the graph.
type CellEdges struct {
	// Job holds the value of the job edge.
	Job *ReviewJob `json:"job,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// AuditEntries holds the value of the audit_entries edge.
	AuditEntries []*AuditEntry `json:"audit_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CellEdges) JobOrErr() (*ReviewJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reviewjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CellEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// AuditEntriesOrErr returns the AuditEntries value or an error if the edge
// was not loaded in eager-loading.
func (e CellEdges) AuditEntriesOrErr() ([]*AuditEntry, error) {
	if e.loadedTypes[2] {
		return e.AuditEntries, nil
	}
	return nil, &NotLoadedError{edge: "audit_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cell) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cell.FieldConfidenceReasons, cell.FieldCitation:
			values[i] = new([]byte)
		case cell.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case cell.FieldOrdinal, cell.FieldVersion:
			values[i] = new(sql.NullInt64)
		case cell.FieldDocumentID, cell.FieldDocumentIdentifier, cell.FieldFieldKey, cell.FieldFieldLabel, cell.FieldFieldType, cell.FieldValue, cell.FieldValueRaw, cell.FieldValueNormalized, cell.FieldReviewState:
			values[i] = new(sql.NullString)
		case cell.FieldCreatedAt, cell.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case cell.FieldID, cell.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cell fields.
func (_m *Cell) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cell.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cell.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case cell.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case cell.FieldDocumentIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_identifier", values[i])
			} else if value.Valid {
				_m.DocumentIdentifier = value.String
			}
		case cell.FieldFieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_key", values[i])
			} else if value.Valid {
				_m.FieldKey = value.String
			}
		case cell.FieldFieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_label", values[i])
			} else if value.Valid {
				_m.FieldLabel = value.String
			}
		case cell.FieldFieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type", values[i])
			} else if value.Valid {
				_m.FieldType = value.String
			}
		case cell.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(string)
				*_m.Value = value.String
			}
		case cell.FieldValueRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_raw", values[i])
			} else if value.Valid {
				_m.ValueRaw = new(string)
				*_m.ValueRaw = value.String
			}
		case cell.FieldValueNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_normalized", values[i])
			} else if value.Valid {
				_m.ValueNormalized = new(string)
				*_m.ValueNormalized = value.String
			}
		case cell.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case cell.FieldConfidenceReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfidenceReasons); err != nil {
					return fmt.Errorf("unmarshal field confidence_reasons: %w", err)
				}
			}
		case cell.FieldReviewState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_state", values[i])
			} else if value.Valid {
				_m.ReviewState = value.String
			}
		case cell.FieldCitation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field citation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Citation); err != nil {
					return fmt.Errorf("unmarshal field citation: %w", err)
				}
			}
		case cell.FieldOrdinal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordinal", values[i])
			} else if value.Valid {
				_m.Ordinal = int(value.Int64)
			}
		case cell.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case cell.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cell.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the Cell.
// This includes values selected through modifiers, order, etc.
func (_m *Cell) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Cell entity.
func (_m *Cell) QueryJob() *ReviewJobQuery {
	return NewCellClient(_m.config).QueryJob(_m)
}

// QueryDocument queries the "document" edge of the Cell entity.
func (_m *Cell) QueryDocument() *DocumentQuery {
	return NewCellClient(_m.config).QueryDocument(_m)
}

// QueryAuditEntries queries the "audit_entries" edge of the Cell entity.
func (_m *Cell) QueryAuditEntries() *AuditEntryQuery {
	return NewCellClient(_m.config).QueryAuditEntries(_m)
}

// Update returns a builder for updating this Cell.
// Note that you need to call Cell.Unwrap() before calling this method if this Cell
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cell) Update() *CellUpdateOne {
	return NewCellClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cell entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cell) Unwrap() *Cell {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cell is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cell) String() string {
	var builder strings.Builder
	builder.WriteString("Cell(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("document_identifier=")
	builder.WriteString(_m.DocumentIdentifier)
	builder.WriteString(", ")
	builder.WriteString("field_key=")
	builder.WriteString(_m.FieldKey)
	builder.WriteString(", ")
	builder.WriteString("field_label=")
	builder.WriteString(_m.FieldLabel)
	builder.WriteString(", ")
	builder.WriteString("field_type=")
	builder.WriteString(_m.FieldType)
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueRaw; v != nil {
		builder.WriteString("value_raw=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueNormalized; v != nil {
		builder.WriteString("value_normalized=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("confidence_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceReasons))
	builder.WriteString(", ")
	builder.WriteString("review_state=")
	builder.WriteString(_m.ReviewState)
	builder.WriteString(", ")
	builder.WriteString("citation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Citation))
	builder.WriteString(", ")
	builder.WriteString("ordinal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ordinal))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cells is a parsable slice of Cell.
type Cells []*Cell
