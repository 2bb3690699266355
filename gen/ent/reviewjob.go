// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"ent/reviewjob"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ReviewJob is the model entity for the ReviewJob schema.
type ReviewJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode string `json:"mode,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TemplatePath holds the value of the "template_path" field.
	TemplatePath string `json:"template_path,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// DocumentErrors holds the value of the "document_errors" field.
	DocumentErrors json.RawMessage `json:"document_errors,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewJobQuery when eager-loading is set.
	Edges        ReviewJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewJobEdges holds the relations/edges for other nodes in the graph.
type ReviewJobEdges struct {
	// Cells holds the value of the cells edge.
	Cells []*Cell `json:"cells,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CellsOrErr returns the Cells value or an error if the edge
// was not loaded in eager-loading.
func (e ReviewJobEdges) CellsOrErr() ([]*Cell, error) {
	if e.loadedTypes[0] {
		return e.Cells, nil
	}
	return nil, &NotLoadedError{edge: "cells"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewjob.FieldDocumentErrors:
			values[i] = new([]byte)
		case reviewjob.FieldMode, reviewjob.FieldStatus, reviewjob.FieldTemplatePath, reviewjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case reviewjob.FieldCreatedAt, reviewjob.FieldStartedAt, reviewjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case reviewjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewJob fields.
func (_m *ReviewJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reviewjob.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case reviewjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case reviewjob.FieldTemplatePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_path", values[i])
			} else if value.Valid {
				_m.TemplatePath = value.String
			}
		case reviewjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case reviewjob.FieldDocumentErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocumentErrors); err != nil {
					return fmt.Errorf("unmarshal field document_errors: %w", err)
				}
			}
		case reviewjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reviewjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case reviewjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewJob.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCells queries the "cells" edge of the ReviewJob entity.
func (_m *ReviewJob) QueryCells() *CellQuery {
	return NewReviewJobClient(_m.config).QueryCells(_m)
}

// Update returns a builder for updating this ReviewJob.
// Note that you need to call ReviewJob.Unwrap() before calling this method if this ReviewJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewJob) Update() *ReviewJobUpdateOne {
	return NewReviewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewJob) Unwrap() *ReviewJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewJob) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("template_path=")
	builder.WriteString(_m.TemplatePath)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("document_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentErrors))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReviewJobs is a parsable slice of ReviewJob.
type ReviewJobs []*ReviewJob
