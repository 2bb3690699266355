// Code generated by ent, DO NOT EDIT.

package cell

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cell type in the database.
	Label = "cell"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDocumentIdentifier holds the string denoting the document_identifier field in the database.
	FieldDocumentIdentifier = "document_identifier"
	// FieldFieldKey holds the string denoting the field_key field in the database.
	FieldFieldKey = "field_key"
	// FieldFieldLabel holds the string denoting the field_label field in the database.
	FieldFieldLabel = "field_label"
	// FieldFieldType holds the string denoting the field_type field in the database.
	FieldFieldType = "field_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldValueRaw holds the string denoting the value_raw field in the database.
	FieldValueRaw = "value_raw"
	// FieldValueNormalized holds the string denoting the value_normalized field in the database.
	FieldValueNormalized = "value_normalized"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldConfidenceReasons holds the string denoting the confidence_reasons field in the database.
	FieldConfidenceReasons = "confidence_reasons"
	// FieldReviewState holds the string denoting the review_state field in the database.
	FieldReviewState = "review_state"
	// FieldCitation holds the string denoting the citation field in the database.
	FieldCitation = "citation"
	// FieldOrdinal holds the string denoting the ordinal field in the database.
	FieldOrdinal = "ordinal"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeAuditEntries holds the string denoting the audit_entries edge name in mutations.
	EdgeAuditEntries = "audit_entries"
	// Table holds the table name of the cell in the database.
	Table = "cells"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "cells"
	// JobInverseTable is the table name for the ReviewJob entity.
	// It exists in this package in order to avoid circular dependency with the "reviewjob" package.
	JobInverseTable = "review_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "cells"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// AuditEntriesTable is the table that holds the audit_entries relation/edge.
	AuditEntriesTable = "audit_logs"
	// AuditEntriesInverseTable is the table name for the AuditEntry entity.
	// It exists in this package in order to avoid circular dependency with the "auditentry" package.
	AuditEntriesInverseTable = "audit_logs"
	// AuditEntriesColumn is the table column denoting the audit_entries relation/edge.
	AuditEntriesColumn = "cell_id"
)

// Columns holds all SQL columns for cell fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldDocumentID,
	FieldDocumentIdentifier,
	FieldFieldKey,
	FieldFieldLabel,
	FieldFieldType,
	FieldValue,
	FieldValueRaw,
	FieldValueNormalized,
	FieldConfidence,
	FieldConfidenceReasons,
	FieldReviewState,
	FieldCitation,
	FieldOrdinal,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// DocumentIdentifierValidator is a validator for the "document_identifier" field. It is called by the builders before save.
	DocumentIdentifierValidator func(string) error
	// FieldKeyValidator is a validator for the "field_key" field. It is called by the builders before save.
	FieldKeyValidator func(string) error
	// FieldLabelValidator is a validator for the "field_label" field. It is called by the builders before save.
	FieldLabelValidator func(string) error
	// FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	FieldTypeValidator func(string) error
	// ReviewStateValidator is a validator for the "review_state" field. It is called by the builders before save.
	ReviewStateValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Cell queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByDocumentIdentifier orders the results by the document_identifier field.
func ByDocumentIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentIdentifier, opts...).ToFunc()
}

// ByFieldKey orders the results by the field_key field.
func ByFieldKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldKey, opts...).ToFunc()
}

// ByFieldLabel orders the results by the field_label field.
func ByFieldLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldLabel, opts...).ToFunc()
}

// ByFieldType orders the results by the field_type field.
func ByFieldType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByValueRaw orders the results by the value_raw field.
func ByValueRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueRaw, opts...).ToFunc()
}

// ByValueNormalized orders the results by the value_normalized field.
func ByValueNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueNormalized, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReviewState orders the results by the review_state field.
func ByReviewState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewState, opts...).ToFunc()
}

// ByOrdinal orders the results by the ordinal field.
func ByOrdinal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrdinal, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuditEntriesCount orders the results by audit_entries count.
func ByAuditEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEntriesStep(), opts...)
	}
}

// ByAuditEntries orders the results by audit_entries terms.
func ByAuditEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newAuditEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
	)
}
