// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Cell is the predicate function for cell builders.
type Cell func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ReviewJob is the predicate function for reviewjob builders.
type ReviewJob func(*sql.Selector)
