// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "before_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "after_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "before_state", Type: field.TypeString},
		{Name: "after_state", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cell_id", Type: field.TypeUUID},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_cells_audit_entries",
				Columns:    []*schema.Column{AuditLogsColumns[10]},
				RefColumns: []*schema.Column{CellsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_cell_id_seq",
				Unique:  true,
				Columns: []*schema.Column{AuditLogsColumns[10], AuditLogsColumns[1]},
			},
		},
	}
	// CellsColumns holds the columns for the "cells" table.
	CellsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_identifier", Type: field.TypeString},
		{Name: "field_key", Type: field.TypeString},
		{Name: "field_label", Type: field.TypeString},
		{Name: "field_type", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "value_raw", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "value_normalized", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "confidence_reasons", Type: field.TypeJSON},
		{Name: "review_state", Type: field.TypeString},
		{Name: "citation", Type: field.TypeJSON, Nullable: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// CellsTable holds the schema information for the "cells" table.
	CellsTable = &schema.Table{
		Name:       "cells",
		Columns:    CellsColumns,
		PrimaryKey: []*schema.Column{CellsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cells_documents_cells",
				Columns:    []*schema.Column{CellsColumns[16]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "cells_review_jobs_cells",
				Columns:    []*schema.Column{CellsColumns[17]},
				RefColumns: []*schema.Column{ReviewJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cell_job_id_document_id_field_key",
				Unique:  true,
				Columns: []*schema.Column{CellsColumns[17], CellsColumns[16], CellsColumns[2]},
			},
			{
				Name:    "cell_job_id_ordinal",
				Unique:  false,
				Columns: []*schema.Column{CellsColumns[17], CellsColumns[12]},
			},
			{
				Name:    "cell_job_id_review_state",
				Unique:  false,
				Columns: []*schema.Column{CellsColumns[17], CellsColumns[10]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "identifier", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "first_seen_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// ReviewJobsColumns holds the columns for the "review_jobs" table.
	ReviewJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mode", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "template_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "document_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ReviewJobsTable holds the schema information for the "review_jobs" table.
	ReviewJobsTable = &schema.Table{
		Name:       "review_jobs",
		Columns:    ReviewJobsColumns,
		PrimaryKey: []*schema.Column{ReviewJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewJobsColumns[2], ReviewJobsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CellsTable,
		DocumentsTable,
		ReviewJobsTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = CellsTable
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	CellsTable.ForeignKeys[0].RefTable = DocumentsTable
	CellsTable.ForeignKeys[1].RefTable = ReviewJobsTable
	CellsTable.Annotation = &entsql.Annotation{
		Table: "cells",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ReviewJobsTable.Annotation = &entsql.Annotation{
		Table: "review_jobs",
	}
}
