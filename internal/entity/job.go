package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
)

// DocumentError records a per-document failure that did not abort the job.
type DocumentError struct {
	DocumentID string `json:"document_id"`
	Identifier string `json:"identifier"`
	Message    string `json:"message"`
}

// Job represents one extraction run for data transfer between layers.
// It owns the cells produced by its run.
type Job struct {
	ID             uuid.UUID           `json:"id"`
	Mode           constants.JobMode   `json:"mode"`
	Status         constants.JobStatus `json:"status"`
	TemplatePath   string              `json:"template_path,omitempty"`
	ErrorMessage   *string             `json:"error_message,omitempty"`
	DocumentErrors []DocumentError     `json:"document_errors,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	StartedAt      *time.Time          `json:"started_at,omitempty"`
	FinishedAt     *time.Time          `json:"finished_at,omitempty"`
}
