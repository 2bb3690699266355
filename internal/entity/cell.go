package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
)

// Coordinates is reserved for future bounding-box citations. It is never
// populated; the field exists so the wire format is stable.
type Coordinates struct {
	Page int     `json:"page"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

// Citation is the located, quoted evidence for a cell's value.
// Immutable once built.
type Citation struct {
	DocumentID         string       `json:"document_id"`
	DocumentIdentifier string       `json:"document_identifier"`
	LocationType       string       `json:"location_type"`
	Location           int          `json:"location"`
	Snippet            string       `json:"snippet"`
	CharStart          int          `json:"char_start"`
	CharEnd            int          `json:"char_end"`
	Coordinates        *Coordinates `json:"coordinates"` // always null
}

// Cell is the reviewable unit: one field's value for one document within one
// job. ValueRaw is set exactly once at creation and never mutated by review
// actions. Version increments on every review action and backs the optimistic
// concurrency check.
type Cell struct {
	ID                 uuid.UUID             `json:"cell_id"`
	JobID              uuid.UUID             `json:"job_id"`
	DocumentID         string                `json:"document_id"`
	DocumentIdentifier string                `json:"document_identifier"`
	FieldKey           string                `json:"field_key"`
	FieldLabel         string                `json:"field_label"`
	FieldType          string                `json:"field_type"`
	Value              *string               `json:"value"`
	ValueRaw           *string               `json:"value_raw"`
	ValueNormalized    *string               `json:"value_normalized"`
	Confidence         float64               `json:"confidence"`
	ConfidenceReasons  []string              `json:"confidence_reasons"`
	ReviewState        constants.ReviewState `json:"review_state"`
	Citation           *Citation             `json:"citation"`
	Version            int                   `json:"version"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// AuditEntry is one append-only record of a review action against a cell.
// Seq is monotonic per cell with no gaps.
type AuditEntry struct {
	ID          uuid.UUID             `json:"id"`
	CellID      uuid.UUID             `json:"cell_id"`
	Seq         int                   `json:"seq"`
	Actor       string                `json:"actor"`
	Action      string                `json:"action"`
	Reason      *string               `json:"reason,omitempty"`
	BeforeValue *string               `json:"before_value"`
	AfterValue  *string               `json:"after_value"`
	BeforeState constants.ReviewState `json:"before_state"`
	AfterState  constants.ReviewState `json:"after_state"`
	CreatedAt   time.Time             `json:"created_at"`
}
