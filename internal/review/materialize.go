package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/extract"
)

// NewCell mints a cell from one field's extraction result. value_raw is set
// here, exactly once; review actions never mutate it.
func NewCell(jobID uuid.UUID, doc entity.Document, result extract.FieldResult, now time.Time) *entity.Cell {
	return &entity.Cell{
		ID:                 uuid.New(),
		JobID:              jobID,
		DocumentID:         doc.ID,
		DocumentIdentifier: doc.Identifier,
		FieldKey:           result.FieldKey,
		FieldLabel:         result.FieldLabel,
		FieldType:          result.FieldType,
		Value:              result.Value,
		ValueRaw:           result.ValueRaw,
		ValueNormalized:    result.ValueNormalized,
		Confidence:         result.Confidence,
		ConfidenceReasons:  constants.ReasonStrings(result.Reasons),
		ReviewState:        result.ReviewState,
		Citation:           result.Citation,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewParseErrorCell mints the MISSING_DATA cell recorded for a field when its
// document could not be segmented at all.
func NewParseErrorCell(jobID uuid.UUID, doc entity.Document, fieldKey, fieldLabel, fieldType string, now time.Time) *entity.Cell {
	return &entity.Cell{
		ID:                 uuid.New(),
		JobID:              jobID,
		DocumentID:         doc.ID,
		DocumentIdentifier: doc.Identifier,
		FieldKey:           fieldKey,
		FieldLabel:         fieldLabel,
		FieldType:          fieldType,
		Confidence:         0,
		ConfidenceReasons:  []string{string(constants.ReasonParseError)},
		ReviewState:        constants.StateMissingData,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
