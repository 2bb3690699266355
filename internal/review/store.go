package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// Store is the persistence contract the review service depends on. The
// SaveReview call must be atomic: the cell update, the version check and the
// audit append happen together or not at all, and audit sequence numbers are
// assigned under that same serialization.
type Store interface {
	GetCell(ctx context.Context, cellID uuid.UUID) (*entity.Cell, error)

	// SaveReview persists the updated cell iff the stored version still
	// equals expectedVersion, assigns entry.Seq (monotonic per cell, no
	// gaps) and appends the entry. Returns ErrVersionConflict on a stale
	// expectedVersion.
	SaveReview(ctx context.Context, cell *entity.Cell, expectedVersion int, entry *entity.AuditEntry) error

	ListAudit(ctx context.Context, cellID uuid.UUID) ([]*entity.AuditEntry, error)
}
