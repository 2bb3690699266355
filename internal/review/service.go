package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// Service applies review actions against cells and maintains the append-only
// audit trail. All mutation goes through Apply; the store serializes writers
// per cell.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Apply validates and executes one review action. On success it returns the
// updated cell; the matching audit entry is persisted atomically with it.
func (s *Service) Apply(ctx context.Context, cellID uuid.UUID, action Action) (*entity.Cell, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	cell, err := s.store.GetCell(ctx, cellID)
	if err != nil {
		return nil, err
	}
	if cell.Version != action.ExpectedVersion {
		return nil, fmt.Errorf("%w: cell %s is at version %d, action expected %d",
			ErrVersionConflict, cellID, cell.Version, action.ExpectedVersion)
	}

	target := action.TargetState()
	if !CanTransition(cell.ReviewState, target) {
		return nil, common.NewAppError("VALIDATION_ERROR",
			fmt.Sprintf("transition %s -> %s is not allowed", cell.ReviewState, target),
			common.ErrValidation)
	}

	now := time.Now().UTC()
	updated := *cell
	updated.ReviewState = target
	if action.ManualValue != nil {
		v := *action.ManualValue
		updated.Value = &v
	}
	updated.Version = cell.Version + 1
	updated.UpdatedAt = now

	entry := &entity.AuditEntry{
		ID:          uuid.New(),
		CellID:      cell.ID,
		Actor:       action.Actor,
		Action:      action.Name(),
		Reason:      action.Reason,
		BeforeValue: cell.Value,
		AfterValue:  updated.Value,
		BeforeState: cell.ReviewState,
		AfterState:  updated.ReviewState,
		CreatedAt:   now,
	}

	if err := s.store.SaveReview(ctx, &updated, action.ExpectedVersion, entry); err != nil {
		return nil, err
	}

	s.logger.Info("review action applied",
		slog.String("cell_id", cell.ID.String()),
		slog.String("action", action.Name()),
		slog.String("actor", action.Actor),
		slog.String("from", string(cell.ReviewState)),
		slog.String("to", string(updated.ReviewState)),
		slog.Int("version", updated.Version))

	return &updated, nil
}

// Audit returns the full ordered audit trail for a cell.
func (s *Service) Audit(ctx context.Context, cellID uuid.UUID) ([]*entity.AuditEntry, error) {
	return s.store.ListAudit(ctx, cellID)
}
