package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/gen/ent"
	entaudit "github.com/Tanjim-Islam/legal-tabular-review/gen/ent/auditentry"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

func (r *cellRepo) ListAudit(ctx context.Context, cellID uuid.UUID) ([]*entity.AuditEntry, error) {
	rows, err := r.ent.AuditEntry.Query().
		Where(entaudit.CellID(cellID)).
		Order(ent.Asc(entaudit.FieldSeq)).
		All(ctx)
	if err != nil {
		r.logger.Error("audit list failed", "cell_id", cellID, "error", err)
		return nil, err
	}
	out := make([]*entity.AuditEntry, len(rows))
	for i, row := range rows {
		out[i] = &entity.AuditEntry{
			ID:          row.ID,
			CellID:      row.CellID,
			Seq:         row.Seq,
			Actor:       row.Actor,
			Action:      row.Action,
			Reason:      row.Reason,
			BeforeValue: row.BeforeValue,
			AfterValue:  row.AfterValue,
			BeforeState: constants.ReviewState(row.BeforeState),
			AfterState:  constants.ReviewState(row.AfterState),
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

// nextSeq computes the next per-cell audit sequence number inside the
// caller's transaction.
func (r *cellRepo) nextSeq(ctx context.Context, tx *ent.Tx, cellID uuid.UUID) (int, error) {
	count, err := tx.AuditEntry.Query().
		Where(entaudit.CellID(cellID)).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}
