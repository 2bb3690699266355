package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/gen/ent"
	entcell "github.com/Tanjim-Islam/legal-tabular-review/gen/ent/cell"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
)

type CellRepository interface {
	SaveCells(ctx context.Context, cells []*entity.Cell) error
	ListCells(ctx context.Context, jobID uuid.UUID) ([]*entity.Cell, error)
	GetCell(ctx context.Context, cellID uuid.UUID) (*entity.Cell, error)
	SaveReview(ctx context.Context, cell *entity.Cell, expectedVersion int, entry *entity.AuditEntry) error
	ListAudit(ctx context.Context, cellID uuid.UUID) ([]*entity.AuditEntry, error)
}

type cellRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCellRepository(entc *ent.Client, logger *slog.Logger) CellRepository {
	return &cellRepo{ent: entc, logger: logger}
}

// SaveCells persists a job's cells. Slice position is the canonical ordinal
// and is what ListCells orders by.
func (r *cellRepo) SaveCells(ctx context.Context, cells []*entity.Cell) error {
	builders := make([]*ent.CellCreate, len(cells))
	for i, cell := range cells {
		create := r.ent.Cell.Create().
			SetID(cell.ID).
			SetJobID(cell.JobID).
			SetDocumentID(cell.DocumentID).
			SetDocumentIdentifier(cell.DocumentIdentifier).
			SetFieldKey(cell.FieldKey).
			SetFieldLabel(cell.FieldLabel).
			SetFieldType(cell.FieldType).
			SetNillableValue(cell.Value).
			SetNillableValueRaw(cell.ValueRaw).
			SetNillableValueNormalized(cell.ValueNormalized).
			SetConfidence(cell.Confidence).
			SetConfidenceReasons(cell.ConfidenceReasons).
			SetReviewState(string(cell.ReviewState)).
			SetOrdinal(i).
			SetVersion(cell.Version).
			SetCreatedAt(cell.CreatedAt).
			SetUpdatedAt(cell.UpdatedAt)
		if cell.Citation != nil {
			raw, err := json.Marshal(cell.Citation)
			if err != nil {
				return fmt.Errorf("marshal citation: %w", err)
			}
			create.SetCitation(raw)
		}
		builders[i] = create
	}
	if err := r.ent.Cell.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("cell bulk create failed", "count", len(cells), "error", err)
		return err
	}
	r.logger.Info("cells persisted", "count", len(cells))
	return nil
}

func (r *cellRepo) ListCells(ctx context.Context, jobID uuid.UUID) ([]*entity.Cell, error) {
	rows, err := r.ent.Cell.Query().
		Where(entcell.JobID(jobID)).
		Order(ent.Asc(entcell.FieldOrdinal)).
		All(ctx)
	if err != nil {
		r.logger.Error("cell list failed", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.Cell, len(rows))
	for i, row := range rows {
		cell, err := toEntityCell(row)
		if err != nil {
			return nil, err
		}
		out[i] = cell
	}
	return out, nil
}

func (r *cellRepo) GetCell(ctx context.Context, cellID uuid.UUID) (*entity.Cell, error) {
	row, err := r.ent.Cell.Get(ctx, cellID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND",
				fmt.Sprintf("cell %s not found", cellID), common.ErrNotFound)
		}
		return nil, err
	}
	return toEntityCell(row)
}

// SaveReview applies a review outcome transactionally: the cell row updates
// only if its stored version still matches, and the audit entry's sequence
// number is assigned inside the same transaction.
func (r *cellRepo) SaveReview(ctx context.Context, cell *entity.Cell, expectedVersion int, entry *entity.AuditEntry) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	n, err := tx.Cell.Update().
		Where(entcell.ID(cell.ID), entcell.Version(expectedVersion)).
		SetNillableValue(cell.Value).
		SetReviewState(string(cell.ReviewState)).
		SetVersion(cell.Version).
		SetUpdatedAt(cell.UpdatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("cell review update failed", "cell_id", cell.ID, "error", err)
		return err
	}
	if n == 0 {
		err = fmt.Errorf("%w: cell %s expected version %d",
			review.ErrVersionConflict, cell.ID, expectedVersion)
		return err
	}

	seq, err := r.nextSeq(ctx, tx, cell.ID)
	if err != nil {
		return err
	}
	entry.Seq = seq

	_, err = tx.AuditEntry.Create().
		SetID(entry.ID).
		SetCellID(entry.CellID).
		SetSeq(entry.Seq).
		SetActor(entry.Actor).
		SetAction(entry.Action).
		SetNillableReason(entry.Reason).
		SetNillableBeforeValue(entry.BeforeValue).
		SetNillableAfterValue(entry.AfterValue).
		SetBeforeState(string(entry.BeforeState)).
		SetAfterState(string(entry.AfterState)).
		SetCreatedAt(entry.CreatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("audit append failed", "cell_id", cell.ID, "error", err)
		return err
	}

	err = tx.Commit()
	return err
}

func toEntityCell(row *ent.Cell) (*entity.Cell, error) {
	cell := &entity.Cell{
		ID:                 row.ID,
		JobID:              row.JobID,
		DocumentID:         row.DocumentID,
		DocumentIdentifier: row.DocumentIdentifier,
		FieldKey:           row.FieldKey,
		FieldLabel:         row.FieldLabel,
		FieldType:          row.FieldType,
		Value:              row.Value,
		ValueRaw:           row.ValueRaw,
		ValueNormalized:    row.ValueNormalized,
		Confidence:         row.Confidence,
		ConfidenceReasons:  row.ConfidenceReasons,
		ReviewState:        constants.ReviewState(row.ReviewState),
		Version:            row.Version,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if len(row.Citation) > 0 {
		var citation entity.Citation
		if err := json.Unmarshal(row.Citation, &citation); err != nil {
			return nil, fmt.Errorf("unmarshal citation: %w", err)
		}
		cell.Citation = &citation
	}
	return cell, nil
}
