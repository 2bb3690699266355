package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/gen/ent"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

type JobRepository interface {
	CreateJob(ctx context.Context, job *entity.Job) error
	UpdateJob(ctx context.Context, job *entity.Job) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) CreateJob(ctx context.Context, job *entity.Job) error {
	_, err := r.ent.ReviewJob.Create().
		SetID(job.ID).
		SetMode(string(job.Mode)).
		SetStatus(string(job.Status)).
		SetTemplatePath(job.TemplatePath).
		SetCreatedAt(job.CreatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("job create failed", "job_id", job.ID, "error", err)
		return err
	}
	r.logger.Info("job created", "job_id", job.ID, "mode", job.Mode)
	return nil
}

func (r *jobRepo) UpdateJob(ctx context.Context, job *entity.Job) error {
	upd := r.ent.ReviewJob.UpdateOneID(job.ID).
		SetStatus(string(job.Status)).
		SetNillableStartedAt(job.StartedAt).
		SetNillableFinishedAt(job.FinishedAt).
		SetNillableErrorMessage(job.ErrorMessage)
	if len(job.DocumentErrors) > 0 {
		raw, err := json.Marshal(job.DocumentErrors)
		if err != nil {
			return err
		}
		upd.SetDocumentErrors(raw)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("job update failed", "job_id", job.ID, "error", err)
		return err
	}
	return nil
}

func (r *jobRepo) GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.ReviewJob.Get(ctx, jobID)
	if err != nil {
		r.logger.Error("job get failed", "job_id", jobID, "error", err)
		return nil, err
	}
	return toEntityJob(row)
}

func toEntityJob(row *ent.ReviewJob) (*entity.Job, error) {
	job := &entity.Job{
		ID:           row.ID,
		Mode:         constants.JobMode(row.Mode),
		Status:       constants.JobStatus(row.Status),
		TemplatePath: row.TemplatePath,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
	}
	if len(row.DocumentErrors) > 0 {
		if err := json.Unmarshal(row.DocumentErrors, &job.DocumentErrors); err != nil {
			return nil, err
		}
	}
	return job, nil
}
