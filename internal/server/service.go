package server

import (
	"time"

	"go.uber.org/zap"

	legalreviewv1 "github.com/Tanjim-Islam/legal-tabular-review/gen/legalreview/v1"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/export"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/run"
)

// ReviewService is the gRPC surface over the extraction engine: document
// inventory, job submission/polling, the review table, cell review actions
// and exports.
type ReviewService struct {
	legalreviewv1.UnimplementedReviewServiceServer

	orchestrator *run.Orchestrator
	reviews      *review.Service
	exporter     *export.Service
	source       run.DocumentSource
	logger       *zap.Logger
}

func NewReviewService(orchestrator *run.Orchestrator, reviews *review.Service, exporter *export.Service, source run.DocumentSource, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		orchestrator: orchestrator,
		reviews:      reviews,
		exporter:     exporter,
		source:       source,
		logger:       logger,
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toProtoJob(job *entity.Job) *legalreviewv1.Job {
	out := &legalreviewv1.Job{
		Id:           job.ID.String(),
		Mode:         string(job.Mode),
		Status:       string(job.Status),
		ErrorMessage: deref(job.ErrorMessage),
		CreatedAt:    formatTime(job.CreatedAt),
		StartedAt:    formatTimePtr(job.StartedAt),
		FinishedAt:   formatTimePtr(job.FinishedAt),
	}
	for _, e := range job.DocumentErrors {
		out.DocumentErrors = append(out.DocumentErrors, &legalreviewv1.DocumentError{
			DocumentId: e.DocumentID,
			Identifier: e.Identifier,
			Message:    e.Message,
		})
	}
	return out
}

func toProtoCell(cell *entity.Cell) *legalreviewv1.Cell {
	out := &legalreviewv1.Cell{
		CellId:             cell.ID.String(),
		JobId:              cell.JobID.String(),
		DocumentId:         cell.DocumentID,
		DocumentIdentifier: cell.DocumentIdentifier,
		FieldKey:           cell.FieldKey,
		FieldLabel:         cell.FieldLabel,
		FieldType:          cell.FieldType,
		Value:              deref(cell.Value),
		ValueRaw:           deref(cell.ValueRaw),
		ValueNormalized:    deref(cell.ValueNormalized),
		Confidence:         cell.Confidence,
		ConfidenceReasons:  cell.ConfidenceReasons,
		ReviewState:        string(cell.ReviewState),
		Version:            int32(cell.Version),
		CreatedAt:          formatTime(cell.CreatedAt),
		UpdatedAt:          formatTime(cell.UpdatedAt),
	}
	if c := cell.Citation; c != nil {
		out.Citation = &legalreviewv1.Citation{
			DocumentId:         c.DocumentID,
			DocumentIdentifier: c.DocumentIdentifier,
			LocationType:       c.LocationType,
			Location:           int32(c.Location),
			Snippet:            c.Snippet,
			CharStart:          int32(c.CharStart),
			CharEnd:            int32(c.CharEnd),
		}
	}
	return out
}
