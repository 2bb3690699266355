package server

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	legalreviewv1 "github.com/Tanjim-Islam/legal-tabular-review/gen/legalreview/v1"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
)

func (s *ReviewService) ListDocuments(ctx context.Context, _ *legalreviewv1.ListDocumentsRequest) (*legalreviewv1.ListDocumentsResponse, error) {
	docs, err := s.source.List(ctx)
	if err != nil {
		s.logger.Warn("list documents failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list documents failed")
	}

	out := make([]*legalreviewv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, &legalreviewv1.Document{
			Id:         d.ID,
			Identifier: d.Identifier,
			Path:       d.Path,
			Source:     d.Source,
			Format:     string(d.Format),
		})
	}
	return &legalreviewv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *ReviewService) SubmitRun(ctx context.Context, req *legalreviewv1.SubmitRunRequest) (*legalreviewv1.SubmitRunResponse, error) {
	mode, ok := constants.ParseJobMode(req.GetMode())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown mode %q", req.GetMode())
	}

	handle, err := s.orchestrator.Submit(ctx, mode, "")
	if err != nil {
		s.logger.Warn("submit run failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "submit run failed")
	}

	s.logger.Info("run submitted",
		zap.String("job_id", handle.JobID.String()),
		zap.String("mode", string(mode)))
	return &legalreviewv1.SubmitRunResponse{
		JobId:  handle.JobID.String(),
		Status: string(constants.JobStatusPending),
	}, nil
}

func (s *ReviewService) GetJob(ctx context.Context, req *legalreviewv1.GetJobRequest) (*legalreviewv1.GetJobResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.orchestrator.Status(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Warn("get job failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "get job failed")
	}
	return &legalreviewv1.GetJobResponse{Job: toProtoJob(job)}, nil
}

func (s *ReviewService) GetTable(ctx context.Context, req *legalreviewv1.GetTableRequest) (*legalreviewv1.GetTableResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	table, err := s.orchestrator.Result(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Warn("get table failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "get table failed")
	}

	resp := &legalreviewv1.GetTableResponse{Job: toProtoJob(table.Job)}
	for _, d := range table.Documents {
		resp.Documents = append(resp.Documents, &legalreviewv1.DocumentRef{Id: d.ID, Identifier: d.Identifier})
	}
	for _, f := range table.Fields {
		resp.Fields = append(resp.Fields, &legalreviewv1.FieldRef{Key: f.Key, Label: f.Label, Type: f.Type})
	}
	for _, row := range table.Rows {
		protoRow := &legalreviewv1.TableRow{
			FieldKey:   row.FieldKey,
			FieldLabel: row.FieldLabel,
			FieldType:  row.FieldType,
		}
		for _, cell := range row.Cells {
			if cell == nil {
				continue
			}
			protoRow.Cells = append(protoRow.Cells, toProtoCell(cell))
		}
		resp.Rows = append(resp.Rows, protoRow)
	}
	return resp, nil
}
