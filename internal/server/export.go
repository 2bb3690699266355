package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	legalreviewv1 "github.com/Tanjim-Islam/legal-tabular-review/gen/legalreview/v1"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
)

func (s *ReviewService) Export(ctx context.Context, req *legalreviewv1.ExportRequest) (*legalreviewv1.ExportResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	format := req.GetFormat()
	if format == "" {
		format = "csv"
	}

	job, err := s.orchestrator.Status(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Error(codes.Internal, "export failed")
	}
	if job.Status != constants.JobStatusSucceeded {
		return nil, status.Errorf(codes.FailedPrecondition, "job is %s, export requires SUCCEEDED", job.Status)
	}

	table, err := s.orchestrator.Result(ctx, jobID)
	if err != nil {
		s.logger.Warn("export: table assembly failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "export failed")
	}

	var content []byte
	var contentType string
	switch format {
	case "csv":
		content, err = s.exporter.ExportCSV(table)
		contentType = "text/csv"
	case "xlsx":
		content, err = s.exporter.ExportXLSX(table)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown export format %q", format)
	}
	if err != nil {
		s.logger.Warn("export render failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &legalreviewv1.ExportResponse{
		Content:     content,
		Filename:    fmt.Sprintf("review_%s.%s", jobID, format),
		ContentType: contentType,
	}, nil
}
