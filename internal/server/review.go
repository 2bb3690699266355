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
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
)

func (s *ReviewService) UpdateCell(ctx context.Context, req *legalreviewv1.UpdateCellRequest) (*legalreviewv1.UpdateCellResponse, error) {
	v := common.NewValidator().
		Field("cell_id", req.GetCellId(), common.Required, common.UUID).
		Field("actor", req.GetActor(), common.Required, common.MaxLength(255)).
		Field("reason", req.GetReason(), common.MaxLength(500))
	if req.GetReviewState() != "" {
		v.Field("review_state", req.GetReviewState(), common.OneOf(constants.ReviewStates...))
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	cellID, err := uuid.Parse(req.GetCellId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "cell_id must be a UUID")
	}

	ctx = common.WithActor(ctx, req.GetActor())
	action := review.Action{
		Actor:           req.GetActor(),
		ExpectedVersion: int(req.GetExpectedVersion()),
	}
	if req.GetReviewState() != "" {
		state := constants.ReviewState(req.GetReviewState())
		action.ReviewState = &state
	}
	if req.ManualValue != nil {
		v := req.GetManualValue()
		action.ManualValue = &v
	}
	if req.GetReason() != "" {
		reason := req.GetReason()
		action.Reason = &reason
	}

	cell, err := s.reviews.Apply(ctx, cellID, action)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "cell not found")
		case errors.Is(err, review.ErrVersionConflict):
			// The caller must re-read the cell and retry with the new version.
			return nil, status.Error(codes.Aborted, err.Error())
		}
		s.logger.Warn("update cell failed", zap.String("cell_id", req.GetCellId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "update cell failed")
	}

	return &legalreviewv1.UpdateCellResponse{Cell: toProtoCell(cell)}, nil
}

func (s *ReviewService) GetCellAudit(ctx context.Context, req *legalreviewv1.GetCellAuditRequest) (*legalreviewv1.GetCellAuditResponse, error) {
	cellID, err := uuid.Parse(req.GetCellId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "cell_id must be a UUID")
	}

	entries, err := s.reviews.Audit(ctx, cellID)
	if err != nil {
		s.logger.Warn("get cell audit failed", zap.String("cell_id", req.GetCellId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "get cell audit failed")
	}

	out := make([]*legalreviewv1.AuditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &legalreviewv1.AuditEntry{
			Id:          e.ID.String(),
			CellId:      e.CellID.String(),
			Seq:         int32(e.Seq),
			Actor:       e.Actor,
			Action:      e.Action,
			Reason:      deref(e.Reason),
			BeforeValue: deref(e.BeforeValue),
			AfterValue:  deref(e.AfterValue),
			BeforeState: string(e.BeforeState),
			AfterState:  string(e.AfterState),
			CreatedAt:   formatTime(e.CreatedAt),
		})
	}
	return &legalreviewv1.GetCellAuditResponse{Entries: out}, nil
}
