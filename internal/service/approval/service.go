package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
)

type ApprovalServiceImpl struct {
	approvalRepo approval.ApprovalRepository
}

func NewApprovalService(approvalRepo approval.ApprovalRepository) approval.ApprovalService {
	return &ApprovalServiceImpl{
		approvalRepo: approvalRepo,
	}
}

// Upsert implements approval.ApprovalService. Applying the same tuple twice
// produces the same stored state; concurrent upserts to the same key resolve
// last-write-wins.
func (s *ApprovalServiceImpl) Upsert(ctx context.Context, req approval.UpsertApprovalRequest) (approval.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, err
	}

	rec := approval.ApprovalRecord{
		EmployeeNo:     req.EmployeeNo,
		PeriodType:     approval.PeriodType(req.PeriodType),
		PeriodValue:    req.PeriodValue,
		ConfirmedHours: req.ConfirmedHours,
		ApprovalStage:  session.ApprovalStage(req.ApprovalStage),
	}

	stored, err := s.approvalRepo.Upsert(ctx, rec)
	if err != nil {
		return approval.ApprovalResponse{}, fmt.Errorf("failed to upsert approval: %w", err)
	}

	return toResponse(stored), nil
}

// Get implements approval.ApprovalService.
func (s *ApprovalServiceImpl) Get(ctx context.Context, req approval.GetApprovalRequest) (approval.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, err
	}

	rec, err := s.approvalRepo.GetByKey(ctx, req.EmployeeNo, approval.PeriodType(req.PeriodType), req.PeriodValue)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	return toResponse(rec), nil
}

func toResponse(rec approval.ApprovalRecord) approval.ApprovalResponse {
	return approval.ApprovalResponse{
		ID:             rec.ID,
		EmployeeNo:     rec.EmployeeNo,
		PeriodType:     string(rec.PeriodType),
		PeriodValue:    rec.PeriodValue,
		ConfirmedHours: rec.ConfirmedHours,
		ApprovalStage:  string(rec.ApprovalStage),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}
}
