package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/handler/http/response"
)

type ApprovalHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{
		approvalService: approvalService,
	}
}

// Get implements ApprovalHandler.
func (h *approvalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := approval.GetApprovalRequest{
		EmployeeNo:  query.Get("employee_no"),
		PeriodType:  query.Get("period_type"),
		PeriodValue: query.Get("period_value"),
	}

	result, err := h.approvalService.Get(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Upsert implements ApprovalHandler.
func (h *approvalHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req approval.UpsertApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode approval upsert request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.approvalService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval saved", result)
}
