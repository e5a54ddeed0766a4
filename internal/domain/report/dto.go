package report

import (
	"context"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REPORT DTOs
// ========================================

// GroupedReportRequest asks for per-period overtime summaries over an
// inclusive date range. The range is required: callers supply explicit
// bounds, there is no implicit current period.
type GroupedReportRequest struct {
	PeriodType string
	From       string
	To         string
}

func (r *GroupedReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !approval.PeriodType(r.PeriodType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be week or month",
		})
	}

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PeriodSummary is a read-only aggregate over one employee's sessions in one
// period. It is recomputed on demand from the session store and never
// persisted, so later session edits are always reflected. When a period
// ApprovalRecord exists its confirmed hours and stage are attached;
// otherwise they default to zero and pending.
type PeriodSummary struct {
	EmployeeNo       string          `json:"employee_no"`
	EmployeeName     string          `json:"employee_name"`
	PeriodValue      string          `json:"period_value"`
	TotalNormalHours decimal.Decimal `json:"total_ot_normal_hours"`
	TotalDoubleHours decimal.Decimal `json:"total_ot_double_hours"`
	TotalTripleHours decimal.Decimal `json:"total_ot_triple_hours"`
	SessionCount     int             `json:"session_count"`
	NightShiftCount  int             `json:"night_shift_count"`
	ConfirmedHours   decimal.Decimal `json:"confirmed_hours"`
	ApprovalStage    string          `json:"approval_stage"`
}

type GroupedReportResponse struct {
	PeriodType string          `json:"period_type"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Groups     []PeriodSummary `json:"groups"`
}

// ReportService defines the read-only aggregation surface
type ReportService interface {
	Grouped(ctx context.Context, req GroupedReportRequest) (GroupedReportResponse, error)
}
