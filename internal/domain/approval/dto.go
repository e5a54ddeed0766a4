package approval

import (
	"regexp"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var periodValueRegex = regexp.MustCompile(`^\d{4}-(W\d{2}|\d{2})$`)

// ========================================
// APPROVAL DTOs
// ========================================

// UpsertApprovalRequest applies a period-level approval. The operation is
// idempotent: applying the same tuple twice produces the same stored state.
type UpsertApprovalRequest struct {
	EmployeeNo     string          `json:"employee_no"`
	PeriodType     string          `json:"period_type"`
	PeriodValue    string          `json:"period_value"`
	ConfirmedHours decimal.Decimal `json:"confirmed_hours"`
	ApprovalStage  string          `json:"approval_stage"`
}

func (r *UpsertApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	}

	if !PeriodType(r.PeriodType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: "period_type must be week or month",
		})
	}

	if !periodValueRegex.MatchString(r.PeriodValue) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_value",
			Message: "period_value must be YYYY-Www or YYYY-MM",
		})
	}

	if r.ConfirmedHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "confirmed_hours",
			Message: "confirmed_hours must not be negative",
		})
	}

	if !session.ApprovalStage(r.ApprovalStage).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_stage",
			Message: "approval_stage must be one of: pending, approved_production, final_approved_hr",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GetApprovalRequest looks up one record by its key tuple.
type GetApprovalRequest struct {
	EmployeeNo  string
	PeriodType  string
	PeriodValue string
}

func (r *GetApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	}

	if !PeriodType(r.PeriodType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: "period_type must be week or month",
		})
	}

	if !periodValueRegex.MatchString(r.PeriodValue) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_value",
			Message: "period_value must be YYYY-Www or YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovalResponse struct {
	ID             string          `json:"id"`
	EmployeeNo     string          `json:"employee_no"`
	PeriodType     string          `json:"period_type"`
	PeriodValue    string          `json:"period_value"`
	ConfirmedHours decimal.Decimal `json:"confirmed_hours"`
	ApprovalStage  string          `json:"approval_stage"`
	UpdatedAt      string          `json:"updated_at"`
}
