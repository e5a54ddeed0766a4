package session

import (
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// SESSION DTOs
// ========================================

type CreateSessionRequest struct {
	EmployeeNo   string `json:"employee_no"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Shift        string `json:"shift"`
	// InTime and OutTime are wall-clock values ("HH:MM" or "HH:MM:SS") on the
	// logical work-day. Either may be omitted; the session is then stored as
	// non-computable with zero OT.
	InTime        string          `json:"in_time"`
	OutTime       string          `json:"out_time"`
	OTTripleHours decimal.Decimal `json:"ot_triple_hours"`
	Reason        string          `json:"reason"`
}

func (r *CreateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be A or B",
		})
	}

	if r.InTime != "" {
		if _, ok := validator.ParseClock(r.InTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "in_time",
				Message: "in_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.OutTime != "" {
		if _, ok := validator.ParseClock(r.OutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "out_time",
				Message: "out_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.OTTripleHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "ot_triple_hours",
			Message: "ot_triple_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateSessionRequest replaces the editable fields of a session. Any change
// to date, shift, in_time or out_time re-runs the overtime computation as a
// whole; the computed fields are never patched individually.
type UpdateSessionRequest struct {
	Date           string          `json:"date"`
	Shift          string          `json:"shift"`
	InTime         string          `json:"in_time"`
	OutTime        string          `json:"out_time"`
	OTTripleHours  decimal.Decimal `json:"ot_triple_hours"`
	Reason         string          `json:"reason"`
	ConfirmedHours decimal.Decimal `json:"confirmed_hours"`
}

func (r *UpdateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be A or B",
		})
	}

	if r.InTime != "" {
		if _, ok := validator.ParseClock(r.InTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "in_time",
				Message: "in_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.OutTime != "" {
		if _, ok := validator.ParseClock(r.OutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "out_time",
				Message: "out_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.OTTripleHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "ot_triple_hours",
			Message: "ot_triple_hours must not be negative",
		})
	}

	if r.ConfirmedHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "confirmed_hours",
			Message: "confirmed_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SessionFilter narrows list queries. From and To are required: there is no
// implicit "current period" default, callers supply explicit bounds.
type SessionFilter struct {
	EmployeeNo    string
	From          string
	To            string
	ApprovalStage string
	Page          int
	Limit         int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(f.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if f.ApprovalStage != "" && !ApprovalStage(f.ApprovalStage).IsValid() {
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

// BulkApproveRequest sets the approval stage on every listed session. Each
// update is an isolated per-record operation; partial application is an
// expected outcome and re-issuing the same request is safe.
type BulkApproveRequest struct {
	SessionIDs    []string `json:"session_ids"`
	ApprovalStage string   `json:"approval_stage"`
}

func (r *BulkApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.SessionIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "session_ids",
			Message: "session_ids must not be empty",
		})
	}

	if !ApprovalStage(r.ApprovalStage).IsValid() {
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

// ========================================
// RESPONSES
// ========================================

type SessionResponse struct {
	ID             string          `json:"id"`
	EmployeeNo     string          `json:"employee_no"`
	EmployeeName   string          `json:"employee_name"`
	Date           string          `json:"date"`
	Shift          string          `json:"shift"`
	InTime         *string         `json:"in_time"`
	OutTime        *string         `json:"out_time"`
	IsNightShift   bool            `json:"is_night_shift"`
	Computable     bool            `json:"computable"`
	OTNormalHours  decimal.Decimal `json:"ot_normal_hours"`
	OTDoubleHours  decimal.Decimal `json:"ot_double_hours"`
	OTTripleHours  decimal.Decimal `json:"ot_triple_hours"`
	Reason         string          `json:"reason"`
	ConfirmedHours decimal.Decimal `json:"confirmed_hours"`
	ApprovalStage  string          `json:"approval_stage"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ListSessionsResponse struct {
	Sessions   []SessionResponse `json:"sessions"`
	TotalItems int64             `json:"total_items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type BulkApproveResult struct {
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type BulkApproveResponse struct {
	Updated int                 `json:"updated"`
	Failed  int                 `json:"failed"`
	Results []BulkApproveResult `json:"results"`
}
