package punch

import (
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH IMPORT DTOs
// ========================================

// ImportRequest carries raw punch-clock text, one punch per line:
// "<employee_no> <YYYY-MM-DD> <HH:MM[:SS]>" with arbitrary whitespace
// between fields. Shift is applied to every derived session because the
// punch stream itself carries no shift information.
type ImportRequest struct {
	Text  string `json:"text"`
	Shift string `json:"shift"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if r.Shift != "A" && r.Shift != "B" {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be A or B",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayPreview mirrors one reconstructed day with explicit MISSING markers,
// the same shape the punch-clock conversion sheet used.
type DayPreview struct {
	EmployeeNo string `json:"employee_no"`
	Date       string `json:"date"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
}

type PreviewResponse struct {
	Days    []DayPreview   `json:"days"`
	Invalid []InvalidPunch `json:"invalid"`
}

// ImportResult reports the outcome of persisting one derived session. The
// batch as a whole is never rolled back; one bad day must not block others.
type ImportResult struct {
	EmployeeNo string `json:"employee_no"`
	Date       string `json:"date"`
	SessionID  string `json:"session_id,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type ImportResponse struct {
	Imported int            `json:"imported"`
	Failed   int            `json:"failed"`
	Results  []ImportResult `json:"results"`
	Invalid  []InvalidPunch `json:"invalid"`
}
