package approval

import (
	"fmt"
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopspring/decimal"
)

// PeriodType is the unit over which sessions are aggregated for approval.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

func (p PeriodType) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth
}

// ValueFor returns the period value a logical work-day falls into:
// ISO week "YYYY-Www" or calendar month "YYYY-MM".
func (p PeriodType) ValueFor(date time.Time) string {
	if p == PeriodWeek {
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return date.Format("2006-01")
}

// ApprovalRecord is the only persisted aggregate: one record per
// (employee_no, period_type, period_value), upserted and never duplicated.
type ApprovalRecord struct {
	ID             string
	EmployeeNo     string
	PeriodType     PeriodType
	PeriodValue    string
	ConfirmedHours decimal.Decimal
	ApprovalStage  session.ApprovalStage
	UpdatedAt      time.Time
}
