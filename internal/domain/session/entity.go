package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift identifies the fixed daily schedule a session belongs to.
type Shift string

const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
)

// End returns the shift-end threshold on the given work-day. Hours worked
// past this point count as normal overtime on non-Sunday sessions.
func (s Shift) End(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	switch s {
	case ShiftB:
		return d.Add(17*time.Hour + 30*time.Minute)
	default:
		return d.Add(15*time.Hour + 30*time.Minute)
	}
}

func (s Shift) IsValid() bool {
	return s == ShiftA || s == ShiftB
}

// ApprovalStage tracks how far a session (or period record) has moved
// through the approval workflow. Transitions are not forward-enforced:
// an approver may set an earlier stage again to reject.
type ApprovalStage string

const (
	StagePending            ApprovalStage = "pending"
	StageApprovedProduction ApprovalStage = "approved_production"
	StageFinalApprovedHR    ApprovalStage = "final_approved_hr"
)

func (s ApprovalStage) IsValid() bool {
	switch s {
	case StagePending, StageApprovedProduction, StageFinalApprovedHR:
		return true
	}
	return false
}

// WorkSession is the canonical unit: one reconciled work day for one employee.
type WorkSession struct {
	ID           string
	EmployeeNo   string
	EmployeeName string
	// Date is the logical work-day. A session starting at 23:00 and ending
	// 02:00 belongs to the day it started.
	Date    time.Time
	Shift   Shift
	InTime  *time.Time
	OutTime *time.Time

	IsNightShift  bool
	OTNormalHours decimal.Decimal
	OTDoubleHours decimal.Decimal
	// OTTripleHours is never derived; it is a manual entry carried through.
	OTTripleHours decimal.Decimal

	Reason         string
	ConfirmedHours decimal.Decimal
	ApprovalStage  ApprovalStage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Computable reports whether both punch times are present. A session with a
// missing in- or out-time carries zero OT and is flagged for manual follow-up
// instead of producing a misleading number.
func (s WorkSession) Computable() bool {
	return s.InTime != nil && s.OutTime != nil
}
