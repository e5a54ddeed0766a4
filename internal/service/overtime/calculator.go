package overtime

import (
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopspring/decimal"
)

var four = decimal.NewFromInt(4)

// RoundQuarter rounds an hour quantity to the nearest quarter hour, half up.
func RoundQuarter(d decimal.Decimal) decimal.Decimal {
	return d.Mul(four).Round(0).Div(four)
}

// Calculator derives the computed overtime fields of a work session. It is
// pure: the full output set (normal, double, triple, night flag) is always
// recomputed together from the (date, shift, in, out) tuple, because the
// shift-end threshold and Sunday classification both depend on the whole
// tuple.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Recompute returns the session with rollover-corrected punch times and
// freshly derived overtime categories. A session with a missing in- or
// out-time carries zero OT and stays flagged for manual follow-up; it is
// never coerced into a zero-valued "normal" session.
//
// Triple OT has no derivation rule anywhere: it is always zero here and only
// ever set by manual entry downstream.
func (c *Calculator) Recompute(s session.WorkSession) session.WorkSession {
	s.OTNormalHours = decimal.Zero
	s.OTDoubleHours = decimal.Zero
	s.OTTripleHours = decimal.Zero
	s.IsNightShift = false

	date := midnight(s.Date)
	s.Date = date

	if !s.Computable() {
		return s
	}

	in := anchor(date, *s.InTime)
	out := anchor(date, *s.OutTime)

	// Rollover: an out-clock at or before the in-clock means the shift ran
	// past midnight. This is the only correction performed; applying it to
	// an already-corrected session is a no-op.
	if !out.After(in) {
		out = out.AddDate(0, 0, 1)
	}

	s.InTime = &in
	s.OutTime = &out

	s.IsNightShift = out.After(date.Add(21*time.Hour + 15*time.Minute))

	if date.Weekday() == time.Sunday {
		// Sundays: the entire session duration counts double.
		s.OTDoubleHours = RoundQuarter(hoursBetween(in, out))
		return s
	}

	shiftEnd := s.Shift.End(date)
	if out.After(shiftEnd) {
		s.OTNormalHours = RoundQuarter(hoursBetween(shiftEnd, out))
	}

	return s
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// anchor re-bases a punch's wall clock onto the logical work-day, so that a
// date edit moves both punch times with it before rollover correction.
func anchor(date, t time.Time) time.Time {
	clock := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	return date.Add(clock)
}

func hoursBetween(from, to time.Time) decimal.Decimal {
	seconds := decimal.NewFromFloat(to.Sub(from).Seconds())
	return seconds.Div(decimal.NewFromInt(3600))
}
