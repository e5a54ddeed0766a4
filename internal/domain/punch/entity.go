package punch

import "time"

// MissingMark is the explicit placeholder for an absent punch time. A missing
// field is marked, never defaulted, so downstream computation can refuse to
// produce a misleading number.
const MissingMark = "MISSING"

// InvalidDateMark is the logical_date reported for lines that could not be
// parsed at all.
const InvalidDateMark = "INVALID"

// RawPunch is one parsed punch-clock event. Ephemeral: produced by ingestion,
// consumed immediately by the reconstructor, never persisted as-is.
type RawPunch struct {
	EmployeeNo string
	Timestamp  time.Time
	SourceLine string
}

// InvalidPunch is the diagnostic record for a line that could not be parsed.
// Invalid lines are reported separately, never silently dropped and never
// merged into a session.
type InvalidPunch struct {
	EmployeeNo  string `json:"employee_no"`
	LogicalDate string `json:"logical_date"`
	RawLine     string `json:"raw_line"`
}

// ReconstructedDay is at most one (in, out) pair per employee per logical
// work-day. Either time may be nil when the punch stream did not contain it.
type ReconstructedDay struct {
	EmployeeNo string
	Date       time.Time
	InTime     *time.Time
	OutTime    *time.Time
}

// Result is the full output of a reconstruction pass.
type Result struct {
	Days    []ReconstructedDay
	Invalid []InvalidPunch
}
