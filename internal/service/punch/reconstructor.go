package punch

import (
	"sort"
	"strings"
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
)

// DedupWindow is the span within which repeated scans of the same physical
// punch are discarded, keeping the earliest.
const DedupWindow = 60 * time.Second

// Reconstructor turns an unordered stream of raw punch-clock lines into at
// most one (in, out) pair per employee per logical work-day. It performs no
// I/O; malformed lines come back as diagnostics, never as sessions.
type Reconstructor struct{}

func NewReconstructor() *Reconstructor {
	return &Reconstructor{}
}

type dayKey struct {
	employeeNo string
	date       string
}

// Reconstruct parses, groups, deduplicates and derives sessions from raw
// punch lines. Lines with fewer than three whitespace-delimited fields or an
// unparsable date/time are reported in Result.Invalid.
func (r *Reconstructor) Reconstruct(lines []string) punch.Result {
	var result punch.Result
	groups := make(map[dayKey][]punch.RawPunch)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			result.Invalid = append(result.Invalid, punch.InvalidPunch{
				EmployeeNo:  fields[0],
				LogicalDate: punch.InvalidDateMark,
				RawLine:     line,
			})
			continue
		}

		ts, ok := parseTimestamp(fields[1], fields[2])
		if !ok {
			result.Invalid = append(result.Invalid, punch.InvalidPunch{
				EmployeeNo:  fields[0],
				LogicalDate: punch.InvalidDateMark,
				RawLine:     line,
			})
			continue
		}

		day := logicalDay(ts)
		key := dayKey{employeeNo: fields[0], date: day.Format("2006-01-02")}
		groups[key] = append(groups[key], punch.RawPunch{
			EmployeeNo: fields[0],
			Timestamp:  ts,
			SourceLine: line,
		})
	}

	for key, punches := range groups {
		sort.Slice(punches, func(i, j int) bool {
			return punches[i].Timestamp.Before(punches[j].Timestamp)
		})
		result.Days = append(result.Days, deriveDay(key, dedupe(punches)))
	}

	sort.Slice(result.Days, func(i, j int) bool {
		a, b := result.Days[i], result.Days[j]
		if a.EmployeeNo != b.EmployeeNo {
			return a.EmployeeNo < b.EmployeeNo
		}
		return a.Date.Before(b.Date)
	})

	return result
}

func parseTimestamp(dateStr, timeStr string) (time.Time, bool) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return time.Time{}, false
	}
	clock, ok := validator.ParseClock(timeStr)
	if !ok {
		return time.Time{}, false
	}
	return date.Add(clock), true
}

// logicalDay assigns a punch to its logical work-day: punches before 06:00
// belong to the previous date (the out-punch of an overnight shift).
func logicalDay(ts time.Time) time.Time {
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
	if ts.Hour() < 6 {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// dedupe drops punches within DedupWindow of the previously kept punch,
// scanning chronologically. The earliest scan of a physical event wins.
func dedupe(punches []punch.RawPunch) []punch.RawPunch {
	kept := punches[:1]
	last := punches[0].Timestamp
	for _, p := range punches[1:] {
		if p.Timestamp.Sub(last) <= DedupWindow {
			continue
		}
		kept = append(kept, p)
		last = p.Timestamp
	}
	return kept
}

func deriveDay(key dayKey, kept []punch.RawPunch) punch.ReconstructedDay {
	date, _ := time.Parse("2006-01-02", key.date)
	day := punch.ReconstructedDay{
		EmployeeNo: key.employeeNo,
		Date:       date,
	}

	if len(kept) == 1 {
		ts := kept[0].Timestamp
		// A lone punch before 06:00 can only be an out-punch.
		if ts.Hour() < 6 {
			day.OutTime = &ts
		} else {
			day.InTime = &ts
		}
		return day
	}

	for i := range kept {
		if kept[i].Timestamp.Hour() >= 6 {
			day.InTime = &kept[i].Timestamp
			break
		}
	}

	out := kept[len(kept)-1].Timestamp
	day.OutTime = &out

	// The same physical punch cannot serve as both in and out.
	if day.InTime != nil && day.InTime.Equal(out) {
		day.OutTime = nil
	}

	return day
}
