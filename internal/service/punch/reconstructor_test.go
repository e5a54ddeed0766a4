package punch

import (
	"strings"
	"testing"
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(text string) []string {
	return strings.Split(text, "\n")
}

func TestReconstruct_SimplePair(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E1   2025-06-02   06:30:00
E1   2025-06-02   17:00:00
`))

	require.Len(t, result.Days, 1)
	assert.Empty(t, result.Invalid)

	day := result.Days[0]
	assert.Equal(t, "E1", day.EmployeeNo)
	assert.Equal(t, "2025-06-02", day.Date.Format("2006-01-02"))
	require.NotNil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "06:30:00", day.InTime.Format("15:04:05"))
	assert.Equal(t, "17:00:00", day.OutTime.Format("15:04:05"))
}

func TestReconstruct_OvernightPairBelongsToStartDay(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E2 2025-06-03 23:50
E2 2025-06-04 02:10
`))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	assert.Equal(t, "2025-06-03", day.Date.Format("2006-01-02"))
	require.NotNil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "2025-06-03 23:50:00", day.InTime.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-06-04 02:10:00", day.OutTime.Format("2006-01-02 15:04:05"))
}

func TestReconstruct_LonePunchBeforeSixIsOutOnly(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines("E3 2025-06-03 04:30"))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	assert.Equal(t, "2025-06-02", day.Date.Format("2006-01-02"))
	assert.Nil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "04:30:00", day.OutTime.Format("15:04:05"))
}

func TestReconstruct_LonePunchAfterSixIsInOnly(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines("E4 2025-06-02 06:45"))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	assert.Equal(t, "2025-06-02", day.Date.Format("2006-01-02"))
	require.NotNil(t, day.InTime)
	assert.Nil(t, day.OutTime)
}

func TestReconstruct_DedupKeepsEarliestWithinWindow(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E1 2025-06-02 06:30:00
E1 2025-06-02 06:30:45
E1 2025-06-02 17:00:00
`))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	require.NotNil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "06:30:00", day.InTime.Format("15:04:05"))
	assert.Equal(t, "17:00:00", day.OutTime.Format("15:04:05"))
}

func TestReconstruct_PunchesOutsideWindowBothKept(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E1 2025-06-02 06:30:00
E1 2025-06-02 06:31:01
`))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	require.NotNil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "06:30:00", day.InTime.Format("15:04:05"))
	assert.Equal(t, "06:31:01", day.OutTime.Format("15:04:05"))
}

func TestReconstruct_MultiplePunchesFirstAndLastWin(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E1 2025-06-02 12:15
E1 2025-06-02 06:30
E1 2025-06-02 17:00
E1 2025-06-02 12:45
`))

	require.Len(t, result.Days, 1)

	day := result.Days[0]
	require.NotNil(t, day.InTime)
	require.NotNil(t, day.OutTime)
	assert.Equal(t, "06:30:00", day.InTime.Format("15:04:05"))
	assert.Equal(t, "17:00:00", day.OutTime.Format("15:04:05"))
}

func TestReconstruct_InvalidLinesReported(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E1 2025-06-02
E2 not-a-date 06:30
E3 2025-06-02 25:99
E4 2025-06-02 06:30
`))

	require.Len(t, result.Days, 1)
	assert.Equal(t, "E4", result.Days[0].EmployeeNo)

	require.Len(t, result.Invalid, 3)
	for _, inv := range result.Invalid {
		assert.Equal(t, punch.InvalidDateMark, inv.LogicalDate)
		assert.NotEmpty(t, inv.RawLine)
	}
	assert.Equal(t, "E1", result.Invalid[0].EmployeeNo)
	assert.Equal(t, "E2", result.Invalid[1].EmployeeNo)
	assert.Equal(t, "E3", result.Invalid[2].EmployeeNo)
}

func TestReconstruct_DaysSortedByEmployeeThenDate(t *testing.T) {
	r := NewReconstructor()

	result := r.Reconstruct(lines(`
E2 2025-06-03 06:30
E1 2025-06-03 06:30
E1 2025-06-02 06:30
`))

	require.Len(t, result.Days, 3)
	assert.Equal(t, "E1", result.Days[0].EmployeeNo)
	assert.Equal(t, "2025-06-02", result.Days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "E1", result.Days[1].EmployeeNo)
	assert.Equal(t, "2025-06-03", result.Days[1].Date.Format("2006-01-02"))
	assert.Equal(t, "E2", result.Days[2].EmployeeNo)
}

func TestLogicalDay(t *testing.T) {
	tests := []struct {
		name     string
		ts       string
		expected string
	}{
		{name: "morning punch stays on its date", ts: "2025-06-03 06:00:00", expected: "2025-06-03"},
		{name: "just before six belongs to previous day", ts: "2025-06-03 05:59:59", expected: "2025-06-02"},
		{name: "midnight belongs to previous day", ts: "2025-06-03 00:00:00", expected: "2025-06-02"},
		{name: "evening punch stays on its date", ts: "2025-06-03 23:50:00", expected: "2025-06-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := time.Parse("2006-01-02 15:04:05", tt.ts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logicalDay(ts).Format("2006-01-02"))
		})
	}
}
