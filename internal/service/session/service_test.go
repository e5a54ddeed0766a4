package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/employee"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
	"github.com/shopfloor-hr/overtime-backend-go/internal/service/overtime"
	punchService "github.com/shopfloor-hr/overtime-backend-go/internal/service/punch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	byID map[string]session.WorkSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]session.WorkSession)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s session.WorkSession) (session.WorkSession, error) {
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (session.WorkSession, error) {
	s, ok := f.byID[id]
	if !ok {
		return session.WorkSession{}, session.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) GetByEmployeeAndDate(ctx context.Context, employeeNo string, date time.Time) (*session.WorkSession, error) {
	for _, s := range f.byID {
		if s.EmployeeNo == employeeNo && s.Date.Equal(date) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s session.WorkSession) error {
	if _, ok := f.byID[s.ID]; !ok {
		return session.ErrSessionNotFound
	}
	s.UpdatedAt = time.Now()
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) UpdateApprovalStage(ctx context.Context, id string, stage session.ApprovalStage) error {
	s, ok := f.byID[id]
	if !ok {
		return session.ErrSessionNotFound
	}
	s.ApprovalStage = stage
	f.byID[id] = s
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return session.ErrSessionNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) List(ctx context.Context, filter session.SessionFilter) ([]session.WorkSession, int64, error) {
	sessions := make([]session.WorkSession, 0, len(f.byID))
	for _, s := range f.byID {
		sessions = append(sessions, s)
	}
	return sessions, int64(len(sessions)), nil
}

func (f *fakeSessionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]session.WorkSession, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	names map[string]string
}

func (f *fakeEmployeeRepo) GetByEmployeeNo(ctx context.Context, employeeNo string) (employee.Employee, error) {
	name, ok := f.names[employeeNo]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{EmployeeNo: employeeNo, FullName: name}, nil
}

func newTestService(repo *fakeSessionRepo, names map[string]string) session.SessionService {
	return NewSessionService(
		repo,
		&fakeEmployeeRepo{names: names},
		punchService.NewReconstructor(),
		overtime.NewCalculator(),
	)
}

func TestCreate_ComputesOvertimeAndResolvesName(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, map[string]string{"E1": "Ayu Lestari"})

	resp, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "17:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ayu Lestari", resp.EmployeeName)
	assert.True(t, resp.OTNormalHours.Equal(decimal.RequireFromString("1.5")), "normal = %s", resp.OTNormalHours)
	assert.True(t, resp.Computable)
	assert.Equal(t, string(session.StagePending), resp.ApprovalStage)
}

func TestCreate_UnknownEmployeeStillSucceeds(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E9",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "15:30",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.EmployeeName)
}

func TestCreate_RejectsDuplicateDay(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	req := session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "17:00",
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, session.ErrSessionExists)
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), nil)

	_, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "",
		Date:       "02/06/2025",
		Shift:      "C",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestCreate_TripleHoursRoundedNotDerived(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo:    "E1",
		Date:          "2025-06-02",
		Shift:         "A",
		InTime:        "06:30",
		OutTime:       "15:30",
		OTTripleHours: decimal.RequireFromString("2.1"),
	})
	require.NoError(t, err)

	assert.True(t, resp.OTTripleHours.Equal(decimal.RequireFromString("2")), "triple = %s", resp.OTTripleHours)
}

func TestCreate_MissingOutTimeStoredNotComputable(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
	})
	require.NoError(t, err)

	assert.False(t, resp.Computable)
	assert.Nil(t, resp.OutTime)
	assert.True(t, resp.OTNormalHours.IsZero())
}

func TestUpdate_RecomputesFromNewTimes(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "15:30",
	})
	require.NoError(t, err)
	assert.True(t, created.OTNormalHours.IsZero())

	updated, err := svc.Update(context.Background(), created.ID, session.UpdateSessionRequest{
		Date:           "2025-06-02",
		Shift:          "A",
		InTime:         "06:30",
		OutTime:        "18:00",
		ConfirmedHours: decimal.RequireFromString("2"),
	})
	require.NoError(t, err)

	assert.True(t, updated.OTNormalHours.Equal(decimal.RequireFromString("2.5")), "normal = %s", updated.OTNormalHours)
	assert.True(t, updated.ConfirmedHours.Equal(decimal.RequireFromString("2")))
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), nil)

	_, err := svc.Update(context.Background(), "missing", session.UpdateSessionRequest{
		Date:  "2025-06-02",
		Shift: "A",
	})

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestBulkApprove_PartialFailureAndReissue(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "17:00",
	})
	require.NoError(t, err)

	req := session.BulkApproveRequest{
		SessionIDs:    []string{created.ID, "missing"},
		ApprovalStage: string(session.StageApprovedProduction),
	}

	resp, err := svc.BulkApprove(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.NotEmpty(t, resp.Results[1].Error)

	// Re-issuing the same request is safe: the stored stage is unchanged.
	again, err := svc.BulkApprove(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Updated)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StageApprovedProduction, stored.ApprovalStage)
}

func TestBulkApprove_RejectsInvalidStage(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), nil)

	_, err := svc.BulkApprove(context.Background(), session.BulkApproveRequest{
		SessionIDs:    []string{"a"},
		ApprovalStage: "rubber_stamped",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestPreviewPunches_MarksMissing(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), nil)

	resp, err := svc.PreviewPunches(context.Background(), punch.ImportRequest{
		Text:  "E1 2025-06-02 06:30\nE1 2025-06-02 17:00\nE3 2025-06-03 04:30",
		Shift: "A",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, "06:30:00", resp.Days[0].InTime)
	assert.Equal(t, "17:00:00", resp.Days[0].OutTime)

	assert.Equal(t, "E3", resp.Days[1].EmployeeNo)
	assert.Equal(t, "2025-06-02", resp.Days[1].Date)
	assert.Equal(t, punch.MissingMark, resp.Days[1].InTime)
	assert.Equal(t, "04:30:00", resp.Days[1].OutTime)
}

func TestImportPunches_PersistsEachDayIndependently(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, map[string]string{"E1": "Ayu Lestari"})

	// Pre-existing session blocks E2's day; E1's day still imports.
	_, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E2",
		Date:       "2025-06-02",
		Shift:      "A",
		InTime:     "06:30",
		OutTime:    "15:30",
	})
	require.NoError(t, err)

	resp, err := svc.ImportPunches(context.Background(), punch.ImportRequest{
		Text: "E1 2025-06-02 06:30\nE1 2025-06-02 17:00\n" +
			"E2 2025-06-02 06:30\nE2 2025-06-02 15:30\n" +
			"garbage-line",
		Shift: "A",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	require.Len(t, resp.Invalid, 1)

	assert.True(t, resp.Results[0].Success)
	assert.NotEmpty(t, resp.Results[0].SessionID)
	assert.False(t, resp.Results[1].Success)

	imported, err := repo.GetByID(context.Background(), resp.Results[0].SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", imported.EmployeeName)
	assert.Equal(t, session.ShiftA, imported.Shift)
	assert.True(t, imported.OTNormalHours.Equal(decimal.RequireFromString("1.5")))
}

func TestImportPunches_RejectsEmptyText(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), nil)

	_, err := svc.ImportPunches(context.Background(), punch.ImportRequest{Shift: "A"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestDelete(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Create(context.Background(), session.CreateSessionRequest{
		EmployeeNo: "E1",
		Date:       "2025-06-02",
		Shift:      "A",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
