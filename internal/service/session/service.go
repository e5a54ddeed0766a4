package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/employee"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
	"github.com/shopfloor-hr/overtime-backend-go/internal/service/overtime"
	punchService "github.com/shopfloor-hr/overtime-backend-go/internal/service/punch"
)

type SessionServiceImpl struct {
	sessionRepo   session.SessionRepository
	employeeRepo  employee.EmployeeRepository
	reconstructor *punchService.Reconstructor
	calculator    *overtime.Calculator
}

func NewSessionService(
	sessionRepo session.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	reconstructor *punchService.Reconstructor,
	calculator *overtime.Calculator,
) session.SessionService {
	return &SessionServiceImpl{
		sessionRepo:   sessionRepo,
		employeeRepo:  employeeRepo,
		reconstructor: reconstructor,
		calculator:    calculator,
	}
}

// Create implements session.SessionService.
func (s *SessionServiceImpl) Create(ctx context.Context, req session.CreateSessionRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.sessionRepo.GetByEmployeeAndDate(ctx, req.EmployeeNo, date)
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to check for existing session: %w", err)
	}
	if existing != nil {
		return session.SessionResponse{}, session.ErrSessionExists
	}

	ws := session.WorkSession{
		ID:            uuid.NewString(),
		EmployeeNo:    req.EmployeeNo,
		EmployeeName:  req.EmployeeName,
		Date:          date,
		Shift:         session.Shift(req.Shift),
		InTime:        clockToTime(date, req.InTime),
		OutTime:       clockToTime(date, req.OutTime),
		Reason:        req.Reason,
		ApprovalStage: session.StagePending,
	}

	if ws.EmployeeName == "" {
		ws.EmployeeName = s.lookupName(ctx, req.EmployeeNo)
	}

	ws = s.calculator.Recompute(ws)
	ws.OTTripleHours = overtime.RoundQuarter(req.OTTripleHours)

	created, err := s.sessionRepo.Create(ctx, ws)
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to create session: %w", err)
	}

	return toResponse(created), nil
}

// Get implements session.SessionService.
func (s *SessionServiceImpl) Get(ctx context.Context, id string) (session.SessionResponse, error) {
	ws, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return session.SessionResponse{}, err
	}
	return toResponse(ws), nil
}

// List implements session.SessionService.
func (s *SessionServiceImpl) List(ctx context.Context, filter session.SessionFilter) (session.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return session.ListSessionsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	sessions, total, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		return session.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	resp := session.ListSessionsResponse{
		Sessions:   make([]session.SessionResponse, 0, len(sessions)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, ws := range sessions {
		resp.Sessions = append(resp.Sessions, toResponse(ws))
	}

	return resp, nil
}

// Update implements session.SessionService. Any change to date, shift,
// in_time or out_time re-runs the whole overtime computation; the computed
// fields are never patched one by one.
func (s *SessionServiceImpl) Update(ctx context.Context, id string, req session.UpdateSessionRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	ws, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return session.SessionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	ws.Date = date
	ws.Shift = session.Shift(req.Shift)
	ws.InTime = clockToTime(date, req.InTime)
	ws.OutTime = clockToTime(date, req.OutTime)
	ws.Reason = req.Reason
	ws.ConfirmedHours = req.ConfirmedHours

	ws = s.calculator.Recompute(ws)
	ws.OTTripleHours = overtime.RoundQuarter(req.OTTripleHours)

	if err := s.sessionRepo.Update(ctx, ws); err != nil {
		return session.SessionResponse{}, err
	}

	return toResponse(ws), nil
}

// Delete implements session.SessionService.
func (s *SessionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.sessionRepo.Delete(ctx, id)
}

// BulkApprove implements session.SessionService. Each record is an isolated
// update: one failure never rolls back or blocks the rest, and re-issuing
// the same request is safe because setting the same stage twice is a no-op.
func (s *SessionServiceImpl) BulkApprove(ctx context.Context, req session.BulkApproveRequest) (session.BulkApproveResponse, error) {
	if err := req.Validate(); err != nil {
		return session.BulkApproveResponse{}, err
	}

	stage := session.ApprovalStage(req.ApprovalStage)
	resp := session.BulkApproveResponse{
		Results: make([]session.BulkApproveResult, 0, len(req.SessionIDs)),
	}

	for _, id := range req.SessionIDs {
		result := session.BulkApproveResult{SessionID: id, Success: true}
		if err := s.sessionRepo.UpdateApprovalStage(ctx, id, stage); err != nil {
			result.Success = false
			result.Error = err.Error()
			resp.Failed++
		} else {
			resp.Updated++
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// PreviewPunches implements session.SessionService.
func (s *SessionServiceImpl) PreviewPunches(ctx context.Context, req punch.ImportRequest) (punch.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PreviewResponse{}, err
	}

	result := s.reconstructor.Reconstruct(strings.Split(req.Text, "\n"))

	resp := punch.PreviewResponse{
		Days:    make([]punch.DayPreview, 0, len(result.Days)),
		Invalid: result.Invalid,
	}
	for _, day := range result.Days {
		resp.Days = append(resp.Days, punch.DayPreview{
			EmployeeNo: day.EmployeeNo,
			Date:       day.Date.Format("2006-01-02"),
			InTime:     clockOrMissing(day.InTime),
			OutTime:    clockOrMissing(day.OutTime),
		})
	}

	return resp, nil
}

// ImportPunches implements session.SessionService. Derived sessions are
// persisted independently: a failure on one day is reported in its result
// entry and the rest of the batch proceeds.
func (s *SessionServiceImpl) ImportPunches(ctx context.Context, req punch.ImportRequest) (punch.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.ImportResponse{}, err
	}

	result := s.reconstructor.Reconstruct(strings.Split(req.Text, "\n"))

	resp := punch.ImportResponse{
		Results: make([]punch.ImportResult, 0, len(result.Days)),
		Invalid: result.Invalid,
	}

	for _, day := range result.Days {
		entry := punch.ImportResult{
			EmployeeNo: day.EmployeeNo,
			Date:       day.Date.Format("2006-01-02"),
		}

		created, err := s.createFromDay(ctx, day, session.Shift(req.Shift))
		if err != nil {
			entry.Error = err.Error()
			resp.Failed++
		} else {
			entry.SessionID = created.ID
			entry.Success = true
			resp.Imported++
		}
		resp.Results = append(resp.Results, entry)
	}

	return resp, nil
}

func (s *SessionServiceImpl) createFromDay(ctx context.Context, day punch.ReconstructedDay, shift session.Shift) (session.WorkSession, error) {
	existing, err := s.sessionRepo.GetByEmployeeAndDate(ctx, day.EmployeeNo, day.Date)
	if err != nil {
		return session.WorkSession{}, fmt.Errorf("failed to check for existing session: %w", err)
	}
	if existing != nil {
		return session.WorkSession{}, session.ErrSessionExists
	}

	ws := session.WorkSession{
		ID:            uuid.NewString(),
		EmployeeNo:    day.EmployeeNo,
		EmployeeName:  s.lookupName(ctx, day.EmployeeNo),
		Date:          day.Date,
		Shift:         shift,
		InTime:        day.InTime,
		OutTime:       day.OutTime,
		ApprovalStage: session.StagePending,
	}

	ws = s.calculator.Recompute(ws)

	return s.sessionRepo.Create(ctx, ws)
}

// lookupName decorates a session with the roster name. A missing roster
// entry never blocks session creation.
func (s *SessionServiceImpl) lookupName(ctx context.Context, employeeNo string) string {
	emp, err := s.employeeRepo.GetByEmployeeNo(ctx, employeeNo)
	if err != nil {
		return ""
	}
	return emp.FullName
}

func clockToTime(date time.Time, clock string) *time.Time {
	if clock == "" {
		return nil
	}
	offset, ok := validator.ParseClock(clock)
	if !ok {
		return nil
	}
	t := date.Add(offset)
	return &t
}

func clockOrMissing(t *time.Time) string {
	if t == nil {
		return punch.MissingMark
	}
	return t.Format("15:04:05")
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func toResponse(ws session.WorkSession) session.SessionResponse {
	return session.SessionResponse{
		ID:             ws.ID,
		EmployeeNo:     ws.EmployeeNo,
		EmployeeName:   ws.EmployeeName,
		Date:           ws.Date.Format("2006-01-02"),
		Shift:          string(ws.Shift),
		InTime:         timePtrToString(ws.InTime),
		OutTime:        timePtrToString(ws.OutTime),
		IsNightShift:   ws.IsNightShift,
		Computable:     ws.Computable(),
		OTNormalHours:  ws.OTNormalHours,
		OTDoubleHours:  ws.OTDoubleHours,
		OTTripleHours:  ws.OTTripleHours,
		Reason:         ws.Reason,
		ConfirmedHours: ws.ConfirmedHours,
		ApprovalStage:  string(ws.ApprovalStage),
		CreatedAt:      ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      ws.UpdatedAt.Format(time.RFC3339),
	}
}
