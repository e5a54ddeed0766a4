package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/report"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	sessionRepo  session.SessionRepository
	approvalRepo approval.ApprovalRepository
}

func NewReportService(sessionRepo session.SessionRepository, approvalRepo approval.ApprovalRepository) report.ReportService {
	return &ReportServiceImpl{
		sessionRepo:  sessionRepo,
		approvalRepo: approvalRepo,
	}
}

// Grouped implements report.ReportService. Summaries are recomputed from the
// session store on every query so that session edits are always reflected;
// nothing here is persisted.
func (s *ReportServiceImpl) Grouped(ctx context.Context, req report.GroupedReportRequest) (report.GroupedReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.GroupedReportResponse{}, err
	}

	periodType := approval.PeriodType(req.PeriodType)
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	sessions, err := s.sessionRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return report.GroupedReportResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	groups := Aggregate(sessions, periodType)

	records, err := s.approvalRepo.ListByPeriodType(ctx, periodType)
	if err != nil {
		return report.GroupedReportResponse{}, fmt.Errorf("failed to list approvals: %w", err)
	}

	type approvalKey struct {
		employeeNo  string
		periodValue string
	}
	byKey := make(map[approvalKey]approval.ApprovalRecord, len(records))
	for _, rec := range records {
		byKey[approvalKey{rec.EmployeeNo, rec.PeriodValue}] = rec
	}

	for i := range groups {
		if rec, ok := byKey[approvalKey{groups[i].EmployeeNo, groups[i].PeriodValue}]; ok {
			groups[i].ConfirmedHours = rec.ConfirmedHours
			groups[i].ApprovalStage = string(rec.ApprovalStage)
		}
	}

	return report.GroupedReportResponse{
		PeriodType: req.PeriodType,
		From:       req.From,
		To:         req.To,
		Groups:     groups,
	}, nil
}

// Aggregate groups sessions by (employee, period) and sums their overtime
// categories. Pure: it only folds over the sessions it is given.
func Aggregate(sessions []session.WorkSession, periodType approval.PeriodType) []report.PeriodSummary {
	type groupKey struct {
		employeeNo  string
		periodValue string
	}

	byKey := make(map[groupKey]*report.PeriodSummary)
	for _, ws := range sessions {
		key := groupKey{ws.EmployeeNo, periodType.ValueFor(ws.Date)}

		summary, ok := byKey[key]
		if !ok {
			summary = &report.PeriodSummary{
				EmployeeNo:    ws.EmployeeNo,
				EmployeeName:  ws.EmployeeName,
				PeriodValue:   key.periodValue,
				ApprovalStage: string(session.StagePending),
			}
			byKey[key] = summary
		}

		summary.TotalNormalHours = summary.TotalNormalHours.Add(ws.OTNormalHours)
		summary.TotalDoubleHours = summary.TotalDoubleHours.Add(ws.OTDoubleHours)
		summary.TotalTripleHours = summary.TotalTripleHours.Add(ws.OTTripleHours)
		summary.SessionCount++
		if ws.IsNightShift {
			summary.NightShiftCount++
		}
		if summary.EmployeeName == "" {
			summary.EmployeeName = ws.EmployeeName
		}
	}

	groups := make([]report.PeriodSummary, 0, len(byKey))
	for _, summary := range byKey {
		groups = append(groups, *summary)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].EmployeeNo != groups[j].EmployeeNo {
			return groups[i].EmployeeNo < groups[j].EmployeeNo
		}
		return groups[i].PeriodValue < groups[j].PeriodValue
	})

	return groups
}
