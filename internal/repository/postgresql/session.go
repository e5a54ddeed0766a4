package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	id, employee_no, employee_name, date, shift, in_time, out_time,
	is_night_shift, ot_normal_hours, ot_double_hours, ot_triple_hours,
	reason, confirmed_hours, approval_stage, created_at, updated_at`

func scanSession(row pgx.Row) (session.WorkSession, error) {
	var ws session.WorkSession
	err := row.Scan(
		&ws.ID, &ws.EmployeeNo, &ws.EmployeeName, &ws.Date, &ws.Shift,
		&ws.InTime, &ws.OutTime, &ws.IsNightShift,
		&ws.OTNormalHours, &ws.OTDoubleHours, &ws.OTTripleHours,
		&ws.Reason, &ws.ConfirmedHours, &ws.ApprovalStage,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

// Create implements session.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, ws session.WorkSession) (session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_sessions (
			id, employee_no, employee_name, date, shift, in_time, out_time,
			is_night_shift, ot_normal_hours, ot_double_hours, ot_triple_hours,
			reason, confirmed_hours, approval_stage
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ws.ID,
		ws.EmployeeNo,
		ws.EmployeeName,
		ws.Date,
		ws.Shift,
		ws.InTime,
		ws.OutTime,
		ws.IsNightShift,
		ws.OTNormalHours,
		ws.OTDoubleHours,
		ws.OTTripleHours,
		ws.Reason,
		ws.ConfirmedHours,
		ws.ApprovalStage,
	).Scan(&ws.CreatedAt, &ws.UpdatedAt)

	if err != nil {
		return session.WorkSession{}, fmt.Errorf("failed to create session: %w", err)
	}

	return ws, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + sessionColumns + ` FROM overtime_sessions WHERE id = $1`

	ws, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.WorkSession{}, session.ErrSessionNotFound
		}
		return session.WorkSession{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	return ws, nil
}

// GetByEmployeeAndDate implements session.SessionRepository.
func (r *sessionRepository) GetByEmployeeAndDate(ctx context.Context, employeeNo string, date time.Time) (*session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + sessionColumns + `
		FROM overtime_sessions
		WHERE employee_no = $1 AND date = $2
		LIMIT 1`

	ws, err := scanSession(q.QueryRow(ctx, query, employeeNo, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by employee and date: %w", err)
	}

	return &ws, nil
}

// Update implements session.SessionRepository.
func (r *sessionRepository) Update(ctx context.Context, ws session.WorkSession) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_sessions SET
			employee_no = $2,
			employee_name = $3,
			date = $4,
			shift = $5,
			in_time = $6,
			out_time = $7,
			is_night_shift = $8,
			ot_normal_hours = $9,
			ot_double_hours = $10,
			ot_triple_hours = $11,
			reason = $12,
			confirmed_hours = $13,
			approval_stage = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		ws.ID,
		ws.EmployeeNo,
		ws.EmployeeName,
		ws.Date,
		ws.Shift,
		ws.InTime,
		ws.OutTime,
		ws.IsNightShift,
		ws.OTNormalHours,
		ws.OTDoubleHours,
		ws.OTTripleHours,
		ws.Reason,
		ws.ConfirmedHours,
		ws.ApprovalStage,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}

// UpdateApprovalStage implements session.SessionRepository.
func (r *sessionRepository) UpdateApprovalStage(ctx context.Context, id string, stage session.ApprovalStage) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE overtime_sessions SET approval_stage = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, stage)
	if err != nil {
		return fmt.Errorf("failed to update approval stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}

// Delete implements session.SessionRepository.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}

// List implements session.SessionRepository.
func (r *sessionRepository) List(ctx context.Context, filter session.SessionFilter) ([]session.WorkSession, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"date >= $1", "date <= $2"}
	args := []interface{}{filter.From, filter.To}

	if filter.EmployeeNo != "" {
		args = append(args, filter.EmployeeNo)
		conditions = append(conditions, fmt.Sprintf("employee_no = $%d", len(args)))
	}
	if filter.ApprovalStage != "" {
		args = append(args, filter.ApprovalStage)
		conditions = append(conditions, fmt.Sprintf("approval_stage = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_sessions WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `SELECT` + sessionColumns + `
		FROM overtime_sessions
		WHERE ` + where + `
		ORDER BY date DESC, employee_no
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.WorkSession
	for rows.Next() {
		ws, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, total, nil
}

// ListByDateRange implements session.SessionRepository.
func (r *sessionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]session.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + sessionColumns + `
		FROM overtime_sessions
		WHERE date >= $1 AND date <= $2
		ORDER BY employee_no, date`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by date range: %w", err)
	}
	defer rows.Close()

	var sessions []session.WorkSession
	for rows.Next() {
		ws, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, nil
}
