package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.ApprovalRepository {
	return &approvalRepository{db: db}
}

// Upsert implements approval.ApprovalRepository. The unique index on
// (employee_no, period_type, period_value) guarantees one record per key;
// a conflicting insert overwrites confirmed_hours, approval_stage and
// updated_at, which makes re-applying the same tuple a no-op in effect.
func (r *approvalRepository) Upsert(ctx context.Context, rec approval.ApprovalRecord) (approval.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_approvals (
			id, employee_no, period_type, period_value, confirmed_hours, approval_stage, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
		ON CONFLICT (employee_no, period_type, period_value) DO UPDATE SET
			confirmed_hours = EXCLUDED.confirmed_hours,
			approval_stage = EXCLUDED.approval_stage,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeNo,
		rec.PeriodType,
		rec.PeriodValue,
		rec.ConfirmedHours,
		rec.ApprovalStage,
	).Scan(&rec.ID, &rec.UpdatedAt)

	if err != nil {
		return approval.ApprovalRecord{}, fmt.Errorf("failed to upsert approval: %w", err)
	}

	return rec, nil
}

// GetByKey implements approval.ApprovalRepository.
func (r *approvalRepository) GetByKey(ctx context.Context, employeeNo string, periodType approval.PeriodType, periodValue string) (approval.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_no, period_type, period_value, confirmed_hours, approval_stage, updated_at
		FROM overtime_approvals
		WHERE employee_no = $1 AND period_type = $2 AND period_value = $3
	`

	var rec approval.ApprovalRecord
	err := q.QueryRow(ctx, query, employeeNo, periodType, periodValue).Scan(
		&rec.ID, &rec.EmployeeNo, &rec.PeriodType, &rec.PeriodValue,
		&rec.ConfirmedHours, &rec.ApprovalStage, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.ApprovalRecord{}, approval.ErrApprovalNotFound
		}
		return approval.ApprovalRecord{}, fmt.Errorf("failed to get approval by key: %w", err)
	}

	return rec, nil
}

// ListByPeriodType implements approval.ApprovalRepository.
func (r *approvalRepository) ListByPeriodType(ctx context.Context, periodType approval.PeriodType) ([]approval.ApprovalRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_no, period_type, period_value, confirmed_hours, approval_stage, updated_at
		FROM overtime_approvals
		WHERE period_type = $1
		ORDER BY employee_no, period_value
	`

	rows, err := q.Query(ctx, query, periodType)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	defer rows.Close()

	var records []approval.ApprovalRecord
	for rows.Next() {
		var rec approval.ApprovalRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeNo, &rec.PeriodType, &rec.PeriodValue,
			&rec.ConfirmedHours, &rec.ApprovalStage, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan approval: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approvals: %w", err)
	}

	return records, nil
}
