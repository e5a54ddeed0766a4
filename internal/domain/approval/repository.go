package approval

import "context"

// ApprovalRepository defines data access methods for period approval records.
type ApprovalRepository interface {
	// Upsert inserts the record or, when the (employee_no, period_type,
	// period_value) key already exists, overwrites confirmed_hours,
	// approval_stage and updated_at. Concurrent upserts to the same key
	// resolve last-write-wins.
	Upsert(ctx context.Context, rec ApprovalRecord) (ApprovalRecord, error)

	// GetByKey retrieves a record by its key tuple
	GetByKey(ctx context.Context, employeeNo string, periodType PeriodType, periodValue string) (ApprovalRecord, error)

	// ListByPeriodType retrieves all records of one period type, used to
	// decorate grouped summaries
	ListByPeriodType(ctx context.Context, periodType PeriodType) ([]ApprovalRecord, error)
}

// ApprovalService defines business logic for the period approval ledger
type ApprovalService interface {
	// Upsert validates and applies an approval tuple idempotently
	Upsert(ctx context.Context, req UpsertApprovalRequest) (ApprovalResponse, error)

	// Get retrieves the stored record for a key tuple
	Get(ctx context.Context, req GetApprovalRequest) (ApprovalResponse, error)
}
