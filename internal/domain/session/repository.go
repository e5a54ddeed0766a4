package session

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for work sessions.
type SessionRepository interface {
	// Create inserts a new work session
	Create(ctx context.Context, s WorkSession) (WorkSession, error)

	// GetByID retrieves a session by ID
	GetByID(ctx context.Context, id string) (WorkSession, error)

	// GetByEmployeeAndDate retrieves the session for an employee on a logical
	// work-day, nil when none exists. Used for duplicate detection on create.
	GetByEmployeeAndDate(ctx context.Context, employeeNo string, date time.Time) (*WorkSession, error)

	// Update overwrites an existing session
	Update(ctx context.Context, s WorkSession) error

	// UpdateApprovalStage sets the stage on a single session. Setting the
	// same stage twice is a no-op in effect, so bulk callers can re-issue.
	UpdateApprovalStage(ctx context.Context, id string, stage ApprovalStage) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// List retrieves sessions matching the filter with pagination
	List(ctx context.Context, filter SessionFilter) ([]WorkSession, int64, error)

	// ListByDateRange retrieves all sessions whose logical date falls in the
	// inclusive range, for on-demand period aggregation.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]WorkSession, error)
}
