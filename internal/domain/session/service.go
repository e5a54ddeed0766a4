package session

import (
	"context"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
)

// SessionService defines business logic for work session operations
type SessionService interface {
	// Create derives the computed overtime fields and stores a new session
	Create(ctx context.Context, req CreateSessionRequest) (SessionResponse, error)

	// Get retrieves a single session by ID
	Get(ctx context.Context, id string) (SessionResponse, error)

	// List retrieves sessions with filters and pagination
	List(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)

	// Update replaces the editable fields and re-runs the overtime
	// computation when any of date, shift, in_time or out_time changed
	Update(ctx context.Context, id string, req UpdateSessionRequest) (SessionResponse, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// BulkApprove sets the approval stage on a set of sessions, reporting
	// each record's outcome individually
	BulkApprove(ctx context.Context, req BulkApproveRequest) (BulkApproveResponse, error)

	// PreviewPunches reconstructs sessions from raw punch text without
	// persisting anything
	PreviewPunches(ctx context.Context, req punch.ImportRequest) (punch.PreviewResponse, error)

	// ImportPunches reconstructs sessions from raw punch text, computes
	// overtime and persists each derived session independently
	ImportPunches(ctx context.Context, req punch.ImportRequest) (punch.ImportResponse, error)
}
