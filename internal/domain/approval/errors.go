package approval

import "errors"

// Approval domain errors
var (
	ErrApprovalNotFound = errors.New("approval record not found")
)
