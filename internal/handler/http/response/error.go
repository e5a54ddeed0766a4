package response

import (
	"errors"
	"net/http"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/approval"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/employee"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Work session not found")
	case errors.Is(err, session.ErrSessionExists):
		Conflict(w, "A session already exists for this employee and date")

	// Approval domain errors
	case errors.Is(err, approval.ErrApprovalNotFound):
		NotFound(w, "Approval record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
