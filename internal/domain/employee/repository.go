package employee

import "context"

// EmployeeRepository defines the roster lookup boundary.
type EmployeeRepository interface {
	// GetByEmployeeNo retrieves one roster entry, ErrEmployeeNotFound when absent
	GetByEmployeeNo(ctx context.Context, employeeNo string) (Employee, error)
}
