package employee

import (
	"errors"
	"time"
)

// Employee is the roster entry the engine reads for name decoration. Roster
// CRUD itself is an external collaborator; only the lookup lives here.
type Employee struct {
	EmployeeNo string
	FullName   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var ErrEmployeeNotFound = errors.New("employee not found")
