package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/employee"
	"github.com/shopfloor-hr/overtime-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByEmployeeNo implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeNo(ctx context.Context, employeeNo string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_no, full_name, created_at, updated_at
		FROM employees
		WHERE employee_no = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeNo).Scan(
		&emp.EmployeeNo, &emp.FullName, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
