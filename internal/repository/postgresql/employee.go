package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.emp_id, e.emp_name, e.emp_no, e.hire_date, e.job, e.salary, e.dept_id, e.mng_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.No,
		&e.HireDate,
		&e.Job,
		&e.Salary,
		&e.DeptID,
		&e.MngID,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context, company string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.dept_id = e.dept_id
		WHERE d.company = $1
		ORDER BY e.emp_id ASC
	`

	rows, err := q.Query(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return collectEmployees(rows)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, company string, id int) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.dept_id = e.dept_id
		WHERE d.company = $1 AND e.emp_id = $2
	`

	result, err := scanEmployee(q.QueryRow(ctx, query, company, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("employee %d: %w", id, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// GetByNo implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByNo(ctx context.Context, no string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.emp_no = $1
		ORDER BY e.emp_id ASC
	`

	rows, err := q.Query(ctx, query, no)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by no: %w", err)
	}

	return collectEmployees(rows)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees AS e (emp_name, emp_no, hire_date, job, salary, dept_id, mng_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		e.Name,
		e.No,
		e.HireDate,
		e.Job,
		e.Salary,
		e.DeptID,
		e.MngID,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees AS e
		SET emp_name = $1, emp_no = $2, hire_date = $3, job = $4, salary = $5, dept_id = $6, mng_id = $7
		WHERE e.emp_id = $8
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		e.Name,
		e.No,
		e.HireDate,
		e.Job,
		e.Salary,
		e.DeptID,
		e.MngID,
		e.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("employee %d: %w", e.ID, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM employees e
		USING departments d
		WHERE d.dept_id = e.dept_id AND d.company = $1 AND e.emp_id = $2
	`

	commandTag, err := q.Exec(ctx, query, company, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
