package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// GetAll implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetAll(ctx context.Context, company string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dept_id, company, dept_name, dept_no, location
		FROM departments
		WHERE company = $1
		ORDER BY dept_id ASC
	`

	rows, err := q.Query(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID,
			&d.Company,
			&d.Name,
			&d.No,
			&d.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, company string, id int) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dept_id, company, dept_name, dept_no, location
		FROM departments
		WHERE company = $1 AND dept_id = $2
	`

	var result department.Department
	err := q.QueryRow(ctx, query, company, id).Scan(
		&result.ID,
		&result.Company,
		&result.Name,
		&result.No,
		&result.Location,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, fmt.Errorf("department %d: %w", id, err)
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return result, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (company, dept_name, dept_no, location)
		VALUES ($1, $2, $3, $4)
		RETURNING dept_id, company, dept_name, dept_no, location
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Company, d.Name, d.No, d.Location).Scan(
		&result.ID,
		&result.Company,
		&result.Name,
		&result.No,
		&result.Location,
	)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET dept_name = $1, dept_no = $2, location = $3
		WHERE company = $4 AND dept_id = $5
		RETURNING dept_id, company, dept_name, dept_no, location
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Name, d.No, d.Location, d.Company, d.ID).Scan(
		&result.ID,
		&result.Company,
		&result.Name,
		&result.No,
		&result.Location,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, fmt.Errorf("department %d: %w", d.ID, err)
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return result, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE company = $1 AND dept_id = $2`

	commandTag, err := q.Exec(ctx, query, company, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete department: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
