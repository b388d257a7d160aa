package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type departmentServiceImpl struct {
	company        string
	departmentRepo department.DepartmentRepository
}

// NewDepartmentService creates a department service bound to the tenant
// identified by company.
func NewDepartmentService(company string, departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &departmentServiceImpl{
		company:        company,
		departmentRepo: departmentRepo,
	}
}

func (s *departmentServiceImpl) checkCompany(c string) error {
	if c != s.company {
		return fmt.Errorf("%w: %q", company.ErrUnknownCompany, c)
	}
	return nil
}

// Get implements department.DepartmentService.
func (s *departmentServiceImpl) Get(ctx context.Context, company string, id int) (department.Department, error) {
	if err := s.checkCompany(company); err != nil {
		return department.Department{}, err
	}

	d, err := s.departmentRepo.GetByID(ctx, company, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, fmt.Errorf("%w: %w", department.ErrDepartmentNotFound, err)
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentService.
func (s *departmentServiceImpl) List(ctx context.Context, company string) ([]department.Department, error) {
	if err := s.checkCompany(company); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetAll(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if len(departments) == 0 {
		return nil, department.ErrNoDepartments
	}

	return departments, nil
}

// ensureUniqueNo fails when another department of the company already uses
// no. selfID is the department being updated, 0 on create.
func (s *departmentServiceImpl) ensureUniqueNo(ctx context.Context, company, no string, selfID int) error {
	departments, err := s.departmentRepo.GetAll(ctx, company)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}
	if !validator.IsUniqueNo(departments, no, selfID, department.DeptNo, department.DeptID) {
		return fmt.Errorf("%w: %q", department.ErrDepartmentNoExists, no)
	}
	return nil
}

// Create implements department.DepartmentService.
func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := s.checkCompany(req.Company); err != nil {
		return department.Department{}, err
	}
	if err := s.ensureUniqueNo(ctx, req.Company, req.No, 0); err != nil {
		return department.Department{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Company:  req.Company,
		Name:     req.Name,
		No:       req.No,
		Location: req.Location,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return department.Department{}, fmt.Errorf("%w: %w", department.ErrDepartmentNoExists, err)
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// Update implements department.DepartmentService.
func (s *departmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	if _, err := s.Get(ctx, req.Company, req.ID); err != nil {
		return department.Department{}, err
	}
	if err := s.ensureUniqueNo(ctx, req.Company, req.No, req.ID); err != nil {
		return department.Department{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, department.Department{
		ID:       req.ID,
		Company:  req.Company,
		Name:     req.Name,
		No:       req.No,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return department.Department{}, fmt.Errorf("%w: %w", department.ErrDepartmentNotFound, err)
		case database.IsUniqueViolation(err):
			return department.Department{}, fmt.Errorf("%w: %w", department.ErrDepartmentNoExists, err)
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements department.DepartmentService.
func (s *departmentServiceImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	if _, err := s.Get(ctx, company, id); err != nil {
		return 0, err
	}

	n, err := s.departmentRepo.Delete(ctx, company, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %w", department.ErrDepartmentInUse, err)
		}
		return 0, fmt.Errorf("failed to delete department: %w", err)
	}

	return n, nil
}
