package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type employeeServiceImpl struct {
	company        string
	dates          *validator.DateTimeChecker
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

// NewEmployeeService creates an employee service for the tenant company.
// dates checks hire_date values.
func NewEmployeeService(
	company string,
	dates *validator.DateTimeChecker,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &employeeServiceImpl{
		company:        company,
		dates:          dates,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *employeeServiceImpl) checkCompany(c string) error {
	if c != s.company {
		return fmt.Errorf("%w: %q", company.ErrUnknownCompany, c)
	}
	return nil
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, company string, id int) (employee.Employee, error) {
	if err := s.checkCompany(company); err != nil {
		return employee.Employee{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, company, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, company string) ([]employee.Employee, error) {
	if err := s.checkCompany(company); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetAll(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, employee.ErrNoEmployees
	}

	return employees, nil
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := s.checkCompany(req.Company); err != nil {
		return employee.Employee{}, err
	}

	e, err := s.applyRules(ctx, req, 0)
	if err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.Employee{}, s.mapWriteError("create", err)
	}

	return created, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if _, err := s.Get(ctx, req.Company, req.ID); err != nil {
		return employee.Employee{}, err
	}

	e, err := s.applyRules(ctx, req.CreateEmployeeRequest, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	e.ID = req.ID

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.Employee{}, s.mapWriteError("update", err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, company string, id int) (int64, error) {
	if _, err := s.Get(ctx, company, id); err != nil {
		return 0, err
	}

	n, err := s.employeeRepo.Delete(ctx, company, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %w", employee.ErrEmployeeInUse, err)
		}
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}

	return n, nil
}

// applyRules runs the employee checks in order and stops at the first
// failure. selfID is the employee being updated, 0 on create. Only a create
// into an empty company can be the first employee.
func (s *employeeServiceImpl) applyRules(ctx context.Context, req employee.CreateEmployeeRequest, selfID int) (employee.Employee, error) {
	if _, err := s.departmentRepo.GetByID(ctx, req.Company, req.DeptID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("%w: %w", department.ErrDepartmentNotFound, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.dates.CheckHireDate(req.HireDate); err != nil {
		return employee.Employee{}, fmt.Errorf("%w: %w", employee.ErrInvalidHireDate, err)
	}
	hireDate, err := s.dates.Parse(req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("%w: %w", employee.ErrInvalidHireDate, err)
	}

	existing, err := s.employeeRepo.GetAll(ctx, req.Company)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to list employees: %w", err)
	}

	mngID := req.MngID
	if selfID == 0 && len(existing) == 0 && mngID != employee.NoManager {
		slog.Info("first employee of company has no manager, ignoring mng_id",
			"company", req.Company, "emp_no", req.No, "mng_id", mngID)
		mngID = employee.NoManager
	}

	if mngID != employee.NoManager && !containsID(existing, mngID) {
		return employee.Employee{}, fmt.Errorf("%w: mng_id %d", employee.ErrManagerNotFound, mngID)
	}

	sameNo, err := s.employeeRepo.GetByNo(ctx, req.No)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employees by no: %w", err)
	}
	if !validator.IsUniqueNo(sameNo, req.No, selfID, employee.EmpNo, employee.EmpID) {
		return employee.Employee{}, fmt.Errorf("%w: %q", employee.ErrEmployeeNoExists, req.No)
	}

	return employee.Employee{
		Name:     req.Name,
		No:       req.No,
		HireDate: hireDate,
		Job:      req.Job,
		Salary:   req.Salary,
		DeptID:   req.DeptID,
		MngID:    mngID,
	}, nil
}

func (s *employeeServiceImpl) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", employee.ErrEmployeeNoExists, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", department.ErrDepartmentNotFound, err)
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}

func containsID(employees []employee.Employee, id int) bool {
	for _, e := range employees {
		if e.ID == id {
			return true
		}
	}
	return false
}
