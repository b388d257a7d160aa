package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timekeeping-backend-go/internal/domain/timecard"
)

type CompanyServiceImpl struct {
	company    string
	transactor company.Transactor

	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
	timecardRepo   timecard.TimecardRepository
}

func NewCompanyService(
	tenant string,
	transactor company.Transactor,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	timecardRepo timecard.TimecardRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		company:        tenant,
		transactor:     transactor,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		timecardRepo:   timecardRepo,
	}
}

// DeleteAll implements company.CompanyService.
func (c *CompanyServiceImpl) DeleteAll(ctx context.Context, tenant string) (company.DeleteSummary, error) {
	if tenant != c.company {
		return company.DeleteSummary{}, fmt.Errorf("%w: %q", company.ErrUnknownCompany, tenant)
	}

	var summary company.DeleteSummary
	err := c.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		summary = company.DeleteSummary{}

		departments, err := c.departmentRepo.GetAll(txCtx, tenant)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		employees, err := c.employeeRepo.GetAll(txCtx, tenant)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		for _, e := range employees {
			timecards, err := c.timecardRepo.GetAllByEmployee(txCtx, e.ID)
			if err != nil {
				return fmt.Errorf("failed to list timecards of employee %d: %w", e.ID, err)
			}
			for _, t := range timecards {
				n, err := c.timecardRepo.Delete(txCtx, tenant, t.ID)
				if err != nil {
					return fmt.Errorf("failed to delete timecard %d: %w", t.ID, err)
				}
				summary.Timecards += n
			}

			n, err := c.employeeRepo.Delete(txCtx, tenant, e.ID)
			if err != nil {
				return fmt.Errorf("failed to delete employee %d: %w", e.ID, err)
			}
			summary.Employees += n
		}

		for _, d := range departments {
			n, err := c.departmentRepo.Delete(txCtx, tenant, d.ID)
			if err != nil {
				return fmt.Errorf("failed to delete department %d: %w", d.ID, err)
			}
			summary.Departments += n
		}

		remainingDepts, err := c.departmentRepo.GetAll(txCtx, tenant)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		remainingEmps, err := c.employeeRepo.GetAll(txCtx, tenant)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		if len(remainingDepts) > 0 || len(remainingEmps) > 0 {
			return fmt.Errorf("%w: %d departments, %d employees left",
				company.ErrCompanyNotEmpty, len(remainingDepts), len(remainingEmps))
		}

		return nil
	})
	if err != nil {
		slog.Warn("company delete rolled back", "company", tenant, "error", err)
		return company.DeleteSummary{}, err
	}

	slog.Info("company deleted",
		"company", tenant,
		"departments", summary.Departments,
		"employees", summary.Employees,
		"timecards", summary.Timecards,
		"total", summary.Total(),
	)

	return summary, nil
}
