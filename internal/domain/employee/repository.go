package employee

import "context"

// EmployeeRepository is the data access contract for employees. An employee
// belongs to a company through its department.
type EmployeeRepository interface {
	GetAll(ctx context.Context, company string) ([]Employee, error)
	GetByID(ctx context.Context, company string, id int) (Employee, error)
	// GetByNo returns every employee using no, in any company.
	GetByNo(ctx context.Context, no string) ([]Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, company string, id int) (int64, error)
}
