package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	Get(ctx context.Context, company string, id int) (Employee, error)

	List(ctx context.Context, company string) ([]Employee, error)

	// Create checks, in order: department, hire date, manager, employee no.
	// The first employee of a company never has a manager.
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// Update runs the Create checks against an existing employee. The first
	// employee rule does not apply, so mng_id is always checked.
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	Delete(ctx context.Context, company string, id int) (int64, error)
}
