package department

import "context"

// DepartmentService enforces the department rules before touching storage.
type DepartmentService interface {
	Get(ctx context.Context, company string, id int) (Department, error)
	List(ctx context.Context, company string) ([]Department, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (Department, error)
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, company string, id int) (int64, error)
}
