package department

import "context"

// DepartmentRepository is the data access contract for departments. Lookups
// of a missing row return an error wrapping pgx.ErrNoRows.
type DepartmentRepository interface {
	GetAll(ctx context.Context, company string) ([]Department, error)
	GetByID(ctx context.Context, company string, id int) (Department, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, company string, id int) (int64, error)
}
