package timecard

import "context"

type TimecardRepository interface {
	GetAllByEmployee(ctx context.Context, empID int) ([]Timecard, error)
	GetByID(ctx context.Context, company string, id int) (Timecard, error)
	Create(ctx context.Context, t Timecard) (Timecard, error)
	Update(ctx context.Context, t Timecard) (Timecard, error)
	Delete(ctx context.Context, company string, id int) (int64, error)
}
