package timecard

import "context"

// TimecardService enforces the timecard window rules.
type TimecardService interface {
	Get(ctx context.Context, company string, id int) (Timecard, error)
	List(ctx context.Context, company string, empID int) ([]Timecard, error)
	Create(ctx context.Context, req CreateTimecardRequest) (Timecard, error)
	Update(ctx context.Context, req UpdateTimecardRequest) (Timecard, error)
	Delete(ctx context.Context, company string, id int) (int64, error)
}
