package timecard

import "time"

type Timecard struct {
	ID        int
	StartTime time.Time
	EndTime   time.Time
	EmpID     int
}
