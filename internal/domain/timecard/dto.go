package timecard

import (
	"time"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/pkg/validator"
)

type CreateTimecardRequest struct {
	Company   string `json:"company"`
	EmpID     int    `json:"emp_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *CreateTimecardRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Required(errs, "company", r.Company, 64)
	errs = validator.Positive(errs, "emp_id", r.EmpID)
	errs = validator.Required(errs, "start_time", r.StartTime, 0)
	errs = validator.Required(errs, "end_time", r.EndTime, 0)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimecardRequest struct {
	ID int `json:"timecard_id"`
	CreateTimecardRequest
}

func (r *UpdateTimecardRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.Positive(errs, "timecard_id", r.ID)
	errs, err := validator.Merge(errs, r.CreateTimecardRequest.Validate())
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimecardResponse struct {
	ID        int    `json:"timecard_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	EmpID     int    `json:"emp_id"`
}

// TimeFormatter renders instants the same way they were accepted.
type TimeFormatter interface {
	Format(t time.Time) string
}

func NewTimecardResponse(t Timecard, f TimeFormatter) TimecardResponse {
	return TimecardResponse{
		ID:        t.ID,
		StartTime: f.Format(t.StartTime),
		EndTime:   f.Format(t.EndTime),
		EmpID:     t.EmpID,
	}
}

func NewTimecardResponses(ts []Timecard, f TimeFormatter) []TimecardResponse {
	responses := make([]TimecardResponse, 0, len(ts))
	for _, t := range ts {
		responses = append(responses, NewTimecardResponse(t, f))
	}
	return responses
}
